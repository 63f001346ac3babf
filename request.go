package hunter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sendgrid/rest"
)

// do issues a single request with the API key attached as a query parameter
// and returns the transport response untouched. A network failure or a
// non-2xx status fails the call before any decoding.
func (c *Client) do(ctx context.Context, method rest.Method, endpoint string, query map[string]string) (*rest.Response, error) {
	query["api_key"] = c.APIKey

	req := rest.Request{
		Method:      method,
		BaseURL:     c.APIHost + endpoint,
		QueryParams: query,
	}

	resp, err := c.restClient().SendWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("hunter api request failed: %w", err)
	}

	slog.DebugContext(ctx, "hunter api response", "endpoint", endpoint, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: resp.Body}
	}

	return resp, nil
}

// query issues the request and unwraps the response envelope: the body must
// decode as JSON and carry a top-level "data" key. An envelope without it is
// surfaced as an APIError holding the full body; the "meta" key, when
// present, is discarded.
func (c *Client) query(ctx context.Context, method rest.Method, endpoint string, q map[string]string) (map[string]any, error) {
	resp, err := c.do(ctx, method, endpoint, q)
	if err != nil {
		return nil, err
	}

	var envelope map[string]any
	if err := json.Unmarshal([]byte(resp.Body), &envelope); err != nil {
		return nil, fmt.Errorf("hunter unmarshal error: %w", err)
	}

	data, ok := envelope["data"]
	if !ok {
		return nil, &APIError{Body: resp.Body}
	}

	payload, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected data payload type %T", data)
	}

	return payload, nil
}

func (c *Client) restClient() *rest.Client {
	if c.HTTPClient != nil {
		return &rest.Client{HTTPClient: c.HTTPClient}
	}
	return rest.DefaultClient
}
