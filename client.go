// Package hunter is a client for the Hunter.io v2 email-intelligence API:
// email verification, domain-based email discovery and person email lookup.
//
// For API documentation, visit: https://hunter.io/api-documentation/v2
package hunter

import (
	"context"
	"errors"
	"net/http"

	"github.com/sendgrid/rest"
)

// DefaultAPIHost is the production Hunter API host.
const DefaultAPIHost = "https://api.hunter.io"

const (
	endpointEmailVerifier = "/v2/email-verifier"
	endpointDomainSearch  = "/v2/domain-search"
	endpointEmailFinder   = "/v2/email-finder"
)

// Client calls the Hunter API. It holds the API key and host and nothing
// else; it is immutable after construction, so a single Client is safe for
// concurrent use.
type Client struct {
	APIHost string
	APIKey  string

	// HTTPClient overrides the transport used for requests. Timeouts and
	// connection settings belong to it; the Client adds none of its own.
	HTTPClient *http.Client
}

// NewClient returns a Client for the production API host. The key is not
// validated locally; an invalid key surfaces as an API-level error on the
// first call.
func NewClient(apiKey string) *Client {
	return &Client{
		APIHost: DefaultAPIHost,
		APIKey:  apiKey,
	}
}

// VerifyEmail checks the deliverability of an email address and returns the
// unwrapped data payload. The address is passed through uninterpreted.
func (c *Client) VerifyEmail(ctx context.Context, email string) (map[string]any, error) {
	return c.query(ctx, rest.Get, endpointEmailVerifier, map[string]string{"email": email})
}

// VerifyEmailRaw is VerifyEmail returning the transport response untouched.
func (c *Client) VerifyEmailRaw(ctx context.Context, email string) (*rest.Response, error) {
	return c.do(ctx, rest.Get, endpointEmailVerifier, map[string]string{"email": email})
}

// SearchDomain lists the email addresses Hunter knows for a domain or
// company and returns the unwrapped data payload. It fails with
// ErrMissingTarget, before any request is issued, when params names neither
// a domain nor a company.
func (c *Client) SearchDomain(ctx context.Context, params SearchParams) (map[string]any, error) {
	q := map[string]string{}
	if err := params.apply(q); err != nil {
		return nil, err
	}
	return c.query(ctx, rest.Get, endpointDomainSearch, q)
}

// SearchDomainRaw is SearchDomain returning the transport response untouched.
func (c *Client) SearchDomainRaw(ctx context.Context, params SearchParams) (*rest.Response, error) {
	q := map[string]string{}
	if err := params.apply(q); err != nil {
		return nil, err
	}
	return c.do(ctx, rest.Get, endpointDomainSearch, q)
}

// FindEmail returns the most likely email address for a person at a domain
// or company, with its confidence score. It fails with ErrMissingTarget or
// ErrMissingName, before any request is issued, when params is incomplete;
// the target check runs first.
func (c *Client) FindEmail(ctx context.Context, params FindParams) (string, int, error) {
	q := map[string]string{}
	if err := params.apply(q); err != nil {
		return "", 0, err
	}

	data, err := c.query(ctx, rest.Get, endpointEmailFinder, q)
	if err != nil {
		return "", 0, err
	}

	email, ok := data["email"].(string)
	if !ok {
		return "", 0, errors.New("email missing or invalid in finder payload")
	}
	score, ok := data["score"].(float64)
	if !ok {
		return "", 0, errors.New("score missing or invalid in finder payload")
	}

	return email, int(score), nil
}

// FindEmailRaw is FindEmail returning the transport response untouched
// instead of the extracted email and score.
func (c *Client) FindEmailRaw(ctx context.Context, params FindParams) (*rest.Response, error) {
	q := map[string]string{}
	if err := params.apply(q); err != nil {
		return nil, err
	}
	return c.do(ctx, rest.Get, endpointEmailFinder, q)
}
