package hunter

import (
	"errors"
	"fmt"
)

// ErrMissingTarget is returned when neither a domain name nor a company name
// was supplied to an operation that requires one of them.
var ErrMissingTarget = errors.New("hunter: a domain name or a company name is required")

// ErrMissingName is returned by the email finder when neither a first name
// and a last name nor a full name was supplied.
var ErrMissingName = errors.New("hunter: a first name and a last name, or a full name, is required")

// StatusError is a non-2xx response from the Hunter API. It is returned
// before any decoding of the body is attempted.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("hunter api request failed: status=%d body=%s", e.StatusCode, e.Body)
}

// APIError is a 2xx response whose envelope carries no data payload. The
// error message is the full response body as the service returned it.
type APIError struct {
	Body string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return "hunter api error"
	}
	return e.Body
}
