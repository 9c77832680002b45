package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRequest is returned for 400 responses: malformed input.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrMethodNotAllowed is returned for 405 responses.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrInternalServerError is returned for 500 responses: store failures.
	ErrInternalServerError = errors.New("internal server error")

	// ErrBadGateway is returned for 502, 503 and 504 responses.
	ErrBadGateway = errors.New("note store unavailable")

	// ErrUnexpectedStatus is returned for any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrInvalidAddress is returned for an unusable note store address.
	ErrInvalidAddress = errors.New("invalid note store address")
)

// ServerError is a non-2xx response of the note store. It unwraps to one of
// the status sentinels above.
type ServerError struct {
	StatusCode int
	Message    string

	kind error
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (%d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%s (%d): %s", e.kind, e.StatusCode, e.Message)
}

func (e *ServerError) Unwrap() error {
	return e.kind
}
