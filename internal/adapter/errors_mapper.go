package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/coffee-notes/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a [*ServerError]. The
// message is taken from the {"error": "..."} envelope, falling back to the
// raw body and then to the status text.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	return NewServerError(code, errorMessage(resp.Body(), code))
}

// NewServerError builds the error for a response with the given status.
func NewServerError(code int, message string) *ServerError {
	return &ServerError{
		StatusCode: code,
		Message:    message,
		kind:       kindOf(code),
	}
}

func kindOf(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusMethodNotAllowed:
		return ErrMethodNotAllowed
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}

func errorMessage(body []byte, code int) string {
	var envelope models.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}

	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}

	return http.StatusText(code)
}
