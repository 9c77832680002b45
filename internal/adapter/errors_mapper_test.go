package adapter

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusMethodNotAllowed, ErrMethodNotAllowed},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrBadGateway},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, kindOf(tt.code))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Failed to toggle like", errorMessage([]byte(`{"error":"Failed to toggle like"}`), 500))
	assert.Equal(t, "plain text", errorMessage([]byte(" plain text\n"), 500))
	assert.Equal(t, "Bad Gateway", errorMessage(nil, http.StatusBadGateway))
	assert.Equal(t, `{"other":1}`, errorMessage([]byte(`{"other":1}`), 400))
}

func TestServerError(t *testing.T) {
	err := &ServerError{StatusCode: 400, Message: "missing required fields", kind: ErrBadRequest}
	assert.Equal(t, "bad request (400): missing required fields", err.Error())
	assert.ErrorIs(t, err, ErrBadRequest)

	err = &ServerError{StatusCode: 502, kind: ErrBadGateway}
	assert.Equal(t, "note store unavailable (502)", err.Error())
}
