package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
//	resp, err := client.R().Get("/api/notes")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with JSON defaults. An empty baseURL leaves
// request URLs untouched; a non-positive timeout disables the client timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if baseURL != "" {
		c.SetBaseURL(baseURL)
	}
	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &HTTPClient{Client: c}
}
