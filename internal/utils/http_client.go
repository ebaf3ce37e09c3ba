package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("http://localhost:8200"))
//	resp, err := client.R().Get("/v1/sys/health")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures the underlying resty.Client.
type HTTPClientOption func(c *resty.Client)

// WithBaseURL sets the host prefix for relative request URLs.
// A trailing slash is trimmed.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}
}

// WithTimeout sets the request timeout. Zero keeps the library default.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithHeader adds a header sent with every request. Empty values are skipped.
func WithHeader(key, value string) HTTPClientOption {
	return func(c *resty.Client) {
		if value != "" {
			c.SetHeader(key, value)
		}
	}
}

// NewHTTPClient creates a new HTTPClient with its own resty.Client.
// Each call returns an independent instance with its own connection pool.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}

	return &HTTPClient{Client: client}
}
