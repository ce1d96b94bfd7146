// Package gatewaysdk is a client for the partner-management backend.
// It normalizes the backend's response envelopes and surfaces transport,
// decode and application errors as distinct types so callers can map them
// onto their own HTTP surface.
package gatewaysdk

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the partner-management backend REST API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new backend client with a sane default timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// do performs an HTTP request against the backend. A non-empty token is
// forwarded as a bearer Authorization header. Transport failures are
// returned as *TransportError naming the backend URL.
func (c *Client) do(
	ctx context.Context,
	method, path, token string,
	body io.Reader,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, &TransportError{URL: c.BaseURL, Err: err}
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: c.BaseURL, Err: err}
	}

	return resp, nil
}
