package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Response holds the status code and raw body of an upstream reply.
// Non-2xx statuses are returned to the caller rather than turned into
// errors, because callers decide per status (403 triggers key-transport
// fallback, 404/204 means not found).
type Response struct {
	StatusCode int
	Body       []byte
}

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// Get performs a GET request with the given headers
	Get(ctx context.Context, url string, headers map[string]string) (*Response, error)

	// Post performs a POST request with the given headers and body
	Post(ctx context.Context, url string, headers map[string]string, body []byte) (*Response, error)
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new real HTTP client with a fixed timeout.
// Requests are not retried here; a timeout is a failure the caller
// treats as no data.
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *RealHTTPClient) do(req *http.Request, headers map[string]string) (*Response, error) {
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// Get performs a GET request with the given headers
func (c *RealHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, headers)
}

// Post performs a POST request with the given headers and body
func (c *RealHTTPClient) Post(ctx context.Context, url string, headers map[string]string, body []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, headers)
}
