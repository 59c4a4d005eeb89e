package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	// DefaultUserAgent is sent with every request unless overridden.
	DefaultUserAgent = "LetrasScraper"

	// DefaultTimeout bounds a single request, including reading the body.
	DefaultTimeout = 30 * time.Second
)

// Client wraps HTTP operations with letras.com-specific configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - A running count of bytes received, for progress display
//
// A Client is safe for concurrent use; the underlying http.Client reuses
// connections across goroutines.
//
// Example usage:
//
//	client := NewClient("", 0)
//
//	// Fetch HTML content
//	page, err := client.Get(ctx, "https://www.letras.com/tom-jobim/mais_acessadas.html")
type Client struct {
	httpClient *http.Client
	userAgent  string
	received   atomic.Int64
}

// NewClient creates a new HTTP client.
//
// An empty userAgent means DefaultUserAgent; a zero or negative timeout
// means DefaultTimeout.
func NewClient(userAgent string, timeout time.Duration) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK
//   - Reading the body fails
//
// Example:
//
//	page, err := client.Get(ctx, "https://www.letras.com/tom-jobim/49/")
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	c.received.Add(int64(len(body)))
	if err != nil {
		return nil, err
	}
	return body, nil
}

// BytesReceived returns the total number of body bytes read by this client.
func (c *Client) BytesReceived() int64 {
	return c.received.Load()
}
