// ABOUTME: Standard HTTP client used by the gateway to reach the content service
// ABOUTME: Each attempt has a bounded timeout; 5xx answers may be retried with backoff

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"healthinfo-api/core/interfaces"
)

const (
	defaultMaxAttempts = 3
	defaultUserAgent   = "HealthInfoGateway/1.0"
)

// Option configures a StandardHTTPClient
type Option func(*StandardHTTPClient)

// WithMaxAttempts sets how many times a request is tried; 1 disables retries
func WithMaxAttempts(n int) Option {
	return func(c *StandardHTTPClient) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *StandardHTTPClient) {
		c.userAgent = ua
	}
}

// WithTransport sets the RoundTripper, e.g. a logging wrapper
func WithTransport(rt http.RoundTripper) Option {
	return func(c *StandardHTTPClient) {
		c.client.Transport = rt
	}
}

// StandardHTTPClient implements interfaces.HTTPClient on net/http
type StandardHTTPClient struct {
	client      *http.Client
	maxAttempts int
	userAgent   string
}

// NewStandardHTTPClient creates a client whose requests give up after timeout
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		maxAttempts: defaultMaxAttempts,
		userAgent:   defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			// 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			resp = nil
			lastErr = err
			continue
		}

		if resp.StatusCode < 500 || attempt == c.maxAttempts-1 {
			break
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
