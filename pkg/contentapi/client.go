// ABOUTME: HTTP client for the content service JSON API
// ABOUTME: Classifies every failure as unavailable, upstream status or unexpected

package contentapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"

	coreerrors "healthinfo-api/core/errors"
	"healthinfo-api/core/interfaces"
)

const (
	defaultServiceName = "content service"
	maxErrorBodyBytes  = 1 << 20
)

// Option configures a Client
type Option func(*Client)

// WithServiceName sets the name used in error messages
func WithServiceName(name string) Option {
	return func(c *Client) {
		c.service = name
	}
}

// WithLogger enables debug logging of every upstream call
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// Client reads JSON resources from the content service
type Client struct {
	baseURL string
	http    interfaces.HTTPClient
	service string
	logger  interfaces.Logger
}

// NewClient creates a client for the API rooted at baseURL, e.g. http://localhost:8001/api
func NewClient(baseURL string, httpClient interfaces.HTTPClient, opts ...Option) (*Client, error) {
	if httpClient == nil {
		return nil, errors.New("HTTP client is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid content service URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("content service URL must be absolute, got %q", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		service: defaultServiceName,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Service returns the name used in error messages
func (c *Client) Service() string {
	return c.service
}

// GetJSON fetches path (relative to the base URL) and decodes the body into dst.
//
// Errors:
//   - *errors.UnavailableError when the service cannot be reached or the wait expires
//   - *errors.UpstreamError when it answers with a non-2xx status; Body holds the raw body
//   - any other error when the response cannot be decoded
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, dst interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	if c.logger != nil {
		c.logger.Debug("Calling content service", map[string]interface{}{
			"url": target,
		})
	}

	resp, err := c.http.Get(ctx, target)
	if err != nil {
		return &coreerrors.UnavailableError{Service: c.service, Cause: err}
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
		return &coreerrors.UpstreamError{
			Service:    c.service,
			StatusCode: resp.StatusCode(),
			Body:       raw,
		}
	}

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if isTimeout(err) {
			return &coreerrors.UnavailableError{Service: c.service, Cause: err}
		}
		return fmt.Errorf("decode %s response from %s: %w", c.service, path, err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Path joins escaped segments into an API path such as /news/flu-season/related
func Path(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
