package interfaces

import (
	"context"
	"io"
)

// HTTPClient performs outbound GET requests.
// Transport failures are returned as errors; any status code is a Response.
type HTTPClient interface {
	Get(ctx context.Context, url string) (Response, error)
}

// Response is the part of an HTTP response the core packages read
type Response interface {
	StatusCode() int

	// Body must be closed by the caller
	Body() io.ReadCloser

	// Header returns the named header, case-insensitively, or ""
	Header(key string) string
}
