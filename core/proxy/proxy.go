// ABOUTME: Fallback policy for every gateway read that depends on the content service
// ABOUTME: Unreachable upstream degrades to mock data; upstream statuses are propagated

package proxy

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	coreerrors "healthinfo-api/core/errors"
	"healthinfo-api/core/interfaces"
)

// Fallback reasons reported to the Observer
const (
	ReasonUnavailable = "unavailable"
	ReasonUnexpected  = "unexpected"
)

// Environment tells the proxy whether it runs in production.
// It is read once per call.
type Environment interface {
	IsProduction() bool
}

// Upstream fetches a JSON resource from the content service
type Upstream interface {
	GetJSON(ctx context.Context, path string, query url.Values, dst interface{}) error
}

// Observer is notified whenever a response is served from mock data
type Observer interface {
	RecordFallback(resource, reason string)
}

// Option configures a Proxy
type Option func(*Proxy)

// WithMockFallback turns mock substitution on or off. It is on by default.
func WithMockFallback(enabled bool) Option {
	return func(p *Proxy) {
		p.mockFallback = enabled
	}
}

// WithObserver registers an Observer for mock substitutions
func WithObserver(o Observer) Option {
	return func(p *Proxy) {
		p.observer = o
	}
}

// Proxy applies the fallback policy to upstream calls
type Proxy struct {
	upstream     Upstream
	env          Environment
	logger       interfaces.Logger
	mockFallback bool
	observer     Observer
}

// New creates a Proxy
func New(upstream Upstream, env Environment, logger interfaces.Logger, opts ...Option) *Proxy {
	p := &Proxy{
		upstream:     upstream,
		env:          env,
		logger:       logger,
		mockFallback: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Call describes one proxied read
type Call[T any] struct {
	// Resource names the resource in messages, e.g. "News article"
	Resource string

	Path  string
	Query url.Values

	// Slug is the requested identifier of detail and related reads
	Slug string

	// Mock builds the substitute payload. ok is false when the mock dataset
	// has no match for Slug. Nil means the read has no mock.
	Mock func() (value T, ok bool)

	// NotFound answers an upstream 404 instead of a NotFoundError
	NotFound func() T
}

// Fetch performs call against the upstream and applies the fallback policy:
//
//   - unreachable upstream: serve the mock, NotFoundError if it has no match
//   - upstream 404: call.NotFound, or a NotFoundError naming the slug
//   - other upstream status: the *errors.UpstreamError, status and body intact
//   - anything else: *errors.InternalError; outside production the mock is tried first
func Fetch[T any](ctx context.Context, p *Proxy, call Call[T]) (T, error) {
	var zero T
	production := p.env != nil && p.env.IsProduction()

	var out T
	err := p.upstream.GetJSON(ctx, call.Path, call.Query, &out)
	if err == nil {
		return out, nil
	}

	if coreerrors.IsUnavailable(err) {
		if !p.mockFallback || call.Mock == nil {
			p.logger.Error("Content service unavailable", fields(call, err))
			return zero, err
		}
		p.logger.Warn("Content service unavailable, serving mock data", fields(call, err))
		return substitute(p, call, ReasonUnavailable)
	}

	if upstreamErr, ok := coreerrors.AsUpstream(err); ok {
		if upstreamErr.StatusCode == 404 {
			if call.NotFound != nil {
				return call.NotFound(), nil
			}
			return zero, notFound(call)
		}
		p.logger.Warn("Content service returned an error status", fields(call, err))
		return zero, upstreamErr
	}

	p.logger.Error("Unexpected error calling content service", fields(call, err))
	if !production && p.mockFallback && call.Mock != nil {
		return substitute(p, call, ReasonUnexpected)
	}
	return zero, &coreerrors.InternalError{
		Message: fmt.Sprintf("Failed to retrieve %s", strings.ToLower(call.Resource)),
		Cause:   err,
	}
}

// substitute serves call's mock payload
func substitute[T any](p *Proxy, call Call[T], reason string) (T, error) {
	var zero T
	value, ok := call.Mock()
	if !ok {
		return zero, notFound(call)
	}
	if p.observer != nil {
		p.observer.RecordFallback(call.Resource, reason)
	}
	return value, nil
}

func notFound[T any](call Call[T]) error {
	return &coreerrors.NotFoundError{Resource: call.Resource, ID: call.Slug}
}

func fields[T any](call Call[T], err error) map[string]interface{} {
	f := map[string]interface{}{
		"resource": call.Resource,
		"path":     call.Path,
		"error":    err.Error(),
	}
	if call.Slug != "" {
		f["slug"] = call.Slug
	}
	return f
}
