// ABOUTME: Proxied content resource with list, paths, detail, related and search reads
// ABOUTME: Every read goes through the fallback policy with the resource's mock dataset

package gateway

import (
	"context"
	"net/url"
	"strconv"

	"healthinfo-api/core/domain"
	coreerrors "healthinfo-api/core/errors"
	"healthinfo-api/core/proxy"
	"healthinfo-api/pkg/contentapi"
)

// relatedLimit caps related lists served from mock data
const relatedLimit = 3

// Resource proxies the endpoints of one content kind.
// S is the summary type of listings, D the detail type.
type Resource[S any, D any] struct {
	kind    domain.Kind
	proxy   *proxy.Proxy
	mocks   proxy.MockSet[S]
	expand  func(S) D
	listing string
}

// NewResource creates a resource for kind. listing is the name of the list
// endpoint ("latest" or "index"); expand turns a mock summary into a detail.
func NewResource[S any, D any](kind domain.Kind, p *proxy.Proxy, mocks proxy.MockSet[S], listing string, expand func(S) D) *Resource[S, D] {
	return &Resource[S, D]{
		kind:    kind,
		proxy:   p,
		mocks:   mocks,
		expand:  expand,
		listing: listing,
	}
}

// Kind returns the content kind served by the resource
func (r *Resource[S, D]) Kind() domain.Kind {
	return r.kind
}

// Listing returns the name of the list endpoint, "latest" or "index"
func (r *Resource[S, D]) Listing() string {
	return r.listing
}

// List returns the listing of the kind. A positive limit is forwarded upstream
// and applied to mock data; a negative one is rejected before any upstream call.
func (r *Resource[S, D]) List(ctx context.Context, limit int) ([]S, error) {
	if err := coreerrors.CheckLimit(limit); err != nil {
		return nil, err
	}
	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	return orEmpty(proxy.Fetch(ctx, r.proxy, proxy.Call[[]S]{
		Resource: r.kind.Label() + " list",
		Path:     contentapi.Path(r.kind.Segment(), r.listing),
		Query:    query,
		Mock: func() ([]S, bool) {
			items := r.mocks.All()
			if limit > 0 && limit < len(items) {
				items = items[:limit]
			}
			return items, true
		},
	}))
}

// Featured returns the top stories of the kind
func (r *Resource[S, D]) Featured(ctx context.Context, limit int) ([]S, error) {
	return orEmpty(proxy.Fetch(ctx, r.proxy, proxy.Call[[]S]{
		Resource: r.kind.Label() + " top stories",
		Path:     contentapi.Path(r.kind.Segment(), "top-stories"),
		Mock: func() ([]S, bool) {
			items := r.mocks.All()
			if limit < len(items) {
				items = items[:limit]
			}
			return items, true
		},
	}))
}

// Paths returns every slug of the kind
func (r *Resource[S, D]) Paths(ctx context.Context) ([]string, error) {
	return orEmpty(proxy.Fetch(ctx, r.proxy, proxy.Call[[]string]{
		Resource: r.kind.Label() + " paths",
		Path:     contentapi.Path(r.kind.Segment(), "paths"),
		Mock: func() ([]string, bool) {
			return r.mocks.Slugs(), true
		},
	}))
}

// Detail returns the page with slug
func (r *Resource[S, D]) Detail(ctx context.Context, slug string) (D, error) {
	return proxy.Fetch(ctx, r.proxy, proxy.Call[D]{
		Resource: r.kind.Label(),
		Path:     contentapi.Path(r.kind.Segment(), slug),
		Slug:     slug,
		Mock: func() (D, bool) {
			summary, ok := r.mocks.Find(slug)
			if !ok {
				var zero D
				return zero, false
			}
			return r.expand(summary), true
		},
	})
}

// Related returns pages related to slug. An unknown slug yields an empty list.
func (r *Resource[S, D]) Related(ctx context.Context, slug string) ([]S, error) {
	return orEmpty(proxy.Fetch(ctx, r.proxy, proxy.Call[[]S]{
		Resource: "Related " + r.kind.Segment(),
		Path:     contentapi.Path(r.kind.Segment(), slug, "related"),
		Slug:     slug,
		Mock: func() ([]S, bool) {
			return r.mocks.Except(slug, relatedLimit), true
		},
		NotFound: func() []S {
			return []S{}
		},
	}))
}

// Search returns pages of the kind matching q. Queries shorter than
// domain.MinQueryLength return an empty list without calling upstream.
func (r *Resource[S, D]) Search(ctx context.Context, q string) ([]S, error) {
	query, ok := domain.NormalizeQuery(q)
	if !ok {
		return []S{}, nil
	}
	return orEmpty(proxy.Fetch(ctx, r.proxy, proxy.Call[[]S]{
		Resource: r.kind.Label() + " search",
		Path:     contentapi.Path(r.kind.Segment(), "search"),
		Query:    url.Values{"q": {query}},
		Mock: func() ([]S, bool) {
			return r.mocks.Filter(query), true
		},
	}))
}

// orEmpty turns a nil list (an upstream JSON null) into an empty one
func orEmpty[T any](items []T, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []T{}, nil
	}
	return items, nil
}
