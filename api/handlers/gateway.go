// ABOUTME: Gateway handlers proxying the content service for the public site
// ABOUTME: Reads degrade to mock data through the gateway core when the service is down

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"healthinfo-api/core/gateway"
	"healthinfo-api/core/proxy"
	"healthinfo-api/pkg/contentapi"
)

// GatewayHandler serves the gateway API
type GatewayHandler struct {
	gateway *gateway.Gateway
	env     proxy.Environment
}

// NewGatewayHandler creates a gateway handler
func NewGatewayHandler(gw *gateway.Gateway, env proxy.Environment) *GatewayHandler {
	return &GatewayHandler{gateway: gw, env: env}
}

// RedirectOutput is a redirect with an empty body
type RedirectOutput struct {
	Status   int
	Location string `header:"Location"`
}

// RegisterRoutes registers every gateway route
func (h *GatewayHandler) RegisterRoutes(api huma.API) {
	RegisterHealth(api)
	RegisterSearch(api, h.gateway)

	registerProxied(api, h, h.gateway.News, true)
	registerProxied(api, h, h.gateway.Articles, true)
	registerProxied(api, h, h.gateway.Conditions, false)
	registerProxied(api, h, h.gateway.Drugs, false)

	huma.Register(api, huma.Operation{
		OperationID: "articles-top-stories",
		Method:      http.MethodGet,
		Path:        "/api/articles/top-stories",
		Summary:     "Featured articles",
		Tags:        []string{"Articles"},
	}, func(ctx context.Context, input *struct{}) (*BodyOutput[[]contentapi.Preview], error) {
		stories, err := h.gateway.TopStories(ctx)
		if err != nil {
			return nil, toHumaError(err, h.env)
		}
		return respond(stories), nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "legacy-article-redirect",
		Method:        http.MethodGet,
		Path:          "/articles/{slug}",
		Summary:       "Redirect old article URLs to news",
		Tags:          []string{"Articles"},
		DefaultStatus: http.StatusMovedPermanently,
	}, func(ctx context.Context, input *SlugInput) (*RedirectOutput, error) {
		return &RedirectOutput{
			Status:   http.StatusMovedPermanently,
			Location: "/news/" + input.Slug,
		}, nil
	})
}

// registerProxied registers list, paths, search and detail routes of one
// resource, plus related when withRelated is set
func registerProxied[S any, D any](api huma.API, h *GatewayHandler, res *gateway.Resource[S, D], withRelated bool) {
	kind := res.Kind()
	segment := kind.Segment()
	base := "/api/" + segment
	tags := []string{tagFor(kind)}
	listing := res.Listing()

	huma.Register(api, huma.Operation{
		OperationID: segment + "-" + listing,
		Method:      http.MethodGet,
		Path:        base + "/" + listing,
		Summary:     "List " + segment,
		Tags:        tags,
	}, func(ctx context.Context, input *LimitInput) (*BodyOutput[[]S], error) {
		items, err := res.List(ctx, input.Limit)
		if err != nil {
			return nil, toHumaError(err, h.env)
		}
		return respond(items), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: segment + "-paths",
		Method:      http.MethodGet,
		Path:        base + "/paths",
		Summary:     "Slugs of every " + kind.Label(),
		Tags:        tags,
	}, func(ctx context.Context, input *struct{}) (*BodyOutput[[]string], error) {
		slugs, err := res.Paths(ctx)
		if err != nil {
			return nil, toHumaError(err, h.env)
		}
		return respond(slugs), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: segment + "-search",
		Method:      http.MethodGet,
		Path:        base + "/search",
		Summary:     "Search " + segment,
		Tags:        tags,
	}, func(ctx context.Context, input *QueryInput) (*BodyOutput[[]S], error) {
		items, err := res.Search(ctx, input.Q)
		if err != nil {
			return nil, toHumaError(err, h.env)
		}
		return respond(items), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: segment + "-detail",
		Method:      http.MethodGet,
		Path:        base + "/{slug}",
		Summary:     kind.Label() + " by slug",
		Tags:        tags,
	}, func(ctx context.Context, input *SlugInput) (*BodyOutput[D], error) {
		detail, err := res.Detail(ctx, input.Slug)
		if err != nil {
			return nil, toHumaError(err, h.env)
		}
		return respond(detail), nil
	})

	if !withRelated {
		return
	}
	huma.Register(api, huma.Operation{
		OperationID: segment + "-related",
		Method:      http.MethodGet,
		Path:        base + "/{slug}/related",
		Summary:     "Related " + segment,
		Tags:        tags,
	}, func(ctx context.Context, input *SlugInput) (*BodyOutput[[]S], error) {
		items, err := res.Related(ctx, input.Slug)
		if err != nil {
			return nil, toHumaError(err, h.env)
		}
		return respond(items), nil
	})
}
