// ABOUTME: Input and output shapes shared by the gateway and content handlers
// ABOUTME: Also registers the health check and aggregated search routes

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"healthinfo-api/core/domain"
	"healthinfo-api/pkg/contentapi"
)

// BodyOutput is an operation output with a JSON body of type T
type BodyOutput[T any] struct {
	Body T
}

func respond[T any](body T) *BodyOutput[T] {
	return &BodyOutput[T]{Body: body}
}

// SlugInput identifies a page in the path
type SlugInput struct {
	Slug string `path:"slug" maxLength:"200" doc:"Page slug"`
}

// LimitInput caps list sizes
type LimitInput struct {
	Limit int `query:"limit" doc:"Maximum number of items; 0 uses the default, negative values are rejected"`
}

// QueryInput carries a search query
type QueryInput struct {
	Q string `query:"q" doc:"Search text, at least two characters after trimming"`
}

// Searcher runs the aggregated search
type Searcher interface {
	Search(ctx context.Context, q string) contentapi.SearchResults
}

// RegisterHealth registers the health check
func RegisterHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*BodyOutput[contentapi.Health], error) {
		return respond(contentapi.Health{Status: "healthy"}), nil
	})
}

// RegisterSearch registers the aggregated search
func RegisterSearch(api huma.API, searcher Searcher) {
	huma.Register(api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/api/search",
		Summary:     "Search articles, conditions, drugs and news",
		Description: "Returns hits grouped by kind. Short queries return four empty lists.",
		Tags:        []string{"Search"},
	}, func(ctx context.Context, input *QueryInput) (*BodyOutput[contentapi.SearchResults], error) {
		return respond(searcher.Search(ctx, input.Q)), nil
	})
}

// tagFor names the OpenAPI tag of a kind, e.g. "Social posts"
func tagFor(kind domain.Kind) string {
	name := strings.ReplaceAll(kind.Segment(), "-", " ")
	return strings.ToUpper(name[:1]) + name[1:]
}
