// ABOUTME: Aggregated search over articles, conditions, drugs and news
// ABOUTME: Runs one search per kind concurrently; a failing kind yields an empty bucket

package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"healthinfo-api/core/domain"
	"healthinfo-api/core/interfaces"
	"healthinfo-api/pkg/contentapi"
)

// Searcher runs the per-kind searches the aggregate is built from.
// The gateway implements it over the content service, the content service over its store.
type Searcher interface {
	SearchArticles(ctx context.Context, q string) ([]contentapi.Preview, error)
	SearchConditions(ctx context.Context, q string) ([]contentapi.ConditionSummary, error)
	SearchDrugs(ctx context.Context, q string) ([]contentapi.DrugSummary, error)
	SearchNews(ctx context.Context, q string) ([]contentapi.Preview, error)
}

// SearchService aggregates per-kind searches
type SearchService struct {
	searcher Searcher
	deps     interfaces.Dependencies
}

// NewSearchService creates a new search service instance
func NewSearchService(searcher Searcher, deps interfaces.Dependencies) *SearchService {
	return &SearchService{
		searcher: searcher,
		deps:     deps,
	}
}

// Search returns the hits for q grouped by kind. It never fails: queries shorter
// than domain.MinQueryLength return four empty buckets without searching, and a
// kind whose search fails contributes an empty bucket.
func (s *SearchService) Search(ctx context.Context, q string) contentapi.SearchResults {
	results := contentapi.EmptySearchResults()

	query, ok := domain.NormalizeQuery(q)
	if !ok {
		return results
	}

	// Each branch writes only its own bucket and never returns an error,
	// so Wait gathers every branch instead of failing fast.
	var g errgroup.Group
	g.Go(func() error {
		results.Articles = gather(ctx, s.deps.Logger, "articles", query, s.searcher.SearchArticles)
		return nil
	})
	g.Go(func() error {
		results.Conditions = gather(ctx, s.deps.Logger, "conditions", query, s.searcher.SearchConditions)
		return nil
	})
	g.Go(func() error {
		results.Drugs = gather(ctx, s.deps.Logger, "drugs", query, s.searcher.SearchDrugs)
		return nil
	})
	g.Go(func() error {
		results.News = gather(ctx, s.deps.Logger, "news", query, s.searcher.SearchNews)
		return nil
	})
	_ = g.Wait()

	return results
}

// gather runs one branch, isolating its failure
func gather[T any](ctx context.Context, logger interfaces.Logger, kind, query string, search func(context.Context, string) ([]T, error)) (hits []T) {
	defer func() {
		if r := recover(); r != nil {
			if logger != nil {
				logger.Error("Search branch panicked", map[string]interface{}{
					"kind":  kind,
					"panic": r,
				})
			}
			hits = []T{}
		}
	}()

	found, err := search(ctx, query)
	if err != nil {
		if logger != nil {
			logger.Error("Search failed for kind", map[string]interface{}{
				"kind":  kind,
				"query": query,
				"error": err.Error(),
			})
		}
		return []T{}
	}
	if found == nil {
		return []T{}
	}
	return found
}
