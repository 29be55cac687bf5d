// ABOUTME: Gateway core that proxies the content service for news, articles, conditions and drugs
// ABOUTME: Also provides aggregated search across the four searchable kinds

package gateway

import (
	"context"

	"healthinfo-api/core/domain"
	"healthinfo-api/core/interfaces"
	"healthinfo-api/core/proxy"
	"healthinfo-api/core/search"
	"healthinfo-api/pkg/contentapi"
)

// topStoriesLimit is the size of the mock top stories list
const topStoriesLimit = 5

// Gateway groups the proxied resources
type Gateway struct {
	News       *Resource[contentapi.Preview, contentapi.ArticleDetail]
	Articles   *Resource[contentapi.Preview, contentapi.ArticleDetail]
	Conditions *Resource[contentapi.ConditionSummary, contentapi.ConditionDetail]
	Drugs      *Resource[contentapi.DrugSummary, contentapi.DrugDetail]

	search *search.SearchService
}

// New creates a Gateway whose reads all go through p
func New(p *proxy.Proxy, deps interfaces.Dependencies) *Gateway {
	g := &Gateway{
		News:       NewResource(domain.KindNews, p, previewMocks(mockNews), "latest", expandNews),
		Articles:   NewResource(domain.KindArticle, p, previewMocks(mockArticles), "latest", expandArticle),
		Conditions: NewResource(domain.KindCondition, p, conditionMocks(), "index", expandCondition),
		Drugs:      NewResource(domain.KindDrug, p, drugMocks(), "index", expandDrug),
	}
	g.search = search.NewSearchService(g, deps)
	return g
}

// Search runs the aggregated search
func (g *Gateway) Search(ctx context.Context, q string) contentapi.SearchResults {
	return g.search.Search(ctx, q)
}

// TopStories returns featured articles
func (g *Gateway) TopStories(ctx context.Context) ([]contentapi.Preview, error) {
	return g.Articles.Featured(ctx, topStoriesLimit)
}

// SearchArticles implements search.Searcher
func (g *Gateway) SearchArticles(ctx context.Context, q string) ([]contentapi.Preview, error) {
	return g.Articles.Search(ctx, q)
}

// SearchConditions implements search.Searcher
func (g *Gateway) SearchConditions(ctx context.Context, q string) ([]contentapi.ConditionSummary, error) {
	return g.Conditions.Search(ctx, q)
}

// SearchDrugs implements search.Searcher
func (g *Gateway) SearchDrugs(ctx context.Context, q string) ([]contentapi.DrugSummary, error) {
	return g.Drugs.Search(ctx, q)
}

// SearchNews implements search.Searcher
func (g *Gateway) SearchNews(ctx context.Context, q string) ([]contentapi.Preview, error) {
	return g.News.Search(ctx, q)
}
