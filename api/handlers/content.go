// ABOUTME: Content service handlers serving the canonical store
// ABOUTME: One set of generic route builders covers every content kind

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"healthinfo-api/api/dto/mappers"
	"healthinfo-api/core/content"
	"healthinfo-api/core/domain"
	"healthinfo-api/core/interfaces"
	"healthinfo-api/core/proxy"
	"healthinfo-api/core/search"
	"healthinfo-api/pkg/contentapi"
)

// ContentService is the read side of the content service
type ContentService interface {
	Latest(ctx context.Context, kind domain.Kind, opts content.LatestOptions) ([]*domain.Content, error)
	TopStories(ctx context.Context) ([]*domain.Content, error)
	Index(ctx context.Context, kind domain.Kind) ([]*domain.Content, error)
	Detail(ctx context.Context, kind domain.Kind, slug string) (*domain.Content, error)
	Related(ctx context.Context, kind domain.Kind, slug string) ([]*domain.Content, error)
	Search(ctx context.Context, kind domain.Kind, q string) ([]*domain.Content, error)
	Paths(ctx context.Context, kind domain.Kind) ([]string, error)
	Categories(ctx context.Context, kind domain.Kind) ([]domain.CategoryCount, error)
	HealthTopics(ctx context.Context) ([]content.Topic, error)
	WellBeing(ctx context.Context) (content.WellBeing, error)
	Authors(ctx context.Context) ([]content.AuthorProfile, error)
	Author(ctx context.Context, slug string) (*content.AuthorProfile, error)
}

// ContentHandler serves the content service API
type ContentHandler struct {
	service ContentService
	search  *search.SearchService
	env     proxy.Environment
}

// NewContentHandler creates a content handler. deps.Logger records failed search branches.
func NewContentHandler(service ContentService, deps interfaces.Dependencies, env proxy.Environment) *ContentHandler {
	return &ContentHandler{
		service: service,
		search:  search.NewSearchService(&storeSearcher{service: service}, deps),
		env:     env,
	}
}

// RemedyLatestInput filters remedies by type
type RemedyLatestInput struct {
	Limit int    `query:"limit" doc:"Maximum number of items; 0 uses the default"`
	Type  string `query:"type" doc:"Remedy type name, e.g. Ayurveda (case-insensitive)"`
}

// kindRoutes builds the routes of one kind. S is the listing item, D the detail.
type kindRoutes[S any, D any] struct {
	handler *ContentHandler
	kind    domain.Kind
	list    func([]*domain.Content) []S
	detail  func(*domain.Content) D
}

func (r kindRoutes[S, D]) op(id, path, summary string) huma.Operation {
	return huma.Operation{
		OperationID: r.kind.Segment() + "-" + id,
		Method:      http.MethodGet,
		Path:        "/api/" + r.kind.Segment() + path,
		Summary:     summary,
		Tags:        []string{tagFor(r.kind)},
	}
}

func (r kindRoutes[S, D]) fail(err error) error {
	return toHumaError(err, r.handler.env)
}

func (r kindRoutes[S, D]) latest(api huma.API) {
	huma.Register(api, r.op("latest", "/latest", "Newest "+r.kind.Segment()),
		func(ctx context.Context, input *LimitInput) (*BodyOutput[[]S], error) {
			items, err := r.handler.service.Latest(ctx, r.kind, content.LatestOptions{Limit: input.Limit})
			if err != nil {
				return nil, r.fail(err)
			}
			return respond(r.list(items)), nil
		})
}

func (r kindRoutes[S, D]) index(api huma.API) {
	huma.Register(api, r.op("index", "/index", "Every "+r.kind.Label()+" by title"),
		func(ctx context.Context, input *struct{}) (*BodyOutput[[]S], error) {
			items, err := r.handler.service.Index(ctx, r.kind)
			if err != nil {
				return nil, r.fail(err)
			}
			return respond(r.list(items)), nil
		})
}

func (r kindRoutes[S, D]) paths(api huma.API) {
	huma.Register(api, r.op("paths", "/paths", "Slugs of every "+r.kind.Label()),
		func(ctx context.Context, input *struct{}) (*BodyOutput[[]string], error) {
			slugs, err := r.handler.service.Paths(ctx, r.kind)
			if err != nil {
				return nil, r.fail(err)
			}
			if slugs == nil {
				slugs = []string{}
			}
			return respond(slugs), nil
		})
}

func (r kindRoutes[S, D]) searchByKind(api huma.API) {
	huma.Register(api, r.op("search", "/search", "Search "+r.kind.Segment()),
		func(ctx context.Context, input *QueryInput) (*BodyOutput[[]S], error) {
			items, err := r.handler.service.Search(ctx, r.kind, input.Q)
			if err != nil {
				return nil, r.fail(err)
			}
			return respond(r.list(items)), nil
		})
}

func (r kindRoutes[S, D]) show(api huma.API) {
	huma.Register(api, r.op("detail", "/{slug}", r.kind.Label()+" by slug"),
		func(ctx context.Context, input *SlugInput) (*BodyOutput[D], error) {
			c, err := r.handler.service.Detail(ctx, r.kind, input.Slug)
			if err != nil {
				return nil, r.fail(err)
			}
			return respond(r.detail(c)), nil
		})
}

func (r kindRoutes[S, D]) related(api huma.API) {
	huma.Register(api, r.op("related", "/{slug}/related", "Related "+r.kind.Segment()),
		func(ctx context.Context, input *SlugInput) (*BodyOutput[[]S], error) {
			items, err := r.handler.service.Related(ctx, r.kind, input.Slug)
			if err != nil {
				return nil, r.fail(err)
			}
			return respond(r.list(items)), nil
		})
}

// RegisterRoutes registers every content service route
func (h *ContentHandler) RegisterRoutes(api huma.API) {
	RegisterHealth(api)
	RegisterSearch(api, h.search)

	articles := kindRoutes[contentapi.Preview, contentapi.ArticleDetail]{h, domain.KindArticle, mappers.ToPreviews, mappers.ToArticleDetail}
	articles.latest(api)
	h.registerArticleExtras(api, articles)
	articles.paths(api)
	articles.searchByKind(api)
	articles.show(api)
	articles.related(api)

	news := kindRoutes[contentapi.Preview, contentapi.ArticleDetail]{h, domain.KindNews, mappers.ToPreviews, mappers.ToArticleDetail}
	news.latest(api)
	news.paths(api)
	news.searchByKind(api)
	news.show(api)
	news.related(api)

	conditions := kindRoutes[contentapi.ConditionSummary, contentapi.ConditionDetail]{h, domain.KindCondition, mappers.ToConditionSummaries, mappers.ToConditionDetail}
	conditions.index(api)
	conditions.paths(api)
	conditions.searchByKind(api)
	conditions.show(api)
	conditions.related(api)

	drugs := kindRoutes[contentapi.DrugSummary, contentapi.DrugDetail]{h, domain.KindDrug, mappers.ToDrugSummaries, mappers.ToDrugDetail}
	drugs.index(api)
	drugs.paths(api)
	drugs.searchByKind(api)
	h.registerDrugCategories(api, drugs)
	drugs.show(api)
	drugs.related(api)

	remedies := kindRoutes[contentapi.RemedySummary, contentapi.RemedyDetail]{h, domain.KindRemedy, mappers.ToRemedySummaries, mappers.ToRemedyDetail}
	h.registerRemedyLatest(api, remedies)
	remedies.paths(api)
	remedies.show(api)

	posts := kindRoutes[contentapi.SocialPost, contentapi.SocialPost]{h, domain.KindSocialPost, mappers.ToSocialPosts, mappers.ToSocialPost}
	posts.latest(api)
	posts.show(api)

	videos := kindRoutes[contentapi.Video, contentapi.Video]{h, domain.KindVideo, mappers.ToVideos, videoDetail}
	videos.latest(api)
	videos.show(api)

	h.registerWellBeing(api)
	h.registerDoctors(api)
}

func videoDetail(c *domain.Content) contentapi.Video {
	return mappers.ToVideo(c, true)
}

func (h *ContentHandler) registerArticleExtras(api huma.API, r kindRoutes[contentapi.Preview, contentapi.ArticleDetail]) {
	huma.Register(api, r.op("top-stories", "/top-stories", "Featured articles"),
		func(ctx context.Context, input *struct{}) (*BodyOutput[[]contentapi.Preview], error) {
			items, err := h.service.TopStories(ctx)
			if err != nil {
				return nil, r.fail(err)
			}
			return respond(mappers.ToPreviews(items)), nil
		})

	huma.Register(api, r.op("health-topics", "/health-topics", "Article categories with their newest articles"),
		func(ctx context.Context, input *struct{}) (*BodyOutput[[]contentapi.HealthTopic], error) {
			topics, err := h.service.HealthTopics(ctx)
			if err != nil {
				return nil, r.fail(err)
			}
			out := make([]contentapi.HealthTopic, 0, len(topics))
			for _, t := range topics {
				out = append(out, mappers.ToHealthTopic(t.Category, t.Articles))
			}
			return respond(out), nil
		})
}

func (h *ContentHandler) registerDrugCategories(api huma.API, r kindRoutes[contentapi.DrugSummary, contentapi.DrugDetail]) {
	huma.Register(api, r.op("categories", "/categories", "Drug categories with drug counts"),
		func(ctx context.Context, input *struct{}) (*BodyOutput[[]contentapi.DrugCategory], error) {
			categories, err := h.service.Categories(ctx, domain.KindDrug)
			if err != nil {
				return nil, r.fail(err)
			}
			return respond(mappers.ToDrugCategories(categories)), nil
		})
}

func (h *ContentHandler) registerRemedyLatest(api huma.API, r kindRoutes[contentapi.RemedySummary, contentapi.RemedyDetail]) {
	huma.Register(api, r.op("latest", "/latest", "Newest remedies, optionally of one type"),
		func(ctx context.Context, input *RemedyLatestInput) (*BodyOutput[[]contentapi.RemedySummary], error) {
			items, err := h.service.Latest(ctx, domain.KindRemedy, content.LatestOptions{
				Limit: input.Limit,
				Type:  input.Type,
			})
			if err != nil {
				return nil, r.fail(err)
			}
			return respond(mappers.ToRemedySummaries(items)), nil
		})
}

func (h *ContentHandler) registerWellBeing(api huma.API) {
	handler := func(ctx context.Context, input *struct{}) (*BodyOutput[contentapi.WellBeing], error) {
		section, err := h.service.WellBeing(ctx)
		if err != nil {
			return nil, toHumaError(err, h.env)
		}
		return respond(contentapi.WellBeing{
			Featured: mappers.ToPreviews(section.Featured),
			Articles: mappers.ToPreviews(section.Articles),
		}), nil
	}

	// /api/wellness is an older name of the same section
	for _, path := range []string{"/api/well-being", "/api/wellness"} {
		huma.Register(api, huma.Operation{
			OperationID: strings.TrimPrefix(path, "/api/"),
			Method:      http.MethodGet,
			Path:        path,
			Summary:     "Newest and featured articles on nutrition, fitness, mental health and sleep",
			Tags:        []string{"Articles"},
		}, handler)
	}
}

func (h *ContentHandler) registerDoctors(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "doctors-list",
		Method:      http.MethodGet,
		Path:        "/api/doctors",
		Summary:     "Authors of live articles with their articles",
		Tags:        []string{"Doctors"},
	}, func(ctx context.Context, input *struct{}) (*BodyOutput[[]contentapi.AuthorProfile], error) {
		profiles, err := h.service.Authors(ctx)
		if err != nil {
			return nil, toHumaError(err, h.env)
		}
		out := make([]contentapi.AuthorProfile, 0, len(profiles))
		for _, p := range profiles {
			out = append(out, mappers.ToAuthorProfile(p.Author, p.Articles))
		}
		return respond(out), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "doctors-detail",
		Method:      http.MethodGet,
		Path:        "/api/doctors/{slug}",
		Summary:     "Author profile by slug",
		Tags:        []string{"Doctors"},
	}, func(ctx context.Context, input *SlugInput) (*BodyOutput[contentapi.AuthorProfile], error) {
		profile, err := h.service.Author(ctx, input.Slug)
		if err != nil {
			return nil, toHumaError(err, h.env)
		}
		return respond(mappers.ToAuthorProfile(profile.Author, profile.Articles)), nil
	})
}

// storeSearcher runs the aggregated search against the content service's own store
type storeSearcher struct {
	service ContentService
}

func (s *storeSearcher) SearchArticles(ctx context.Context, q string) ([]contentapi.Preview, error) {
	items, err := s.service.Search(ctx, domain.KindArticle, q)
	if err != nil {
		return nil, err
	}
	return mappers.ToPreviews(items), nil
}

func (s *storeSearcher) SearchConditions(ctx context.Context, q string) ([]contentapi.ConditionSummary, error) {
	items, err := s.service.Search(ctx, domain.KindCondition, q)
	if err != nil {
		return nil, err
	}
	return mappers.ToConditionSummaries(items), nil
}

func (s *storeSearcher) SearchDrugs(ctx context.Context, q string) ([]contentapi.DrugSummary, error) {
	items, err := s.service.Search(ctx, domain.KindDrug, q)
	if err != nil {
		return nil, err
	}
	return mappers.ToDrugSummaries(items), nil
}

func (s *storeSearcher) SearchNews(ctx context.Context, q string) ([]contentapi.Preview, error) {
	items, err := s.service.Search(ctx, domain.KindNews, q)
	if err != nil {
		return nil, err
	}
	return mappers.ToPreviews(items), nil
}
