// ABOUTME: Content service reads the canonical store for every content kind
// ABOUTME: Slug lists and category counts are cached; details bump the view counter

package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"healthinfo-api/core/domain"
	coreerrors "healthinfo-api/core/errors"
	"healthinfo-api/core/interfaces"
)

const (
	// MaxLimit caps any requested listing size
	MaxLimit = 100

	// RelatedLimit is the size of related lists
	RelatedLimit = 3

	// SearchLimit is the number of hits returned per kind
	SearchLimit = 20

	// TopStoriesLimit is the number of featured articles in top stories
	TopStoriesLimit = 5

	// topicArticles is the number of articles listed per health topic
	topicArticles = 3

	defaultListTTL = 5 * time.Minute
)

var defaultLatestLimits = map[domain.Kind]int{
	domain.KindNews:    6,
	domain.KindArticle: 10,
}

// DefaultLatestLimit returns the listing size used when none is requested
func DefaultLatestLimit(kind domain.Kind) int {
	if n, ok := defaultLatestLimits[kind]; ok {
		return n
	}
	return 20
}

// LatestOptions filter a latest listing
type LatestOptions struct {
	// Limit of zero selects DefaultLatestLimit
	Limit int
	// Type matches the kind-specific classifier case-insensitively
	Type         string
	FeaturedOnly bool
}

// Topic is an article category with its newest articles
type Topic struct {
	Category domain.Category
	Articles []*domain.Content
}

// Service answers content queries from the store
type Service struct {
	deps    interfaces.Dependencies
	listTTL time.Duration
}

// Option configures a Service
type Option func(*Service)

// WithListCacheTTL sets how long slug lists and category counts stay cached
func WithListCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.listTTL = ttl
		}
	}
}

// NewService creates a content service. deps.Store is required; deps.Cache may be nil.
func NewService(deps interfaces.Dependencies, opts ...Option) *Service {
	s := &Service{deps: deps, listTTL: defaultListTTL}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Latest returns live pages of kind, newest first
func (s *Service) Latest(ctx context.Context, kind domain.Kind, opts LatestOptions) ([]*domain.Content, error) {
	limit, err := clampLimit(kind, opts.Limit)
	if err != nil {
		return nil, err
	}
	return s.deps.Store.List(ctx, interfaces.ListQuery{
		Kind:         kind,
		Order:        interfaces.ByRecency,
		Limit:        limit,
		Type:         opts.Type,
		FeaturedOnly: opts.FeaturedOnly,
	})
}

// TopStories returns the newest featured articles
func (s *Service) TopStories(ctx context.Context) ([]*domain.Content, error) {
	return s.Latest(ctx, domain.KindArticle, LatestOptions{Limit: TopStoriesLimit, FeaturedOnly: true})
}

// Index returns every live page of kind ordered by title
func (s *Service) Index(ctx context.Context, kind domain.Kind) ([]*domain.Content, error) {
	return s.deps.Store.List(ctx, interfaces.ListQuery{Kind: kind, Order: interfaces.ByTitle})
}

// Detail returns a live page and counts the view. The returned ViewCount
// excludes this view. A failed counter update does not fail the read.
func (s *Service) Detail(ctx context.Context, kind domain.Kind, slug string) (*domain.Content, error) {
	c, err := s.deps.Store.GetBySlug(ctx, kind, slug)
	if err != nil {
		return nil, err
	}

	if err := s.deps.Store.IncrementViews(ctx, kind, slug); err != nil {
		s.deps.Logger.Warn("Failed to count page view", map[string]interface{}{
			"kind":  kind,
			"slug":  slug,
			"error": err.Error(),
		})
	}
	return c, nil
}

// Related returns up to RelatedLimit pages related to slug. An unknown slug
// has no related pages.
func (s *Service) Related(ctx context.Context, kind domain.Kind, slug string) ([]*domain.Content, error) {
	related, err := s.deps.Store.Related(ctx, kind, slug, RelatedLimit)
	if coreerrors.IsNotFound(err) {
		return []*domain.Content{}, nil
	}
	return related, err
}

// Search returns live pages of kind matching q. Queries shorter than
// domain.MinQueryLength match nothing.
func (s *Service) Search(ctx context.Context, kind domain.Kind, q string) ([]*domain.Content, error) {
	query, ok := domain.NormalizeQuery(q)
	if !ok {
		return []*domain.Content{}, nil
	}
	return s.deps.Store.Search(ctx, kind, query, SearchLimit)
}

// Paths returns the slugs of every live page of kind
func (s *Service) Paths(ctx context.Context, kind domain.Kind) ([]string, error) {
	var slugs []string
	err := s.cached(ctx, pathsKey(kind), &slugs, func() (interface{}, error) {
		return s.deps.Store.Slugs(ctx, kind)
	})
	return slugs, err
}

// Categories returns the categories of kind with their live page counts
func (s *Service) Categories(ctx context.Context, kind domain.Kind) ([]domain.CategoryCount, error) {
	var categories []domain.CategoryCount
	err := s.cached(ctx, categoriesKey(kind), &categories, func() (interface{}, error) {
		return s.deps.Store.Categories(ctx, kind)
	})
	return categories, err
}

// HealthTopics returns every article category that has live articles,
// each with its newest articles
func (s *Service) HealthTopics(ctx context.Context) ([]Topic, error) {
	categories, err := s.Categories(ctx, domain.KindArticle)
	if err != nil {
		return nil, err
	}

	topics := []Topic{}
	for _, c := range categories {
		if c.Count == 0 {
			continue
		}
		articles, err := s.deps.Store.List(ctx, interfaces.ListQuery{
			Kind:         domain.KindArticle,
			Order:        interfaces.ByRecency,
			Limit:        topicArticles,
			CategorySlug: c.Slug,
		})
		if err != nil {
			return nil, err
		}
		if len(articles) == 0 {
			continue
		}
		topics = append(topics, Topic{Category: c.Category, Articles: articles})
	}
	return topics, nil
}

// Invalidate drops every cached listing. Call it after the store changes.
func (s *Service) Invalidate(ctx context.Context) error {
	if s.deps.Cache == nil {
		return nil
	}
	var errs []error
	for _, kind := range domain.AllKinds {
		errs = append(errs,
			s.deps.Cache.Delete(ctx, pathsKey(kind)),
			s.deps.Cache.Delete(ctx, categoriesKey(kind)),
		)
	}
	return errors.Join(errs...)
}

// cached decodes key into dst, or loads, stores and returns a fresh value.
// Cache failures only cost a store read.
func (s *Service) cached(ctx context.Context, key string, dst interface{}, load func() (interface{}, error)) error {
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, key); err == nil && data != nil {
			if err := json.Unmarshal(data, dst); err == nil {
				return nil
			}
		}
	}

	value, err := load()
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if s.deps.Cache != nil {
		if err := s.deps.Cache.Set(ctx, key, data, s.listTTL); err != nil {
			s.deps.Logger.Warn("Failed to cache listing", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
	return json.Unmarshal(data, dst)
}

func clampLimit(kind domain.Kind, limit int) (int, error) {
	if err := coreerrors.CheckLimit(limit); err != nil {
		return 0, err
	}
	switch {
	case limit == 0:
		return DefaultLatestLimit(kind), nil
	case limit > MaxLimit:
		return MaxLimit, nil
	default:
		return limit, nil
	}
}

func pathsKey(kind domain.Kind) string {
	return "paths:" + string(kind)
}

func categoriesKey(kind domain.Kind) string {
	return "categories:" + string(kind)
}
