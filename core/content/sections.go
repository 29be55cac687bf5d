// ABOUTME: Cross-cutting article sections: the well-being page and the author directory
// ABOUTME: Both are built from live articles; authors have no table of their own

package content

import (
	"context"

	"healthinfo-api/core/domain"
	coreerrors "healthinfo-api/core/errors"
	"healthinfo-api/core/interfaces"
)

// WellBeingCategories name the article categories of the well-being section
var WellBeingCategories = []string{
	"Nutrition",
	"Fitness",
	"Mental Health",
	"Sleep",
	"Stress Management",
	"Healthy Aging",
}

const (
	// WellBeingLimit is the number of articles on the well-being page
	WellBeingLimit = 12

	// WellBeingFeaturedLimit is the number of featured well-being articles
	WellBeingFeaturedLimit = 3
)

// WellBeing is the well-being page: featured and newest articles of the
// well-being categories
type WellBeing struct {
	Featured []*domain.Content
	Articles []*domain.Content
}

// AuthorProfile is an article author with their live articles, newest first
type AuthorProfile struct {
	Author   domain.Author
	Articles []*domain.Content
}

// WellBeing returns the newest articles of the well-being categories and the
// newest featured ones among them
func (s *Service) WellBeing(ctx context.Context) (WellBeing, error) {
	slugs := make([]string, len(WellBeingCategories))
	for i, name := range WellBeingCategories {
		slugs[i] = domain.Slugify(name)
	}

	query := interfaces.ListQuery{
		Kind:          domain.KindArticle,
		Order:         interfaces.ByRecency,
		Limit:         WellBeingFeaturedLimit,
		FeaturedOnly:  true,
		CategorySlugs: slugs,
	}
	featured, err := s.deps.Store.List(ctx, query)
	if err != nil {
		return WellBeing{}, err
	}

	query.Limit = WellBeingLimit
	query.FeaturedOnly = false
	articles, err := s.deps.Store.List(ctx, query)
	if err != nil {
		return WellBeing{}, err
	}

	return WellBeing{Featured: featured, Articles: articles}, nil
}

// Authors returns every author of a live article, in the order of their
// newest article
func (s *Service) Authors(ctx context.Context) ([]AuthorProfile, error) {
	articles, err := s.deps.Store.List(ctx, interfaces.ListQuery{
		Kind:  domain.KindArticle,
		Order: interfaces.ByRecency,
	})
	if err != nil {
		return nil, err
	}

	profiles := []AuthorProfile{}
	index := make(map[string]int)
	for _, a := range articles {
		details := a.Article()
		if details == nil || details.Author == nil || details.Author.Name == "" {
			continue
		}
		author := *details.Author
		author.Slug = AuthorSlug(author)

		i, ok := index[author.Slug]
		if !ok {
			i = len(profiles)
			index[author.Slug] = i
			profiles = append(profiles, AuthorProfile{Author: author})
		}
		profiles[i].Articles = append(profiles[i].Articles, a)
	}
	return profiles, nil
}

// Author returns the author with slug, or a NotFoundError
func (s *Service) Author(ctx context.Context, slug string) (*AuthorProfile, error) {
	profiles, err := s.Authors(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].Author.Slug == slug {
			return &profiles[i], nil
		}
	}
	return nil, &coreerrors.NotFoundError{Resource: "Doctor"}
}

// AuthorSlug is the author's own slug, or one derived from the name
func AuthorSlug(a domain.Author) string {
	if a.Slug != "" {
		return a.Slug
	}
	return domain.Slugify(a.Name)
}
