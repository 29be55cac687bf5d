// ABOUTME: Storage interface for the canonical content store
// ABOUTME: Every read returns live pages only; writes are used by seeding and feed import

package interfaces

import (
	"context"

	"healthinfo-api/core/domain"
)

// ListOrder selects how List sorts its results
type ListOrder int

const (
	// ByRecency sorts newest first by first publish time
	ByRecency ListOrder = iota
	// ByTitle sorts alphabetically by title
	ByTitle
)

// ListQuery filters a listing of one kind.
// A zero Limit means no limit. Type matches case-insensitively.
// CategorySlugs matches pages in any of the listed categories.
type ListQuery struct {
	Kind          domain.Kind
	Order         ListOrder
	Limit         int
	FeaturedOnly  bool
	Type          string
	CategorySlug  string
	CategorySlugs []string
}

// ContentStore persists content pages of every kind
type ContentStore interface {
	// List returns live pages matching q
	List(ctx context.Context, q ListQuery) ([]*domain.Content, error)

	// GetBySlug returns the live page, or a NotFoundError
	GetBySlug(ctx context.Context, kind domain.Kind, slug string) (*domain.Content, error)

	// Related returns live pages sharing the category of slug, newest first,
	// excluding slug itself. An unknown slug yields a NotFoundError.
	Related(ctx context.Context, kind domain.Kind, slug string, limit int) ([]*domain.Content, error)

	// Search returns live pages whose searchable text contains query,
	// title matches first, then newest first
	Search(ctx context.Context, kind domain.Kind, query string, limit int) ([]*domain.Content, error)

	// Slugs returns the slugs of every live page of kind
	Slugs(ctx context.Context, kind domain.Kind) ([]string, error)

	// Categories returns the categories of kind with their live page counts
	Categories(ctx context.Context, kind domain.Kind) ([]domain.CategoryCount, error)

	// IncrementViews adds one to the view counter of the page
	IncrementViews(ctx context.Context, kind domain.Kind, slug string) error

	// Save inserts or replaces the page identified by kind and slug
	Save(ctx context.Context, c *domain.Content) error

	// SaveCategory inserts or replaces a category of kind
	SaveCategory(ctx context.Context, kind domain.Kind, category domain.CategoryCount) error
}
