// ABOUTME: SQLite implementation of the canonical content store
// ABOUTME: One pages table holds every kind; kind-specific fields are stored as JSON details

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"healthinfo-api/core/domain"
	coreerrors "healthinfo-api/core/errors"
	"healthinfo-api/core/interfaces"
	"healthinfo-api/pkg/utils/html"
)

const schema = `
	CREATE TABLE IF NOT EXISTS pages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		slug TEXT NOT NULL,
		title TEXT NOT NULL,
		title_key TEXT NOT NULL DEFAULT '',
		subtitle TEXT NOT NULL DEFAULT '',
		summary TEXT NOT NULL DEFAULT '',
		body TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		category_name TEXT,
		category_slug TEXT,
		type_name TEXT NOT NULL DEFAULT '',
		type_key TEXT NOT NULL DEFAULT '',
		featured INTEGER NOT NULL DEFAULT 0,
		live INTEGER NOT NULL DEFAULT 0,
		view_count INTEGER NOT NULL DEFAULT 0,
		search_text TEXT NOT NULL DEFAULT '',
		details TEXT,
		first_published_at INTEGER,
		last_published_at INTEGER,
		UNIQUE (kind, slug)
	);
	CREATE INDEX IF NOT EXISTS idx_pages_kind_published ON pages(kind, live, first_published_at);
	CREATE INDEX IF NOT EXISTS idx_pages_kind_category ON pages(kind, category_slug);

	CREATE TABLE IF NOT EXISTS categories (
		kind TEXT NOT NULL,
		slug TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (kind, slug)
	);
`

var pageColumns = []string{
	"id", "kind", "slug", "title", "subtitle", "summary", "body", "image_url",
	"category_name", "category_slug", "type_name", "featured", "live", "view_count",
	"details", "first_published_at", "last_published_at",
}

// Store implements interfaces.ContentStore on a SQLite file
type Store struct {
	db       *sql.DB
	filePath string
	logger   interfaces.Logger
}

// NewStore opens (creating if needed) the content database at filePath
func NewStore(filePath string, logger interfaces.Logger) (*Store, error) {
	if filePath == "" {
		filePath = "content.db"
	}

	db, err := sql.Open("sqlite3", filePath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// SQLite allows one writer; a single connection serializes view counter updates
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	s := &Store{db: db, filePath: filePath, logger: logger}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("Content store opened", map[string]interface{}{
		"path": filePath,
	})
	return s, nil
}

func (s *Store) initSchema() error {
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return s.addTitleKey()
}

// addTitleKey upgrades databases created before pages had a title_key column.
// Their search text is rebuilt as well since its layout changed with it.
func (s *Store) addTitleKey() error {
	rows, err := s.db.Query(`PRAGMA table_info(pages)`)
	if err != nil {
		return err
	}
	found := false
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, colType    string
			defaultValue     sql.NullString
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultValue, &pk); err != nil {
			rows.Close()
			return err
		}
		if name == "title_key" {
			found = true
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}
	if found {
		return nil
	}

	if _, err := s.db.Exec(`ALTER TABLE pages ADD COLUMN title_key TEXT NOT NULL DEFAULT ''`); err != nil {
		return err
	}

	ctx := context.Background()
	pages, err := s.query(ctx, NewQueryBuilder().Select(pageColumns...).From("pages"))
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, c := range pages {
		_, err := tx.ExecContext(ctx, `UPDATE pages SET title_key = ?, search_text = ? WHERE id = ?`,
			titleKey(c.Title), searchText(c), c.ID)
		if err != nil {
			return fmt.Errorf("failed to reindex page %d: %w", c.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("Reindexed content titles", map[string]interface{}{
		"pages": len(pages),
	})
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// liveQuery starts a query over the live pages of kind
func liveQuery(kind domain.Kind) *QueryBuilder {
	return NewQueryBuilder().
		Select(pageColumns...).
		From("pages").
		Where("kind", "=", string(kind)).
		Where("live", "=", 1).
		WhereNotNull("first_published_at")
}

// List returns live pages matching q
func (s *Store) List(ctx context.Context, q interfaces.ListQuery) ([]*domain.Content, error) {
	qb := liveQuery(q.Kind)
	if q.FeaturedOnly {
		qb.Where("featured", "=", 1)
	}
	if q.Type != "" {
		qb.Where("type_key", "=", strings.ToLower(q.Type))
	}
	if q.CategorySlug != "" {
		qb.Where("category_slug", "=", q.CategorySlug)
	}
	if q.CategorySlugs != nil {
		slugs := make([]interface{}, len(q.CategorySlugs))
		for i, slug := range q.CategorySlugs {
			slugs[i] = slug
		}
		qb.WhereIn("category_slug", slugs...)
	}
	switch q.Order {
	case interfaces.ByTitle:
		qb.OrderBy("title", false)
	default:
		qb.OrderBy("first_published_at", true)
	}
	qb.OrderBy("id", true).Limit(q.Limit)

	return s.query(ctx, qb)
}

// GetBySlug returns the live page, or a NotFoundError
func (s *Store) GetBySlug(ctx context.Context, kind domain.Kind, slug string) (*domain.Content, error) {
	pages, err := s.query(ctx, liveQuery(kind).Where("slug", "=", slug).Limit(1))
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, &coreerrors.NotFoundError{Resource: kind.Label()}
	}
	return pages[0], nil
}

// Related returns live pages of the same category as slug, newest first.
// When slug has no category any other live page qualifies.
func (s *Store) Related(ctx context.Context, kind domain.Kind, slug string, limit int) ([]*domain.Content, error) {
	source, err := s.GetBySlug(ctx, kind, slug)
	if err != nil {
		return nil, err
	}

	qb := liveQuery(kind).Where("id", "!=", source.ID)
	if source.Category != nil {
		qb.Where("category_slug", "=", source.Category.Slug)
	}
	qb.OrderBy("first_published_at", true).OrderBy("id", true).Limit(limit)

	return s.query(ctx, qb)
}

// Search returns live pages containing query, title matches first then newest first.
// Both checks run on text lowercased in Go, since SQLite LIKE only folds ASCII.
func (s *Store) Search(ctx context.Context, kind domain.Kind, query string, limit int) ([]*domain.Content, error) {
	qb := liveQuery(kind).
		WhereContains("search_text", query).
		OrderByContainsFirst("title_key", query).
		OrderBy("first_published_at", true).
		OrderBy("id", true).
		Limit(limit)

	return s.query(ctx, qb)
}

// Slugs returns the slugs of every live page of kind, newest first
func (s *Store) Slugs(ctx context.Context, kind domain.Kind) ([]string, error) {
	query, params, err := NewQueryBuilder().
		Select("slug").
		From("pages").
		Where("kind", "=", string(kind)).
		Where("live", "=", 1).
		WhereNotNull("first_published_at").
		OrderBy("first_published_at", true).
		OrderBy("id", true).
		Build()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to list slugs: %w", err)
	}
	defer rows.Close()

	slugs := []string{}
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("failed to scan slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

// Categories returns the categories of kind with their live page counts, by name
func (s *Store) Categories(ctx context.Context, kind domain.Kind) ([]domain.CategoryCount, error) {
	query := `
		SELECT c.slug, c.name, c.description, COUNT(p.id)
		FROM categories c
		LEFT JOIN pages p
			ON p.kind = c.kind AND p.category_slug = c.slug
			AND p.live = 1 AND p.first_published_at IS NOT NULL
		WHERE c.kind = ?
		GROUP BY c.slug, c.name, c.description
		ORDER BY c.name
	`
	rows, err := s.db.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.CategoryCount{}
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Slug, &c.Name, &c.Description, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// IncrementViews adds one to the view counter in a single UPDATE
func (s *Store) IncrementViews(ctx context.Context, kind domain.Kind, slug string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE pages SET view_count = view_count + 1 WHERE kind = ? AND slug = ?",
		string(kind), slug)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if n == 0 {
		return &coreerrors.NotFoundError{Resource: kind.Label()}
	}
	return nil
}

// Save inserts the page or replaces the one with the same kind and slug.
// The view counter of an existing page is kept. c.ID is set on success.
func (s *Store) Save(ctx context.Context, c *domain.Content) error {
	if err := c.Validate(); err != nil {
		return &coreerrors.ValidationError{Field: "content", Message: err.Error()}
	}

	var details []byte
	if c.Details != nil {
		var err error
		details, err = json.Marshal(c.Details)
		if err != nil {
			return fmt.Errorf("failed to encode %s details: %w", c.Kind, err)
		}
	}

	var catName, catSlug sql.NullString
	if c.Category != nil {
		catName = sql.NullString{String: c.Category.Name, Valid: true}
		catSlug = sql.NullString{String: c.Category.Slug, Valid: true}
	}

	query := `
		INSERT INTO pages (
			kind, slug, title, title_key, subtitle, summary, body, image_url,
			category_name, category_slug, type_name, type_key, featured, live,
			search_text, details, first_published_at, last_published_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (kind, slug) DO UPDATE SET
			title = excluded.title,
			title_key = excluded.title_key,
			subtitle = excluded.subtitle,
			summary = excluded.summary,
			body = excluded.body,
			image_url = excluded.image_url,
			category_name = excluded.category_name,
			category_slug = excluded.category_slug,
			type_name = excluded.type_name,
			type_key = excluded.type_key,
			featured = excluded.featured,
			live = excluded.live,
			search_text = excluded.search_text,
			details = excluded.details,
			first_published_at = excluded.first_published_at,
			last_published_at = excluded.last_published_at
		RETURNING id, view_count
	`

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, query,
		string(c.Kind), c.Slug, c.Title, titleKey(c.Title), c.Subtitle, c.Summary, c.Body, c.ImageURL,
		catName, catSlug, c.Type, strings.ToLower(c.Type), c.Featured, c.Live,
		searchText(c), nullString(details), unixOrNull(c.FirstPublishedAt), unixOrNull(c.LastPublishedAt),
	).Scan(&c.ID, &c.ViewCount)
	if err != nil {
		return fmt.Errorf("failed to save %s %q: %w", c.Kind, c.Slug, err)
	}

	if c.Category != nil {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO categories (kind, slug, name) VALUES (?, ?, ?)
			ON CONFLICT (kind, slug) DO UPDATE SET name = excluded.name`,
			string(c.Kind), c.Category.Slug, c.Category.Name)
		if err != nil {
			return fmt.Errorf("failed to save category %q: %w", c.Category.Slug, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s %q: %w", c.Kind, c.Slug, err)
	}

	s.logger.Debug("Saved content", map[string]interface{}{
		"kind": c.Kind,
		"slug": c.Slug,
		"id":   c.ID,
	})
	return nil
}

// SaveCategory inserts or replaces a category of kind, description included
func (s *Store) SaveCategory(ctx context.Context, kind domain.Kind, category domain.CategoryCount) error {
	if category.Slug == "" || category.Name == "" {
		return &coreerrors.ValidationError{Field: "category", Message: "name and slug are required"}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (kind, slug, name, description) VALUES (?, ?, ?, ?)
		ON CONFLICT (kind, slug) DO UPDATE SET
			name = excluded.name,
			description = excluded.description`,
		string(kind), category.Slug, category.Name, category.Description)
	if err != nil {
		return fmt.Errorf("failed to save category %q: %w", category.Slug, err)
	}
	return nil
}

func (s *Store) query(ctx context.Context, qb *QueryBuilder) ([]*domain.Content, error) {
	query, params, err := qb.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pages: %w", err)
	}
	defer rows.Close()

	pages := []*domain.Content{}
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pages: %w", err)
	}
	return pages, nil
}

// scanContent builds a Content from a row selected with pageColumns
func scanContent(rows *sql.Rows) (*domain.Content, error) {
	var (
		c                 domain.Content
		kind              string
		catName, catSlug  sql.NullString
		details           sql.NullString
		firstPub, lastPub sql.NullInt64
	)

	err := rows.Scan(
		&c.ID, &kind, &c.Slug, &c.Title, &c.Subtitle, &c.Summary, &c.Body, &c.ImageURL,
		&catName, &catSlug, &c.Type, &c.Featured, &c.Live, &c.ViewCount,
		&details, &firstPub, &lastPub,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan page: %w", err)
	}

	c.Kind = domain.Kind(kind)
	if catSlug.Valid {
		c.Category = &domain.Category{Name: catName.String, Slug: catSlug.String}
	}
	c.FirstPublishedAt = timeOrNil(firstPub)
	c.LastPublishedAt = timeOrNil(lastPub)

	c.Details, err = domain.DecodeDetails(c.Kind, []byte(details.String))
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", c.ID, err)
	}
	return &c, nil
}

func titleKey(title string) string {
	return strings.ToLower(title)
}

// searchText is the lowercased text matched by Search. Fields are kept on
// separate lines so a query cannot match across two of them.
func searchText(c *domain.Content) string {
	parts := []string{c.Title, c.Subtitle, html.StripHTML(c.Summary)}
	for _, term := range c.SearchTerms() {
		if term != "" {
			parts = append(parts, term)
		}
	}
	return strings.ToLower(strings.Join(parts, "\n"))
}

func nullString(b []byte) sql.NullString {
	if b == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}

func unixOrNull(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

func timeOrNil(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(v.Int64, 0).UTC()
	return &t
}
