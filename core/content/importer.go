// ABOUTME: Imports news items from RSS and Atom feeds into the content store
// ABOUTME: Items are upserted by slug, so re-importing a feed updates instead of duplicating

package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"healthinfo-api/core/domain"
	"healthinfo-api/core/interfaces"
	"healthinfo-api/pkg/utils/html"
	utiltime "healthinfo-api/pkg/utils/time"
)

// summaryLength is the longest summary derived from an item body
const summaryLength = 280

// ImportResult counts what an import did
type ImportResult struct {
	Imported int
	Skipped  int
}

// Importer turns feed items into news pages
type Importer struct {
	deps interfaces.Dependencies
	now  func() time.Time
}

// NewImporter creates an importer. deps.Store is required; deps.HTTPClient is
// needed for Import only.
func NewImporter(deps interfaces.Dependencies) *Importer {
	return &Importer{deps: deps, now: time.Now}
}

// Import fetches the feed at feedURL and saves its items as live news pages
func (im *Importer) Import(ctx context.Context, feedURL string) (ImportResult, error) {
	parsed, err := url.Parse(feedURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ImportResult{}, errors.New("invalid feed URL")
	}
	if im.deps.HTTPClient == nil {
		return ImportResult{}, errors.New("HTTP client not configured")
	}

	resp, err := im.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return ImportResult{}, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return ImportResult{}, fmt.Errorf("feed returned status %d", resp.StatusCode())
	}

	return im.ImportReader(ctx, resp.Body())
}

// ImportReader parses an RSS or Atom document from r and saves its items
func (im *Importer) ImportReader(ctx context.Context, r io.Reader) (ImportResult, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("parse feed: %w", err)
	}

	var result ImportResult
	for _, item := range feed.Items {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		c := im.newsFromItem(feed, item)
		if c == nil {
			result.Skipped++
			continue
		}
		if err := im.deps.Store.Save(ctx, c); err != nil {
			im.deps.Logger.Warn("Skipping feed item", map[string]interface{}{
				"slug":  c.Slug,
				"error": err.Error(),
			})
			result.Skipped++
			continue
		}
		result.Imported++
	}

	im.deps.Logger.Info("Feed imported", map[string]interface{}{
		"feed":     feed.Title,
		"imported": result.Imported,
		"skipped":  result.Skipped,
	})
	return result, nil
}

// newsFromItem maps a feed item, or returns nil when it has no usable title
func (im *Importer) newsFromItem(feed *gofeed.Feed, item *gofeed.Item) *domain.Content {
	title := strings.TrimSpace(item.Title)
	slug := domain.Slugify(title)
	if slug == "" {
		return nil
	}

	body := item.Content
	if body == "" {
		body = item.Description
	}

	summary := html.StripHTML(item.Description)
	if summary == "" || len([]rune(summary)) > summaryLength {
		summary = html.Excerpt(body, summaryLength)
	}

	published := im.publishedAt(item)
	updated := published
	if item.UpdatedParsed != nil && item.UpdatedParsed.After(published) {
		updated = item.UpdatedParsed.UTC()
	}

	c := &domain.Content{
		Kind:             domain.KindNews,
		Slug:             slug,
		Title:            title,
		Summary:          summary,
		Body:             body,
		ImageURL:         imageURL(item),
		Live:             true,
		FirstPublishedAt: &published,
		LastPublishedAt:  &updated,
		Details: &domain.NewsDetails{
			Source:    feed.Title,
			SourceURL: item.Link,
		},
	}
	if len(item.Categories) > 0 {
		name := strings.TrimSpace(item.Categories[0])
		if s := domain.Slugify(name); s != "" {
			c.Category = &domain.Category{Name: name, Slug: s}
		}
	}
	return c
}

func (im *Importer) publishedAt(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC()
	}
	return utiltime.ParseOr(item.Published, im.now()).UTC()
}

func imageURL(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, e := range item.Enclosures {
		if e != nil && strings.HasPrefix(e.Type, "image/") {
			return e.URL
		}
	}
	return ""
}
