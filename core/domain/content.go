// ABOUTME: Content domain model shared by every kind of published page
// ABOUTME: Kind-specific fields live in a Details variant resolved when the record is built

package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	slugPattern   = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	slugSeparator = regexp.MustCompile(`[^a-z0-9]+`)
)

// maxSlugLength bounds slugs derived from titles
const maxSlugLength = 80

// Slugify derives a valid slug from a title. Non-ASCII letters are dropped;
// the result is empty when nothing usable remains.
func Slugify(title string) string {
	slug := strings.Trim(slugSeparator.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}
	return slug
}

// Category groups content of one kind (health topics, drug classes, remedy categories)
type Category struct {
	Name string
	Slug string
}

// CategoryCount is a category with the number of live items in it
type CategoryCount struct {
	Category
	Description string
	Count       int
}

// Author credits a person for a piece of content
type Author struct {
	Name        string `json:"name"`
	Credentials string `json:"credentials,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Slug        string `json:"slug,omitempty"`
}

// Content is a single page in the canonical store.
// Optional scalar fields are empty strings; optional references are nil.
type Content struct {
	ID       int64
	Kind     Kind
	Slug     string
	Title    string
	Subtitle string
	Summary  string

	// Body is rich text (HTML)
	Body     string
	ImageURL string
	Category *Category

	// Type is a kind-specific classifier: remedy type, social platform
	Type string

	Featured  bool
	Live      bool
	ViewCount int64

	FirstPublishedAt *time.Time
	LastPublishedAt  *time.Time

	// Details holds the fields that only exist for Kind; nil when the kind has none set
	Details Details
}

// Validate checks the fields every stored page needs
func (c *Content) Validate() error {
	if c.Kind == "" {
		return errors.New("content kind cannot be empty")
	}
	if _, err := ParseKind(string(c.Kind)); err != nil {
		return err
	}
	if strings.TrimSpace(c.Title) == "" {
		return errors.New("content title cannot be empty")
	}
	if !slugPattern.MatchString(c.Slug) {
		return errors.New("content slug must be lowercase letters, digits and single hyphens")
	}
	if c.Details != nil && c.Details.Kind() != c.Kind {
		return errors.New("content details do not match content kind")
	}
	return nil
}

// IsLive reports whether readers can see the page
func (c *Content) IsLive() bool {
	return c.Live && c.FirstPublishedAt != nil
}

// UpdatedAt returns the last publish time when it differs from the first one
func (c *Content) UpdatedAt() *time.Time {
	if c.LastPublishedAt == nil || c.FirstPublishedAt == nil {
		return nil
	}
	if c.LastPublishedAt.Equal(*c.FirstPublishedAt) {
		return nil
	}
	return c.LastPublishedAt
}

// SummaryOrSubtitle prefers the summary and falls back to the subtitle
func (c *Content) SummaryOrSubtitle() string {
	if c.Summary != "" {
		return c.Summary
	}
	return c.Subtitle
}

// SearchTerms returns the kind-specific text that search should match besides
// title, subtitle and summary
func (c *Content) SearchTerms() []string {
	if c.Details == nil {
		return nil
	}
	return c.Details.SearchTerms()
}

// Article returns the article details, or nil for other kinds
func (c *Content) Article() *ArticleDetails {
	d, _ := c.Details.(*ArticleDetails)
	return d
}

// Condition returns the condition details, or nil for other kinds
func (c *Content) Condition() *ConditionDetails {
	d, _ := c.Details.(*ConditionDetails)
	return d
}

// Drug returns the drug details, or nil for other kinds
func (c *Content) Drug() *DrugDetails {
	d, _ := c.Details.(*DrugDetails)
	return d
}

// News returns the news details, or nil for other kinds
func (c *Content) News() *NewsDetails {
	d, _ := c.Details.(*NewsDetails)
	return d
}

// Remedy returns the remedy details, or nil for other kinds
func (c *Content) Remedy() *RemedyDetails {
	d, _ := c.Details.(*RemedyDetails)
	return d
}

// SocialPost returns the social post details, or nil for other kinds
func (c *Content) SocialPost() *SocialPostDetails {
	d, _ := c.Details.(*SocialPostDetails)
	return d
}

// Video returns the video details, or nil for other kinds
func (c *Content) Video() *VideoDetails {
	d, _ := c.Details.(*VideoDetails)
	return d
}
