// ABOUTME: Wire types of the content service JSON API
// ABOUTME: The content service encodes them and the gateway decodes and re-serves them unchanged

package contentapi

import "time"

// Category is a name/slug pair attached to a page
type Category struct {
	Name string `json:"name" doc:"Category name"`
	Slug string `json:"slug" doc:"Category slug"`
}

// Author credits the writer or reviewer of an article
type Author struct {
	Name        string `json:"name" doc:"Display name"`
	Credentials string `json:"credentials,omitempty" doc:"Professional credentials, e.g. MD"`
	Bio         string `json:"bio,omitempty" doc:"Short biography"`
	Slug        string `json:"slug,omitempty" doc:"Profile slug"`
}

// Preview is a news item or article in listings, related lists and search results
type Preview struct {
	ID          int64      `json:"id" doc:"Page identifier"`
	Title       string     `json:"title" doc:"Headline"`
	Slug        string     `json:"slug" doc:"Unique slug within the kind"`
	Subtitle    string     `json:"subtitle,omitempty" doc:"Subtitle"`
	Summary     string     `json:"summary,omitempty" doc:"Short summary"`
	Image       string     `json:"image,omitempty" doc:"Image URL"`
	Category    *Category  `json:"category,omitempty" doc:"Primary category"`
	Source      string     `json:"source,omitempty" doc:"Original publisher for news items"`
	PublishDate *time.Time `json:"publish_date,omitempty" doc:"First publication time"`
	Featured    bool       `json:"featured" doc:"Whether the page is featured"`
}

// ArticleDetail is a full news item or article
type ArticleDetail struct {
	Preview
	Content         string     `json:"content" doc:"Body as HTML"`
	Author          *Author    `json:"author,omitempty" doc:"Author"`
	MedicalReviewer *Author    `json:"medical_reviewer,omitempty" doc:"Medical reviewer"`
	Tags            []string   `json:"tags" doc:"Tags"`
	ReadingTime     int        `json:"reading_time,omitempty" doc:"Estimated reading time in minutes"`
	PublishedDate   *time.Time `json:"published_date,omitempty" doc:"First publication time"`
	UpdatedDate     *time.Time `json:"updated_date" doc:"Last update time when the page was republished"`
}

// HealthTopic is an article category with its newest articles
type HealthTopic struct {
	Name     string    `json:"name" doc:"Topic name"`
	Slug     string    `json:"slug" doc:"Topic slug"`
	Articles []Preview `json:"articles" doc:"Newest articles in the topic"`
}

// WellBeing is the well-being section: featured and newest articles of its categories
type WellBeing struct {
	Featured []Preview `json:"featured" doc:"Newest featured articles, at most 3"`
	Articles []Preview `json:"articles" doc:"Newest articles, at most 12"`
}

// AuthorArticle is an article listed on an author profile
type AuthorArticle struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
}

// AuthorProfile is a doctor or writer with their live articles, newest first
type AuthorProfile struct {
	Name        string          `json:"name" doc:"Display name"`
	Credentials string          `json:"credentials,omitempty" doc:"Professional credentials, e.g. MD"`
	Bio         string          `json:"bio,omitempty" doc:"Short biography"`
	Slug        string          `json:"slug" doc:"Profile slug"`
	Articles    []AuthorArticle `json:"articles" doc:"Live articles by the author"`
}

// ConditionSummary is a condition in indexes and search results
type ConditionSummary struct {
	ID       int64  `json:"id" doc:"Page identifier"`
	Name     string `json:"name" doc:"Condition name"`
	Slug     string `json:"slug" doc:"Unique slug"`
	Subtitle string `json:"subtitle,omitempty" doc:"Subtitle"`
	Image    string `json:"image,omitempty" doc:"Image URL"`
}

// ConditionDetail is a full condition page
type ConditionDetail struct {
	ConditionSummary
	AlsoKnownAs       string     `json:"also_known_as,omitempty"`
	Overview          string     `json:"overview,omitempty"`
	Symptoms          string     `json:"symptoms,omitempty"`
	Causes            string     `json:"causes,omitempty"`
	Diagnosis         string     `json:"diagnosis,omitempty"`
	Treatments        string     `json:"treatments,omitempty"`
	Prevention        string     `json:"prevention,omitempty"`
	Complications     string     `json:"complications,omitempty"`
	RiskFactors       string     `json:"risk_factors,omitempty"`
	Specialties       string     `json:"specialties,omitempty"`
	Prevalence        string     `json:"prevalence,omitempty"`
	RelatedConditions []Category `json:"related_conditions" doc:"Linked conditions"`
}

// DrugSummary is a drug in indexes and search results
type DrugSummary struct {
	ID          int64      `json:"id" doc:"Page identifier"`
	Title       string     `json:"title" doc:"Drug name"`
	Slug        string     `json:"slug" doc:"Unique slug"`
	GenericName string     `json:"generic_name,omitempty" doc:"Generic name"`
	BrandNames  string     `json:"brand_names,omitempty" doc:"Comma separated brand names"`
	DrugClass   string     `json:"drug_class,omitempty" doc:"Pharmacological class"`
	Image       string     `json:"image,omitempty" doc:"Image URL"`
	Categories  []Category `json:"categories" doc:"Drug categories"`
}

// DrugDetail is a full drug page
type DrugDetail struct {
	DrugSummary
	Overview          string `json:"overview,omitempty"`
	Uses              string `json:"uses,omitempty"`
	Dosage            string `json:"dosage,omitempty"`
	SideEffects       string `json:"side_effects,omitempty"`
	Warnings          string `json:"warnings,omitempty"`
	Interactions      string `json:"interactions,omitempty"`
	Storage           string `json:"storage,omitempty"`
	PregnancyCategory string `json:"pregnancy_category,omitempty"`
	ViewCount         int64  `json:"view_count" doc:"Views before this request"`
}

// DrugCategory is a drug category with its number of live drugs
type DrugCategory struct {
	Name        string `json:"name" doc:"Category name"`
	Slug        string `json:"slug" doc:"Category slug"`
	Description string `json:"description,omitempty" doc:"Category description"`
	DrugCount   int    `json:"drug_count" doc:"Number of live drugs"`
}

// RemedySummary is a remedy in listings
type RemedySummary struct {
	ID            int64      `json:"id" doc:"Page identifier"`
	Title         string     `json:"title" doc:"Remedy name"`
	Slug          string     `json:"slug" doc:"Unique slug"`
	Subtitle      string     `json:"subtitle,omitempty"`
	AlsoKnownAs   string     `json:"also_known_as,omitempty"`
	Overview      string     `json:"overview,omitempty"`
	Image         string     `json:"image,omitempty"`
	RemedyType    *Category  `json:"remedy_type,omitempty" doc:"Remedy tradition, e.g. Ayurveda"`
	Categories    []string   `json:"categories" doc:"Remedy category names"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
}

// RemedyDetail is a full remedy page
type RemedyDetail struct {
	RemedySummary
	Uses        string `json:"uses,omitempty"`
	Dosage      string `json:"dosage,omitempty"`
	Benefits    string `json:"benefits,omitempty"`
	SideEffects string `json:"side_effects,omitempty"`
	Precautions string `json:"precautions,omitempty"`
	Ingredients string `json:"ingredients,omitempty"`
	Potency     string `json:"potency,omitempty"`
	DoshaEffect string `json:"dosha_effect,omitempty"`
}

// SocialPost is a post embedded from a social platform
type SocialPost struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Platform      *Category  `json:"platform,omitempty" doc:"Hosting platform"`
	PostURL       string     `json:"post_url,omitempty"`
	EmbedCode     string     `json:"embed_code,omitempty"`
	Description   string     `json:"description,omitempty"`
	Thumbnail     string     `json:"thumbnail,omitempty"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
	Featured      bool       `json:"featured"`
	ViewCount     int64      `json:"view_count"`
}

// Video is a hosted health video
type Video struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	VideoURL      string     `json:"video_url,omitempty"`
	EmbedCode     string     `json:"video_embed_code,omitempty"`
	Duration      string     `json:"duration,omitempty" doc:"Duration such as 10:30"`
	Description   string     `json:"description,omitempty"`
	Transcript    string     `json:"transcript,omitempty" doc:"Only present on the detail endpoint"`
	Thumbnail     string     `json:"thumbnail,omitempty"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
	Featured      bool       `json:"featured"`
	ViewCount     int64      `json:"view_count"`
}

// SearchResults groups search hits by kind. Buckets are never nil.
type SearchResults struct {
	Articles   []Preview          `json:"articles" doc:"Matching articles"`
	Conditions []ConditionSummary `json:"conditions" doc:"Matching conditions"`
	Drugs      []DrugSummary      `json:"drugs" doc:"Matching drugs"`
	News       []Preview          `json:"news" doc:"Matching news items"`
}

// EmptySearchResults returns results with four empty buckets
func EmptySearchResults() SearchResults {
	return SearchResults{
		Articles:   []Preview{},
		Conditions: []ConditionSummary{},
		Drugs:      []DrugSummary{},
		News:       []Preview{},
	}
}

// Health is the body of the health check endpoints
type Health struct {
	Status string `json:"status" example:"healthy" doc:"Service status"`
}
