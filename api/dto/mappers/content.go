// ABOUTME: Mappers from domain content records to the content API wire types
// ABOUTME: Lists are never nil so they encode as [] rather than null

package mappers

import (
	"healthinfo-api/core/domain"
	"healthinfo-api/pkg/contentapi"
	"healthinfo-api/pkg/utils/duration"
)

func toCategory(c *domain.Category) *contentapi.Category {
	if c == nil {
		return nil
	}
	return &contentapi.Category{Name: c.Name, Slug: c.Slug}
}

func toCategories(cs []domain.Category) []contentapi.Category {
	out := make([]contentapi.Category, 0, len(cs))
	for _, c := range cs {
		out = append(out, contentapi.Category{Name: c.Name, Slug: c.Slug})
	}
	return out
}

func toAuthor(a *domain.Author) *contentapi.Author {
	if a == nil {
		return nil
	}
	return &contentapi.Author{Name: a.Name, Credentials: a.Credentials, Bio: a.Bio, Slug: a.Slug}
}

// typeCategory exposes a free-text classifier (remedy type, platform) as a name/slug pair
func typeCategory(name string) *contentapi.Category {
	if name == "" {
		return nil
	}
	return &contentapi.Category{Name: name, Slug: domain.Slugify(name)}
}

// ToPreview converts a news item or article to its listing form
func ToPreview(c *domain.Content) contentapi.Preview {
	p := contentapi.Preview{
		ID:          c.ID,
		Title:       c.Title,
		Slug:        c.Slug,
		Subtitle:    c.Subtitle,
		Summary:     c.SummaryOrSubtitle(),
		Image:       c.ImageURL,
		Category:    toCategory(c.Category),
		PublishDate: c.FirstPublishedAt,
		Featured:    c.Featured,
	}
	if news := c.News(); news != nil {
		p.Source = news.Source
	}
	return p
}

// ToPreviews converts a list of news items or articles
func ToPreviews(cs []*domain.Content) []contentapi.Preview {
	out := make([]contentapi.Preview, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToPreview(c))
	}
	return out
}

// ToArticleDetail converts a news item or article to its full form
func ToArticleDetail(c *domain.Content) contentapi.ArticleDetail {
	detail := contentapi.ArticleDetail{
		Preview:       ToPreview(c),
		Content:       c.Body,
		Tags:          []string{},
		PublishedDate: c.FirstPublishedAt,
		UpdatedDate:   c.UpdatedAt(),
	}
	if article := c.Article(); article != nil {
		detail.Author = toAuthor(article.Author)
		detail.MedicalReviewer = toAuthor(article.MedicalReviewer)
		detail.ReadingTime = article.ReadingTimeMinutes
		if article.Tags != nil {
			detail.Tags = article.Tags
		}
	}
	return detail
}

// ToHealthTopic converts a category and its newest articles
func ToHealthTopic(category domain.Category, articles []*domain.Content) contentapi.HealthTopic {
	return contentapi.HealthTopic{
		Name:     category.Name,
		Slug:     category.Slug,
		Articles: ToPreviews(articles),
	}
}

// ToConditionSummary converts a condition to its index form
func ToConditionSummary(c *domain.Content) contentapi.ConditionSummary {
	return contentapi.ConditionSummary{
		ID:       c.ID,
		Name:     c.Title,
		Slug:     c.Slug,
		Subtitle: c.Subtitle,
		Image:    c.ImageURL,
	}
}

// ToConditionSummaries converts a list of conditions
func ToConditionSummaries(cs []*domain.Content) []contentapi.ConditionSummary {
	out := make([]contentapi.ConditionSummary, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToConditionSummary(c))
	}
	return out
}

// ToConditionDetail converts a condition to its full form
func ToConditionDetail(c *domain.Content) contentapi.ConditionDetail {
	detail := contentapi.ConditionDetail{
		ConditionSummary:  ToConditionSummary(c),
		RelatedConditions: []contentapi.Category{},
	}
	if d := c.Condition(); d != nil {
		detail.AlsoKnownAs = d.AlsoKnownAs
		detail.Overview = d.Overview
		detail.Symptoms = d.Symptoms
		detail.Causes = d.Causes
		detail.Diagnosis = d.Diagnosis
		detail.Treatments = d.Treatments
		detail.Prevention = d.Prevention
		detail.Complications = d.Complications
		detail.RiskFactors = d.RiskFactors
		detail.Specialties = d.Specialties
		detail.Prevalence = d.Prevalence
		detail.RelatedConditions = toCategories(d.RelatedConditions)
	}
	return detail
}

// ToDrugSummary converts a drug to its index form. A drug without explicit
// categories lists its primary category.
func ToDrugSummary(c *domain.Content) contentapi.DrugSummary {
	s := contentapi.DrugSummary{
		ID:         c.ID,
		Title:      c.Title,
		Slug:       c.Slug,
		Image:      c.ImageURL,
		Categories: []contentapi.Category{},
	}
	if d := c.Drug(); d != nil {
		s.GenericName = d.GenericName
		s.BrandNames = d.BrandNames
		s.DrugClass = d.DrugClass
		s.Categories = toCategories(d.Categories)
	}
	if len(s.Categories) == 0 && c.Category != nil {
		s.Categories = append(s.Categories, *toCategory(c.Category))
	}
	return s
}

// ToDrugSummaries converts a list of drugs
func ToDrugSummaries(cs []*domain.Content) []contentapi.DrugSummary {
	out := make([]contentapi.DrugSummary, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToDrugSummary(c))
	}
	return out
}

// ToDrugDetail converts a drug to its full form
func ToDrugDetail(c *domain.Content) contentapi.DrugDetail {
	detail := contentapi.DrugDetail{
		DrugSummary: ToDrugSummary(c),
		ViewCount:   c.ViewCount,
	}
	if d := c.Drug(); d != nil {
		detail.Overview = d.Overview
		detail.Uses = d.Uses
		detail.Dosage = d.Dosage
		detail.SideEffects = d.SideEffects
		detail.Warnings = d.Warnings
		detail.Interactions = d.Interactions
		detail.Storage = d.Storage
		detail.PregnancyCategory = d.PregnancyCategory
	}
	return detail
}

// ToDrugCategories converts drug categories with their counts
func ToDrugCategories(cs []domain.CategoryCount) []contentapi.DrugCategory {
	out := make([]contentapi.DrugCategory, 0, len(cs))
	for _, c := range cs {
		out = append(out, contentapi.DrugCategory{
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
			DrugCount:   c.Count,
		})
	}
	return out
}

// ToRemedySummary converts a remedy to its listing form
func ToRemedySummary(c *domain.Content) contentapi.RemedySummary {
	s := contentapi.RemedySummary{
		ID:            c.ID,
		Title:         c.Title,
		Slug:          c.Slug,
		Subtitle:      c.Subtitle,
		Image:         c.ImageURL,
		RemedyType:    typeCategory(c.Type),
		Categories:    []string{},
		PublishedDate: c.FirstPublishedAt,
	}
	if d := c.Remedy(); d != nil {
		s.AlsoKnownAs = d.AlsoKnownAs
		s.Overview = d.Overview
		if d.Categories != nil {
			s.Categories = d.Categories
		}
	}
	return s
}

// ToRemedySummaries converts a list of remedies
func ToRemedySummaries(cs []*domain.Content) []contentapi.RemedySummary {
	out := make([]contentapi.RemedySummary, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToRemedySummary(c))
	}
	return out
}

// ToRemedyDetail converts a remedy to its full form
func ToRemedyDetail(c *domain.Content) contentapi.RemedyDetail {
	detail := contentapi.RemedyDetail{RemedySummary: ToRemedySummary(c)}
	if d := c.Remedy(); d != nil {
		detail.Uses = d.Uses
		detail.Dosage = d.Dosage
		detail.Benefits = d.Benefits
		detail.SideEffects = d.SideEffects
		detail.Precautions = d.Precautions
		detail.Ingredients = d.Ingredients
		detail.Potency = d.Potency
		detail.DoshaEffect = d.DoshaEffect
	}
	return detail
}

// ToSocialPost converts a social post
func ToSocialPost(c *domain.Content) contentapi.SocialPost {
	p := contentapi.SocialPost{
		ID:            c.ID,
		Title:         c.Title,
		Slug:          c.Slug,
		Platform:      typeCategory(c.Type),
		Description:   c.SummaryOrSubtitle(),
		Thumbnail:     c.ImageURL,
		PublishedDate: c.FirstPublishedAt,
		Featured:      c.Featured,
		ViewCount:     c.ViewCount,
	}
	if d := c.SocialPost(); d != nil {
		p.PostURL = d.PostURL
		p.EmbedCode = d.EmbedCode
	}
	return p
}

// ToSocialPosts converts a list of social posts
func ToSocialPosts(cs []*domain.Content) []contentapi.SocialPost {
	out := make([]contentapi.SocialPost, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToSocialPost(c))
	}
	return out
}

// ToVideo converts a video. The transcript is only included when
// withTranscript is set, which the detail endpoint does.
func ToVideo(c *domain.Content, withTranscript bool) contentapi.Video {
	v := contentapi.Video{
		ID:            c.ID,
		Title:         c.Title,
		Slug:          c.Slug,
		Description:   c.SummaryOrSubtitle(),
		Thumbnail:     c.ImageURL,
		PublishedDate: c.FirstPublishedAt,
		Featured:      c.Featured,
		ViewCount:     c.ViewCount,
	}
	if d := c.Video(); d != nil {
		v.VideoURL = d.VideoURL
		v.EmbedCode = d.EmbedCode
		v.Duration = duration.Normalize(d.Duration)
		if withTranscript {
			v.Transcript = d.Transcript
		}
	}
	return v
}

// ToVideos converts a list of videos without transcripts
func ToVideos(cs []*domain.Content) []contentapi.Video {
	out := make([]contentapi.Video, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToVideo(c, false))
	}
	return out
}

// ToAuthorProfile converts an author and their articles
func ToAuthorProfile(a domain.Author, articles []*domain.Content) contentapi.AuthorProfile {
	profile := contentapi.AuthorProfile{
		Name:        a.Name,
		Credentials: a.Credentials,
		Bio:         a.Bio,
		Slug:        a.Slug,
		Articles:    make([]contentapi.AuthorArticle, 0, len(articles)),
	}
	for _, c := range articles {
		profile.Articles = append(profile.Articles, contentapi.AuthorArticle{
			ID:            c.ID,
			Title:         c.Title,
			Slug:          c.Slug,
			PublishedDate: c.FirstPublishedAt,
		})
	}
	return profile
}
