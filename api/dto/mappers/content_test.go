package mappers

import (
	"encoding/json"
	"testing"
	"time"

	"healthinfo-api/core/domain"
)

func TestToPreview(t *testing.T) {
	published := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	c := &domain.Content{
		ID:               7,
		Kind:             domain.KindNews,
		Slug:             "flu-season",
		Title:            "Flu season starts early",
		Subtitle:         "Clinics report more cases",
		ImageURL:         "https://example.com/flu.jpg",
		Category:         &domain.Category{Name: "Infectious Disease", Slug: "infectious-disease"},
		FirstPublishedAt: &published,
		Details:          &domain.NewsDetails{Source: "Reuters"},
	}

	p := ToPreview(c)

	if p.Summary != "Clinics report more cases" {
		t.Errorf("Summary = %q, want the subtitle when no summary is set", p.Summary)
	}
	if p.Source != "Reuters" {
		t.Errorf("Source = %q, want Reuters", p.Source)
	}
	if p.Category == nil || p.Category.Slug != "infectious-disease" {
		t.Errorf("Category = %+v", p.Category)
	}
	if p.PublishDate == nil || !p.PublishDate.Equal(published) {
		t.Errorf("PublishDate = %v, want %v", p.PublishDate, published)
	}
}

func TestToArticleDetail(t *testing.T) {
	first := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	c := &domain.Content{
		Kind:             domain.KindArticle,
		Slug:             "sleep",
		Title:            "Sleep",
		Body:             "<p>Sleep well.</p>",
		FirstPublishedAt: &first,
		LastPublishedAt:  &first,
		Details: &domain.ArticleDetails{
			Author:             &domain.Author{Name: "Dr. Rao", Credentials: "MD"},
			ReadingTimeMinutes: 4,
		},
	}

	detail := ToArticleDetail(c)

	if detail.Content != "<p>Sleep well.</p>" {
		t.Errorf("Content = %q", detail.Content)
	}
	if detail.Author == nil || detail.Author.Credentials != "MD" {
		t.Errorf("Author = %+v", detail.Author)
	}
	if detail.Tags == nil {
		t.Error("Tags should be an empty list, not nil")
	}
	if detail.UpdatedDate != nil {
		t.Errorf("UpdatedDate = %v, want nil for a page never republished", detail.UpdatedDate)
	}
	if detail.ReadingTime != 4 {
		t.Errorf("ReadingTime = %d, want 4", detail.ReadingTime)
	}
}

func TestToDrugSummary_FallsBackToPrimaryCategory(t *testing.T) {
	c := &domain.Content{
		Kind:     domain.KindDrug,
		Slug:     "aspirin",
		Title:    "Aspirin",
		Category: &domain.Category{Name: "Pain Relief", Slug: "pain-relief"},
		Details:  &domain.DrugDetails{GenericName: "acetylsalicylic acid"},
	}

	s := ToDrugSummary(c)

	if len(s.Categories) != 1 || s.Categories[0].Slug != "pain-relief" {
		t.Errorf("Categories = %+v, want the primary category", s.Categories)
	}
	if s.GenericName != "acetylsalicylic acid" {
		t.Errorf("GenericName = %q", s.GenericName)
	}
}

func TestToDrugDetail_CarriesViewCount(t *testing.T) {
	c := &domain.Content{Kind: domain.KindDrug, Slug: "aspirin", Title: "Aspirin", ViewCount: 41}

	detail := ToDrugDetail(c)

	if detail.ViewCount != 41 {
		t.Errorf("ViewCount = %d, want 41", detail.ViewCount)
	}
	if detail.Categories == nil {
		t.Error("Categories should be an empty list, not nil")
	}
}

func TestToConditionDetail_EmptyListsEncodeAsArrays(t *testing.T) {
	c := &domain.Content{Kind: domain.KindCondition, Slug: "asthma", Title: "Asthma"}

	raw, err := json.Marshal(ToConditionDetail(c))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded["name"] != "Asthma" {
		t.Errorf("name = %v, want Asthma", decoded["name"])
	}
	if _, ok := decoded["related_conditions"].([]interface{}); !ok {
		t.Errorf("related_conditions = %v, want []", decoded["related_conditions"])
	}
}

func TestToRemedySummary_TypeBecomesCategory(t *testing.T) {
	c := &domain.Content{
		Kind:    domain.KindRemedy,
		Slug:    "ashwagandha",
		Title:   "Ashwagandha",
		Type:    "Ayurveda",
		Details: &domain.RemedyDetails{AlsoKnownAs: "Indian ginseng", Categories: []string{"Adaptogens"}},
	}

	s := ToRemedySummary(c)

	if s.RemedyType == nil || s.RemedyType.Slug != "ayurveda" || s.RemedyType.Name != "Ayurveda" {
		t.Errorf("RemedyType = %+v", s.RemedyType)
	}
	if len(s.Categories) != 1 || s.Categories[0] != "Adaptogens" {
		t.Errorf("Categories = %v", s.Categories)
	}

	untyped := ToRemedySummary(&domain.Content{Kind: domain.KindRemedy, Slug: "tea", Title: "Tea"})
	if untyped.RemedyType != nil {
		t.Errorf("RemedyType = %+v, want nil", untyped.RemedyType)
	}
}

func TestToVideo(t *testing.T) {
	c := &domain.Content{
		Kind:    domain.KindVideo,
		Slug:    "stretching",
		Title:   "Stretching",
		Details: &domain.VideoDetails{Duration: "630", Transcript: "Reach up."},
	}

	listed := ToVideo(c, false)
	if listed.Duration != "10:30" {
		t.Errorf("Duration = %q, want 10:30", listed.Duration)
	}
	if listed.Transcript != "" {
		t.Error("listings should not carry the transcript")
	}

	if full := ToVideo(c, true); full.Transcript != "Reach up." {
		t.Errorf("Transcript = %q", full.Transcript)
	}
}

func TestToSocialPost(t *testing.T) {
	c := &domain.Content{
		Kind:    domain.KindSocialPost,
		Slug:    "hydration-tips",
		Title:   "Hydration tips",
		Type:    "Twitter",
		Details: &domain.SocialPostDetails{PostURL: "https://twitter.com/example/status/1"},
	}

	p := ToSocialPost(c)

	if p.Platform == nil || p.Platform.Slug != "twitter" {
		t.Errorf("Platform = %+v", p.Platform)
	}
	if p.PostURL != "https://twitter.com/example/status/1" {
		t.Errorf("PostURL = %q", p.PostURL)
	}
}

func TestListMappers_NeverNil(t *testing.T) {
	if ToPreviews(nil) == nil || ToConditionSummaries(nil) == nil || ToDrugSummaries(nil) == nil {
		t.Error("list mappers should return empty slices for nil input")
	}
	if ToRemedySummaries(nil) == nil || ToSocialPosts(nil) == nil || ToVideos(nil) == nil {
		t.Error("list mappers should return empty slices for nil input")
	}
	if ToDrugCategories(nil) == nil {
		t.Error("ToDrugCategories(nil) should be empty, not nil")
	}
}

func TestToHealthTopic(t *testing.T) {
	topic := ToHealthTopic(domain.Category{Name: "Sleep", Slug: "sleep"}, []*domain.Content{
		{Kind: domain.KindArticle, Slug: "naps", Title: "Naps"},
	})

	if topic.Slug != "sleep" || len(topic.Articles) != 1 || topic.Articles[0].Slug != "naps" {
		t.Errorf("ToHealthTopic() = %+v", topic)
	}
}

func TestToAuthorProfile(t *testing.T) {
	published := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	author := domain.Author{Name: "Dr. Priya Raman", Credentials: "MD", Slug: "priya-raman"}

	profile := ToAuthorProfile(author, []*domain.Content{
		{ID: 3, Kind: domain.KindArticle, Slug: "sleep-basics", Title: "Sleep basics", FirstPublishedAt: &published},
	})

	if profile.Slug != "priya-raman" || profile.Credentials != "MD" {
		t.Errorf("profile = %+v", profile)
	}
	if len(profile.Articles) != 1 || profile.Articles[0].Slug != "sleep-basics" || profile.Articles[0].PublishedDate == nil {
		t.Errorf("Articles = %+v", profile.Articles)
	}

	empty := ToAuthorProfile(author, nil)
	raw, _ := json.Marshal(empty)
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	if _, ok := decoded["articles"].([]interface{}); !ok {
		t.Errorf("articles should encode as a list, got %s", raw)
	}
}
