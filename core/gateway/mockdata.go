// ABOUTME: Fixed mock datasets served while the content service is unreachable
// ABOUTME: Detail pages are synthesized from the mock summaries

package gateway

import (
	"fmt"
	"time"

	"healthinfo-api/core/proxy"
	"healthinfo-api/pkg/contentapi"
)

const loremIpsum = "<p>Lorem ipsum dolor sit amet, consectetur adipiscing elit. Proin euismod, nunc nec aliquam lacinia, nisl nisl aliquam nisl, eget aliquam nisl nisl sit amet nisl.</p>"

var mockPublished = time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

var editorialAuthor = contentapi.Author{
	Name:        "Health News Team",
	Credentials: "Editorial Staff",
	Bio:         "Our editorial team provides the latest health news and updates.",
}

func category(name, slug string) *contentapi.Category {
	return &contentapi.Category{Name: name, Slug: slug}
}

var mockNews = []contentapi.Preview{
	{
		ID:          1,
		Title:       "New AI Tools Send Lifesaving Alerts on Sepsis",
		Slug:        "new-ai-tools-send-lifesaving-alerts-on-sepsis",
		Summary:     "Artificial intelligence systems are being deployed in hospitals to help detect sepsis earlier and save more lives.",
		Image:       "https://images.unsplash.com/photo-1576091160399-112ba8d25d1f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500&q=80",
		Category:    category("Medical Technology", "medical-technology"),
		PublishDate: &mockPublished,
	},
	{
		ID:          2,
		Title:       "Breakthrough in Cancer Treatment Shows Promise",
		Slug:        "breakthrough-cancer-treatment-shows-promise",
		Summary:     "Researchers have developed a new immunotherapy approach that shows remarkable results in clinical trials.",
		Image:       "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500&q=80",
		Category:    category("Cancer Research", "cancer-research"),
		PublishDate: &mockPublished,
	},
	{
		ID:          3,
		Title:       "Mental Health Apps Gain Popularity During Pandemic",
		Slug:        "mental-health-apps-gain-popularity-pandemic",
		Summary:     "Digital mental health solutions have seen unprecedented growth as people seek accessible mental health support.",
		Image:       "https://images.unsplash.com/photo-1512438248247-f0f2a5a8b7f0?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500&q=80",
		Category:    category("Mental Health", "mental-health"),
		PublishDate: &mockPublished,
	},
	{
		ID:          4,
		Title:       "Study Links Exercise to Better Brain Health",
		Slug:        "study-links-exercise-better-brain-health",
		Summary:     "New research demonstrates the powerful connection between physical activity and cognitive function.",
		Image:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500&q=80",
		Category:    category("Research", "research"),
		PublishDate: &mockPublished,
	},
}

var mockArticles = []contentapi.Preview{
	{
		ID:          101,
		Title:       "Understanding Blood Pressure Readings",
		Slug:        "understanding-blood-pressure-readings",
		Summary:     "What the two numbers mean and when a reading should prompt a visit to your doctor.",
		Category:    category("Heart Health", "heart-health"),
		PublishDate: &mockPublished,
		Featured:    true,
	},
	{
		ID:          102,
		Title:       "How Much Sleep Do Adults Really Need",
		Slug:        "how-much-sleep-do-adults-need",
		Summary:     "Sleep needs change with age. Here is what the evidence says about healthy sleep duration.",
		Category:    category("Sleep", "sleep"),
		PublishDate: &mockPublished,
		Featured:    true,
	},
	{
		ID:          103,
		Title:       "Eating for Steady Blood Sugar",
		Slug:        "eating-for-steady-blood-sugar",
		Summary:     "Simple meal planning habits that help keep blood glucose in range.",
		Category:    category("Nutrition", "nutrition"),
		PublishDate: &mockPublished,
	},
	{
		ID:          104,
		Title:       "Recognizing the Signs of Burnout",
		Slug:        "recognizing-the-signs-of-burnout",
		Summary:     "Chronic workplace stress shows up in the body and mind. Learn the early warning signs.",
		Category:    category("Mental Health", "mental-health"),
		PublishDate: &mockPublished,
	},
}

var mockConditions = []contentapi.ConditionSummary{
	{ID: 201, Name: "Asthma", Slug: "asthma", Subtitle: "A chronic condition that inflames and narrows the airways"},
	{ID: 202, Name: "Hypertension", Slug: "hypertension", Subtitle: "Persistently high blood pressure in the arteries"},
	{ID: 203, Name: "Migraine", Slug: "migraine", Subtitle: "Recurring headaches with throbbing pain and sensitivity to light"},
	{ID: 204, Name: "Type 2 Diabetes", Slug: "type-2-diabetes", Subtitle: "A condition in which the body does not use insulin well"},
}

var mockDrugs = []contentapi.DrugSummary{
	{
		ID: 301, Title: "Albuterol", Slug: "albuterol", GenericName: "albuterol sulfate",
		BrandNames: "ProAir, Ventolin", DrugClass: "Bronchodilator",
		Categories: []contentapi.Category{{Name: "Respiratory", Slug: "respiratory"}},
	},
	{
		ID: 302, Title: "Ibuprofen", Slug: "ibuprofen", GenericName: "ibuprofen",
		BrandNames: "Advil, Motrin", DrugClass: "NSAID",
		Categories: []contentapi.Category{{Name: "Pain Relief", Slug: "pain-relief"}},
	},
	{
		ID: 303, Title: "Lisinopril", Slug: "lisinopril", GenericName: "lisinopril",
		BrandNames: "Prinivil, Zestril", DrugClass: "ACE inhibitor",
		Categories: []contentapi.Category{{Name: "Cardiovascular", Slug: "cardiovascular"}},
	},
	{
		ID: 304, Title: "Metformin", Slug: "metformin", GenericName: "metformin hydrochloride",
		BrandNames: "Glucophage", DrugClass: "Biguanide",
		Categories: []contentapi.Category{{Name: "Diabetes", Slug: "diabetes"}},
	},
}

func previewMocks(items []contentapi.Preview) proxy.MockSet[contentapi.Preview] {
	return proxy.MockSet[contentapi.Preview]{
		Items: items,
		Slug:  func(p contentapi.Preview) string { return p.Slug },
		Text:  func(p contentapi.Preview) []string { return []string{p.Title, p.Summary, p.Subtitle} },
	}
}

func conditionMocks() proxy.MockSet[contentapi.ConditionSummary] {
	return proxy.MockSet[contentapi.ConditionSummary]{
		Items: mockConditions,
		Slug:  func(c contentapi.ConditionSummary) string { return c.Slug },
		Text:  func(c contentapi.ConditionSummary) []string { return []string{c.Name, c.Subtitle} },
	}
}

func drugMocks() proxy.MockSet[contentapi.DrugSummary] {
	return proxy.MockSet[contentapi.DrugSummary]{
		Items: mockDrugs,
		Slug:  func(d contentapi.DrugSummary) string { return d.Slug },
		Text: func(d contentapi.DrugSummary) []string {
			return []string{d.Title, d.GenericName, d.BrandNames, d.DrugClass}
		},
	}
}

// expandNews synthesizes a full news article from a mock summary
func expandNews(p contentapi.Preview) contentapi.ArticleDetail {
	return expandPreview(p, "news article", []string{"Health News", "Breaking"})
}

// expandArticle synthesizes a full article from a mock summary
func expandArticle(p contentapi.Preview) contentapi.ArticleDetail {
	tags := []string{"Health"}
	if p.Category != nil {
		tags = append(tags, p.Category.Name)
	}
	return expandPreview(p, "article", tags)
}

func expandPreview(p contentapi.Preview, noun string, tags []string) contentapi.ArticleDetail {
	author := editorialAuthor
	detail := contentapi.ArticleDetail{
		Preview:       p,
		Content:       fmt.Sprintf("<p>This is the full content of the %s about %s.</p>%s", noun, p.Title, loremIpsum),
		Author:        &author,
		Tags:          tags,
		PublishedDate: p.PublishDate,
	}
	detail.Subtitle = p.Summary
	return detail
}

func expandCondition(c contentapi.ConditionSummary) contentapi.ConditionDetail {
	return contentapi.ConditionDetail{
		ConditionSummary:  c,
		Overview:          fmt.Sprintf("<p>%s: %s.</p>%s", c.Name, c.Subtitle, loremIpsum),
		RelatedConditions: []contentapi.Category{},
	}
}

func expandDrug(d contentapi.DrugSummary) contentapi.DrugDetail {
	return contentapi.DrugDetail{
		DrugSummary: d,
		Overview:    fmt.Sprintf("<p>%s (%s) belongs to the %s drug class.</p>%s", d.Title, d.GenericName, d.DrugClass, loremIpsum),
	}
}
