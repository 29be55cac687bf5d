// ABOUTME: Sample dataset covering every content kind, used by the seed command
// ABOUTME: Seeding is idempotent because pages and categories are upserted by slug

package content

import (
	"context"
	"fmt"
	"time"

	"healthinfo-api/core/domain"
	"healthinfo-api/core/interfaces"
	"healthinfo-api/pkg/utils/html"
)

type seedCategory struct {
	kind     domain.Kind
	category domain.CategoryCount
}

func cat(name, slug, description string) domain.CategoryCount {
	return domain.CategoryCount{
		Category:    domain.Category{Name: name, Slug: slug},
		Description: description,
	}
}

var seedCategories = []seedCategory{
	{domain.KindArticle, cat("Heart Health", "heart-health", "Blood pressure, cholesterol and cardiovascular fitness")},
	{domain.KindArticle, cat("Nutrition", "nutrition", "Eating well at every age")},
	{domain.KindArticle, cat("Mental Health", "mental-health", "Stress, mood and emotional wellbeing")},
	{domain.KindArticle, cat("Sleep", "sleep", "Sleep hygiene and sleep disorders")},
	{domain.KindNews, cat("Research", "research", "New studies and clinical trials")},
	{domain.KindNews, cat("Public Health", "public-health", "Outbreaks, vaccination and policy")},
	{domain.KindDrug, cat("Pain Relief", "pain-relief", "Analgesics and anti-inflammatory drugs")},
	{domain.KindDrug, cat("Cardiovascular", "cardiovascular", "Drugs acting on the heart and blood vessels")},
	{domain.KindDrug, cat("Diabetes", "diabetes", "Drugs that lower blood glucose")},
	{domain.KindDrug, cat("Respiratory", "respiratory", "Inhalers and drugs for the airways")},
	{domain.KindCondition, cat("Chronic Conditions", "chronic-conditions", "Long-term conditions that need ongoing care")},
}

func categoryRef(kind domain.Kind, slug string) *domain.Category {
	for _, s := range seedCategories {
		if s.kind == kind && s.category.Slug == slug {
			c := s.category.Category
			return &c
		}
	}
	return nil
}

var seedAuthor = &domain.Author{
	Name:        "Dr. Priya Raman",
	Credentials: "MD, Internal Medicine",
	Bio:         "Priya writes about preventive care and chronic disease management.",
	Slug:        "priya-raman",
}

var seedReviewer = &domain.Author{
	Name:        "Dr. Samuel Okafor",
	Credentials: "MD, Cardiology",
	Slug:        "samuel-okafor",
}

// SeedPages returns the sample pages, published relative to now
func SeedPages(now time.Time) []*domain.Content {
	at := func(daysAgo int) *time.Time {
		t := now.Add(-time.Duration(daysAgo) * 24 * time.Hour).UTC().Truncate(time.Second)
		return &t
	}
	page := func(kind domain.Kind, slug, title string, daysAgo int) *domain.Content {
		return &domain.Content{
			Kind:             kind,
			Slug:             slug,
			Title:            title,
			Live:             true,
			FirstPublishedAt: at(daysAgo),
			LastPublishedAt:  at(daysAgo),
		}
	}

	var pages []*domain.Content

	for i, a := range []struct {
		slug, title, subtitle, category, body string
		featured                              bool
		tags                                  []string
	}{
		{"understanding-blood-pressure-readings", "Understanding Blood Pressure Readings",
			"What the two numbers mean", "heart-health",
			"<p>A blood pressure reading has two numbers. The systolic pressure is measured while the heart beats and the diastolic pressure between beats.</p><p>Readings above 130/80 on repeated visits are worth discussing with your doctor.</p>",
			true, []string{"blood pressure", "hypertension"}},
		{"how-much-sleep-do-adults-need", "How Much Sleep Do Adults Really Need",
			"The evidence on healthy sleep duration", "sleep",
			"<p>Most adults need seven to nine hours of sleep a night. Regular short sleep is linked to higher blood pressure and weight gain.</p>",
			true, []string{"sleep"}},
		{"eating-for-steady-blood-sugar", "Eating for Steady Blood Sugar",
			"Meal habits that keep glucose in range", "nutrition",
			"<p>Pairing carbohydrates with protein and fibre slows the rise in blood glucose after a meal.</p>",
			false, []string{"diabetes", "diet"}},
		{"recognizing-the-signs-of-burnout", "Recognizing the Signs of Burnout",
			"Early warning signs of chronic stress", "mental-health",
			"<p>Exhaustion, cynicism and a sense of ineffectiveness are the three hallmarks of burnout.</p>",
			false, []string{"stress"}},
		{"heart-healthy-exercise", "Exercise for a Healthy Heart",
			"How much activity protects your heart", "heart-health",
			"<p>150 minutes of moderate activity a week lowers the risk of heart disease.</p>",
			true, []string{"exercise"}},
	} {
		p := page(domain.KindArticle, a.slug, a.title, i+1)
		p.Subtitle = a.subtitle
		p.Summary = html.Excerpt(a.body, summaryLength)
		p.Body = a.body
		p.Category = categoryRef(domain.KindArticle, a.category)
		p.Featured = a.featured
		p.Details = &domain.ArticleDetails{
			Author:             seedAuthor,
			MedicalReviewer:    seedReviewer,
			Tags:               a.tags,
			ReadingTimeMinutes: html.ReadingTime(a.body),
		}
		pages = append(pages, p)
	}

	for i, n := range []struct {
		slug, title, summary, category, source string
	}{
		{"new-ai-tools-send-lifesaving-alerts-on-sepsis", "New AI Tools Send Lifesaving Alerts on Sepsis",
			"Hospitals are deploying early warning systems that flag sepsis hours sooner.", "research", "Health Wire"},
		{"flu-vaccination-rates-rise", "Flu Vaccination Rates Rise Ahead of Winter",
			"More adults received a flu shot this autumn than in any of the last five years.", "public-health", "Public Health Daily"},
		{"study-links-exercise-better-brain-health", "Study Links Exercise to Better Brain Health",
			"Regular aerobic exercise was associated with slower cognitive decline.", "research", "Health Wire"},
	} {
		p := page(domain.KindNews, n.slug, n.title, i)
		p.Summary = n.summary
		p.Body = fmt.Sprintf("<p>%s</p>", n.summary)
		p.Category = categoryRef(domain.KindNews, n.category)
		p.Details = &domain.NewsDetails{Source: n.source}
		pages = append(pages, p)
	}

	chronic := &domain.Category{Name: "Chronic Conditions", Slug: "chronic-conditions"}
	for i, c := range []struct {
		slug, title, subtitle string
		details               domain.ConditionDetails
	}{
		{"asthma", "Asthma", "A chronic condition that inflames and narrows the airways", domain.ConditionDetails{
			Overview: "<p>Asthma causes wheezing, breathlessness and coughing.</p>", Symptoms: "<p>Wheezing, chest tightness, cough.</p>",
			Treatments: "<p>Reliever and preventer inhalers.</p>", Specialties: "Pulmonology",
		}},
		{"hypertension", "Hypertension", "Persistently high blood pressure in the arteries", domain.ConditionDetails{
			AlsoKnownAs: "High blood pressure", Overview: "<p>Hypertension rarely causes symptoms but raises the risk of stroke.</p>",
			RiskFactors: "<p>Age, salt intake, inactivity.</p>", Specialties: "Cardiology",
		}},
		{"migraine", "Migraine", "Recurring headaches with throbbing pain", domain.ConditionDetails{
			Overview: "<p>Migraine attacks can last from hours to days.</p>", Causes: "<p>Triggers include stress and poor sleep.</p>",
			Specialties: "Neurology",
		}},
		{"type-2-diabetes", "Type 2 Diabetes", "A condition in which the body does not use insulin well", domain.ConditionDetails{
			Overview: "<p>Type 2 diabetes develops when cells resist insulin.</p>", Prevention: "<p>Weight loss and activity.</p>",
			Specialties: "Endocrinology", RelatedConditions: []domain.Category{{Name: "Hypertension", Slug: "hypertension"}},
		}},
	} {
		p := page(domain.KindCondition, c.slug, c.title, 30+i)
		p.Subtitle = c.subtitle
		p.Category = chronic
		details := c.details
		p.Details = &details
		pages = append(pages, p)
	}

	for i, d := range []struct {
		slug, title, category string
		details               domain.DrugDetails
	}{
		{"albuterol", "Albuterol", "respiratory", domain.DrugDetails{GenericName: "albuterol sulfate", BrandNames: "ProAir, Ventolin", DrugClass: "Bronchodilator"}},
		{"ibuprofen", "Ibuprofen", "pain-relief", domain.DrugDetails{GenericName: "ibuprofen", BrandNames: "Advil, Motrin", DrugClass: "NSAID", PregnancyCategory: "C"}},
		{"lisinopril", "Lisinopril", "cardiovascular", domain.DrugDetails{GenericName: "lisinopril", BrandNames: "Prinivil, Zestril", DrugClass: "ACE inhibitor"}},
		{"metformin", "Metformin", "diabetes", domain.DrugDetails{GenericName: "metformin hydrochloride", BrandNames: "Glucophage", DrugClass: "Biguanide"}},
		{"naproxen", "Naproxen", "pain-relief", domain.DrugDetails{GenericName: "naproxen sodium", BrandNames: "Aleve", DrugClass: "NSAID"}},
	} {
		p := page(domain.KindDrug, d.slug, d.title, 40+i)
		p.Category = categoryRef(domain.KindDrug, d.category)
		details := d.details
		details.Overview = fmt.Sprintf("<p>%s is a %s.</p>", d.title, details.DrugClass)
		details.Categories = []domain.Category{*p.Category}
		p.Details = &details
		pages = append(pages, p)
	}

	for i, r := range []struct {
		slug, title, remedyType string
		details                 domain.RemedyDetails
	}{
		{"ashwagandha", "Ashwagandha", "Ayurveda", domain.RemedyDetails{AlsoKnownAs: "Indian ginseng", Uses: "<p>Stress and sleep support.</p>", DoshaEffect: "Balances vata and kapha", Categories: []string{"Adaptogens"}}},
		{"turmeric-milk", "Turmeric Milk", "Ayurveda", domain.RemedyDetails{AlsoKnownAs: "Haldi doodh", Ingredients: "Milk, turmeric, black pepper", Categories: []string{"Anti-inflammatory"}}},
		{"arnica", "Arnica", "Homeopathy", domain.RemedyDetails{Uses: "<p>Bruises and sprains.</p>", Potency: "30C", Categories: []string{"First aid"}}},
	} {
		p := page(domain.KindRemedy, r.slug, r.title, 10+i)
		p.Type = r.remedyType
		details := r.details
		details.Overview = fmt.Sprintf("<p>%s is a traditional %s remedy.</p>", r.title, r.remedyType)
		p.Details = &details
		pages = append(pages, p)
	}

	for i, s := range []struct {
		slug, title, platform, url string
	}{
		{"hand-washing-reminder", "Twenty seconds of hand washing", "Instagram", "https://www.instagram.com/p/example1/"},
		{"hydration-tips", "Five hydration tips for summer", "Twitter", "https://twitter.com/example/status/1"},
	} {
		p := page(domain.KindSocialPost, s.slug, s.title, i)
		p.Type = s.platform
		p.Featured = i == 0
		p.Details = &domain.SocialPostDetails{PostURL: s.url}
		pages = append(pages, p)
	}

	for i, v := range []struct {
		slug, title, url, duration string
	}{
		{"morning-stretching-routine", "A Ten Minute Morning Stretching Routine", "https://www.youtube.com/watch?v=example1", "10:30"},
		{"how-to-use-an-inhaler", "How to Use an Inhaler", "https://www.youtube.com/watch?v=example2", "PT4M5S"},
	} {
		p := page(domain.KindVideo, v.slug, v.title, i+2)
		p.Summary = v.title + "."
		p.Featured = i == 0
		p.Details = &domain.VideoDetails{VideoURL: v.url, Duration: v.duration}
		pages = append(pages, p)
	}

	return pages
}

// Seed writes the sample categories and pages to store and returns the page count
func Seed(ctx context.Context, store interfaces.ContentStore, now time.Time) (int, error) {
	for _, s := range seedCategories {
		if err := store.SaveCategory(ctx, s.kind, s.category); err != nil {
			return 0, err
		}
	}

	pages := SeedPages(now)
	for _, p := range pages {
		if err := store.Save(ctx, p); err != nil {
			return 0, fmt.Errorf("seed %s %q: %w", p.Kind, p.Slug, err)
		}
	}
	return len(pages), nil
}
