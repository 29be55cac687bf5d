// ABOUTME: Kind-specific content details, one concrete type per kind
// ABOUTME: Details are decoded once when a record is loaded, never inspected field by field

package domain

import (
	"encoding/json"
	"fmt"
)

// Details is the variant part of a Content record
type Details interface {
	Kind() Kind
	// SearchTerms is extra text matched by search besides title and summary
	SearchTerms() []string
}

// ArticleDetails are the fields only articles have
type ArticleDetails struct {
	Author             *Author  `json:"author,omitempty"`
	MedicalReviewer    *Author  `json:"medical_reviewer,omitempty"`
	Tags               []string `json:"tags,omitempty"`
	ReadingTimeMinutes int      `json:"reading_time,omitempty"`
}

func (d *ArticleDetails) Kind() Kind { return KindArticle }

func (d *ArticleDetails) SearchTerms() []string {
	terms := append([]string{}, d.Tags...)
	if d.Author != nil {
		terms = append(terms, d.Author.Name)
	}
	return terms
}

// ConditionDetails are the clinical sections of a condition page
type ConditionDetails struct {
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
	RelatedConditions []Category `json:"related_conditions,omitempty"`
}

func (d *ConditionDetails) Kind() Kind { return KindCondition }

func (d *ConditionDetails) SearchTerms() []string {
	return []string{d.AlsoKnownAs}
}

// DrugDetails are the prescribing sections of a drug page
type DrugDetails struct {
	GenericName       string     `json:"generic_name,omitempty"`
	BrandNames        string     `json:"brand_names,omitempty"`
	DrugClass         string     `json:"drug_class,omitempty"`
	Overview          string     `json:"overview,omitempty"`
	Uses              string     `json:"uses,omitempty"`
	Dosage            string     `json:"dosage,omitempty"`
	SideEffects       string     `json:"side_effects,omitempty"`
	Warnings          string     `json:"warnings,omitempty"`
	Interactions      string     `json:"interactions,omitempty"`
	Storage           string     `json:"storage,omitempty"`
	PregnancyCategory string     `json:"pregnancy_category,omitempty"`
	Categories        []Category `json:"categories,omitempty"`
}

func (d *DrugDetails) Kind() Kind { return KindDrug }

func (d *DrugDetails) SearchTerms() []string {
	return []string{d.GenericName, d.BrandNames, d.DrugClass}
}

// NewsDetails are the fields only news items have
type NewsDetails struct {
	Source    string `json:"source,omitempty"`
	SourceURL string `json:"source_url,omitempty"`
}

func (d *NewsDetails) Kind() Kind { return KindNews }

func (d *NewsDetails) SearchTerms() []string {
	return []string{d.Source}
}

// RemedyDetails describe a traditional or home remedy
type RemedyDetails struct {
	AlsoKnownAs string   `json:"also_known_as,omitempty"`
	Overview    string   `json:"overview,omitempty"`
	Uses        string   `json:"uses,omitempty"`
	Dosage      string   `json:"dosage,omitempty"`
	Benefits    string   `json:"benefits,omitempty"`
	SideEffects string   `json:"side_effects,omitempty"`
	Precautions string   `json:"precautions,omitempty"`
	Ingredients string   `json:"ingredients,omitempty"`
	Potency     string   `json:"potency,omitempty"`
	DoshaEffect string   `json:"dosha_effect,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

func (d *RemedyDetails) Kind() Kind { return KindRemedy }

func (d *RemedyDetails) SearchTerms() []string {
	return append([]string{d.AlsoKnownAs}, d.Categories...)
}

// SocialPostDetails point at a post hosted on a social platform
type SocialPostDetails struct {
	PostURL   string `json:"post_url,omitempty"`
	EmbedCode string `json:"embed_code,omitempty"`
}

func (d *SocialPostDetails) Kind() Kind { return KindSocialPost }

func (d *SocialPostDetails) SearchTerms() []string { return nil }

// VideoDetails point at a hosted video
type VideoDetails struct {
	VideoURL   string `json:"video_url,omitempty"`
	EmbedCode  string `json:"embed_code,omitempty"`
	Duration   string `json:"duration,omitempty"`
	Transcript string `json:"transcript,omitempty"`
}

func (d *VideoDetails) Kind() Kind { return KindVideo }

func (d *VideoDetails) SearchTerms() []string { return nil }

// NewDetails returns an empty Details value for kind
func NewDetails(kind Kind) (Details, error) {
	switch kind {
	case KindArticle:
		return &ArticleDetails{}, nil
	case KindCondition:
		return &ConditionDetails{}, nil
	case KindDrug:
		return &DrugDetails{}, nil
	case KindNews:
		return &NewsDetails{}, nil
	case KindRemedy:
		return &RemedyDetails{}, nil
	case KindSocialPost:
		return &SocialPostDetails{}, nil
	case KindVideo:
		return &VideoDetails{}, nil
	default:
		return nil, fmt.Errorf("unknown content kind %q", kind)
	}
}

// DecodeDetails builds the Details variant for kind from its stored JSON form.
// Empty input yields an empty variant.
func DecodeDetails(kind Kind, raw []byte) (Details, error) {
	details, err := NewDetails(kind)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return details, nil
	}
	if err := json.Unmarshal(raw, details); err != nil {
		return nil, fmt.Errorf("decode %s details: %w", kind, err)
	}
	return details, nil
}
