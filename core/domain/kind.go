// ABOUTME: Content kinds served by the health information site
// ABOUTME: Maps each kind to its URL segment and the label used in user-facing messages

package domain

import "fmt"

// Kind identifies a content category
type Kind string

// Content kinds
const (
	KindArticle    Kind = "article"
	KindCondition  Kind = "condition"
	KindDrug       Kind = "drug"
	KindNews       Kind = "news"
	KindRemedy     Kind = "remedy"
	KindSocialPost Kind = "social_post"
	KindVideo      Kind = "video"
)

// AllKinds lists every kind in a stable order
var AllKinds = []Kind{
	KindArticle,
	KindCondition,
	KindDrug,
	KindNews,
	KindRemedy,
	KindSocialPost,
	KindVideo,
}

// SearchKinds are the kinds covered by aggregated search
var SearchKinds = []Kind{
	KindArticle,
	KindCondition,
	KindDrug,
	KindNews,
}

// ParseKind converts a stored kind string back to a Kind
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown content kind %q", s)
}

// Segment is the URL path segment for the kind
func (k Kind) Segment() string {
	switch k {
	case KindArticle:
		return "articles"
	case KindCondition:
		return "conditions"
	case KindDrug:
		return "drugs"
	case KindNews:
		return "news"
	case KindRemedy:
		return "remedies"
	case KindSocialPost:
		return "social-posts"
	case KindVideo:
		return "videos"
	default:
		return string(k)
	}
}

// Label is the human-readable name used in not-found messages
func (k Kind) Label() string {
	switch k {
	case KindArticle:
		return "Article"
	case KindCondition:
		return "Condition"
	case KindDrug:
		return "Drug"
	case KindNews:
		return "News article"
	case KindRemedy:
		return "Remedy"
	case KindSocialPost:
		return "Post"
	case KindVideo:
		return "Video"
	default:
		return string(k)
	}
}
