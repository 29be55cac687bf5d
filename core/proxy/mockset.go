package proxy

import "strings"

// MockSet is a fixed dataset served while the content service is unreachable
type MockSet[P any] struct {
	Items []P

	// Slug extracts the identifier of an item
	Slug func(P) string

	// Text returns the fields Filter matches against, e.g. title and summary
	Text func(P) []string
}

// All returns a copy of every item
func (m MockSet[P]) All() []P {
	out := make([]P, len(m.Items))
	copy(out, m.Items)
	return out
}

// Slugs returns the slug of every item
func (m MockSet[P]) Slugs() []string {
	out := make([]string, 0, len(m.Items))
	for _, item := range m.Items {
		out = append(out, m.Slug(item))
	}
	return out
}

// Find returns the item with slug
func (m MockSet[P]) Find(slug string) (P, bool) {
	for _, item := range m.Items {
		if m.Slug(item) == slug {
			return item, true
		}
	}
	var zero P
	return zero, false
}

// Except returns up to n items other than slug, in dataset order
func (m MockSet[P]) Except(slug string, n int) []P {
	out := make([]P, 0, n)
	for _, item := range m.Items {
		if len(out) == n {
			break
		}
		if m.Slug(item) != slug {
			out = append(out, item)
		}
	}
	return out
}

// Filter returns the items whose text contains q, ignoring case
func (m MockSet[P]) Filter(q string) []P {
	needle := strings.ToLower(q)
	out := make([]P, 0)
	for _, item := range m.Items {
		for _, text := range m.Text(item) {
			if text != "" && strings.Contains(strings.ToLower(text), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
