// ABOUTME: Query normalisation shared by every search surface
// ABOUTME: Queries shorter than MinQueryLength are answered with empty results, not errors

package domain

import "strings"

// MinQueryLength is the shortest trimmed query that triggers a search
const MinQueryLength = 2

// NormalizeQuery trims q and reports whether it is long enough to search for
func NormalizeQuery(q string) (string, bool) {
	trimmed := strings.TrimSpace(q)
	return trimmed, len([]rune(trimmed)) >= MinQueryLength
}
