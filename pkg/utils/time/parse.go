// ABOUTME: Time parsing for publish dates in imported feeds
// ABOUTME: Accepts the date layouts commonly found in RSS and Atom documents

package time

import (
	"strings"
	"time"
)

var layouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
}

// ParseFlexible parses s with the first matching layout.
// ok is false for empty or unrecognized input.
func ParseFlexible(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// ParseOr parses s, returning fallback when it cannot
func ParseOr(s string, fallback time.Time) time.Time {
	if parsed, ok := ParseFlexible(s); ok {
		return parsed
	}
	return fallback
}
