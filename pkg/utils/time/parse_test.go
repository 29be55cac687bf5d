package time

import (
	"testing"
	"time"
)

func TestParseFlexible(t *testing.T) {
	valid := []string{
		"2024-03-01T09:30:00Z",
		"Fri, 01 Mar 2024 09:30:00 +0000",
		"Fri, 1 Mar 2024 09:30:00 -0700",
		"2024-03-01 09:30:00",
		"2024-03-01",
	}
	for _, s := range valid {
		got, ok := ParseFlexible(s)
		if !ok {
			t.Errorf("ParseFlexible(%q) failed", s)
			continue
		}
		if got.Year() != 2024 || got.Month() != time.March || got.Day() != 1 {
			t.Errorf("ParseFlexible(%q) = %v", s, got)
		}
	}

	for _, s := range []string{"", "  ", "yesterday"} {
		if _, ok := ParseFlexible(s); ok {
			t.Errorf("ParseFlexible(%q) should fail", s)
		}
	}
}

func TestParseOr(t *testing.T) {
	fallback := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := ParseOr("garbage", fallback); !got.Equal(fallback) {
		t.Errorf("ParseOr() = %v, want fallback", got)
	}
	if got := ParseOr("2024-03-01", fallback); got.Year() != 2024 {
		t.Errorf("ParseOr() = %v", got)
	}
}
