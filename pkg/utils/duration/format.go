// ABOUTME: Duration formatting for video running times
// ABOUTME: Normalizes seconds, Go durations and clock strings to a single clock format

package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ToSeconds converts "630", "10m30s" or "10:30" to seconds.
// ok is false when s is in none of those forms.
func ToSeconds(s string) (seconds int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n, true
	}
	if d, err := time.ParseDuration(s); err == nil && d >= 0 {
		return int(d.Seconds()), true
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}
	return total, true
}

// Clock formats seconds as M:SS, or H:MM:SS from one hour up
func Clock(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// Normalize rewrites a duration in clock format, leaving unrecognized input unchanged
func Normalize(s string) string {
	seconds, ok := ToSeconds(s)
	if !ok {
		return s
	}
	return Clock(seconds)
}
