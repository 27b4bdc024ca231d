package form

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Accepted layouts for start and end dates. Values without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	dateLayout,
}

// ParseDate reads a caller-supplied date. ok is false for empty or malformed input.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DeriveStatus places now relative to the [start, end] window. Missing or
// unparseable bounds yield StatusDraft.
func DeriveStatus(start, end string, now time.Time) Status {
	startAt, okStart := ParseDate(start)
	endAt, okEnd := ParseDate(end)
	if !okStart || !okEnd {
		return StatusDraft
	}
	switch {
	case now.Before(startAt):
		return StatusUpcoming
	case now.After(endAt):
		return StatusClosed
	default:
		return StatusLive
	}
}

func formatDay(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
