package event

import (
	"fmt"
	"strings"
	"time"
)

// ParseStartTime parses an event's ISO-8601 start time text.
// Accepts RFC 3339 with or without an offset; a bare "Z" suffix is treated
// as UTC. Returns an error if the text cannot be parsed.
func ParseStartTime(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty start time")
	}

	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05.999999Z07:00",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05.999999",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized start time %q", text)
}

// StartsAfter reports whether the event starts strictly after t.
// Returns false if the start time cannot be parsed.
func (e Event) StartsAfter(t time.Time) bool {
	start, err := ParseStartTime(e.StartTime)
	if err != nil {
		return false
	}
	return start.After(t)
}

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
