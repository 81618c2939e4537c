package event

import (
	"crypto/sha1"
	"fmt"
	"strings"
)

// Event represents a single scheduled tech event from any source.
type Event struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Source        string `json:"source"`
	URL           string `json:"url"`
	Venue         string `json:"venue,omitempty"`
	Group         string `json:"group,omitempty"`
	AttendeeCount int    `json:"attendee_count,omitempty"`
	Price         string `json:"price,omitempty"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time,omitempty"`
}

// Known source tags.
const (
	SourceMeetup     = "meetup"
	SourceEventbrite = "eventbrite"
	SourceDevEvents  = "devevents"
	SourceManual     = "manual"
)

// GenerateID creates a deterministic ID for an event based on stable fields
func GenerateID(source, name, url string) string {
	h := sha1.New()
	h.Write([]byte(source + "|" + strings.ToLower(strings.TrimSpace(name)) + "|" + url))
	return fmt.Sprintf("%s-%x", source, h.Sum(nil)[:6])
}

// DedupKey identifies an event across sources. Two listings with the same
// URL and name are the same event.
func (e Event) DedupKey() string {
	return e.URL + "|" + e.Name
}

// SourceLabel returns the display label used next to event names in digests.
func SourceLabel(source string) string {
	switch source {
	case SourceMeetup:
		return "`[Meetup]`"
	case SourceEventbrite:
		return "`[Eventbrite]`"
	case SourceDevEvents:
		return "`[Dev.events]`"
	case "":
		return ""
	default:
		return "`[" + source + "]`"
	}
}
