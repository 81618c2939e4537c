package source

import (
	"testing"

	"github.com/wpgtech/tech-events/internal/event"
)

func TestMeetupParseSearchResults(t *testing.T) {
	html := `
<html><body>
  <div class="results">
    <a href="/winnipeg-go/events/123456">
      <h3 class="event-title">Winnipeg Go Developers Night</h3>
      <time datetime="2026-09-10T18:00:00-05:00">Sep 10</time>
      <span class="venue-name">Launch Coworking</span>
    </a>
    <a href="/winnipeg-go/events/123456">
      <h3 class="event-title">Winnipeg Go Developers Night</h3>
    </a>
    <a href="/about">too short</a>
  </div>
</body></html>`

	scraper := NewMeetupScraper()
	events, err := scraper.parseSearchResults(html)
	if err != nil {
		t.Fatalf("parseSearchResults() unexpected error: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("parseSearchResults() returned %d events, want 1 after dedup: %v", len(events), events)
	}

	evt := events[0]
	if evt.Name != "Winnipeg Go Developers Night" {
		t.Errorf("Name = %q", evt.Name)
	}
	if evt.Source != event.SourceMeetup {
		t.Errorf("Source = %q, want %q", evt.Source, event.SourceMeetup)
	}
	if evt.URL != "https://www.meetup.com/winnipeg-go/events/123456" {
		t.Errorf("URL = %q, want absolute meetup URL", evt.URL)
	}
	if evt.StartTime != "2026-09-10T18:00:00-05:00" {
		t.Errorf("StartTime = %q", evt.StartTime)
	}
}

func TestMatchesCity(t *testing.T) {
	tests := []struct {
		location string
		city     string
		want     bool
	}{
		{"Winnipeg, MB", "Winnipeg", true},
		{"Downtown Winnipeg", "Winnipeg", true},
		{"Brandon, Manitoba", "Winnipeg", true},
		{"Toronto, ON", "Winnipeg", false},
		{"", "Winnipeg", false},
		{"Calgary, AB", "Calgary", true},
	}

	for _, tt := range tests {
		if got := matchesCity(tt.location, tt.city); got != tt.want {
			t.Errorf("matchesCity(%q, %q) = %v, want %v", tt.location, tt.city, got, tt.want)
		}
	}
}
