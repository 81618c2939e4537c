package telegram

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/wpgtech/tech-events/internal/event"
)

func testNow() time.Time {
	return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) // Tuesday
}

func sampleDigestEvents(now time.Time) []event.Event {
	return []event.Event{
		{
			ID:        "e1",
			Name:      "AI & ML Meetup",
			Source:    event.SourceMeetup,
			URL:       "https://example.com/e1",
			Venue:     "Innovation Hub",
			Price:     "Free",
			StartTime: now.AddDate(0, 0, 3).Format(time.RFC3339),
		},
		{
			ID:        "e2",
			Name:      "Tech Conference",
			Source:    event.SourceEventbrite,
			URL:       "https://example.com/e2",
			Venue:     "Convention Centre",
			Price:     "$50",
			StartTime: now.AddDate(0, 0, 7).Format(time.RFC3339),
		},
		{
			ID:        "e3",
			Name:      "Developer Workshop",
			Source:    event.SourceDevEvents,
			URL:       "https://example.com/e3",
			StartTime: now.AddDate(0, 0, 14).Format(time.RFC3339),
		},
	}
}

func TestFormatDigest_Empty(t *testing.T) {
	got := FormatDigest(nil, testNow())
	if got != noEventsMessage {
		t.Errorf("FormatDigest(nil) = %q, want fixed no-events message", got)
	}
}

func TestFormatDigest_Header(t *testing.T) {
	msg := FormatDigest(sampleDigestEvents(testNow()), testNow())

	if !strings.Contains(msg, "Tuesday, September 1, 2026") {
		t.Errorf("digest header missing formatted date:\n%s", msg)
	}
	if !strings.HasPrefix(msg, "🚀 *Winnipeg Tech Events") {
		t.Errorf("digest missing header line:\n%s", msg)
	}
	if !strings.Contains(msg, "_Shared via Winnipeg Tech Events Tracker_") {
		t.Errorf("digest missing trailer:\n%s", msg)
	}
}

func TestFormatDigest_ThreeBullets(t *testing.T) {
	msg := FormatDigest(sampleDigestEvents(testNow()), testNow())

	if got := strings.Count(msg, "• "); got != 3 {
		t.Errorf("digest has %d bullet entries, want 3:\n%s", got, msg)
	}
}

func TestFormatDigest_BucketOrder(t *testing.T) {
	msg := FormatDigest(sampleDigestEvents(testNow()), testNow())

	thisWeek := strings.Index(msg, "*This Week:*")
	nextWeek := strings.Index(msg, "*Next Week:*")
	if thisWeek == -1 || nextWeek == -1 {
		t.Fatalf("digest missing bucket headers:\n%s", msg)
	}
	if thisWeek > nextWeek {
		t.Errorf("This Week section after Next Week:\n%s", msg)
	}
	if strings.Contains(msg, "*Today:*") {
		t.Errorf("empty Today bucket rendered:\n%s", msg)
	}
}

func TestFormatDigest_EventDetails(t *testing.T) {
	msg := FormatDigest(sampleDigestEvents(testNow()), testNow())

	// Venue present, price shown only when not Free, link for every URL.
	if !strings.Contains(msg, "📍 Innovation Hub") {
		t.Errorf("digest missing venue line:\n%s", msg)
	}
	if !strings.Contains(msg, "💰 $50") {
		t.Errorf("digest missing paid price line:\n%s", msg)
	}
	if strings.Contains(msg, "💰 Free") {
		t.Errorf("digest shows price line for free event:\n%s", msg)
	}
	if got := strings.Count(msg, "[View Event]("); got != 3 {
		t.Errorf("digest has %d link lines, want 3:\n%s", got, msg)
	}
	if !strings.Contains(msg, "`[Meetup]`") {
		t.Errorf("digest missing source label:\n%s", msg)
	}
}

func TestFormatDigest_Pure(t *testing.T) {
	events := sampleDigestEvents(testNow())

	first := FormatDigest(events, testNow())
	second := FormatDigest(events, testNow())

	if first != second {
		t.Error("FormatDigest() is not deterministic for identical input and now")
	}
}

func TestFormatDigest_EscapesMarkdown(t *testing.T) {
	now := testNow()
	events := []event.Event{{
		ID:        "e1",
		Name:      "C++ [advanced] *tips* and_tricks",
		Venue:     "Room [B]_2",
		StartTime: now.AddDate(0, 0, 2).Format(time.RFC3339),
	}}

	msg := FormatDigest(events, now)

	if !strings.Contains(msg, `C++ \[advanced\] \*tips\* and\_tricks`) {
		t.Errorf("event name not escaped:\n%s", msg)
	}
	if !strings.Contains(msg, `Room \[B\]\_2`) {
		t.Errorf("venue not escaped:\n%s", msg)
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"a*b", `a\*b`},
		{"a_b", `a\_b`},
		{"[link]", `\[link\]`},
		{"", ""},
	}

	for _, tt := range tests {
		if got := EscapeMarkdown(tt.input); got != tt.want {
			t.Errorf("EscapeMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	short := strings.Repeat("a", 100)
	if got := Truncate(short); got != short {
		t.Errorf("Truncate() modified a short message")
	}

	exact := strings.Repeat("a", MaxMessageLength)
	if got := Truncate(exact); got != exact {
		t.Errorf("Truncate() modified a message exactly at the limit")
	}

	long := strings.Repeat("a", MaxMessageLength+500)
	got := Truncate(long)
	if len(got) != 4093 {
		t.Errorf("Truncate() length = %d, want 4093 (4090 + ellipsis)", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Truncate() result missing ellipsis marker")
	}
	if len(got) > MaxMessageLength {
		t.Errorf("Truncate() result exceeds the provider limit")
	}
}

func TestTruncateKeepsValidUTF8(t *testing.T) {
	// The cut position lands one byte into the first 🚀 (4 bytes each), so a
	// naive byte slice would leave a dangling lead byte.
	long := strings.Repeat("a", 4089) + strings.Repeat("🚀", 10)

	got := Truncate(long)

	if !utf8.ValidString(got) {
		t.Fatalf("Truncate() produced invalid UTF-8: tail %x", got[len(got)-8:])
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Truncate() result missing ellipsis marker")
	}
	if len(got) > MaxMessageLength {
		t.Errorf("Truncate() result exceeds the provider limit")
	}
	if strings.ContainsRune(got, '�') {
		t.Errorf("Truncate() result contains a replacement character")
	}
	if !strings.HasSuffix(strings.TrimSuffix(got, "..."), "a") {
		t.Errorf("Truncate() did not back off to the rune boundary before the emoji")
	}
}
