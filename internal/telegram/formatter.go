package telegram

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/wpgtech/tech-events/internal/event"
	"github.com/wpgtech/tech-events/internal/filter"
)

const (
	// MaxMessageLength is the Bot API's hard limit on message text.
	MaxMessageLength = 4096
	// truncateAt leaves room for the ellipsis marker.
	truncateAt = 4090

	noEventsMessage = "📅 No upcoming events found for Winnipeg tech community."
	digestTrailer   = "\n_Shared via Winnipeg Tech Events Tracker_"
)

// FormatDigest renders the grouped event digest as a Markdown message.
// Pure: identical events and an identical now yield identical output.
func FormatDigest(events []event.Event, now time.Time) string {
	if len(events) == 0 {
		return noEventsMessage
	}

	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("🚀 *Winnipeg Tech Events - %s*\n\n",
		now.Format("Monday, January 2, 2006")))

	groups := filter.GroupByTime(events, now)

	for _, bucket := range filter.BucketOrder {
		bucketEvents := groups[bucket]
		if len(bucketEvents) == 0 {
			continue
		}

		msg.WriteString(fmt.Sprintf("*%s:*\n", bucket))

		for _, evt := range bucketEvents {
			writeEventBlock(&msg, evt)
		}
	}

	msg.WriteString(digestTrailer)

	return msg.String()
}

// writeEventBlock renders one bulleted event entry.
func writeEventBlock(msg *strings.Builder, evt event.Event) {
	name := EscapeMarkdown(evt.Name)
	if name == "" {
		name = "Unknown Event"
	}

	if label := event.SourceLabel(evt.Source); label != "" {
		msg.WriteString(fmt.Sprintf("• %s %s\n", name, label))
	} else {
		msg.WriteString(fmt.Sprintf("• %s\n", name))
	}

	if start, err := event.ParseStartTime(evt.StartTime); err == nil {
		msg.WriteString(fmt.Sprintf("  📅 %s\n", start.Format("Jan 2 at 3:04 PM")))
	}

	if evt.Venue != "" {
		msg.WriteString(fmt.Sprintf("  📍 %s\n", EscapeMarkdown(evt.Venue)))
	}

	if evt.Price != "" && evt.Price != "Free" {
		msg.WriteString(fmt.Sprintf("  💰 %s\n", evt.Price))
	}

	if evt.URL != "" {
		msg.WriteString(fmt.Sprintf("  🔗 [View Event](%s)\n", evt.URL))
	}

	msg.WriteString("\n")
}

// EscapeMarkdown backslash-escapes the Markdown control characters Telegram
// would otherwise interpret inside free text.
func EscapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"*", "\\*",
		"_", "\\_",
		"[", "\\[",
		"]", "\\]",
	)
	return replacer.Replace(s)
}

// Truncate enforces the Bot API message length limit. Messages over
// MaxMessageLength are cut at 4090 bytes plus an ellipsis marker. The cut
// backs off to the previous rune boundary so the result stays valid UTF-8,
// which the Bot API requires.
func Truncate(msg string) string {
	if len(msg) <= MaxMessageLength {
		return msg
	}

	cut := truncateAt
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}
	return msg[:cut] + "..."
}
