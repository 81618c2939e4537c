// Package calendar renders upcoming events as iCalendar (RFC 5545) text.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/wpgtech/tech-events/internal/event"
)

// GenerateICS generates a single VCALENDAR containing one VEVENT per event.
// Events whose start time cannot be parsed are skipped. now supplies the
// DTSTAMP so output is deterministic under test.
func GenerateICS(events []event.Event, now time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//Winnipeg Tech Events//tech-events//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	for _, evt := range events {
		start, err := event.ParseStartTime(evt.StartTime)
		if err != nil {
			continue
		}

		end := start.Add(2 * time.Hour)
		if e, err := event.ParseStartTime(evt.EndTime); err == nil {
			end = e
		}

		ics.WriteString("BEGIN:VEVENT\r\n")
		ics.WriteString(fmt.Sprintf("UID:%s@tech-events.wpg\r\n", evt.ID))
		ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(now)))
		ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
		ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(end)))
		ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(evt.Name)))

		description := evt.Description
		if evt.URL != "" {
			description = fmt.Sprintf("%s\n\nDetails: %s", description, evt.URL)
		}
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))

		if evt.Venue != "" {
			ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(evt.Venue)))
		}
		if evt.URL != "" {
			ics.WriteString(fmt.Sprintf("URL:%s\r\n", evt.URL))
		}

		ics.WriteString("STATUS:CONFIRMED\r\n")
		ics.WriteString("SEQUENCE:0\r\n")
		ics.WriteString("TRANSP:OPAQUE\r\n")
		ics.WriteString("END:VEVENT\r\n")
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters according to RFC 5545
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
