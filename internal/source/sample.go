package source

import (
	"time"

	"github.com/wpgtech/tech-events/internal/event"
)

// SampleEvents returns the fixed fallback dataset: three representative
// events with start times computed relative to now. Used whenever live
// fetching yields nothing.
func SampleEvents(now time.Time) []event.Event {
	return []event.Event{
		{
			ID:            "meetup-ai-ml-1",
			Name:          "Winnipeg AI & Machine Learning Meetup",
			Description:   "Join us for an evening discussing the latest trends in AI and machine learning.",
			Source:        event.SourceMeetup,
			URL:           "https://www.meetup.com/winnipeg-ai-ml/events/example1",
			Venue:         "Innovation Hub Winnipeg",
			Group:         "Winnipeg AI Community",
			AttendeeCount: 45,
			Price:         "Free",
			StartTime:     now.AddDate(0, 0, 3).Format(time.RFC3339),
			EndTime:       now.AddDate(0, 0, 3).Add(2 * time.Hour).Format(time.RFC3339),
		},
		{
			ID:            "eventbrite-conference-1",
			Name:          "Winnipeg Tech Conference 2025",
			Description:   "Annual technology conference featuring local and international speakers.",
			Source:        event.SourceEventbrite,
			URL:           "https://www.eventbrite.ca/e/winnipeg-tech-conference-2025-tickets-example1",
			Venue:         "Convention Centre",
			Group:         "Winnipeg Tech Events",
			AttendeeCount: 200,
			Price:         "$50",
			StartTime:     now.AddDate(0, 0, 7).Format(time.RFC3339),
			EndTime:       now.AddDate(0, 0, 7).Add(8 * time.Hour).Format(time.RFC3339),
		},
		{
			ID:            "devevents-workshop-1",
			Name:          "Winnipeg Developer Workshop",
			Description:   "Hands-on coding workshop for developers of all levels.",
			Source:        event.SourceDevEvents,
			URL:           "https://dev.events/event/winnipeg-developer-workshop-2025",
			Venue:         "TechSpace Winnipeg",
			Group:         "Winnipeg Developers",
			AttendeeCount: 30,
			Price:         "Free",
			StartTime:     now.AddDate(0, 0, 14).Format(time.RFC3339),
			EndTime:       now.AddDate(0, 0, 14).Add(6 * time.Hour).Format(time.RFC3339),
		},
	}
}
