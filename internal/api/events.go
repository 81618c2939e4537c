package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/wpgtech/tech-events/internal/calendar"
	"github.com/wpgtech/tech-events/internal/handler"
)

// eventsResponse is the GET /api/v1/events body.
type eventsResponse struct {
	Count  int         `json:"count"`
	Digest string      `json:"digest"`
	Events interface{} `json:"events"`
}

// listEventsHandler returns the filtered upcoming events and their digest.
func listEventsHandler(provider HandlerProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, digest := provider().Digest()
		writeJSON(w, http.StatusOK, eventsResponse{
			Count:  len(events),
			Digest: digest,
			Events: events,
		})
	}
}

// calendarHandler serves the upcoming events as an iCalendar download.
func calendarHandler(provider HandlerProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, _ := provider().Digest()
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="tech-events.ics"`)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(calendar.GenerateICS(events, time.Now())))
	}
}

// notifyHandler triggers one invocation and relays the structured result.
func notifyHandler(provider HandlerProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var trigger handler.Trigger
		if r.Body != nil {
			// An empty or malformed body is a manual trigger.
			_ = json.NewDecoder(r.Body).Decode(&trigger)
		}
		if trigger.Source == "" {
			trigger.Source = "http"
		}

		resp := provider().Handle(r.Context(), trigger)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.StatusCode)
		w.Write([]byte(resp.Body))
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
