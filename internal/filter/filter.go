package filter

import (
	"time"

	"github.com/wpgtech/tech-events/internal/event"
	"github.com/wpgtech/tech-events/internal/logger"
)

// Future returns the events whose start time is strictly after now,
// preserving input order. Events with unparsable start times are dropped
// with a warning.
func Future(events []event.Event, now time.Time) []event.Event {
	future := make([]event.Event, 0, len(events))

	for _, evt := range events {
		start, err := event.ParseStartTime(evt.StartTime)
		if err != nil {
			logger.Warn("Skipping event with invalid start time", logger.Fields{
				"event_id":   evt.ID,
				"start_time": evt.StartTime,
				"reason":     err.Error(),
			})
			continue
		}
		if start.After(now) {
			future = append(future, evt)
		}
	}

	return future
}
