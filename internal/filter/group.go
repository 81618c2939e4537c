package filter

import (
	"time"

	"github.com/wpgtech/tech-events/internal/event"
	"github.com/wpgtech/tech-events/internal/logger"
)

// Digest bucket names, in display precedence order.
const (
	BucketToday    = "Today"
	BucketThisWeek = "This Week"
	BucketNextWeek = "Next Week"
	BucketLater    = "Later"
)

// BucketOrder is the fixed precedence order renderers iterate in. A Go map
// has no iteration order, so the grouping result is always read through this.
var BucketOrder = []string{BucketToday, BucketThisWeek, BucketNextWeek, BucketLater}

// GroupByTime partitions events into time buckets relative to now. Each event
// lands in exactly one bucket, the first whose condition it meets: Today
// (same calendar date), This Week (date within 7 days), Next Week (date
// within 14 days), Later (everything else). Empty buckets are omitted from
// the result. Events with unparsable start times are skipped with a warning.
func GroupByTime(events []event.Event, now time.Time) map[string][]event.Event {
	groups := make(map[string][]event.Event)

	weekEnd := now.AddDate(0, 0, 7)
	nextWeekEnd := now.AddDate(0, 0, 14)

	for _, evt := range events {
		start, err := event.ParseStartTime(evt.StartTime)
		if err != nil {
			logger.Warn("Skipping ungroupable event", logger.Fields{
				"event_id":   evt.ID,
				"start_time": evt.StartTime,
				"reason":     err.Error(),
			})
			continue
		}

		bucket := BucketLater
		switch {
		case event.SameDay(start, now):
			bucket = BucketToday
		case !dateAfter(start, weekEnd):
			bucket = BucketThisWeek
		case !dateAfter(start, nextWeekEnd):
			bucket = BucketNextWeek
		}

		groups[bucket] = append(groups[bucket], evt)
	}

	return groups
}

// dateAfter compares calendar dates only, ignoring time of day.
func dateAfter(a, b time.Time) bool {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return ad.After(bd)
}
