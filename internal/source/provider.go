package source

import (
	"sort"
	"time"

	"github.com/wpgtech/tech-events/internal/event"
	"github.com/wpgtech/tech-events/internal/logger"
)

// Provider supplies events for a city and category within a time period.
type Provider interface {
	// GetEvents returns events starting within period from now.
	GetEvents(city, category string, period time.Duration) ([]event.Event, error)
	// Name returns the provider's source tag.
	Name() string
}

// Aggregator combines events from multiple providers.
type Aggregator struct {
	providers []Provider
}

// NewAggregator creates an aggregator over the given providers.
func NewAggregator(providers ...Provider) *Aggregator {
	return &Aggregator{providers: providers}
}

// Aggregate collects events from every provider, skipping providers that
// fail, then dedupes by URL and name and sorts by start time. Events whose
// start time does not parse sort last, in input order.
func (a *Aggregator) Aggregate(city, category string, period time.Duration) []event.Event {
	var aggregated []event.Event
	failures := 0

	for _, provider := range a.providers {
		events, err := provider.GetEvents(city, category, period)
		if err != nil {
			logger.Warn("Provider failed, continuing with others", logger.Fields{
				"provider": provider.Name(),
			})
			failures++
			continue
		}
		logger.Info("Provider returned events", logger.Fields{
			"provider": provider.Name(),
			"count":    len(events),
		})
		aggregated = append(aggregated, events...)
	}

	aggregated = removeDuplicates(aggregated)

	sort.SliceStable(aggregated, func(i, j int) bool {
		si, erri := event.ParseStartTime(aggregated[i].StartTime)
		sj, errj := event.ParseStartTime(aggregated[j].StartTime)
		if erri != nil || errj != nil {
			return errj != nil && erri == nil
		}
		return si.Before(sj)
	})

	logger.Info("Aggregation complete", logger.Fields{
		"events":    len(aggregated),
		"providers": len(a.providers),
		"failures":  failures,
	})

	return aggregated
}

// removeDuplicates drops events that share a URL and name, keeping the first.
func removeDuplicates(events []event.Event) []event.Event {
	seen := make(map[string]bool, len(events))
	unique := make([]event.Event, 0, len(events))

	for _, evt := range events {
		key := evt.DedupKey()
		if !seen[key] {
			seen[key] = true
			unique = append(unique, evt)
		}
	}

	return unique
}
