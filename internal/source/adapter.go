package source

import (
	"time"

	"github.com/wpgtech/tech-events/internal/event"
	"github.com/wpgtech/tech-events/internal/logger"
)

// Adapter is the pipeline's event source. It aggregates the configured
// providers and substitutes the fixed sample dataset whenever live fetching
// produces nothing, so FetchEvents never fails outward.
type Adapter struct {
	aggregator *Aggregator
	city       string
	category   string
	period     time.Duration
	now        func() time.Time
}

// NewAdapter creates an adapter over the default provider set.
func NewAdapter(city, category string, period time.Duration) *Adapter {
	return &Adapter{
		aggregator: NewAggregator(
			NewMeetupScraper(),
			NewEventbriteScraper(),
			NewDevEventsScraper(),
		),
		city:     city,
		category: category,
		period:   period,
		now:      time.Now,
	}
}

// NewAdapterWithProviders creates an adapter over an explicit provider set.
// now supplies the reference time for fallback sample generation.
func NewAdapterWithProviders(city, category string, period time.Duration, now func() time.Time, providers ...Provider) *Adapter {
	if now == nil {
		now = time.Now
	}
	return &Adapter{
		aggregator: NewAggregator(providers...),
		city:       city,
		category:   category,
		period:     period,
		now:        now,
	}
}

// FetchEvents returns the aggregated event list, or the sample dataset when
// aggregation yields nothing. The result is always non-empty. A provider
// panic counts as a failed fetch, not a failed invocation.
func (a *Adapter) FetchEvents() []event.Event {
	events := a.aggregate()

	if len(events) == 0 {
		logger.Info("No live events available, using sample data", logger.Fields{
			"city":     a.city,
			"category": a.category,
		})
		return SampleEvents(a.now())
	}

	logger.Info("Fetched events from live sources", logger.Fields{
		"count": len(events),
	})

	return events
}

func (a *Adapter) aggregate() (events []event.Event) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Aggregation panicked, falling back to sample data", logger.Fields{
				"panic": r,
			}, nil)
			events = nil
		}
	}()

	return a.aggregator.Aggregate(a.city, a.category, a.period)
}
