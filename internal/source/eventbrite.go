package source

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/wpgtech/tech-events/internal/event"
)

const eventbriteBaseURL = "https://www.eventbrite.ca"

// EventbriteScraper fetches events from eventbrite.ca listing pages.
type EventbriteScraper struct {
	client  *resty.Client
	baseURL string
}

// NewEventbriteScraper creates an eventbrite.ca scraper.
func NewEventbriteScraper() *EventbriteScraper {
	return &EventbriteScraper{
		client: resty.New().
			SetTimeout(fetchTimeout).
			SetHeader("User-Agent", userAgent),
		baseURL: eventbriteBaseURL,
	}
}

// Name returns the provider's source tag.
func (e *EventbriteScraper) Name() string { return event.SourceEventbrite }

// GetEvents fetches and parses the eventbrite listing for the given city and
// category. Any fetch or parse failure is returned as an error.
func (e *EventbriteScraper) GetEvents(city, category string, period time.Duration) ([]event.Event, error) {
	listURL := fmt.Sprintf("%s/d/canada--%s/%s--events/",
		e.baseURL, strings.ToLower(city), strings.ToLower(category))

	resp, err := e.client.R().Get(listURL)
	if err != nil {
		return nil, fmt.Errorf("fetching eventbrite listing: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("eventbrite listing returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("parsing eventbrite HTML: %w", err)
	}

	var events []event.Event

	doc.Find("a[href*='/e/']").Each(func(i int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}

		name := strings.TrimSpace(sel.Find("h3, h2, [class*='title']").First().Text())
		if name == "" {
			name = strings.TrimSpace(sel.AttrOr("aria-label", ""))
		}
		if name == "" || len(name) < 5 {
			return
		}

		events = append(events, event.Event{
			ID:        event.GenerateID(event.SourceEventbrite, name, href),
			Name:      name,
			Source:    event.SourceEventbrite,
			URL:       href,
			Venue:     strings.TrimSpace(sel.Find("[class*='venue'], [class*='location']").First().Text()),
			Price:     strings.TrimSpace(sel.Find("[class*='price']").First().Text()),
			StartTime: strings.TrimSpace(sel.Find("time").First().AttrOr("datetime", "")),
		})
	})

	events = removeDuplicates(events)
	if len(events) == 0 {
		return nil, fmt.Errorf("no events parsed from eventbrite listing")
	}

	return events, nil
}
