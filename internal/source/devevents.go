package source

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/wpgtech/tech-events/internal/event"
)

const devEventsBaseURL = "https://dev.events/NA/CA"

// DevEventsScraper fetches conference and workshop listings from dev.events.
type DevEventsScraper struct {
	client  *resty.Client
	baseURL string
}

// NewDevEventsScraper creates a dev.events scraper.
func NewDevEventsScraper() *DevEventsScraper {
	return &DevEventsScraper{
		client: resty.New().
			SetTimeout(fetchTimeout).
			SetHeader("User-Agent", userAgent),
		baseURL: devEventsBaseURL,
	}
}

// Name returns the provider's source tag.
func (d *DevEventsScraper) Name() string { return event.SourceDevEvents }

// GetEvents fetches the dev.events Canada listing and keeps events whose
// location mentions the requested city or its province. Any fetch or parse
// failure is returned as an error.
func (d *DevEventsScraper) GetEvents(city, category string, period time.Duration) ([]event.Event, error) {
	resp, err := d.client.R().Get(d.baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetching dev.events listing: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("dev.events listing returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("parsing dev.events HTML: %w", err)
	}

	var events []event.Event

	doc.Find("a[href*='/event/']").Each(func(i int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}

		name := strings.TrimSpace(sel.Find("h2, h3, [class*='title']").First().Text())
		if name == "" {
			name = strings.TrimSpace(sel.Text())
		}
		if name == "" || len(name) < 5 {
			return
		}

		location := strings.TrimSpace(sel.Find("[class*='location'], [class*='city']").First().Text())
		if !matchesCity(location, city) {
			return
		}

		if strings.HasPrefix(href, "/") {
			href = "https://dev.events" + href
		}

		events = append(events, event.Event{
			ID:        event.GenerateID(event.SourceDevEvents, name, href),
			Name:      name,
			Source:    event.SourceDevEvents,
			URL:       href,
			Venue:     location,
			StartTime: strings.TrimSpace(sel.Find("time").First().AttrOr("datetime", "")),
		})
	})

	events = removeDuplicates(events)
	if len(events) == 0 {
		return nil, fmt.Errorf("no events parsed from dev.events listing")
	}

	return events, nil
}

// matchesCity reports whether a listing location refers to the requested city.
// Manitoba spellings count as Winnipeg for the default configuration.
func matchesCity(location, city string) bool {
	if location == "" {
		return false
	}

	loc := strings.ToLower(location)
	if strings.Contains(loc, strings.ToLower(city)) {
		return true
	}

	if strings.EqualFold(city, "Winnipeg") {
		for _, keyword := range []string{"manitoba", "mb", "wpg"} {
			if strings.Contains(loc, keyword) {
				return true
			}
		}
	}

	return false
}
