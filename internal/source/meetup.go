package source

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/wpgtech/tech-events/internal/event"
	"github.com/wpgtech/tech-events/internal/logger"
)

const (
	meetupBaseURL = "https://www.meetup.com"
	fetchTimeout  = 30 * time.Second
	userAgent     = "wpg-tech-events/1.0 (github.com/wpgtech/tech-events)"
)

// MeetupScraper fetches events from meetup.com search pages.
type MeetupScraper struct {
	client  *resty.Client
	baseURL string
}

// NewMeetupScraper creates a meetup.com scraper.
func NewMeetupScraper() *MeetupScraper {
	return &MeetupScraper{
		client: resty.New().
			SetTimeout(fetchTimeout).
			SetHeader("User-Agent", userAgent),
		baseURL: meetupBaseURL,
	}
}

// Name returns the provider's source tag.
func (m *MeetupScraper) Name() string { return event.SourceMeetup }

// GetEvents fetches and parses the meetup.com event search results for the
// given city and category. On any fetch or parse failure it returns an error;
// callers are expected to fall back to sample data.
func (m *MeetupScraper) GetEvents(city, category string, period time.Duration) ([]event.Event, error) {
	searchURL := fmt.Sprintf("%s/find/?location=ca--mb--%s&keywords=%s&source=EVENTS",
		m.baseURL, url.QueryEscape(strings.ToLower(city)), url.QueryEscape(category))

	resp, err := m.client.R().Get(searchURL)
	if err != nil {
		return nil, fmt.Errorf("fetching meetup search page: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("meetup search returned status %d", resp.StatusCode())
	}

	events, err := m.parseSearchResults(resp.String())
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("no events parsed from meetup search page")
	}

	return events, nil
}

// parseSearchResults extracts event cards from the search results HTML.
// Meetup renders most content client-side, so this only finds events when
// the server-rendered markup includes them.
func (m *MeetupScraper) parseSearchResults(html string) ([]event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing meetup HTML: %w", err)
	}

	var events []event.Event

	doc.Find("a[href*='/events/']").Each(func(i int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}

		name := strings.TrimSpace(sel.Find("h3, [class*='title']").First().Text())
		if name == "" {
			name = strings.TrimSpace(sel.Text())
		}
		if name == "" || len(name) < 5 {
			return
		}

		if strings.HasPrefix(href, "/") {
			href = m.baseURL + href
		}

		evt := event.Event{
			ID:        event.GenerateID(event.SourceMeetup, name, href),
			Name:      name,
			Source:    event.SourceMeetup,
			URL:       href,
			Venue:     strings.TrimSpace(sel.Find("[class*='venue'], [class*='location']").First().Text()),
			Group:     strings.TrimSpace(sel.Find("[class*='group']").First().Text()),
			StartTime: strings.TrimSpace(sel.Find("time").First().AttrOr("datetime", "")),
		}
		events = append(events, evt)
	})

	logger.Debug("Parsed meetup search results", logger.Fields{"count": len(events)})

	return removeDuplicates(events), nil
}
