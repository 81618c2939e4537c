// Package source produces the event list the rest of the pipeline consumes.
//
// Each upstream site (meetup.com, eventbrite.ca, dev.events) has a Provider
// that attempts a live fetch and parse. Scraping these sites reliably is out
// of scope, so every provider degrades to a known sample set on failure, and
// the Adapter guarantees the pipeline always receives a non-empty list: if no
// provider returns anything usable it substitutes a fixed fallback dataset.
// Fetch failures are logged, and the Provider interface stays stable so a
// real scraping backend can be dropped in without touching downstream code.
package source
