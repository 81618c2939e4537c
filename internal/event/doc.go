// Package event provides types and functions for representing local tech events.
//
// Events are immutable value records flowing through the fetch/filter/format
// pipeline. Start and end times travel as ISO-8601 text because they come from
// semi-trusted external sources; ParseStartTime is the single place that turns
// them into a time.Time, and an unparsable start time is an expected condition,
// never a fatal one.
package event
