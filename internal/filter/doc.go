// Package filter narrows fetched events down to the ones worth announcing.
//
// Future keeps only events starting strictly after a reference time, and
// GroupByTime partitions them into the fixed digest buckets (Today, This Week,
// Next Week, Later). Both treat an unparsable start time as an expected
// condition: the event is dropped with a warning, never an error.
package filter
