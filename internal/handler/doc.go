// Package handler orchestrates one notifier invocation end to end.
//
// A single pass runs fetch, filter, format and send, and converts every
// outcome into a structured Response. Recoverable conditions (no future
// events, missing delivery configuration, a failed send) are success paths;
// only an unexpected panic crosses to the top-level recover, which alerts
// best-effort and returns the failure Response. Nothing propagates past the
// handler boundary.
package handler
