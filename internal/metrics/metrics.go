// Package metrics exposes Prometheus instrumentation for the notifier.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "techevents_runs_total",
		Help: "Total notifier invocations, labelled by outcome.",
	}, []string{"status"})

	EventsFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "techevents_events_fetched_total",
		Help: "Total events fetched, labelled by source.",
	}, []string{"source"})

	MessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "techevents_messages_sent_total",
		Help: "Total Telegram delivery attempts, labelled by status.",
	}, []string{"status"})

	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "techevents_run_duration_seconds",
		Help:    "End-to-end invocation latency in seconds.",
		Buckets: prometheus.DefBuckets,
	})
)
