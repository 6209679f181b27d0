package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsLogged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventlog_events_logged_total",
		Help: "Total number of event records written to the sink, labelled by event type.",
	}, []string{"event_type"})

	EventsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventlog_events_failed_total",
		Help: "Total number of logging calls that failed, labelled by failure reason.",
	}, []string{"reason"})

	LogDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "eventlog_log_duration_ms",
		Help:    "Render-and-write latency of a single logging call in milliseconds.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
	})
)

// Failure reason labels.
const (
	ReasonUnsupportedField = "unsupported_field"
	ReasonSinkWrite        = "sink_write"
)
