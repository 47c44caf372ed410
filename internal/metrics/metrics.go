package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "linkping"

var (
	// LinksCreated counts successfully registered short links
	LinksCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "links_created_total",
		Help:      "Number of short links created.",
	})

	// Redirects counts redirect lookups by outcome
	Redirects = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "redirects_total",
		Help:      "Number of redirect requests by outcome.",
	}, []string{"outcome"})

	// Notifications counts owner notification attempts by result
	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Number of owner notification sends by result.",
	}, []string{"result"})

	// PollCycles counts completed getUpdates calls, successful or not
	PollCycles = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "poll_cycles_total",
		Help:      "Number of update fetch attempts.",
	})

	// PollErrors counts failed getUpdates calls
	PollErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "poll_errors_total",
		Help:      "Number of update fetch attempts that failed.",
	})

	// UpdatesProcessed counts inbound messages examined by the poller
	UpdatesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updates_processed_total",
		Help:      "Number of inbound updates processed.",
	})

	// HTTPRequestDuration observes request latency by method and status
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status"})
)
