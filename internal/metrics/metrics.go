package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "slotmatcher"

var (
	RemoteRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_requests_total",
			Help:      "Requests sent to the matching service, by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	FallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_total",
			Help:      "Read operations answered from the seed dataset.",
		},
		[]string{"operation"},
	)

	ActiveWatches = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_watches",
			Help:      "Lifecycle watch sessions currently polling.",
		},
	)
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
