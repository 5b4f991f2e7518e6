package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	totalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "syspulse_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "syspulse_http_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	samplesIngested = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "syspulse_samples_ingested_total",
			Help: "Metric sample rows persisted, by kind",
		},
		[]string{"kind"},
	)

	historyFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "syspulse_history_fallbacks_total",
			Help: "History reads answered with synthetic data",
		},
	)

	staleSnapshotMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "syspulse_stale_snapshot_misses_total",
			Help: "Real-time reads rejected for stale or missing samples",
		},
	)
)

func init() {
	prometheus.MustRegister(totalRequests)
	prometheus.MustRegister(requestDuration)
	prometheus.MustRegister(samplesIngested)
	prometheus.MustRegister(historyFallbacks)
	prometheus.MustRegister(staleSnapshotMisses)
}
