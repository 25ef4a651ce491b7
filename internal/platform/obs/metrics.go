package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics bundles the Prometheus collectors used across the service.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	OptimizeRuns     *prometheus.CounterVec
	OptimizeDuration prometheus.Histogram

	DistanceCalls    *prometheus.CounterVec
	DistanceCacheHit *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{Registry: prometheus.NewRegistry()}

	m.HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "smartroute_http_requests_total",
		Help: "HTTP requests by method, route pattern, and status code.",
	}, []string{"method", "route", "status"})

	m.HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "smartroute_http_request_duration_seconds",
		Help:    "HTTP request duration by route pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	m.OptimizeRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "smartroute_optimize_runs_total",
		Help: "Optimization runs by outcome.",
	}, []string{"outcome"})

	m.OptimizeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "smartroute_optimize_duration_seconds",
		Help:    "Wall-clock duration of a full optimization run.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	})

	m.DistanceCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "smartroute_distance_provider_calls_total",
		Help: "Distance provider calls by provider name.",
	}, []string{"provider"})

	m.DistanceCacheHit = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "smartroute_distance_cache_lookups_total",
		Help: "Distance cache lookups by result (hit/miss).",
	}, []string{"result"})

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.OptimizeRuns,
		m.OptimizeDuration,
		m.DistanceCalls,
		m.DistanceCacheHit,
	)

	return m
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the process-wide metrics bundle, creating it on first use.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = NewMetrics()
	})
	return defaultMetrics
}
