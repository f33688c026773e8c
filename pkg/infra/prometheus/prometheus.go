package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "tabletally_requests_total",
			Help: "Total number of admin API requests processed",
		},
		[]string{"method", "path", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tabletally_latency_ms",
			Help:    "Request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"method", "path"},
	)

	ActiveSessions = promauto.With(registerer).NewGauge(
		prometheus.GaugeOpts{
			Name: "tabletally_active_sessions",
			Help: "Number of sessions currently being billed",
		},
	)

	SessionsSettledTotal = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "tabletally_sessions_settled_total",
			Help: "Total number of sessions settled",
		},
	)

	SessionsCancelledTotal = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "tabletally_sessions_cancelled_total",
			Help: "Total number of sessions cancelled without billing",
		},
	)

	RevenueTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "tabletally_revenue_total",
			Help: "Settled revenue by payment method",
		},
		[]string{"method"},
	)
)

func init() {
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

func Registry() *prometheus.Registry {
	return registry
}
