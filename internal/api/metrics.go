package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the server's Prometheus collectors on a private registry,
// so that multiple servers (notably in tests) never collide.
type metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	diagramErrors   *prometheus.CounterVec
	cacheHits       prometheus.Counter
	diagramDuration prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sankey_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		diagramErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sankey_diagram_errors_total",
				Help: "Failed diagram computations by error code",
			},
			[]string{"code"},
		),
		cacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sankey_cache_hits_total",
				Help: "Diagram computations served from cache",
			},
		),
		diagramDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "sankey_diagram_duration_seconds",
				Help: "Duration of diagram computations",
			},
		),
	}
	m.registry.MustRegister(m.requests, m.diagramErrors, m.cacheHits, m.diagramDuration)
	return m
}
