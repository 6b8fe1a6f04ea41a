// Package prometheus registers and exposes the service metrics.
package prometheus

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector the service records. It satisfies the
// application layer's Metrics port.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	allocationSavesTotal *prometheus.CounterVec
	cacheLookupsTotal    *prometheus.CounterVec
	planEventsTotal      *prometheus.CounterVec
}

// NewMetrics builds and registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status_code"})

	m.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path"})

	m.allocationSavesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "allocation_saves_total",
		Help: "Allocation save attempts by outcome",
	}, []string{"outcome"})

	m.cacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_lookups_total",
		Help: "Cache lookups by surface and outcome",
	}, []string{"surface", "outcome"})

	m.planEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_events_total",
		Help: "Plan mutation events by kind",
	}, []string{"kind"})

	m.registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.allocationSavesTotal,
		m.cacheLookupsTotal,
		m.planEventsTotal,
	)
	return m
}

// Handler returns the scrape endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one served request.
func (m *Metrics) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, fmt.Sprintf("%d", statusCode)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// AllocationSaveOK counts an accepted allocation save.
func (m *Metrics) AllocationSaveOK() {
	m.allocationSavesTotal.WithLabelValues("ok").Inc()
}

// AllocationSaveRejected counts a save rejected by the sum invariant.
func (m *Metrics) AllocationSaveRejected() {
	m.allocationSavesTotal.WithLabelValues("rejected").Inc()
}

// CacheHit counts a cache hit for a read surface.
func (m *Metrics) CacheHit(surface string) {
	m.cacheLookupsTotal.WithLabelValues(surface, "hit").Inc()
}

// CacheMiss counts a cache miss for a read surface.
func (m *Metrics) CacheMiss(surface string) {
	m.cacheLookupsTotal.WithLabelValues(surface, "miss").Inc()
}

// RecordPlanEvent counts a published plan mutation event.
func (m *Metrics) RecordPlanEvent(kind string) {
	m.planEventsTotal.WithLabelValues(kind).Inc()
}
