package indexer

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects Prometheus metrics of the indexer.
type Metrics struct {
	registry *prometheus.Registry

	eventsConsumed *prometheus.CounterVec
	eventErrors    prometheus.Counter
	storeLatency   prometheus.Histogram
	httpRequests   *prometheus.CounterVec
}

// NewMetrics creates a Metrics set with its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		eventsConsumed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arena",
			Subsystem: "indexer",
			Name:      "events_consumed_total",
			Help:      "Number of contract notifications consumed, by event name.",
		}, []string{"event"}),
		eventErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "arena",
			Subsystem: "indexer",
			Name:      "event_errors_total",
			Help:      "Number of notifications that failed to decode or apply.",
		}),
		storeLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "arena",
			Subsystem: "indexer",
			Name:      "store_latency_seconds",
			Help:      "Latency of store updates.",
			Buckets:   prometheus.DefBuckets,
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arena",
			Subsystem: "indexer",
			Name:      "http_requests_total",
			Help:      "Number of API requests, by route and status code.",
		}, []string{"route", "code"}),
	}
}

// Handler serves the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveEvent counts one consumed contract notification.
func (m *Metrics) ObserveEvent(name string) {
	m.eventsConsumed.WithLabelValues(name).Inc()
}

// ObserveEventError counts one failed notification.
func (m *Metrics) ObserveEventError() {
	m.eventErrors.Inc()
}

// ObserveStore records the duration of one store update.
func (m *Metrics) ObserveStore(started time.Time) {
	m.storeLatency.Observe(time.Since(started).Seconds())
}

// ObserveRequest counts one served API request.
func (m *Metrics) ObserveRequest(route, code string) {
	m.httpRequests.WithLabelValues(route, code).Inc()
}
