// Package metrics holds the Prometheus collectors of the service.
// A nil *Metrics is valid and records nothing, so services can be built
// without a registry in tests and CLI tools.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "servicehub"

// Search kinds used as the "kind" label.
const (
	SearchKeyword = "keyword"
	SearchName    = "name"
	SearchPrefix  = "prefix"
)

// Soft failure stages used as the "stage" label.
const (
	StageEngine      = "engine"
	StageRecordQuery = "record_query"
)

// Metrics groups every collector registered by the application.
type Metrics struct {
	registry *prometheus.Registry

	searches        *prometheus.CounterVec
	searchFailures  *prometheus.CounterVec
	searchResults   *prometheus.HistogramVec
	consultations   prometheus.Counter
	resolutions     *prometheus.CounterVec
	conflictRetries prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	historyPurged   prometheus.Counter
}

// New registers all collectors on a fresh registry together with the
// Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of searches executed.",
		}, []string{"kind"}),
		searchFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_soft_failures_total",
			Help:      "Search failures answered with an empty result.",
		}, []string{"stage"}),
		searchResults: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results_size",
			Help:      "Number of listings returned by a search.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}, []string{"kind"}),
		consultations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consultations_recorded_total",
			Help:      "Total number of consultations recorded.",
		}),
		resolutions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identity_resolutions_total",
			Help:      "Actor resolutions by kind.",
		}, []string{"kind"}),
		conflictRetries: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identity_conflict_retries_total",
			Help:      "Guest saves retried after a unique email conflict.",
		}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		historyPurged: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_history_purged_total",
			Help:      "Search history rows removed by retention cleanup.",
		}),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveSearch counts a completed search and the size of its result.
func (m *Metrics) ObserveSearch(kind string, results int) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(kind).Inc()
	m.searchResults.WithLabelValues(kind).Observe(float64(results))
}

// SearchSoftFailure counts a search error that was swallowed.
func (m *Metrics) SearchSoftFailure(stage string) {
	if m == nil {
		return
	}
	m.searchFailures.WithLabelValues(stage).Inc()
}

// ConsultationRecorded counts a stored consultation.
func (m *Metrics) ConsultationRecorded() {
	if m == nil {
		return
	}
	m.consultations.Inc()
}

// ActorResolved counts a resolved actor by its kind.
func (m *Metrics) ActorResolved(kind string) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(kind).Inc()
}

// ConflictRetry counts one retry of a guest save.
func (m *Metrics) ConflictRetry() {
	if m == nil {
		return
	}
	m.conflictRetries.Inc()
}

// HistoryPurged adds the number of purged search history rows.
func (m *Metrics) HistoryPurged(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.historyPurged.Add(float64(n))
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, statusClass(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
