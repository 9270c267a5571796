package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	apiRequestsTotal      *prometheus.CounterVec
	apiLatencySeconds     *prometheus.HistogramVec
	apiErrorsTotal        *prometheus.CounterVec
	snapshotWritesTotal   *prometheus.CounterVec
	articleSearchRequests *prometheus.CounterVec
	articleSearchLatency  prometheus.Histogram
)

// RegisterMetrics initialises the Prometheus collectors used across the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "beat_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "beat_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		apiErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "beat_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		snapshotWritesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "beat_snapshot_writes_total",
			Help: "Outcomes of best-effort state snapshot writes.",
		}, []string{"outcome"})

		articleSearchRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "beat_article_search_requests_total",
			Help: "Article search requests by cache outcome.",
		}, []string{"result"})

		articleSearchLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "beat_article_search_latency_seconds",
			Help:    "Latency distribution for upstream article searches.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		})

		prometheus.MustRegister(
			apiRequestsTotal,
			apiLatencySeconds,
			apiErrorsTotal,
			snapshotWritesTotal,
			articleSearchRequests,
			articleSearchLatency,
		)
	})
}

// APIRequests exposes the counter for API requests.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram for API requests.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// APIErrors exposes the counter for API error responses.
func APIErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return apiErrorsTotal
}

// SnapshotWrites exposes the counter for snapshot write outcomes.
func SnapshotWrites() *prometheus.CounterVec {
	RegisterMetrics()
	return snapshotWritesTotal
}

// ArticleSearchRequests exposes the counter for article search cache outcomes.
func ArticleSearchRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return articleSearchRequests
}

// ArticleSearchLatency exposes the upstream search latency histogram.
func ArticleSearchLatency() prometheus.Histogram {
	RegisterMetrics()
	return articleSearchLatency
}
