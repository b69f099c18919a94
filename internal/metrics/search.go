package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "discovery",
			Name:      "search_duration_seconds",
			Help:      "End-to-end hybrid search duration in seconds",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"status"},
	)

	SearchResultsTotal = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "discovery",
			Name:      "search_fused_results",
			Help:      "Number of fused candidates per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 200},
		},
	)

	BackendErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "discovery",
			Name:      "backend_errors_total",
			Help:      "Retrieval backend failures",
		},
		[]string{"backend"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchResultsTotal)
	prometheus.MustRegister(BackendErrorsTotal)
	searchMetricsRegistered = true
}
