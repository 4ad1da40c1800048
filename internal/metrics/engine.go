package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// SearchesTotal counts search queries by sort key.
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "archivesearch",
			Name:      "searches_total",
			Help:      "Total number of search queries by sort key",
		},
		[]string{"sort"},
	)

	// SearchesEmpty counts searches that returned no results.
	SearchesEmpty = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "archivesearch",
			Name:      "searches_empty_total",
			Help:      "Total number of searches returning zero results",
		},
	)

	// SuggestionsTotal counts autocomplete requests.
	SuggestionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "archivesearch",
			Name:      "suggestions_total",
			Help:      "Total number of suggestion requests",
		},
	)

	// RecommendationsTotal counts recommendation requests by seed kind.
	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "archivesearch",
			Name:      "recommendations_total",
			Help:      "Total number of recommendation requests by seed kind",
		},
		[]string{"seed"},
	)
)

// RegisterEngineMetrics registers search engine metrics. Called explicitly
// from the composition root (no init()).
func RegisterEngineMetrics() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchesEmpty)
	prometheus.MustRegister(SuggestionsTotal)
	prometheus.MustRegister(RecommendationsTotal)
}
