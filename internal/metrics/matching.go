package metrics

import "github.com/prometheus/client_golang/prometheus"

// Matching engine Prometheus metrics.
var (
	EmbeddingsComputedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "resume_matcher",
			Name:      "embeddings_computed_total",
			Help:      "Total number of document embeddings computed",
		},
	)

	EmbeddingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "resume_matcher",
			Name:      "embedding_duration_seconds",
			Help:      "Document embedding duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	MatchRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resume_matcher",
			Name:      "match_runs_total",
			Help:      "Total number of job match runs",
		},
		[]string{"status"},
	)

	MatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "resume_matcher",
			Name:      "match_duration_seconds",
			Help:      "Job match run duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		},
	)

	MatchCorpusSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "resume_matcher",
			Name:      "match_corpus_size",
			Help:      "Number of resumes scored per match run",
			Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
		},
	)

	SearchRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "resume_matcher",
			Name:      "search_requests_total",
			Help:      "Total number of semantic search requests",
		},
	)

	PIIRedactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resume_matcher",
			Name:      "pii_redactions_total",
			Help:      "Total PII items redacted from stored documents",
		},
		[]string{"kind"}, // "email" / "phone"
	)

	UploadCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resume_matcher",
			Name:      "upload_cache_total",
			Help:      "Duplicate-upload cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var matchingMetricsRegistered bool

// RegisterMatchingMetrics registers Prometheus matching metrics. Must be called once from main.
func RegisterMatchingMetrics() {
	if matchingMetricsRegistered {
		return
	}
	prometheus.MustRegister(EmbeddingsComputedTotal)
	prometheus.MustRegister(EmbeddingDuration)
	prometheus.MustRegister(MatchRunsTotal)
	prometheus.MustRegister(MatchDuration)
	prometheus.MustRegister(MatchCorpusSize)
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(PIIRedactionsTotal)
	prometheus.MustRegister(UploadCacheTotal)
	matchingMetricsRegistered = true
}
