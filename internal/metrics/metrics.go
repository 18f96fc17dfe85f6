// Package metrics provides Prometheus instrumentation for the query pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors the ranking pipeline reports into. Label
// "mode" distinguishes the search and recommendation paths.
type Metrics struct {
	QueriesTotal   *prometheus.CounterVec
	FetchFailures  *prometheus.CounterVec
	QueryDuration  *prometheus.HistogramVec
	CandidateCount *prometheus.HistogramVec
	CacheHits      prometheus.Counter
	CacheMisses    prometheus.Counter
	StaleDiscards  prometheus.Counter
}

// New registers the pipeline collectors with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		QueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "match_engine",
			Name:      "queries_total",
			Help:      "Queries executed, by mode and final state.",
		}, []string{"mode", "state"}),
		FetchFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "match_engine",
			Name:      "fetch_failures_total",
			Help:      "Store fetch failures, by mode.",
		}, []string{"mode"}),
		QueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "match_engine",
			Name:      "query_duration_seconds",
			Help:      "End-to-end query latency, by mode.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"mode"}),
		CandidateCount: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "match_engine",
			Name:      "candidate_window_size",
			Help:      "Candidates fetched from the store before client-side refinement.",
			Buckets:   []float64{0, 10, 25, 50, 100, 200, 500},
		}, []string{"mode"}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "match_engine",
			Name:      "result_cache_hits_total",
			Help:      "Search result cache hits.",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "match_engine",
			Name:      "result_cache_misses_total",
			Help:      "Search result cache misses.",
		}),
		StaleDiscards: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "match_engine",
			Name:      "stale_results_discarded_total",
			Help:      "Results discarded because their filter state was superseded.",
		}),
	}
}

// NewNop returns collectors bound to a throwaway registry, for callers that
// do not care about instrumentation (primarily tests).
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

// ObserveQuery records one finished query.
func (m *Metrics) ObserveQuery(mode, state string, took time.Duration, candidates int) {
	m.QueriesTotal.WithLabelValues(mode, state).Inc()
	m.QueryDuration.WithLabelValues(mode).Observe(took.Seconds())
	if candidates >= 0 {
		m.CandidateCount.WithLabelValues(mode).Observe(float64(candidates))
	}
}
