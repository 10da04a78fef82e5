package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of recommendation generation including fallbacks",
		Buckets: prometheus.DefBuckets,
	})

	RecommendTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total recommendation requests served",
	})

	FallbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_fallback_total",
			Help: "Recommendation requests answered by a fallback, by kind.",
		},
		[]string{"kind"},
	)

	CatalogSkipsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_catalog_skips_total",
		Help: "Interaction/booking records skipped because the product is not in the catalog",
	})

	InteractionsRecordedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interactions_recorded_total",
			Help: "Interactions persisted, by kind.",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendTotal,
		FallbackTotal,
		CatalogSkipsTotal,
		InteractionsRecordedTotal,
	)
}
