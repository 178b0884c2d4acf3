package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	InteractionsRecorded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "musegrid_interactions_recorded_total",
		Help: "Total interaction events recorded, by interaction type",
	}, []string{"type"})

	InteractionsDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "musegrid_interactions_dropped_total",
		Help: "Total interaction events lost after buffer and direct insert both failed",
	})

	RecommendationsServed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "musegrid_recommendations_served_total",
		Help: "Total recommendation responses served, by source (personalized or featured_fallback)",
	}, []string{"source"})

	RecommendationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "musegrid_recommendation_duration_seconds",
		Help:    "Recommendation computation duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	AffinityUpdates = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "musegrid_affinity_updates_total",
		Help: "Total affinity row updates applied",
	})
)

func init() {
	prometheus.MustRegister(
		InteractionsRecorded,
		InteractionsDropped,
		RecommendationsServed,
		RecommendationDuration,
		AffinityUpdates,
	)
}

// Handler returns the /metrics endpoint handler
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// ObserveRecommendation records the duration of one recommendation request
func ObserveRecommendation(start time.Time) {
	RecommendationDuration.Observe(time.Since(start).Seconds())
}
