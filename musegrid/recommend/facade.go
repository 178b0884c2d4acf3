package recommend

import (
	"context"
	"time"

	"codeberg.org/musegrid/server/internal/logger"
	"codeberg.org/musegrid/server/internal/metrics"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// creates the recommendation facade
func NewFacade(engine *Engine, featured FeaturedSource, config Config) *Facade {
	return &Facade{engine: engine, featured: featured, config: config}
}

// Personalized answers a recommendation query. It never returns an error for
// engine failures: those degrade to the curated featured list so the client
// always has something to render.
func (f *Facade) Personalized(ctx context.Context, query Query) Response {
	start := time.Now()
	defer metrics.ObserveRecommendation(start)

	query.Limit = normalizeLimit(query.Limit)

	recs, err := f.engine.Recommend(ctx, query)
	if err != nil {
		logger.ErrorErr(err, "recommendation engine failed, serving featured fallback", "user_id", query.UserID)
		return f.fallback(ctx, query)
	}

	metrics.RecommendationsServed.WithLabelValues(SourcePersonalized).Inc()

	return Response{Recommendations: recs, Source: SourcePersonalized}
}

// serves the featured list dressed as recommendations. A failure here still
// returns an empty list rather than an error.
func (f *Facade) fallback(ctx context.Context, query Query) Response {
	response := Response{
		Recommendations: []Recommendation{},
		Source:          SourceFeaturedFallback,
	}

	models, err := f.featured.Featured(ctx, query.Limit)
	if err != nil {
		logger.ErrorErr(err, "featured fallback failed", "user_id", query.UserID)
		return response
	}

	for _, model := range models {
		response.Recommendations = append(response.Recommendations, Recommendation{
			Model: model,
			Metadata: Metadata{
				RelevanceScore:  popularity(model),
				ConfidenceScore: f.config.ConfidenceFloor,
				Reasons:         []string{"Featured by our curators"},
				DiversityFactor: 1,
			},
		})
	}

	metrics.RecommendationsServed.WithLabelValues(SourceFeaturedFallback).Inc()

	return response
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}

	if limit > maxLimit {
		return maxLimit
	}

	return limit
}
