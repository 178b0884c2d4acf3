package users

import (
	"context"

	"codeberg.org/musegrid/server/musegrid/affinity"
	"codeberg.org/musegrid/server/musegrid/behavior"
)

// Analyzer supplies behavior profiles and pattern summaries
type Analyzer interface {
	Profile(ctx context.Context, userID int64) (*behavior.Profile, error)
	AnalyzePatterns(ctx context.Context, userID int64) (*behavior.Patterns, error)
}

// Ranker supplies the user's strongest affinities
type Ranker interface {
	TopCategories(ctx context.Context, userID int64, limit int) ([]affinity.CategoryAffinity, error)
	TopProviders(ctx context.Context, userID int64, limit int) ([]affinity.ProviderAffinity, error)
}

// AnalyticsResponse pairs the behavior profile with its pattern summary
type AnalyticsResponse struct {
	UserID   int64              `json:"userId"`
	Profile  *behavior.Profile  `json:"profile"`
	Patterns *behavior.Patterns `json:"patterns"`
}

// InsightsResponse explains what drives a user's recommendations
type InsightsResponse struct {
	UserID        int64                       `json:"userId"`
	Profile       *behavior.Profile           `json:"profile"`
	TopCategories []affinity.CategoryAffinity `json:"topCategories"`
	TopProviders  []affinity.ProviderAffinity `json:"topProviders"`
}
