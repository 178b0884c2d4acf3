package behavior

import (
	"context"
	"time"

	"codeberg.org/musegrid/server/internal/cache"
	"codeberg.org/musegrid/server/musegrid/interactions"
	"github.com/jackc/pgx/v5/pgxpool"
)

// cold-start defaults for users with no interaction history
const (
	DefaultExplorationScore = 60.0
	DefaultQualityThreshold = 70.0
)

const profileCacheTTL = 5 * time.Minute

// Profile summarizes a user's behavioral signals. It governs how much the
// recommendation engine favors novelty vs. proven preferences.
type Profile struct {
	UserID            int64   `json:"user_id"`
	ExplorationScore  float64 `json:"exploration_score"` // 0-100, higher = broader taste
	QualityThreshold  float64 `json:"quality_threshold"` // 0-100, minimum rating percentile engaged with
	TotalInteractions int64   `json:"total_interactions"`
}

// Patterns is the analytics summary exposed on the behavior endpoints
type Patterns struct {
	TotalInteractions  int64                      `json:"total_interactions"`
	CountsByType       []interactions.TypeCount   `json:"counts_by_type"`
	DistinctCategories int64                      `json:"distinct_categories"`
	DistinctProviders  int64                      `json:"distinct_providers"`
	AvgEngagement      float64                    `json:"avg_engagement"`
	DominantDevice     string                     `json:"dominant_device,omitempty"`
	RecentActivity     []interactions.Interaction `json:"recent_activity"`
}

// raw per-user aggregates pulled in one query
type stats struct {
	TotalInteractions  int64
	DistinctCategories int64
	DistinctProviders  int64
	AvgEngagement      float64
	EngagedAvgRating   float64 // avg rating of models the user engaged with positively
}

// handles behavior aggregate queries
type Repository struct {
	db *pgxpool.Pool
}

// StatsSource supplies the raw aggregates profiles derive from
type StatsSource interface {
	Stats(ctx context.Context, userID int64) (stats, error)
	DominantDevice(ctx context.Context, userID int64) (string, error)
}

// ActivitySource supplies per-user interaction history for pattern summaries
type ActivitySource interface {
	RecentByUser(ctx context.Context, userID int64, limit int) ([]interactions.Interaction, error)
	CountsByType(ctx context.Context, userID int64) ([]interactions.TypeCount, error)
}

// Aggregator computes derived behavior profiles, cached behind a TTL store
type Aggregator struct {
	repo     StatsSource
	activity ActivitySource
	cache    cache.Store
}
