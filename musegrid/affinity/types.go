package affinity

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config controls affinity growth. The reference constants are tuned, not
// derived, so every one of them is exposed for adjustment.
type Config struct {
	// EngagementMultiplier scales the engagement-weighted base boost.
	// Default: 1.5
	EngagementMultiplier float64

	// GrowthDamping diminishes boosts as interaction_count grows, preventing
	// repeated low-value interactions from drifting a score to 1.0.
	// decay = 1 / (1 + GrowthDamping * interactionCount). Default: 0.05
	GrowthDamping float64

	// RatingFloor is the provider-boost multiplier applied to an unrated or
	// zero-rated model; the multiplier rises linearly to 1.0 at RatingScale.
	// Default: 0.5
	RatingFloor float64

	// RatingScale is the catalog's maximum model rating. Default: 5.0
	RatingScale float64
}

// returns the default affinity configuration
func DefaultConfig() Config {
	return Config{
		EngagementMultiplier: 1.5,
		GrowthDamping:        0.05,
		RatingFloor:          0.5,
		RatingScale:          5.0,
	}
}

// represents a user's inferred preference for a category, in [0, 1]
type CategoryAffinity struct {
	UserID           int64     `json:"user_id"`
	Category         string    `json:"category"`
	Score            float64   `json:"affinity_score"`
	InteractionCount int64     `json:"interaction_count"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// represents a user's inferred preference for a provider, in [0, 1]
type ProviderAffinity struct {
	UserID           int64     `json:"user_id"`
	Provider         string    `json:"provider"`
	Score            float64   `json:"affinity_score"`
	InteractionCount int64     `json:"interaction_count"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// handles affinity database operations
type Repository struct {
	db *pgxpool.Pool
}
