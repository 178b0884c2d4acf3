package behavior

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"codeberg.org/musegrid/server/internal/cache"
	"codeberg.org/musegrid/server/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new behavior repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns the raw per-user aggregates in one query
func (r *Repository) Stats(ctx context.Context, userID int64) (stats, error) {
	var s stats

	err := r.db.QueryRow(ctx, queryStats, userID).Scan(
		&s.TotalInteractions,
		&s.DistinctCategories,
		&s.DistinctProviders,
		&s.AvgEngagement,
		&s.EngagedAvgRating,
	)
	if err != nil {
		return stats{}, fmt.Errorf("failed to query behavior stats: %w", err)
	}

	return s, nil
}

// returns the device type the user interacts from most often
func (r *Repository) DominantDevice(ctx context.Context, userID int64) (string, error) {
	var device string

	err := r.db.QueryRow(ctx, queryDominantDevice, userID).Scan(&device)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("failed to query dominant device: %w", err)
	}

	return device, nil
}

// creates a new behavior aggregator. The cache store is required; pass a
// memory store when Redis is not configured.
func NewAggregator(repo StatsSource, activity ActivitySource, store cache.Store) *Aggregator {
	return &Aggregator{repo: repo, activity: activity, cache: store}
}

// returns the user's behavior profile, computing and caching it on miss.
// Users with no history get the cold-start defaults rather than an error.
func (a *Aggregator) Profile(ctx context.Context, userID int64) (*Profile, error) {
	key := fmt.Sprintf("behavior:profile:%d", userID)

	if payload, found, err := a.cache.Get(ctx, key); err == nil && found {
		var profile Profile
		if err := json.Unmarshal(payload, &profile); err == nil {
			return &profile, nil
		}
	}

	s, err := a.repo.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		UserID:            userID,
		ExplorationScore:  explorationScore(s.TotalInteractions, s.DistinctCategories),
		QualityThreshold:  qualityThreshold(s.TotalInteractions, s.EngagedAvgRating),
		TotalInteractions: s.TotalInteractions,
	}

	if payload, err := json.Marshal(profile); err == nil {
		if err := a.cache.Set(ctx, key, payload, profileCacheTTL); err != nil {
			// cache failures are not worth failing the request over
			logger.ErrorErr(err, "failed to cache behavior profile", "user_id", userID)
		}
	}

	return profile, nil
}

// returns the full analytics summary for the behavior endpoints
func (a *Aggregator) AnalyzePatterns(ctx context.Context, userID int64) (*Patterns, error) {
	s, err := a.repo.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts, err := a.activity.CountsByType(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := a.activity.RecentByUser(ctx, userID, 20)
	if err != nil {
		return nil, err
	}

	device, err := a.repo.DominantDevice(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Patterns{
		TotalInteractions:  s.TotalInteractions,
		CountsByType:       counts,
		DistinctCategories: s.DistinctCategories,
		DistinctProviders:  s.DistinctProviders,
		AvgEngagement:      s.AvgEngagement,
		DominantDevice:     device,
		RecentActivity:     recent,
	}, nil
}

// derives the exploration score: trends upward with breadth (many distinct
// categories), downward as engagement concentrates narrowly
func explorationScore(totalInteractions, distinctCategories int64) float64 {
	if totalInteractions == 0 {
		return DefaultExplorationScore
	}

	// breadth ratio over a bounded window so long histories still move the score
	window := totalInteractions
	if window > 20 {
		window = 20
	}

	score := 40.0 + 60.0*float64(distinctCategories)/float64(window)

	return clampRange(score, 0, 100)
}

// derives the quality threshold from the ratings of positively-engaged
// models (rating percentile proxy on the catalog's 0-5 scale)
func qualityThreshold(totalInteractions int64, engagedAvgRating float64) float64 {
	if totalInteractions == 0 || engagedAvgRating <= 0 {
		return DefaultQualityThreshold
	}

	return clampRange(20.0*engagedAvgRating, 40, 95)
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
