package affinity

import (
	"context"

	"codeberg.org/musegrid/server/internal/metrics"
	"codeberg.org/musegrid/server/musegrid/catalog"
	"codeberg.org/musegrid/server/musegrid/interactions"
)

// per-type base boosts: low-friction interactions (a view) signal weak
// intent, high-commitment interactions (generate, download) signal strong
// intent
var baseBoosts = map[interactions.InteractionType]float64{
	interactions.TypeView:     0.1,
	interactions.TypeLike:     0.3,
	interactions.TypeBookmark: 0.5,
	interactions.TypeGenerate: 0.7,
	interactions.TypeShare:    0.4,
	interactions.TypeDownload: 0.6,
}

// Store is the persistence surface the updater needs
type Store interface {
	GetCategory(ctx context.Context, userID int64, category string) (score float64, count int64, found bool, err error)
	UpsertCategory(ctx context.Context, userID int64, category string, score float64) error
	GetProvider(ctx context.Context, userID int64, provider string) (score float64, count int64, found bool, err error)
	UpsertProvider(ctx context.Context, userID int64, provider string, score float64) error
}

// Updater incrementally adjusts per-category and per-provider affinity
// scores from interaction events. Deliberately not idempotent: the recorder
// is the single call site per genuine user action.
type Updater struct {
	store  Store
	config Config
}

// creates a new affinity updater
func NewUpdater(store Store, config Config) *Updater {
	return &Updater{store: store, config: config}
}

// computes the engagement-weighted boost for one interaction, capped at 1.0
func (u *Updater) Boost(kind interactions.InteractionType, engagementLevel int) float64 {
	base, ok := baseBoosts[kind]
	if !ok {
		return 0
	}

	boost := base * (float64(engagementLevel) / 10.0) * u.config.EngagementMultiplier

	return clamp01(boost)
}

// computes the diminishing factor applied to boosts as history accumulates
func (u *Updater) decay(interactionCount int64) float64 {
	return 1.0 / (1.0 + u.config.GrowthDamping*float64(interactionCount))
}

// computes the post-update score: nudged toward 1.0, saturating there
func (u *Updater) nextScore(current, boost float64, interactionCount int64) float64 {
	return clamp01(current + boost*u.decay(interactionCount))
}

// scales a provider boost by model quality: affinity toward a provider grows
// faster when the user engages with that provider's higher-rated models
func (u *Updater) ratingMultiplier(rating float64) float64 {
	if rating <= 0 {
		return 1.0
	}

	if rating > u.config.RatingScale {
		rating = u.config.RatingScale
	}

	return u.config.RatingFloor + (1.0-u.config.RatingFloor)*(rating/u.config.RatingScale)
}

// applies one interaction to both affinity tables. Read-modify-write without
// locking: concurrent updates for the same user may lose an increment, an
// accepted approximation for best-effort engagement scoring.
func (u *Updater) Apply(ctx context.Context, interaction interactions.Interaction, model *catalog.Model) error {
	boost := u.Boost(interaction.Type, interaction.EngagementLevel)

	if err := u.UpdateCategoryAffinity(ctx, interaction.UserID, model.Category, boost); err != nil {
		return err
	}

	return u.UpdateProviderAffinity(ctx, interaction.UserID, model.Provider, boost, model.Rating)
}

// nudges the user's category affinity upward by boost
func (u *Updater) UpdateCategoryAffinity(ctx context.Context, userID int64, category string, boost float64) error {
	current, count, found, err := u.store.GetCategory(ctx, userID, category)
	if err != nil {
		return err
	}

	score := clamp01(boost)
	if found {
		score = u.nextScore(current, boost, count)
	}

	if err := u.store.UpsertCategory(ctx, userID, category, score); err != nil {
		return err
	}

	metrics.AffinityUpdates.Inc()
	return nil
}

// nudges the user's provider affinity upward by boost, weighted by the
// model's rating when available
func (u *Updater) UpdateProviderAffinity(ctx context.Context, userID int64, provider string, boost, rating float64) error {
	current, count, found, err := u.store.GetProvider(ctx, userID, provider)
	if err != nil {
		return err
	}

	weighted := boost * u.ratingMultiplier(rating)

	score := clamp01(weighted)
	if found {
		score = u.nextScore(current, weighted, count)
	}

	if err := u.store.UpsertProvider(ctx, userID, provider, score); err != nil {
		return err
	}

	metrics.AffinityUpdates.Inc()
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}
