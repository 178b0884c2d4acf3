package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"

	"codeberg.org/musegrid/server/musegrid/behavior"
	"codeberg.org/musegrid/server/musegrid/catalog"
)

// creates a recommendation engine over the given sources
func NewEngine(candidates CandidateSource, affinities AffinityReader, profiles ProfileSource, config Config) *Engine {
	return &Engine{
		candidates: candidates,
		affinities: affinities,
		profiles:   profiles,
		config:     config,
	}
}

// Recommend builds the ranked, diversified recommendation list for one user.
// An empty candidate pool yields an empty list, not an error.
func (e *Engine) Recommend(ctx context.Context, query Query) ([]Recommendation, error) {
	profile, err := e.profiles.Profile(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load behavior profile: %w", err)
	}

	categoryScores, err := e.affinities.CategoryScores(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category affinities: %w", err)
	}

	providerScores, err := e.affinities.ProviderScores(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider affinities: %w", err)
	}

	pool := query.Limit * e.config.CandidatePoolFactor
	if pool < e.config.MinCandidatePool {
		pool = e.config.MinCandidatePool
	}

	models, err := e.candidates.Candidates(ctx, query.ExcludeIDs, pool)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	if len(models) == 0 {
		return []Recommendation{}, nil
	}

	scored := make([]Recommendation, 0, len(models))

	for _, model := range models {
		scored = append(scored, e.score(model, query, profile, categoryScores, providerScores))
	}

	sortByRank(scored)
	scored = e.diversify(scored)

	if len(scored) > query.Limit {
		scored = scored[:query.Limit]
	}

	return scored, nil
}

// scores a single candidate against the user's signals
func (e *Engine) score(model catalog.Model, query Query, profile *behavior.Profile, categoryScores, providerScores map[string]float64) Recommendation {
	catAffinity, hasCat := categoryScores[model.Category]
	provAffinity, hasProv := providerScores[model.Provider]

	relevance := e.config.CategoryWeight*catAffinity +
		e.config.ProviderWeight*provAffinity +
		e.config.PopularityWeight*popularity(model)

	// explorers get a push toward categories they have no history with
	if !hasCat {
		relevance += e.config.NoveltyWeight * profile.ExplorationScore / 100
	}

	if query.CurrentCategory != "" && model.Category == query.CurrentCategory {
		relevance += e.config.SessionBoost
	}

	// down-rank rated models below the user's quality bar
	if model.Rating > 0 && model.Rating*20 < profile.QualityThreshold {
		relevance *= e.config.QualityPenalty
	}

	return Recommendation{
		Model: model,
		Metadata: Metadata{
			RelevanceScore:  clamp01(relevance),
			ConfidenceScore: e.confidence(profile.TotalInteractions, hasCat, hasProv),
			Reasons:         e.reasons(model, catAffinity, provAffinity, !hasCat, profile),
			DiversityFactor: 1,
		},
	}
}

// popularity blends the curation flag, community rating and download volume
// into a 0-1 signal independent of the requesting user
func popularity(model catalog.Model) float64 {
	score := 0.4 * model.Rating / 5

	if model.Featured {
		score += 0.4
	}

	// log scale so the biggest models don't drown everything else
	score += 0.2 * math.Min(1, math.Log10(1+float64(model.Downloads))/6)

	return clamp01(score)
}

// confidence grows with the user's history length, saturating near the
// configured maximum, and is discounted when the candidate's category or
// provider carry no affinity signal at all
func (e *Engine) confidence(totalInteractions int64, hasCat, hasProv bool) float64 {
	base := e.config.ConfidenceFloor

	if totalInteractions > 0 {
		growth := math.Min(1, math.Log1p(float64(totalInteractions))/math.Log1p(e.config.ConfidenceSaturation))
		base += (e.config.ConfidenceMax - e.config.ConfidenceFloor) * growth
	}

	coverage := 0.5
	if hasCat {
		coverage += 0.25
	}

	if hasProv {
		coverage += 0.25
	}

	confidence := base * coverage
	if confidence < e.config.ConfidenceFloor {
		confidence = e.config.ConfidenceFloor
	}

	return clamp01(confidence)
}

// deterministic ranking: relevance, then confidence, then recency, then id
func sortByRank(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]

		if a.Metadata.RelevanceScore != b.Metadata.RelevanceScore {
			return a.Metadata.RelevanceScore > b.Metadata.RelevanceScore
		}

		if a.Metadata.ConfidenceScore != b.Metadata.ConfidenceScore {
			return a.Metadata.ConfidenceScore > b.Metadata.ConfidenceScore
		}

		if !a.Model.CreatedAt.Equal(b.Model.CreatedAt) {
			return a.Model.CreatedAt.After(b.Model.CreatedAt)
		}

		return a.Model.ID < b.Model.ID
	})
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
