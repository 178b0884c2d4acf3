package main

import (
	"codeberg.org/musegrid/server/internal/config"
	"codeberg.org/musegrid/server/musegrid/affinity"
	"codeberg.org/musegrid/server/musegrid/recommend"
)

// The scoring constants are tuned rather than derived, so each one can be
// overridden from the environment without a rebuild. Unset or malformed
// variables keep the default.

func recommendConfigFromEnv() recommend.Config {
	cfg := recommend.DefaultConfig()

	cfg.CategoryWeight = config.EnvFloat("RECOMMEND_CATEGORY_WEIGHT", cfg.CategoryWeight)
	cfg.ProviderWeight = config.EnvFloat("RECOMMEND_PROVIDER_WEIGHT", cfg.ProviderWeight)
	cfg.PopularityWeight = config.EnvFloat("RECOMMEND_POPULARITY_WEIGHT", cfg.PopularityWeight)
	cfg.NoveltyWeight = config.EnvFloat("RECOMMEND_NOVELTY_WEIGHT", cfg.NoveltyWeight)
	cfg.SessionBoost = config.EnvFloat("RECOMMEND_SESSION_BOOST", cfg.SessionBoost)
	cfg.QualityPenalty = config.EnvFloat("RECOMMEND_QUALITY_PENALTY", cfg.QualityPenalty)
	cfg.MaxRunLength = config.EnvInt("RECOMMEND_MAX_RUN_LENGTH", cfg.MaxRunLength)
	cfg.CandidatePoolFactor = config.EnvInt("RECOMMEND_CANDIDATE_POOL_FACTOR", cfg.CandidatePoolFactor)
	cfg.MinCandidatePool = config.EnvInt("RECOMMEND_MIN_CANDIDATE_POOL", cfg.MinCandidatePool)
	cfg.ConfidenceFloor = config.EnvFloat("RECOMMEND_CONFIDENCE_FLOOR", cfg.ConfidenceFloor)
	cfg.ConfidenceMax = config.EnvFloat("RECOMMEND_CONFIDENCE_MAX", cfg.ConfidenceMax)
	cfg.ConfidenceSaturation = config.EnvFloat("RECOMMEND_CONFIDENCE_SATURATION", cfg.ConfidenceSaturation)
	cfg.MaxReasons = config.EnvInt("RECOMMEND_MAX_REASONS", cfg.MaxReasons)

	return cfg
}

func affinityConfigFromEnv() affinity.Config {
	cfg := affinity.DefaultConfig()

	cfg.EngagementMultiplier = config.EnvFloat("AFFINITY_ENGAGEMENT_MULTIPLIER", cfg.EngagementMultiplier)
	cfg.GrowthDamping = config.EnvFloat("AFFINITY_GROWTH_DAMPING", cfg.GrowthDamping)
	cfg.RatingFloor = config.EnvFloat("AFFINITY_RATING_FLOOR", cfg.RatingFloor)
	cfg.RatingScale = config.EnvFloat("AFFINITY_RATING_SCALE", cfg.RatingScale)

	return cfg
}
