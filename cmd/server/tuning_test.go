package main

import (
	"testing"

	"codeberg.org/musegrid/server/musegrid/affinity"
	"codeberg.org/musegrid/server/musegrid/recommend"
	"github.com/stretchr/testify/assert"
)

func TestRecommendConfigFromEnv_Defaults(t *testing.T) {
	assert.Equal(t, recommend.DefaultConfig(), recommendConfigFromEnv())
}

func TestRecommendConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("RECOMMEND_CATEGORY_WEIGHT", "0.55")
	t.Setenv("RECOMMEND_MAX_RUN_LENGTH", "3")
	t.Setenv("RECOMMEND_QUALITY_PENALTY", "not-a-number")

	cfg := recommendConfigFromEnv()

	assert.Equal(t, 0.55, cfg.CategoryWeight)
	assert.Equal(t, 3, cfg.MaxRunLength)
	// malformed values keep the default
	assert.Equal(t, recommend.DefaultConfig().QualityPenalty, cfg.QualityPenalty)
	// untouched knobs keep theirs
	assert.Equal(t, recommend.DefaultConfig().ProviderWeight, cfg.ProviderWeight)
}

func TestAffinityConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("AFFINITY_GROWTH_DAMPING", "0.1")

	cfg := affinityConfigFromEnv()

	assert.Equal(t, 0.1, cfg.GrowthDamping)
	assert.Equal(t, affinity.DefaultConfig().EngagementMultiplier, cfg.EngagementMultiplier)
}
