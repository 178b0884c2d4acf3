package behavior

import (
	"context"
	"testing"

	"codeberg.org/musegrid/server/internal/cache"
	"codeberg.org/musegrid/server/musegrid/interactions"
)

type fakeStats struct {
	stats     stats
	device    string
	statCalls int
}

func (f *fakeStats) Stats(_ context.Context, _ int64) (stats, error) {
	f.statCalls++
	return f.stats, nil
}

func (f *fakeStats) DominantDevice(_ context.Context, _ int64) (string, error) {
	return f.device, nil
}

type fakeActivity struct{}

func (f *fakeActivity) RecentByUser(_ context.Context, _ int64, _ int) ([]interactions.Interaction, error) {
	return nil, nil
}

func (f *fakeActivity) CountsByType(_ context.Context, _ int64) ([]interactions.TypeCount, error) {
	return []interactions.TypeCount{{Type: interactions.TypeView, Count: 3}}, nil
}

func newTestAggregator(t *testing.T, src *fakeStats) *Aggregator {
	t.Helper()

	store := cache.NewMemoryStore()
	t.Cleanup(func() { store.Close() }) //nolint:errcheck

	return NewAggregator(src, &fakeActivity{}, store)
}

func TestProfile_ColdStartDefaults(t *testing.T) {
	agg := newTestAggregator(t, &fakeStats{})

	profile, err := agg.Profile(context.Background(), 1)
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}

	if profile.ExplorationScore != 60 {
		t.Errorf("expected cold-start exploration score 60, got %f", profile.ExplorationScore)
	}

	if profile.QualityThreshold != 70 {
		t.Errorf("expected cold-start quality threshold 70, got %f", profile.QualityThreshold)
	}

	if profile.TotalInteractions != 0 {
		t.Errorf("expected 0 interactions, got %d", profile.TotalInteractions)
	}
}

func TestProfile_CachesResult(t *testing.T) {
	src := &fakeStats{stats: stats{TotalInteractions: 10, DistinctCategories: 4}}
	agg := newTestAggregator(t, src)
	ctx := context.Background()

	if _, err := agg.Profile(ctx, 1); err != nil {
		t.Fatalf("first Profile failed: %v", err)
	}

	if _, err := agg.Profile(ctx, 1); err != nil {
		t.Fatalf("second Profile failed: %v", err)
	}

	if src.statCalls != 1 {
		t.Errorf("expected stats to be queried once, got %d", src.statCalls)
	}
}

func TestExplorationScore_MonotoneInBreadth(t *testing.T) {
	narrow := explorationScore(20, 1)
	broad := explorationScore(20, 10)

	if broad <= narrow {
		t.Errorf("more distinct categories must raise exploration: %f <= %f", broad, narrow)
	}
}

func TestExplorationScore_FallsAsEngagementConcentrates(t *testing.T) {
	// same breadth, more repeat interactions = concentration
	spread := explorationScore(4, 4)
	concentrated := explorationScore(15, 4)

	if concentrated >= spread {
		t.Errorf("concentration must lower exploration: %f >= %f", concentrated, spread)
	}
}

func TestExplorationScore_Bounded(t *testing.T) {
	cases := []struct{ total, distinct int64 }{
		{1, 1}, {1, 50}, {1000, 1}, {1000, 500}, {20, 20},
	}

	for _, tc := range cases {
		got := explorationScore(tc.total, tc.distinct)
		if got < 0 || got > 100 {
			t.Errorf("explorationScore(%d, %d) = %f, out of [0,100]", tc.total, tc.distinct, got)
		}
	}
}

func TestQualityThreshold(t *testing.T) {
	if got := qualityThreshold(0, 0); got != 70 {
		t.Errorf("cold start must default to 70, got %f", got)
	}

	if got := qualityThreshold(10, 0); got != 70 {
		t.Errorf("no engaged ratings must default to 70, got %f", got)
	}

	low := qualityThreshold(10, 2.5)
	high := qualityThreshold(10, 4.8)

	if high <= low {
		t.Errorf("higher engaged ratings must raise the threshold: %f <= %f", high, low)
	}

	if got := qualityThreshold(10, 5.0); got > 95 {
		t.Errorf("threshold capped at 95, got %f", got)
	}

	if got := qualityThreshold(10, 0.5); got < 40 {
		t.Errorf("threshold floored at 40, got %f", got)
	}
}

func TestAnalyzePatterns(t *testing.T) {
	src := &fakeStats{
		stats:  stats{TotalInteractions: 7, DistinctCategories: 3, DistinctProviders: 2, AvgEngagement: 6.5},
		device: "mobile",
	}
	agg := newTestAggregator(t, src)

	patterns, err := agg.AnalyzePatterns(context.Background(), 1)
	if err != nil {
		t.Fatalf("AnalyzePatterns failed: %v", err)
	}

	if patterns.TotalInteractions != 7 {
		t.Errorf("expected 7 interactions, got %d", patterns.TotalInteractions)
	}

	if patterns.DominantDevice != "mobile" {
		t.Errorf("expected dominant device mobile, got %q", patterns.DominantDevice)
	}

	if len(patterns.CountsByType) != 1 {
		t.Errorf("expected counts by type to pass through, got %d entries", len(patterns.CountsByType))
	}
}
