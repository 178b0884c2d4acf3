package recommend

import (
	"context"
	"errors"
	"testing"

	"codeberg.org/musegrid/server/musegrid/catalog"
)

type fakeFeatured struct {
	models []catalog.Model
	err    error
}

func (f *fakeFeatured) Featured(_ context.Context, _ int) ([]catalog.Model, error) {
	return f.models, f.err
}

func brokenEngine() *Engine {
	return newTestEngine(&fakeCandidates{}, nil, &fakeProfiles{err: errors.New("db down")})
}

func TestPersonalized_ServesEngineResults(t *testing.T) {
	candidates := &fakeCandidates{models: []catalog.Model{testModel(1, "portrait", "luma")}}
	engine := newTestEngine(candidates, nil, nil)
	facade := NewFacade(engine, &fakeFeatured{}, DefaultConfig())

	response := facade.Personalized(context.Background(), Query{UserID: 1, Limit: 5})

	if response.Source != SourcePersonalized {
		t.Errorf("expected source %q, got %q", SourcePersonalized, response.Source)
	}

	if len(response.Recommendations) != 1 {
		t.Errorf("expected 1 recommendation, got %d", len(response.Recommendations))
	}
}

func TestPersonalized_EngineFailureFallsBackToFeatured(t *testing.T) {
	featured := &fakeFeatured{models: []catalog.Model{
		testModel(1, "portrait", "luma"),
		testModel(2, "landscape", "flux"),
	}}
	facade := NewFacade(brokenEngine(), featured, DefaultConfig())

	response := facade.Personalized(context.Background(), Query{UserID: 1, Limit: 5})

	if response.Source != SourceFeaturedFallback {
		t.Errorf("expected source %q, got %q", SourceFeaturedFallback, response.Source)
	}

	if len(response.Recommendations) == 0 {
		t.Fatal("fallback must still return recommendations")
	}

	meta := response.Recommendations[0].Metadata
	if meta.ConfidenceScore != DefaultConfig().ConfidenceFloor {
		t.Errorf("fallback confidence must sit at the floor, got %f", meta.ConfidenceScore)
	}

	if len(meta.Reasons) == 0 {
		t.Error("fallback recommendations must carry a reason")
	}
}

func TestPersonalized_DoubleFailureReturnsEmptyList(t *testing.T) {
	featured := &fakeFeatured{err: errors.New("db down")}
	facade := NewFacade(brokenEngine(), featured, DefaultConfig())

	response := facade.Personalized(context.Background(), Query{UserID: 1, Limit: 5})

	if response.Recommendations == nil {
		t.Fatal("recommendations must be an empty list, not nil")
	}

	if len(response.Recommendations) != 0 {
		t.Errorf("expected empty list, got %d entries", len(response.Recommendations))
	}

	if response.Source != SourceFeaturedFallback {
		t.Errorf("expected source %q, got %q", SourceFeaturedFallback, response.Source)
	}
}

func TestNormalizeLimit(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, defaultLimit},
		{-3, defaultLimit},
		{5, 5},
		{50, 50},
		{200, maxLimit},
	}

	for _, tc := range cases {
		if got := normalizeLimit(tc.in); got != tc.want {
			t.Errorf("normalizeLimit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
