package affinity

import (
	"context"
	"math"
	"testing"

	"codeberg.org/musegrid/server/musegrid/catalog"
	"codeberg.org/musegrid/server/musegrid/interactions"
)

type fakeRow struct {
	score float64
	count int64
}

type fakeStore struct {
	categories map[string]*fakeRow
	providers  map[string]*fakeRow
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		categories: make(map[string]*fakeRow),
		providers:  make(map[string]*fakeRow),
	}
}

func (f *fakeStore) GetCategory(_ context.Context, _ int64, category string) (float64, int64, bool, error) {
	row, ok := f.categories[category]
	if !ok {
		return 0, 0, false, nil
	}

	return row.score, row.count, true, nil
}

func (f *fakeStore) UpsertCategory(_ context.Context, _ int64, category string, score float64) error {
	if row, ok := f.categories[category]; ok {
		row.score = score
		row.count++
		return nil
	}

	f.categories[category] = &fakeRow{score: score, count: 1}
	return nil
}

func (f *fakeStore) GetProvider(_ context.Context, _ int64, provider string) (float64, int64, bool, error) {
	row, ok := f.providers[provider]
	if !ok {
		return 0, 0, false, nil
	}

	return row.score, row.count, true, nil
}

func (f *fakeStore) UpsertProvider(_ context.Context, _ int64, provider string, score float64) error {
	if row, ok := f.providers[provider]; ok {
		row.score = score
		row.count++
		return nil
	}

	f.providers[provider] = &fakeRow{score: score, count: 1}
	return nil
}

func TestBoost(t *testing.T) {
	updater := NewUpdater(newFakeStore(), DefaultConfig())

	cases := []struct {
		kind       interactions.InteractionType
		engagement int
		want       float64
	}{
		// bookmark at engagement 8: min(1, 0.5 * 0.8 * 1.5) = 0.6
		{interactions.TypeBookmark, 8, 0.6},
		// view at engagement 5: 0.1 * 0.5 * 1.5 = 0.075
		{interactions.TypeView, 5, 0.075},
		// generate at engagement 10 would be 1.05, capped at 1.0
		{interactions.TypeGenerate, 10, 1.0},
		{interactions.TypeLike, 10, 0.45},
		{interactions.TypeShare, 5, 0.3},
		{interactions.TypeDownload, 10, 0.9},
	}

	for _, tc := range cases {
		got := updater.Boost(tc.kind, tc.engagement)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Boost(%s, %d) = %f, want %f", tc.kind, tc.engagement, got, tc.want)
		}
	}
}

func TestBoost_UnknownTypeIsZero(t *testing.T) {
	updater := NewUpdater(newFakeStore(), DefaultConfig())

	if got := updater.Boost("hover", 10); got != 0 {
		t.Errorf("expected zero boost for unknown type, got %f", got)
	}
}

func TestUpdateCategoryAffinity_FirstInteractionCreatesRow(t *testing.T) {
	store := newFakeStore()
	updater := NewUpdater(store, DefaultConfig())

	err := updater.UpdateCategoryAffinity(context.Background(), 1, "photorealistic", 0.6)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	row := store.categories["photorealistic"]
	if row == nil {
		t.Fatal("expected a row to be created")
	}

	if math.Abs(row.score-0.6) > 1e-9 {
		t.Errorf("expected initial score 0.6, got %f", row.score)
	}

	if row.count != 1 {
		t.Errorf("expected interaction count 1, got %d", row.count)
	}
}

func TestUpdateCategoryAffinity_StrictlyIncreasesAndSaturates(t *testing.T) {
	store := newFakeStore()
	store.categories["photorealistic"] = &fakeRow{score: 0.2, count: 3}
	updater := NewUpdater(store, DefaultConfig())

	err := updater.UpdateCategoryAffinity(context.Background(), 1, "photorealistic", 0.6)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	row := store.categories["photorealistic"]

	if row.score <= 0.2 {
		t.Errorf("score must strictly increase, got %f", row.score)
	}

	if row.score > 1.0 {
		t.Errorf("score must not exceed 1.0, got %f", row.score)
	}

	if row.count != 4 {
		t.Errorf("expected count to increase by exactly 1, got %d", row.count)
	}
}

func TestUpdateCategoryAffinity_ClampHoldsUnderRepeatedBoosts(t *testing.T) {
	store := newFakeStore()
	updater := NewUpdater(store, DefaultConfig())
	ctx := context.Background()

	for i := 0; i < 200; i++ {
		if err := updater.UpdateCategoryAffinity(ctx, 1, "anime", 0.9); err != nil {
			t.Fatalf("update %d failed: %v", i, err)
		}

		row := store.categories["anime"]
		if row.score < 0 || row.score > 1 {
			t.Fatalf("score out of [0,1] after %d updates: %f", i+1, row.score)
		}
	}

	if store.categories["anime"].count != 200 {
		t.Errorf("expected 200 interactions counted, got %d", store.categories["anime"].count)
	}
}

func TestDecay_DiminishesWithHistory(t *testing.T) {
	updater := NewUpdater(newFakeStore(), DefaultConfig())

	early := updater.decay(1)
	late := updater.decay(100)

	if late >= early {
		t.Errorf("decay must diminish increments as history grows: decay(1)=%f decay(100)=%f", early, late)
	}

	if updater.decay(0) != 1.0 {
		t.Errorf("decay(0) should be 1.0, got %f", updater.decay(0))
	}
}

func TestRatingMultiplier(t *testing.T) {
	updater := NewUpdater(newFakeStore(), DefaultConfig())

	if got := updater.ratingMultiplier(0); got != 1.0 {
		t.Errorf("unrated model must not scale the boost, got %f", got)
	}

	if got := updater.ratingMultiplier(5.0); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("top-rated model should give multiplier 1.0, got %f", got)
	}

	low := updater.ratingMultiplier(1.0)
	high := updater.ratingMultiplier(4.5)

	if low >= high {
		t.Errorf("higher-rated models must grow affinity faster: %f >= %f", low, high)
	}

	if low < 0.5 {
		t.Errorf("rating multiplier must not fall below the floor: %f", low)
	}
}

func TestApply_UpdatesBothTables(t *testing.T) {
	store := newFakeStore()
	updater := NewUpdater(store, DefaultConfig())

	interaction := interactions.Interaction{
		UserID:          1,
		ModelID:         42,
		Type:            interactions.TypeBookmark,
		EngagementLevel: 8,
	}

	model := &catalog.Model{
		ID:       42,
		Category: "photorealistic",
		Provider: "runware",
		Rating:   4.5,
	}

	if err := updater.Apply(context.Background(), interaction, model); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if store.categories["photorealistic"] == nil {
		t.Error("expected category affinity row")
	}

	if store.providers["runware"] == nil {
		t.Error("expected provider affinity row")
	}

	// provider initial score is boost * rating multiplier:
	// 0.6 * (0.5 + 0.5*4.5/5) = 0.57
	got := store.providers["runware"].score
	if math.Abs(got-0.57) > 1e-9 {
		t.Errorf("expected provider score 0.57, got %f", got)
	}
}
