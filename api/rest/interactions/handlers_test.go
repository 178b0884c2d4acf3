package interactions

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codeberg.org/musegrid/server/internal/feed"
	"codeberg.org/musegrid/server/musegrid/catalog"
	"codeberg.org/musegrid/server/musegrid/interactions"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	id  string
	err error
}

func (f *fakeRecorder) Record(_ context.Context, _ interactions.RecordParams) (string, error) {
	return f.id, f.err
}

type fakeApplier struct {
	applied chan interactions.Interaction
}

func (f *fakeApplier) Apply(_ context.Context, interaction interactions.Interaction, _ *catalog.Model) error {
	f.applied <- interaction
	return nil
}

type fakeModels struct{}

func (f *fakeModels) GetByID(_ context.Context, id int64) (*catalog.Model, error) {
	return &catalog.Model{ID: id, Name: "test model", Category: "portrait", Provider: "luma"}, nil
}

type fakePublisher struct {
	events chan feed.Event
}

func (f *fakePublisher) Publish(event feed.Event) {
	f.events <- event
}

func setupTrackRouter(recorder Recorder) (*gin.Engine, *fakeApplier, *fakePublisher) {
	gin.SetMode(gin.TestMode)

	applier := &fakeApplier{applied: make(chan interactions.Interaction, 1)}
	publisher := &fakePublisher{events: make(chan feed.Event, 1)}

	router := gin.New()
	router.POST("/interactions/track", TrackHandler(recorder, applier, &fakeModels{}, publisher))

	return router, applier, publisher
}

func postTrack(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/interactions/track", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestTrackHandler_RecordsInteraction(t *testing.T) {
	router, applier, publisher := setupTrackRouter(&fakeRecorder{id: "evt-1"})

	w := postTrack(t, router, TrackRequest{
		UserID:          7,
		ModelID:         42,
		InteractionType: "like",
		EngagementLevel: 8,
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp TrackResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "evt-1", resp.InteractionID)
	assert.True(t, resp.Success)

	// affinity update and feed publish run after the response
	select {
	case applied := <-applier.applied:
		assert.Equal(t, int64(7), applied.UserID)
		assert.Equal(t, interactions.TypeLike, applied.Type)
	case <-time.After(time.Second):
		t.Fatal("affinity update never ran")
	}

	select {
	case event := <-publisher.events:
		assert.Equal(t, feed.TypeInteraction, event.Type)
		assert.Equal(t, int64(42), event.ModelID)
	case <-time.After(time.Second):
		t.Fatal("feed event never published")
	}
}

func TestTrackHandler_DefaultsEngagementForSideEffects(t *testing.T) {
	router, applier, _ := setupTrackRouter(&fakeRecorder{id: "evt-2"})

	w := postTrack(t, router, TrackRequest{
		UserID:          7,
		ModelID:         42,
		InteractionType: "view",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	select {
	case applied := <-applier.applied:
		assert.Equal(t, interactions.DefaultEngagement, applied.EngagementLevel)
	case <-time.After(time.Second):
		t.Fatal("affinity update never ran")
	}
}

func TestTrackHandler_ValidationFailureNamesField(t *testing.T) {
	recorder := &fakeRecorder{err: &interactions.ValidationError{Field: "modelId", Reason: "must be a positive integer"}}
	router, _, _ := setupTrackRouter(recorder)

	w := postTrack(t, router, TrackRequest{UserID: 7, InteractionType: "like"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "modelId")
}

func TestTrackHandler_MalformedBody(t *testing.T) {
	router, _, _ := setupTrackRouter(&fakeRecorder{id: "evt-1"})

	req := httptest.NewRequest(http.MethodPost, "/interactions/track", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrackHandler_StorageFailure(t *testing.T) {
	recorder := &fakeRecorder{err: context.DeadlineExceeded}
	router, _, _ := setupTrackRouter(recorder)

	w := postTrack(t, router, TrackRequest{UserID: 7, ModelID: 42, InteractionType: "view"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
