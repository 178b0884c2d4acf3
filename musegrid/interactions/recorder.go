package interactions

import (
	"context"
	"time"

	"codeberg.org/musegrid/server/internal/logger"
	"codeberg.org/musegrid/server/internal/metrics"
	"github.com/google/uuid"
)

// Sink persists interactions directly to durable storage
type Sink interface {
	Insert(ctx context.Context, interaction Interaction) error
}

// Queue buffers interactions for later persistence
type Queue interface {
	Push(ctx context.Context, interaction Interaction) error
}

// Recorder validates and records interaction events. The fast path goes
// through the queue; when the queue is unavailable it falls back to a direct
// insert. Recording never retries: tracking is best-effort and must not
// block the user action that triggered it.
type Recorder struct {
	sink  Sink
	queue Queue // may be nil when the server runs without Redis
}

// creates a new interaction recorder
func NewRecorder(sink Sink, queue Queue) *Recorder {
	return &Recorder{sink: sink, queue: queue}
}

// validates params, fills defaults and appends the interaction, returning its
// id. A *ValidationError means the payload was malformed; any other error is
// a storage failure the caller should log and swallow.
func (r *Recorder) Record(ctx context.Context, params RecordParams) (string, error) {
	interaction, err := buildInteraction(params)
	if err != nil {
		return "", err
	}

	if r.queue != nil {
		err := r.queue.Push(ctx, *interaction)
		if err == nil {
			metrics.InteractionsRecorded.WithLabelValues(string(interaction.Type)).Inc()
			return interaction.ID, nil
		}

		logger.ErrorErr(err, "interaction buffer unavailable, falling back to direct insert",
			"user_id", interaction.UserID,
			"model_id", interaction.ModelID,
		)
	}

	if err := r.sink.Insert(ctx, *interaction); err != nil {
		metrics.InteractionsDropped.Inc()
		return "", err
	}

	metrics.InteractionsRecorded.WithLabelValues(string(interaction.Type)).Inc()
	return interaction.ID, nil
}

// checks params and builds the immutable interaction record
func buildInteraction(params RecordParams) (*Interaction, error) {
	if params.UserID <= 0 {
		return nil, &ValidationError{Field: "userId", Reason: "must be a positive integer"}
	}

	if params.ModelID <= 0 {
		return nil, &ValidationError{Field: "modelId", Reason: "must be a positive integer"}
	}

	if !params.Type.Valid() {
		return nil, &ValidationError{Field: "interactionType", Reason: "unrecognized interaction type"}
	}

	engagement := params.EngagementLevel
	if engagement == 0 {
		engagement = DefaultEngagement
	}

	if engagement < 1 || engagement > 10 {
		return nil, &ValidationError{Field: "engagementLevel", Reason: "must be between 1 and 10"}
	}

	if params.SessionDuration < 0 {
		return nil, &ValidationError{Field: "sessionDuration", Reason: "must not be negative"}
	}

	switch params.DeviceType {
	case "", "mobile", "tablet", "desktop":
	default:
		return nil, &ValidationError{Field: "deviceType", Reason: "must be mobile, tablet or desktop"}
	}

	referral := params.ReferralSource
	if referral == "" {
		referral = defaultReferral
	}

	return &Interaction{
		ID:              uuid.NewString(),
		UserID:          params.UserID,
		ModelID:         params.ModelID,
		Type:            params.Type,
		EngagementLevel: engagement,
		SessionDuration: params.SessionDuration,
		DeviceType:      params.DeviceType,
		ReferralSource:  referral,
		OccurredAt:      time.Now().UTC(),
	}, nil
}
