package interactions

import (
	"context"

	"codeberg.org/musegrid/server/internal/feed"
	"codeberg.org/musegrid/server/musegrid/catalog"
	"codeberg.org/musegrid/server/musegrid/interactions"
)

// TrackRequest is the wire format for POST /interactions/track
type TrackRequest struct {
	UserID          int64  `json:"userId"`
	ModelID         int64  `json:"modelId"`
	InteractionType string `json:"interactionType"`
	EngagementLevel int    `json:"engagementLevel"`
	SessionDuration int    `json:"sessionDuration"`
	DeviceType      string `json:"deviceType"`
	ReferralSource  string `json:"referralSource"`
}

// TrackResponse acknowledges a recorded interaction
type TrackResponse struct {
	Success       bool   `json:"success"`
	InteractionID string `json:"interactionId"`
}

// Recorder validates and records interaction events
type Recorder interface {
	Record(ctx context.Context, params interactions.RecordParams) (string, error)
}

// Applier updates affinity scores from a recorded interaction
type Applier interface {
	Apply(ctx context.Context, interaction interactions.Interaction, model *catalog.Model) error
}

// ModelSource resolves the model an interaction targets
type ModelSource interface {
	GetByID(ctx context.Context, id int64) (*catalog.Model, error)
}

// Publisher pushes activity events to the live feed
type Publisher interface {
	Publish(event feed.Event)
}
