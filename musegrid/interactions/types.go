package interactions

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InteractionType is the closed set of tracked user actions. Anything outside
// this set is rejected at the boundary.
type InteractionType string

const (
	TypeView     InteractionType = "view"
	TypeLike     InteractionType = "like"
	TypeBookmark InteractionType = "bookmark"
	TypeGenerate InteractionType = "generate"
	TypeShare    InteractionType = "share"
	TypeDownload InteractionType = "download"
)

// Valid reports whether t is one of the enumerated interaction kinds
func (t InteractionType) Valid() bool {
	switch t {
	case TypeView, TypeLike, TypeBookmark, TypeGenerate, TypeShare, TypeDownload:
		return true
	default:
		return false
	}
}

// AllTypes lists every tracked interaction kind
func AllTypes() []InteractionType {
	return []InteractionType{TypeView, TypeLike, TypeBookmark, TypeGenerate, TypeShare, TypeDownload}
}

const (
	// DefaultEngagement is assumed when a tracked interaction carries no
	// engagement level, shared by the recorder and the affinity side channel
	DefaultEngagement = 5

	defaultReferral = "direct"
)

// represents a single recorded user-model interaction. Immutable once
// recorded; the interactions table is an append-only log.
type Interaction struct {
	ID              string          `json:"id"`
	UserID          int64           `json:"user_id"`
	ModelID         int64           `json:"model_id"`
	Type            InteractionType `json:"interaction_type"`
	EngagementLevel int             `json:"engagement_level"` // 1-10
	SessionDuration int             `json:"session_duration,omitempty"`
	DeviceType      string          `json:"device_type,omitempty"` // mobile|tablet|desktop
	ReferralSource  string          `json:"referral_source"`
	OccurredAt      time.Time       `json:"occurred_at"`
}

// contains caller-supplied data for recording one interaction
type RecordParams struct {
	UserID          int64           `json:"user_id"`
	ModelID         int64           `json:"model_id"`
	Type            InteractionType `json:"interaction_type"`
	EngagementLevel int             `json:"engagement_level"`
	SessionDuration int             `json:"session_duration"`
	DeviceType      string          `json:"device_type"`
	ReferralSource  string          `json:"referral_source"`
}

// per-type interaction counts for analytics
type TypeCount struct {
	Type  InteractionType `json:"interaction_type"`
	Count int64           `json:"count"`
}

// handles interaction database operations
type Repository struct {
	db *pgxpool.Pool
}

// ValidationError reports a malformed interaction payload. Handlers convert
// it into an HTTP 400 naming the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
