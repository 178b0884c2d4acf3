package recommend

import (
	"context"

	"codeberg.org/musegrid/server/musegrid/behavior"
	"codeberg.org/musegrid/server/musegrid/catalog"
)

// Config holds the ranking knobs. Like the affinity constants these are
// tuned rather than derived, so all of them are adjustable.
type Config struct {
	// relevance blend weights
	CategoryWeight   float64 // affinity for the candidate's category
	ProviderWeight   float64 // affinity for the candidate's provider
	PopularityWeight float64 // featured flag + rating + downloads

	// NoveltyWeight scales the exploration bonus granted to categories the
	// user has no history with, proportional to their exploration score
	NoveltyWeight float64

	// SessionBoost is added when the candidate matches the category the user
	// is currently browsing
	SessionBoost float64

	// QualityPenalty multiplies the relevance of rated candidates below the
	// user's quality threshold
	QualityPenalty float64

	// MaxRunLength caps consecutive recommendations sharing a category or
	// provider before the diversity pass defers the next one
	MaxRunLength int

	// CandidatePoolFactor sizes the catalog candidate pool as a multiple of
	// the requested limit
	CandidatePoolFactor int
	MinCandidatePool    int

	// confidence curve: floor for cold-start users, rising with history and
	// saturating near max
	ConfidenceFloor      float64
	ConfidenceMax        float64
	ConfidenceSaturation float64

	// MaxReasons caps the human-readable reason strings per recommendation
	MaxReasons int
}

// returns the default ranking configuration
func DefaultConfig() Config {
	return Config{
		CategoryWeight:       0.40,
		ProviderWeight:       0.25,
		PopularityWeight:     0.25,
		NoveltyWeight:        0.10,
		SessionBoost:         0.05,
		QualityPenalty:       0.85,
		MaxRunLength:         2,
		CandidatePoolFactor:  4,
		MinCandidatePool:     40,
		ConfidenceFloor:      0.20,
		ConfidenceMax:        0.95,
		ConfidenceSaturation: 100,
		MaxReasons:           3,
	}
}

// Query is a personalized recommendation request
type Query struct {
	UserID          int64
	Limit           int
	ExcludeIDs      []int64
	SessionDuration int    // seconds spent in the current session
	CurrentCategory string // category the user is browsing right now
}

// Metadata carries the per-model recommendation scores returned to clients
type Metadata struct {
	RelevanceScore  float64  `json:"relevanceScore"`
	ConfidenceScore float64  `json:"confidenceScore"`
	Reasons         []string `json:"reasons"`
	DiversityFactor float64  `json:"diversityFactor"`
}

// Recommendation is a catalog model annotated with its scoring metadata.
// On the wire the model fields stay top-level with the metadata tucked under
// "_recommendation". Constructed fresh per request, never persisted.
type Recommendation struct {
	catalog.Model
	Metadata Metadata `json:"_recommendation"`
}

// response sources
const (
	SourcePersonalized     = "personalized"
	SourceFeaturedFallback = "featured_fallback"
)

// Response is what the facade hands to the HTTP layer. It never carries an
// error: recommendation failure degrades to the featured list.
type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
	Source          string           `json:"source"`
}

// CandidateSource supplies scoring candidates from the catalog
type CandidateSource interface {
	Candidates(ctx context.Context, excludeIDs []int64, limit int) ([]catalog.Model, error)
}

// FeaturedSource supplies the non-personalized fallback list
type FeaturedSource interface {
	Featured(ctx context.Context, limit int) ([]catalog.Model, error)
}

// AffinityReader supplies the user's current affinity scores
type AffinityReader interface {
	CategoryScores(ctx context.Context, userID int64) (map[string]float64, error)
	ProviderScores(ctx context.Context, userID int64) (map[string]float64, error)
}

// ProfileSource supplies the user's behavior profile
type ProfileSource interface {
	Profile(ctx context.Context, userID int64) (*behavior.Profile, error)
}

// Engine scores, ranks and diversifies candidate models for one user
type Engine struct {
	candidates CandidateSource
	affinities AffinityReader
	profiles   ProfileSource
	config     Config
}

// Facade is the externally-callable entry point wrapping the engine with the
// featured-models fallback
type Facade struct {
	engine   *Engine
	featured FeaturedSource
	config   Config
}
