package tui

import (
	"codeberg.org/musegrid/server/musegrid/affinity"
	"codeberg.org/musegrid/server/musegrid/behavior"
	"codeberg.org/musegrid/server/musegrid/recommend"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// represents the current state of the TUI
type AppState int

const (
	StatePrompt AppState = iota
	StateLoading
	StateBrowse
	StateDetail
)

// main TUI application model
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	input   textinput.Model
	spinner spinner.Model

	client *Client
	userID int64

	recommendations []recommend.Recommendation
	insights        *InsightsResponse
	cursor          int

	viewport        viewport.Model
	glamourRenderer *glamour.TermRenderer
	viewportReady   bool
}

// sent when recommendations arrive from the API
type RecommendationsMsg struct {
	response recommend.Response
}

// sent when insights arrive from the API
type InsightsMsg struct {
	insights *InsightsResponse
}

// sent when an API call fails
type ErrorMsg struct {
	err error
}

// InsightsResponse mirrors the recommendation-insights wire format
type InsightsResponse struct {
	UserID        int64                       `json:"userId"`
	Profile       *behavior.Profile           `json:"profile"`
	TopCategories []affinity.CategoryAffinity `json:"topCategories"`
	TopProviders  []affinity.ProviderAffinity `json:"topProviders"`
}
