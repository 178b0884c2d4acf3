package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"codeberg.org/musegrid/server/musegrid/recommend"
	tea "github.com/charmbracelet/bubbletea"
)

// timeout for API requests
const requestTimeout = 15 * time.Second

// manages HTTP requests to the musegrid REST API
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// creates a new REST client from the environment
func NewClient() *Client {
	endpoint := os.Getenv("MUSEGRID_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &Client{
		endpoint: endpoint,
		token:    os.Getenv("MUSEGRID_API_TOKEN"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// fetches personalized recommendations for a user
func (c *Client) Recommendations(ctx context.Context, userID int64, limit int) (*recommend.Response, error) {
	url := fmt.Sprintf("%s/api/v1/recommendations?userId=%d&limit=%d", c.endpoint, userID, limit)

	var response recommend.Response
	if err := c.getJSON(ctx, url, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// fetches recommendation insights for a user (requires a token)
func (c *Client) Insights(ctx context.Context, userID int64) (*InsightsResponse, error) {
	url := fmt.Sprintf("%s/api/v1/users/%d/recommendation-insights", c.endpoint, userID)

	var insights InsightsResponse
	if err := c.getJSON(ctx, url, &insights); err != nil {
		return nil, err
	}

	return &insights, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp apiErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}

		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// returns a tea.Cmd that fetches recommendations
func (c *Client) RecommendationsCmd(userID int64, limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		response, err := c.Recommendations(ctx, userID, limit)
		if err != nil {
			return ErrorMsg{err: err}
		}

		return RecommendationsMsg{response: *response}
	}
}

// returns a tea.Cmd that fetches insights
func (c *Client) InsightsCmd(userID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		insights, err := c.Insights(ctx, userID)
		if err != nil {
			// insights are optional garnish on the browse view
			return InsightsMsg{insights: nil}
		}

		return InsightsMsg{insights: insights}
	}
}

type apiErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
