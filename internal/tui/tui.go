package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const browseLimit = 10

func NewApp() *Model {
	input := textinput.New()
	input.Placeholder = "user id"
	input.CharLimit = 12
	input.Width = 20
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &Model{
		state:   StatePrompt,
		input:   input,
		spinner: spin,
		client:  NewClient(),
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == StatePrompt || m.state == StateBrowse {
				return m, tea.Quit
			}

		case "esc":
			switch m.state {
			case StateDetail:
				m.state = StateBrowse
				return m, nil
			case StateBrowse:
				m.state = StatePrompt
				m.input.Focus()
				return m, textinput.Blink
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()

	case ErrorMsg:
		m.err = msg.err
		m.state = StatePrompt
		return m, nil

	case RecommendationsMsg:
		m.recommendations = msg.response.Recommendations
		m.cursor = 0
		m.state = StateBrowse
		return m, nil

	case InsightsMsg:
		m.insights = msg.insights
		return m, nil
	}

	switch m.state {
	case StatePrompt:
		return m.updatePrompt(msg)

	case StateLoading:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case StateBrowse:
		return m.updateBrowse(msg)

	case StateDetail:
		return m.updateDetail(msg)

	default:
		return m, nil
	}
}

func (m *Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		userID, err := strconv.ParseInt(strings.TrimSpace(m.input.Value()), 10, 64)
		if err != nil || userID <= 0 {
			m.err = fmt.Errorf("enter a positive numeric user id")
			return m, nil
		}

		m.err = nil
		m.userID = userID
		m.state = StateLoading

		return m, tea.Batch(
			m.spinner.Tick,
			m.client.RecommendationsCmd(userID, browseLimit),
			m.client.InsightsCmd(userID),
		)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.recommendations)-1 {
			m.cursor++
		}

	case "enter":
		if len(m.recommendations) == 0 {
			return m, nil
		}

		if err := m.renderDetail(); err != nil {
			m.err = err
			return m, nil
		}

		m.state = StateDetail
	}

	return m, nil
}

func (m *Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// renders the selected recommendation into the detail viewport
func (m *Model) renderDetail() error {
	if m.glamourRenderer == nil {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(min(m.width-4, 100)),
		)
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}

		m.glamourRenderer = renderer
	}

	rendered, err := m.glamourRenderer.Render(detailMarkdown(m.recommendations[m.cursor]))
	if err != nil {
		return fmt.Errorf("failed to render detail: %w", err)
	}

	m.resizeViewport()
	m.viewport.SetContent(rendered)
	m.viewport.GotoTop()

	return nil
}

func (m *Model) resizeViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}

	m.viewport.Width = m.width
	m.viewport.Height = m.height - 2
	m.viewportReady = true
}
