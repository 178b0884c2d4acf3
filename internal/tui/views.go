package tui

import (
	"fmt"
	"strings"

	"codeberg.org/musegrid/server/musegrid/recommend"
)

func (m *Model) View() string {
	switch m.state {
	case StatePrompt:
		return m.promptView()

	case StateLoading:
		return fmt.Sprintf("\n  %s fetching recommendations for user %d...\n", m.spinner.View(), m.userID)

	case StateBrowse:
		return m.browseView()

	case StateDetail:
		if !m.viewportReady {
			return "\n  loading...\n"
		}

		return m.viewport.View() + helpStyle.Render("\n  ↑/↓ scroll · esc back")

	default:
		return "Unknown state"
	}
}

func (m *Model) promptView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("  recommendation insights browser"))
	b.WriteString("\n\n  ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("  %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("  enter load recommendations · ctrl+c quit"))

	return b.String()
}

func (m *Model) browseView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("  recommendations for user %d", m.userID)))
	b.WriteString("\n")

	if m.insights != nil && m.insights.Profile != nil {
		b.WriteString(infoStyle.Render(fmt.Sprintf(
			"  exploration %.0f · quality bar %.0f · %d interactions",
			m.insights.Profile.ExplorationScore,
			m.insights.Profile.QualityThreshold,
			m.insights.Profile.TotalInteractions,
		)))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if len(m.recommendations) == 0 {
		b.WriteString(infoStyle.Render("  nothing to recommend yet"))
		b.WriteString("\n")
	}

	for i, rec := range m.recommendations {
		line := fmt.Sprintf("%s  %s · %s  %s",
			rec.Model.Name,
			rec.Model.Category,
			rec.Model.Provider,
			scoreStyle.Render(fmt.Sprintf("%.2f", rec.Metadata.RelevanceScore)),
		)

		if i == m.cursor {
			b.WriteString(itemSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}

		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("  ↑/↓ move · enter details · esc change user · q quit"))

	return b.String()
}

// builds the markdown shown in the detail view
func detailMarkdown(rec recommend.Recommendation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", rec.Model.Name)

	if rec.Model.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", rec.Model.Description)
	}

	fmt.Fprintf(&b, "- **Category:** %s\n", rec.Model.Category)
	fmt.Fprintf(&b, "- **Provider:** %s\n", rec.Model.Provider)
	fmt.Fprintf(&b, "- **Rating:** %.1f\n", rec.Model.Rating)
	fmt.Fprintf(&b, "- **Downloads:** %d\n\n", rec.Model.Downloads)

	fmt.Fprintf(&b, "## Why this model\n\n")

	for _, reason := range rec.Metadata.Reasons {
		fmt.Fprintf(&b, "- %s\n", reason)
	}

	fmt.Fprintf(&b, "\n*relevance %.2f · confidence %.2f*\n",
		rec.Metadata.RelevanceScore,
		rec.Metadata.ConfidenceScore,
	)

	return b.String()
}
