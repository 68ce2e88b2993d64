package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	landingTitle = "Discover Your Next Favorite Book"
	landingBlurb = "Step into a world of stories, knowledge, and imagination. " +
		"Our bookstore brings you timeless classics, modern bestsellers, " +
		"and hidden literary gems, curated to inspire every reader."
	landingAction = "View Books"
)

// renderLanding renders the static home page.
func (m Model) renderLanding() string {
	styles := m.theme.Styles()
	width := min(m.width-4, 64)

	var b strings.Builder
	b.WriteString(styles.WarningText.Bold(true).Render(landingTitle))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Width(width).Align(lipgloss.Center).Render(landingBlurb))
	b.WriteString("\n\n")

	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Foreground(lipgloss.Color(m.theme.Accent)).
		Bold(true).
		Padding(0, 2).
		Render(landingAction)
	b.WriteString(button)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("press enter"))

	content := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(b.String())
	height := max(m.height-headerHeight-footerHeight, 0)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, content)
}
