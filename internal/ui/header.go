package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const appName = "shelf"

// renderHeader renders the app name and the route links.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("▤ "+appName, styles.Logo)}
	for i, r := range routeOrder {
		label := fmt.Sprintf("%d %s", i+1, r.Label())
		style := styles.MutedText
		if r == m.route {
			style = styles.AccentText.Bold(true).Underline(true)
		}
		parts = append(parts, bg.Render(label, style))
	}

	if m.route == RouteBooks && m.snapshot.Loading {
		parts = append(parts, bg.Render("loading", styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "   "))
}

// renderFooter renders the context-sensitive key hints.
func (m Model) renderFooter() string {
	hints := m.help.ShortHelpView(m.contextBindings())
	return lipgloss.NewStyle().
		Padding(0, 1).
		Width(m.width).
		MaxHeight(footerHeight).
		Render(hints)
}

// contextBindings lists the keys that do something in the current state.
func (m Model) contextBindings() []key.Binding {
	k := m.keys
	if m.route != RouteBooks {
		return []key.Binding{k.ViewBooks, k.Books, k.CycleTheme, k.Help, k.Quit}
	}
	switch m.focus {
	case focusSearch:
		return []key.Binding{k.Submit, k.Blur, k.NextFocus, k.ForceQuit}
	case focusFilters:
		return []key.Binding{k.YearDown, k.YearUp, k.JumpUp, k.ClearYear, k.Apply, k.NextFocus, k.Help, k.Quit}
	default:
		return []key.Binding{k.Details, k.FocusSearch, k.FocusFilter, k.NextFocus, k.Home, k.Help, k.Quit}
	}
}
