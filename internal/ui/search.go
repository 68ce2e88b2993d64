package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleSearchKey routes keys while the search box is focused. Enter hands
// the draft text over verbatim; trimming and the blank check happen in the
// store.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		cmd := m.commitQuery(m.search.Value())
		return m, cmd
	case key.Matches(msg, m.keys.Blur):
		cmd := m.setFocus(focusResults)
		return m, cmd
	case key.Matches(msg, m.keys.NextFocus):
		cmd := m.setFocus(focusFilters)
		return m, cmd
	case key.Matches(msg, m.keys.PrevFocus):
		cmd := m.setFocus(focusResults)
		return m, cmd
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) searchPaneWidth() int {
	return max(m.width*searchPanePercent/100, 20)
}

func (m Model) renderSearchPane(width int) string {
	focused := m.focus == focusSearch
	content := m.search.View()
	return m.renderTitledBox("Search", content, width, toolbarHeight, focused)
}
