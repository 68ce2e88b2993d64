package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/openlibrary"
)

const noBooksText = "No Books"

// visibleBooks derives the filtered view fresh from the current snapshot.
func (m Model) visibleBooks() []openlibrary.Book {
	return catalog.Visible(m.snapshot.Books, m.criteria)
}

func (m Model) selectedBook() (openlibrary.Book, bool) {
	books := m.visibleBooks()
	if m.selected < 0 || m.selected >= len(books) {
		return openlibrary.Book{}, false
	}
	return books[m.selected], true
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.FocusSearch):
		cmd := m.setFocus(focusSearch)
		return m, cmd
	case key.Matches(msg, m.keys.FocusFilter):
		cmd := m.setFocus(focusFilters)
		return m, cmd
	}

	// The grid is replaced by the loading indicator until the fetch lands.
	if m.snapshot.Loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Details):
		if b, ok := m.selectedBook(); ok {
			m.openDetail(b)
		}
		return m, nil
	}

	count := len(m.visibleBooks())
	if count == 0 {
		return m, nil
	}
	cols := m.gridColumns()

	switch {
	case key.Matches(msg, m.keys.Left):
		m.selected--
	case key.Matches(msg, m.keys.Right):
		m.selected++
	case key.Matches(msg, m.keys.Up):
		if m.selected-cols >= 0 {
			m.selected -= cols
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected+cols < count {
			m.selected += cols
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = count - 1
	}
	m.ensureSelectionVisible()
	return m, nil
}

// ensureSelectionVisible clamps the selection to the visible set and scrolls
// the grid so the selected card's row is on screen.
func (m *Model) ensureSelectionVisible() {
	count := len(m.visibleBooks())
	if count == 0 {
		m.selected = 0
		m.scroll = 0
		return
	}
	m.selected = clamp(m.selected, 0, count-1)

	cols := m.gridColumns()
	rows := m.gridRows()
	row := m.selected / cols
	if row < m.scroll {
		m.scroll = row
	}
	if row >= m.scroll+rows {
		m.scroll = row - rows + 1
	}
	lastRow := (count - 1) / cols
	m.scroll = clamp(m.scroll, 0, max(lastRow-rows+1, 0))
}

// renderBooksView renders the toolbar, status line and either the loading
// indicator, the card grid or the "No Books" placeholder.
func (m Model) renderBooksView() string {
	searchWidth := m.searchPaneWidth()
	toolbar := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSearchPane(searchWidth),
		m.renderFilterPane(max(m.width-searchWidth, 20)),
	)

	var body string
	switch {
	case m.snapshot.Loading:
		body = m.renderLoading()
	default:
		body = m.renderGrid(m.visibleBooks())
	}

	return toolbar + "\n" + m.renderStatusLine() + "\n" + body
}

func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	msg := m.spinner.View() + " " + styles.MutedText.Render(fmt.Sprintf("Searching for %q...", m.snapshot.Query))
	return lipgloss.Place(m.width, m.gridHeight(), lipgloss.Center, lipgloss.Center, msg)
}

func (m Model) renderStatusLine() string {
	styles := m.theme.Styles()
	total := len(m.snapshot.Books)
	visible := len(m.visibleBooks())

	var parts []string
	if m.snapshot.Query != "" {
		parts = append(parts, styles.MutedText.Render("Query:")+" "+styles.Text.Render(fit(m.snapshot.Query, 40)))
	}
	if m.snapshot.HasResults {
		count := fmt.Sprintf("%d books", total)
		if !m.criteria.IsZero() {
			count = fmt.Sprintf("%d of %d books", visible, total)
		}
		parts = append(parts, styles.InfoText.Render(count))
	}
	if !m.criteria.IsZero() {
		parts = append(parts, styles.WarningText.Render("filtered: "+describeCriteria(m.criteria)))
	}
	return lipgloss.NewStyle().Padding(0, 1).Width(m.width).Render(strings.Join(parts, styles.FaintText.Render("  •  ")))
}

func describeCriteria(c catalog.Criteria) string {
	var parts []string
	if c.YearCeiling != nil {
		parts = append(parts, fmt.Sprintf("year <= %d", *c.YearCeiling))
	}
	if c.Availability != catalog.AvailabilityAny {
		parts = append(parts, c.Availability.Label())
	}
	return strings.Join(parts, ", ")
}

// renderGrid lays the cards out in rows that fit the terminal width,
// starting at the scrolled-to row.
func (m Model) renderGrid(books []openlibrary.Book) string {
	height := m.gridHeight()
	if len(books) == 0 {
		styles := m.theme.Styles()
		placeholder := styles.MutedText.Bold(true).Render(noBooksText)
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, placeholder)
	}

	cols := m.gridColumns()
	rows := m.gridRows()
	start := m.scroll * cols
	end := min(start+rows*cols, len(books))

	var lines []string
	for i := start; i < end; i += cols {
		var row []string
		for j := i; j < min(i+cols, end); j++ {
			if j > i {
				row = append(row, strings.Repeat(" ", CardGap))
			}
			row = append(row, m.renderCard(books[j], j == m.selected))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(strings.Join(lines, "\n"))
}

// renderCard renders one book as a fixed-size bordered card.
func (m Model) renderCard(b openlibrary.Book, selected bool) string {
	styles := m.theme.Styles()
	inner := CardWidth - 4

	cover := styles.FaintText.Render(fit("No Cover Image", inner))
	if b.HasCover() {
		cover = styles.InfoText.Render(fit(fmt.Sprintf("Cover #%d", *b.CoverID), inner))
	}

	availability := styles.DangerText
	if b.IsPublic() {
		availability = styles.SuccessText
	}

	field := func(label, value string) string {
		prefix := label + ": "
		return styles.Label.Render(prefix) + styles.Text.Render(fit(value, inner-len(prefix)))
	}

	lines := []string{
		cover,
		styles.Text.Bold(true).Render(catalog.CardTitle(b.Title)),
		field("Authors", catalog.Authors(b)),
		field("First Published", catalog.FirstPublished(b)) + "  " +
			styles.Label.Render("Ed: ") + styles.Text.Render(catalog.Editions(b)),
		field("Languages", catalog.Languages(b, "")),
		styles.Label.Render("Availability: ") + availability.Render(catalog.AvailabilityLabel(b)),
	}

	border := m.theme.Border
	if selected && m.focus == focusResults {
		border = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(CardWidth - 2).
		Height(cardLines).
		MaxHeight(CardHeight).
		Render(strings.Join(lines, "\n"))
}
