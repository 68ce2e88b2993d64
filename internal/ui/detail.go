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

const closeControl = "✖ Close"

// overlayBox is where the detail content box sits on screen.
type overlayBox struct {
	left, top, width, height int
}

func (b overlayBox) contains(x, y int) bool {
	return x >= b.left && x < b.left+b.width && y >= b.top && y < b.top+b.height
}

// closeRow is the screen row holding the close control.
func (b overlayBox) closeRow() int {
	return b.top + 2 // border + top padding
}

func (m *Model) openDetail(b openlibrary.Book) {
	m.detail.Open(b)
	m.layoutDetail()
	m.detailView.GotoTop()
}

func (m *Model) closeDetail() {
	m.detail.Close()
}

func (m Model) overlayStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2)
}

// overlayInnerWidth is the text width inside the overlay box.
func (m Model) overlayInnerWidth() int {
	outer := min(m.width-2*overlayMargin, overlayMaxWidth)
	return max(outer-2-4, 10)
}

// layoutDetail sizes the viewport for the open record and refreshes its
// content. It is a no-op while the overlay is closed.
func (m *Model) layoutDetail() {
	b, ok := m.detail.Book()
	if !ok {
		return
	}
	width := m.overlayInnerWidth()
	content := lipgloss.NewStyle().Width(width).Render(m.renderDetailContent(b, width))

	// border, padding and the close row with its spacer
	chrome := 2 + 2 + 2
	height := max(min(lipgloss.Height(content), m.height-2*overlayMargin-chrome), 1)

	m.detailView.Width = width
	m.detailView.Height = height
	m.detailView.SetContent(content)
}

// overlayBounds mirrors the centering done by lipgloss.Place.
func (m Model) overlayBounds() overlayBox {
	box := m.renderOverlayBox()
	w := lipgloss.Width(box)
	h := lipgloss.Height(box)
	return overlayBox{
		left:   max((m.width-w)/2, 0),
		top:    max((m.height-h)/2, 0),
		width:  w,
		height: h,
	}
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.closeDetail()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	}

	// Scrolling keys belong to the viewport's own key map.
	var cmd tea.Cmd
	m.detailView, cmd = m.detailView.Update(msg)
	return m, cmd
}

// handleMouse closes the overlay on a left click outside its content box.
// Clicks inside are swallowed unless they land on the close control; wheel
// events inside scroll the content.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.route != RouteBooks || !m.detail.IsOpen() || m.showHelp {
		return m, nil
	}

	bounds := m.overlayBounds()
	inside := bounds.contains(msg.X, msg.Y)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if !inside || msg.Y == bounds.closeRow() {
			m.closeDetail()
		}
		return m, nil
	}

	if inside && tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd
		m.detailView, cmd = m.detailView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) renderOverlayBox() string {
	styles := m.theme.Styles()
	width := m.overlayInnerWidth()

	header := styles.DangerText.Render(closeControl) + styles.FaintText.Render("  esc / x / click outside")
	body := header + "\n\n" + m.detailView.View()
	if !m.detailView.AtBottom() {
		body += "\n" + styles.FaintText.Render(fmt.Sprintf("%d%% ▾ j/k to scroll", int(m.detailView.ScrollPercent()*100)))
	}
	return m.overlayStyle().Width(width + 4).Render(body)
}

// renderDetail renders the overlay on a full-screen backdrop.
func (m Model) renderDetail() string {
	return m.place(m.renderOverlayBox())
}

// renderDetailContent lays out every field of the record.
func (m Model) renderDetailContent(b openlibrary.Book, width int) string {
	styles := m.theme.Styles()
	var sb strings.Builder

	if url, ok := catalog.CoverURL(b, m.links); ok {
		sb.WriteString(styles.Label.Render("Cover: "))
		sb.WriteString(styles.InfoText.Render(url))
	} else {
		sb.WriteString(styles.FaintText.Render("No Cover Image"))
	}
	sb.WriteString("\n")
	sb.WriteString(styles.Text.Bold(true).Render(catalog.DecodeTitle(b.Title)))
	sb.WriteString("\n")
	sb.WriteString(styles.FaintText.Render(strings.Repeat("─", min(width, 40))))
	sb.WriteString("\n\n")

	field := func(label, value string) {
		sb.WriteString(styles.Label.Render(label + ": "))
		sb.WriteString(styles.Text.Render(value))
		sb.WriteString("\n")
	}
	field("Authors", catalog.Authors(b))
	field("First Published", catalog.FirstPublished(b))
	field("Editions", catalog.Editions(b))
	field("Languages", catalog.LanguagesOrNA(b))

	availability := styles.DangerText
	if b.IsPublic() {
		availability = styles.SuccessText
	}
	sb.WriteString(styles.Label.Render("Availability: "))
	sb.WriteString(availability.Render(catalog.AvailabilityLabel(b)))
	sb.WriteString("\n")

	if reads := catalog.ReadLinks(b, m.links); len(reads) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.AccentText.Bold(true).Render("Read Online:"))
		sb.WriteString("\n")
		for _, l := range reads {
			sb.WriteString("  " + styles.WarningText.Render(l.Label) + " " + styles.MutedText.Render(l.URL) + "\n")
		}
	}

	if cols := catalog.Collections(b); len(cols) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.AccentText.Bold(true).Render("Available in:"))
		sb.WriteString("\n")
		labels := make([]string, 0, len(cols))
		for _, c := range cols {
			labels = append(labels, styles.InfoText.Render("["+c+"]"))
		}
		sb.WriteString(strings.Join(labels, " "))
		sb.WriteString("\n")
	}

	if link, ok := catalog.RecordLink(b, m.links); ok {
		sb.WriteString("\n")
		sb.WriteString(styles.WarningText.Render(link.Label) + " " + styles.MutedText.Render(link.URL))
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}
