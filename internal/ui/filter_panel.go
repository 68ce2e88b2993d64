package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shelf/internal/catalog"
)

const (
	filterRowYear = iota
	filterRowAvailability
)

// filterPanel holds draft filter values. Nothing here affects the visible
// results until apply hands the pair to the renderer.
type filterPanel struct {
	year         string
	availability catalog.Availability
	row          int
}

// adjustYear moves the year slider by delta, clamped to the slider range.
// An unset slider starts from its midpoint.
func (p *filterPanel) adjustYear(delta int) {
	y := yearStart
	if v, err := strconv.Atoi(p.year); err == nil {
		y = v
	}
	p.year = strconv.Itoa(clamp(y+delta, YearMin, YearMax))
}

func (p *filterPanel) clearYear() {
	p.year = ""
}

// apply returns the current draft pair unchanged.
func (p filterPanel) apply() (string, catalog.Availability) {
	return p.year, p.availability
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := &m.filters
	switch {
	case key.Matches(msg, m.keys.Apply):
		year, availability := p.apply()
		m.criteria = catalog.NewCriteria(year, availability)
		m.selected = 0
		m.scroll = 0
	case key.Matches(msg, m.keys.Up):
		p.row = filterRowYear
	case key.Matches(msg, m.keys.Down):
		p.row = filterRowAvailability
	case key.Matches(msg, m.keys.JumpDown):
		if p.row == filterRowYear {
			p.adjustYear(-yearJump)
		}
	case key.Matches(msg, m.keys.JumpUp):
		if p.row == filterRowYear {
			p.adjustYear(yearJump)
		}
	case key.Matches(msg, m.keys.YearDown):
		if p.row == filterRowYear {
			p.adjustYear(-yearStep)
		} else {
			p.availability = p.availability.Prev()
		}
	case key.Matches(msg, m.keys.YearUp):
		if p.row == filterRowYear {
			p.adjustYear(yearStep)
		} else {
			p.availability = p.availability.Next()
		}
	case key.Matches(msg, m.keys.ClearYear):
		if p.row == filterRowYear {
			p.clearYear()
		}
	case key.Matches(msg, m.keys.FocusSearch):
		cmd := m.setFocus(focusSearch)
		return m, cmd
	case key.Matches(msg, m.keys.Blur):
		cmd := m.setFocus(focusResults)
		return m, cmd
	}
	return m, nil
}

// renderSlider draws the year track with its thumb. An unset year parks the
// thumb in the middle, like an untouched range input.
func renderSlider(year string, width int) string {
	y := yearStart
	if v, err := strconv.Atoi(year); err == nil {
		y = clamp(v, YearMin, YearMax)
	}
	pos := (y - YearMin) * (width - 1) / (YearMax - YearMin)
	return strings.Repeat("━", pos) + "●" + strings.Repeat("─", width-1-pos)
}

func (m Model) renderFilterPane(width int) string {
	styles := m.theme.Styles()
	focused := m.focus == focusFilters
	p := m.filters

	marker := func(row int) string {
		if focused && p.row == row {
			return styles.AccentText.Render("▸ ")
		}
		return "  "
	}

	yearText := p.year
	if yearText == "" {
		yearText = "any"
	}
	yearLine := marker(filterRowYear) +
		styles.Label.Render("Published Year ") +
		styles.FaintText.Render(fmt.Sprintf("%d ", YearMin)) +
		styles.AccentText.Render(renderSlider(p.year, sliderWidth)) +
		styles.FaintText.Render(fmt.Sprintf(" %d", YearMax)) +
		styles.Text.Render("  Year: "+yearText)

	availLine := marker(filterRowAvailability) +
		styles.Label.Render("Availability   ") +
		styles.Text.Render("◂ "+p.availability.Label()+" ▸") +
		"   " + m.renderApplyHint(focused)

	return m.renderTitledBox("Filters", yearLine+"\n"+availLine, width, toolbarHeight, focused)
}

func (m Model) renderApplyHint(focused bool) string {
	styles := m.theme.Styles()
	label := "[ Apply ]"
	if !focused {
		return styles.FaintText.Render(label)
	}
	if m.filtersPending() {
		return styles.WarningText.Bold(true).Render(label + " enter")
	}
	return styles.AccentText.Render(label)
}

// filtersPending reports whether the drafts differ from the committed criteria.
func (m Model) filtersPending() bool {
	draft := catalog.NewCriteria(m.filters.year, m.filters.availability)
	if draft.Availability != m.criteria.Availability {
		return true
	}
	switch {
	case draft.YearCeiling == nil && m.criteria.YearCeiling == nil:
		return false
	case draft.YearCeiling == nil || m.criteria.YearCeiling == nil:
		return true
	default:
		return *draft.YearCeiling != *m.criteria.YearCeiling
	}
}
