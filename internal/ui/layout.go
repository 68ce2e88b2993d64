package ui

// Card grid geometry.
const (
	// CardWidth is the outer width of a book card, borders included. The
	// inner width fits a truncated title plus its ellipsis.
	CardWidth = 38

	// CardGap separates cards horizontally.
	CardGap = 1

	// cardLines is the number of content lines inside a card.
	cardLines = 6

	// CardHeight is the outer height of a book card.
	CardHeight = cardLines + 2
)

// Books view chrome.
const (
	headerHeight  = 1
	toolbarHeight = 4
	statusHeight  = 1
	footerHeight  = 1

	// searchPaneWidth is the share of the toolbar given to the search box.
	searchPanePercent = 40
)

// Detail overlay sizing.
const (
	overlayMaxWidth = 76
	overlayMargin   = 2
)

// Year slider bounds.
const (
	YearMin   = 1800
	YearMax   = 2025
	yearStart = 1912
	yearStep  = 1
	yearJump  = 10

	sliderWidth = 24
)

func (m Model) gridHeight() int {
	return max(m.height-headerHeight-toolbarHeight-statusHeight-footerHeight, 0)
}

func (m Model) gridColumns() int {
	return max(1, (m.width+CardGap)/(CardWidth+CardGap))
}

func (m Model) gridRows() int {
	return max(1, m.gridHeight()/CardHeight)
}
