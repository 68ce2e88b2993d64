// Package ui provides Shelf's terminal interface, built on Bubble Tea.
//
// # Architecture Overview
//
// Model is the single tea.Model. Every key press, mouse event, window
// resize and search completion arrives as a message on the Bubble Tea event
// loop, and only Update changes state. The one blocking operation, a search
// request, runs inside a tea.Cmd and comes back as a searchResultMsg.
//
// # Package Structure
//
//   - app.go: Model, Options, Update/View and the Run entry point
//   - routes.go: the "/" and "/books" routes and navigate
//   - orchestrator.go: query commits, the search command, stale-response drop
//   - search.go: the search box (bubbles/textinput)
//   - filter_panel.go: draft year slider and availability select
//   - books.go: derived visible set, card grid, "No Books" placeholder
//   - detail.go: detail overlay, its viewport and mouse hit-testing
//   - landing.go, header.go, help.go, box.go: chrome
//   - theme.go, style_helpers.go, keys.go, layout.go: styling and bindings
//
// # Data Flow
//
//	search box ──enter──→ state.Store.Commit ──→ searchCmd (goroutine)
//	                                                  │
//	render ←── Snapshot ←── state.Store.Resolve ←── searchResultMsg
//	   │
//	   └─ catalog.Visible(snapshot.Books, criteria) → cards
//
// The filter panel edits drafts only; enter on the panel converts the draft
// pair with catalog.NewCriteria and replaces the committed criteria. The
// visible set is derived on every render and never stored.
//
// # Focus
//
// On the books route, tab cycles results → search → filters. While the
// search box is focused it receives every printable key, so single-letter
// shortcuts (q, T, 1, 2) only work from the other panes. ctrl+c always quits.
//
// # Detail Overlay
//
// enter on a card opens catalog.Detail for that record. esc, x, clicking the
// close control or a left click anywhere outside the content box closes it;
// other clicks inside are swallowed. The overlay replaces the screen, so
// its bounds come from the same centering lipgloss.Place applies.
//
// # Logging
//
// Logs go through internal/logging to a file. Search failures are logged at
// warn level and never shown in the interface; the previous results stay
// on screen.
package ui
