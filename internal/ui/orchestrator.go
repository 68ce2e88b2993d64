package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shelf/internal/logging"
	"github.com/five82/shelf/internal/openlibrary"
	"github.com/five82/shelf/internal/state"
)

// commitQuery hands text to the store and, when it is a new non-blank
// query, closes any open detail overlay and starts the fetch. Blank or
// unchanged text returns nil and leaves the current results alone.
func (m *Model) commitQuery(text string) tea.Cmd {
	req, ok := m.store.Commit(text)
	if !ok {
		return nil
	}
	m.snapshot = m.store.Snapshot()
	m.closeDetail()
	return tea.Batch(searchCmd(m.ctx, m.searcher, req), m.spinner.Tick)
}

// searchCmd runs one search off the event loop and reports the outcome
// tagged with the request it answers.
func searchCmd(ctx context.Context, searcher openlibrary.Searcher, req state.Request) tea.Cmd {
	return func() tea.Msg {
		ctx := logging.ContextWithRequest(ctx, req.Seq, req.Query)
		defer logging.Track(ctx, "search")()

		if searcher == nil {
			return searchResultMsg{req: req}
		}
		books, err := searcher.Search(ctx, req.Query)
		return searchResultMsg{req: req, books: books, err: err}
	}
}

func (m Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	log := logging.For(logging.ContextWithRequest(m.ctx, msg.req.Seq, msg.req.Query))

	if !m.store.Resolve(msg.req, msg.books, msg.err) {
		log.Debug("dropped stale search response")
		return m, nil
	}
	m.snapshot = m.store.Snapshot()

	if msg.err != nil {
		log.WithError(msg.err).Warn("search failed")
		m.ensureSelectionVisible()
		return m, nil
	}

	log.WithField("results", len(msg.books)).Info("search applied")
	m.selected = 0
	m.scroll = 0
	return m, nil
}
