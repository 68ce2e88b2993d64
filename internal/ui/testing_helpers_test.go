package ui

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shelf/internal/openlibrary"
)

var testLinks = openlibrary.Links{
	Covers:  "https://covers.openlibrary.org",
	Library: "https://openlibrary.org",
	Archive: "https://archive.org",
}

// fakeSearcher answers from canned results and records every query.
type fakeSearcher struct {
	mu      sync.Mutex
	results map[string][]openlibrary.Book
	errs    map[string]error
	calls   []string
}

func newFakeSearcher() *fakeSearcher {
	return &fakeSearcher{
		results: map[string][]openlibrary.Book{},
		errs:    map[string]error{},
	}
}

func (f *fakeSearcher) Search(_ context.Context, title string) ([]openlibrary.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, title)
	if err := f.errs[title]; err != nil {
		return nil, err
	}
	return f.results[title], nil
}

func (f *fakeSearcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

var errBoom = errors.New("boom")

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func newTestModel(t *testing.T, fake *fakeSearcher, start Route) Model {
	t.Helper()
	m := New(Options{
		Searcher:     fake,
		Links:        testLinks,
		DefaultQuery: "Book",
		StartRoute:   start,
		PrefsPath:    filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want ui.Model", next)
	}
	return out, cmd
}

// run executes cmd and flattens batches. Commands that block (cursor blink)
// are abandoned after a short wait.
func run(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(200 * time.Millisecond):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(t, c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func searchResults(t *testing.T, cmd tea.Cmd) []searchResultMsg {
	t.Helper()
	var out []searchResultMsg
	for _, msg := range run(t, cmd) {
		if r, ok := msg.(searchResultMsg); ok {
			out = append(out, r)
		}
	}
	return out
}

// deliver runs cmd and feeds every search result back into the model.
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, r := range searchResults(t, cmd) {
		m, _ = update(t, m, r)
	}
	return m
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "shift+left":
		return tea.KeyMsg{Type: tea.KeyShiftLeft}
	case "shift+right":
		return tea.KeyMsg{Type: tea.KeyShiftRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press sends each key in order and returns the last command.
func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = update(t, m, keyPress(k))
	}
	return m, cmd
}

// booksModel returns a model on the books route with query's results loaded.
func booksModel(t *testing.T, fake *fakeSearcher) Model {
	t.Helper()
	m := newTestModel(t, fake, RouteHome)
	m, cmd := press(t, m, "enter")
	return deliver(t, m, cmd)
}

// search types query into the search box and submits it, returning the
// fetch command without running it.
func search(t *testing.T, m Model, query string) (Model, tea.Cmd) {
	t.Helper()
	m.setFocus(focusSearch)
	m.search.SetValue(query)
	m, cmd := press(t, m, "enter")
	m.setFocus(focusResults)
	return m, cmd
}
