package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/logging"
	"github.com/five82/shelf/internal/openlibrary"
	"github.com/five82/shelf/internal/prefs"
	"github.com/five82/shelf/internal/state"
)

// focusArea is the books-view pane receiving keys.
type focusArea int

const (
	focusResults focusArea = iota
	focusSearch
	focusFilters
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Searcher     openlibrary.Searcher
	Links        openlibrary.Links
	DefaultQuery string
	StartRoute   Route
	ThemeName    string
	PrefsPath    string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	searcher  openlibrary.Searcher
	links     openlibrary.Links
	store     *state.Store
	prefsPath string

	defaultQuery string

	keys   keyMap
	help   help.Model
	theme  Theme
	width  int
	height int
	ready  bool

	route        Route
	booksVisited bool
	showHelp     bool

	// Query orchestration
	snapshot state.Snapshot
	spinner  spinner.Model

	// Result renderer
	focus    focusArea
	search   textinput.Model
	filters  filterPanel
	criteria catalog.Criteria
	selected int
	scroll   int

	// Detail overlay
	detail     catalog.Detail
	detailView viewport.Model
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	query := strings.TrimSpace(opts.DefaultQuery)

	search := textinput.New()
	search.Placeholder = "Search books..."
	search.Prompt = "> "
	search.CharLimit = 200
	search.SetValue(query)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	route := opts.StartRoute
	if route == "" {
		route = RouteHome
	}

	keys := DefaultKeyMap()
	detailView := viewport.New(0, 0)
	detailView.KeyMap = keys.viewportKeyMap()

	m := Model{
		ctx:          ctx,
		searcher:     opts.Searcher,
		links:        opts.Links,
		store:        &state.Store{},
		prefsPath:    opts.PrefsPath,
		defaultQuery: query,
		keys:         keys,
		help:         help.New(),
		route:        route,
		spinner:      spin,
		search:       search,
		detailView:   detailView,
	}
	m.applyTheme(GetTheme(themeName))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.route != RouteBooks {
		return nil
	}
	// Init cannot keep state changes, so the first books entry is replayed
	// as a navigation message.
	return func() tea.Msg { return navigateMsg{to: RouteBooks} }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.search.Width = max(m.searchPaneWidth()-8, 10)
		m.ensureSelectionVisible()
		m.layoutDetail()
		return m, nil

	case navigateMsg:
		cmd := m.navigate(msg.to)
		return m, cmd

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case spinner.TickMsg:
		if !m.snapshot.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and other textinput housekeeping.
	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.route == RouteBooks && m.detail.IsOpen() {
		return m.renderDetail()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	switch m.route {
	case RouteBooks:
		b.WriteString(m.renderBooksView())
	default:
		b.WriteString(m.renderLanding())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Any key closes help.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.route == RouteBooks && m.detail.IsOpen() {
		return m.handleDetailKey(msg)
	}

	// The search box owns every printable key while focused.
	if m.route == RouteBooks && m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Home):
		cmd := m.navigate(RouteHome)
		return m, cmd
	case key.Matches(msg, m.keys.Books):
		cmd := m.navigate(RouteBooks)
		return m, cmd
	}

	if m.route != RouteBooks {
		if key.Matches(msg, m.keys.ViewBooks) {
			cmd := m.navigate(RouteBooks)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextFocus):
		cmd := m.setFocus((m.focus + 1) % 3)
		return m, cmd
	case key.Matches(msg, m.keys.PrevFocus):
		cmd := m.setFocus((m.focus + 2) % 3)
		return m, cmd
	}

	switch m.focus {
	case focusFilters:
		return m.handleFilterKey(msg)
	default:
		return m.handleResultsKey(msg)
	}
}

// setFocus moves key focus between the books-view panes.
func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	if f == focusSearch {
		return m.search.Focus()
	}
	m.search.Blur()
	return nil
}

func (m *Model) cycleTheme() {
	m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		logging.For(m.ctx).WithError(err).Warn("save theme preference")
	}
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	styles := t.Styles()
	m.spinner.Style = styles.AccentText
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	m.help.Styles.ShortKey = styles.WarningText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.WarningText
	m.help.Styles.FullDesc = styles.MutedText
	m.help.Styles.FullSeparator = styles.FaintText
	m.layoutDetail()
}

// Messages

type navigateMsg struct {
	to Route
}

type searchResultMsg struct {
	req   state.Request
	books []openlibrary.Book
	err   error
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(
		New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

var _ tea.Model = Model{}

// place centers content on a full-screen backdrop.
func (m Model) place(content string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
