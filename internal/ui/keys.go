package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	ForceQuit  key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Home       key.Binding
	Books      key.Binding
	NextFocus  key.Binding
	PrevFocus  key.Binding

	// Results
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Details     key.Binding
	FocusSearch key.Binding
	FocusFilter key.Binding

	// Search box
	Submit key.Binding
	Blur   key.Binding

	// Filter panel
	YearDown  key.Binding
	YearUp    key.Binding
	JumpDown  key.Binding
	JumpUp    key.Binding
	ClearYear key.Binding
	Apply     key.Binding

	// Detail overlay
	Close    key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Landing
	ViewBooks key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Home"),
		),
		Books: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Books"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next pane"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous pane"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Move right"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First book"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last book"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "More details"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		FocusFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Filters"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to results"),
		),

		YearDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left", "Year -1 / prev option"),
		),
		YearUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right", "Year +1 / next option"),
		),
		JumpDown: key.NewBinding(
			key.WithKeys("shift+left", "["),
			key.WithHelp("[", "Year -10"),
		),
		JumpUp: key.NewBinding(
			key.WithKeys("shift+right", "]"),
			key.WithHelp("]", "Year +10"),
		),
		ClearYear: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("backspace", "Clear year"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Apply"),
		),

		Close: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc/x", "Close"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup/ctrl+u", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn/ctrl+d", "Page down"),
		),

		ViewBooks: key.NewBinding(
			key.WithKeys("enter", "b"),
			key.WithHelp("enter", "View Books"),
		),
	}
}

// viewportKeyMap drives detail overlay scrolling with the bindings shown in
// help. Half-page moves are off so ctrl+u/ctrl+d page like pgup/pgdown.
func (k keyMap) viewportKeyMap() viewport.KeyMap {
	vk := viewport.DefaultKeyMap()
	vk.Up = k.Up
	vk.Down = k.Down
	vk.PageUp = k.PageUp
	vk.PageDown = k.PageDown
	vk.HalfPageUp = key.NewBinding(key.WithDisabled())
	vk.HalfPageDown = key.NewBinding(key.WithDisabled())
	return vk
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Books, k.NextFocus, k.PrevFocus},
		{k.Up, k.Down, k.Left, k.Right, k.Top, k.Bottom, k.Details, k.FocusSearch, k.FocusFilter},
		{k.YearDown, k.YearUp, k.JumpDown, k.JumpUp, k.ClearYear, k.Apply},
		{k.Close, k.PageDown, k.PageUp},
		{k.CycleTheme, k.Help, k.Quit, k.ForceQuit},
	}
}
