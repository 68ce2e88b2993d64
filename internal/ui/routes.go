package ui

import tea "github.com/charmbracelet/bubbletea"

// Route is a top-level view addressed by path.
type Route string

const (
	RouteHome  Route = "/"
	RouteBooks Route = "/books"
)

// Label returns the header link text for the route.
func (r Route) Label() string {
	switch r {
	case RouteBooks:
		return "Books"
	default:
		return "Home"
	}
}

var routeOrder = []Route{RouteHome, RouteBooks}

// ParseRoute maps a path to a route. Unknown paths land on the home view.
func ParseRoute(path string) Route {
	switch Route(path) {
	case RouteBooks:
		return RouteBooks
	default:
		return RouteHome
	}
}

// navigate switches the active route. Entering the books view for the first
// time commits the default query; later visits keep whatever was loaded.
func (m *Model) navigate(to Route) tea.Cmd {
	m.route = to
	if to != RouteBooks || m.booksVisited {
		return nil
	}
	m.booksVisited = true
	return m.commitQuery(m.defaultQuery)
}
