// Package app is Shelf's composition root.
//
// Run wires the pieces together in order:
//
//  1. config.Load reads ~/.config/shelf/config.toml (or ConfigPath)
//  2. logging.Setup points the logrus logger at the configured file
//  3. openlibrary.NewClient builds the rate-limited search client
//  4. prefs.Load restores the last theme
//  5. ui.Run starts the Bubble Tea program and blocks until exit
//
// Configuration, logging and client construction failures are returned to
// the caller. A missing or malformed prefs file is not: the default theme
// is used instead.
//
// Options.Query replaces default_query for this run only, and Options.Route
// picks the view the program opens on.
package app
