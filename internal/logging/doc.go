// Package logging wires logrus to a file for Shelf.
//
// The UI owns the terminal, so nothing is written to stdout or stderr. Setup
// opens (or creates) the configured log file in append mode; until it runs,
// and whenever the path is empty, output is discarded.
//
// Request-scoped fields ride on the context:
//
//	ctx = logging.ContextWithRequest(ctx, req.Seq, req.Query)
//	defer logging.Track(ctx, "search")()
//	logging.For(ctx).WithError(err).Warn("search failed")
package logging
