// Package openlibrary provides an HTTP client for the Open Library search API.
//
// # Overview
//
// This package defines the client Shelf uses to look up books by title. It
// handles HTTP communication, JSON decoding and the URL rules for covers,
// canonical record pages and Internet Archive scans.
//
// # Architecture
//
//   - client.go: HTTP client, request pacing and response handling
//   - types.go: Search document schema and link construction
//
// # Client Usage
//
//	client, err := openlibrary.NewClient(openlibrary.Options{
//		SearchURL:         "https://openlibrary.org/search.json",
//		RequestsPerSecond: 1,
//	})
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	books, err := client.Search(ctx, "dune")
//	if err != nil {
//		log.Printf("search failed: %v", err)
//	}
//
// # Request Handling
//
// Every search is a single GET with a title parameter and no paging
// parameters. Requests:
//   - Use context for cancellation
//   - Wait on a token-bucket limiter when pacing is enabled
//   - Set Accept: application/json and a User-Agent header
//   - Treat any non-2xx status as an error
//
// No timeout is applied unless Options.Timeout is set.
//
// # Optional Fields
//
// The provider omits fields freely. Book uses pointers for optional numbers
// so that "absent" and "zero" stay distinguishable; callers decide the
// fallback text for each field.
//
// # Links
//
// Links keeps the three external hosts as injected configuration:
//
//	links := openlibrary.Links{
//		Covers:  "https://covers.openlibrary.org",
//		Library: "https://openlibrary.org",
//		Archive: "https://archive.org",
//	}
//	links.CoverURL(8231856)        // https://covers.openlibrary.org/b/id/8231856-M.jpg
//	links.RecordURL("/works/OL1W") // https://openlibrary.org/works/OL1W
//	links.ArchiveURL("dune00herb") // https://archive.org/details/dune00herb
package openlibrary
