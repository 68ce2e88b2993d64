// Package state owns Shelf's search state: the committed query, the current
// result set and the loading flag.
//
// # Overview
//
// The UI commits a query, launches the fetch off the event loop and hands the
// outcome back to the Store. The Store is the only place these three values
// change, and it decides whether a late response may still be applied.
//
//	UI event loop                       fetch goroutine
//	┌──────────────────────┐           ┌──────────────────────┐
//	│ req, ok := Commit(q) │──────────→│ client.Search(q)     │
//	│   ok=false: no fetch │           │        ↓             │
//	│                      │←──────────│ resultMsg{req, ...}  │
//	│ Resolve(req, ...)    │           └──────────────────────┘
//	│ Snapshot() → render  │
//	└──────────────────────┘
//
// # Commit Semantics
//
//	store.Commit("   ")     → no change, no fetch
//	store.Commit("dune")    → Seq=1, Query="dune", Loading=true
//	store.Commit(" dune ")  → no change (same query)
//	store.Commit("tolkien") → Seq=2, Query="tolkien", Loading=true
//
// # Ordering
//
// Every Request carries the sequence number it was issued with. Resolve
// applies a response only when that number is still the latest, so results
// land in commit order rather than completion order:
//
//	a := Commit("a")            // Seq 1
//	b := Commit("b")            // Seq 2
//	Resolve(b, booksB, nil)     // applied
//	Resolve(a, booksA, nil)     // dropped, returns false
//
// There is no cancellation beyond this: the stale request still runs to
// completion, its result is simply ignored.
//
// # Failure Semantics
//
// A failed fetch for the latest request clears Loading and keeps the
// previous Books. The caller logs the error; nothing is stored. A successful fetch replaces Books
// wholesale; results are never merged.
//
// # Defensive Copying
//
// Resolve stores a copy of the returned slice and Snapshot hands out
// another, so renderers can derive filtered views without touching the
// stored result set.
//
// # Testing Considerations
//
// The zero Store is ready to use:
//
//	store := &state.Store{}
package state
