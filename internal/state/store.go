package state

import (
	"strings"
	"sync"

	"github.com/five82/shelf/internal/openlibrary"
)

// Request tags one fetch with the query and sequence it was issued for.
type Request struct {
	Seq   uint64
	Query string
}

// Snapshot represents the latest search state available to the UI.
type Snapshot struct {
	Query      string
	Books      []openlibrary.Book
	HasResults bool // true once any search succeeded
	Loading    bool
	Seq        uint64
}

// Store owns the committed query, the result set and the loading flag.
// Only the response for the most recently committed query is applied.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Commit records text as the search query. Blank text, or text equal to the
// query already committed, changes nothing and returns false. Otherwise the
// returned Request must be passed back to Resolve once the fetch completes.
func (s *Store) Commit(text string) (Request, bool) {
	query := strings.TrimSpace(text)
	if query == "" {
		return Request{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if query == s.snapshot.Query {
		return Request{}, false
	}
	s.snapshot.Seq++
	s.snapshot.Query = query
	s.snapshot.Loading = true
	return Request{Seq: s.snapshot.Seq, Query: query}, true
}

// Resolve applies the outcome of req. Responses for anything but the latest
// request are dropped and Resolve returns false. When err is non-nil the
// previous result set is kept; reporting the error is the caller's job.
func (s *Store) Resolve(req Request, books []openlibrary.Book, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Seq != s.snapshot.Seq {
		return false
	}

	s.snapshot.Loading = false
	if err != nil {
		return true
	}

	s.snapshot.Books = cloneBooks(books)
	s.snapshot.HasResults = true
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Books = cloneBooks(s.snapshot.Books)
	return snap
}

func cloneBooks(books []openlibrary.Book) []openlibrary.Book {
	if len(books) == 0 {
		return nil
	}
	dup := make([]openlibrary.Book, len(books))
	copy(dup, books)
	return dup
}
