package catalog

import "github.com/five82/shelf/internal/openlibrary"

// Detail tracks the detail overlay: closed, or open on exactly one record.
// The zero value is closed.
type Detail struct {
	book openlibrary.Book
	open bool
}

// Open shows b, replacing any record already shown.
func (d *Detail) Open(b openlibrary.Book) {
	d.book = b
	d.open = true
}

// Close hides the overlay and forgets the record.
func (d *Detail) Close() {
	d.book = openlibrary.Book{}
	d.open = false
}

// IsOpen reports whether the overlay is showing.
func (d Detail) IsOpen() bool {
	return d.open
}

// Book returns the selected record while open.
func (d Detail) Book() (openlibrary.Book, bool) {
	if !d.open {
		return openlibrary.Book{}, false
	}
	return d.book, true
}
