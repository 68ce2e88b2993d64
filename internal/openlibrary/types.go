package openlibrary

import (
	"strconv"
	"strings"
)

// PublicAccess is the ebook_access value for openly readable works.
const PublicAccess = "public"

// SearchResponse mirrors the payload returned by /search.json.
type SearchResponse struct {
	NumFound int    `json:"numFound"`
	Docs     []Book `json:"docs"`
}

// Book describes a search document in transport-friendly form. Numeric
// fields the provider may omit are pointers; absent strings and slices
// decode to their zero values.
type Book struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorNames      []string `json:"author_name"`
	FirstPublishYear *int     `json:"first_publish_year"`
	EditionCount     *int     `json:"edition_count"`
	Languages        []string `json:"language"`
	CoverID          *int64   `json:"cover_i"`
	EbookAccess      string   `json:"ebook_access"`
	IA               []string `json:"ia"`
	IACollection     string   `json:"ia_collection_s"`
}

// HasCover reports whether the record carries a usable cover identifier.
func (b Book) HasCover() bool {
	return b.CoverID != nil && *b.CoverID > 0
}

// IsPublic reports whether the work is openly readable.
func (b Book) IsPublic() bool {
	return b.EbookAccess == PublicAccess
}

// Links builds external URLs for covers, records and archive scans.
type Links struct {
	Covers  string
	Library string
	Archive string
}

// CoverURL returns the medium cover image URL for id.
func (l Links) CoverURL(id int64) string {
	return joinURL(l.Covers, "b/id/"+strconv.FormatInt(id, 10)+"-M.jpg")
}

// RecordURL returns the canonical page for a record key such as "/works/OL1W".
func (l Links) RecordURL(key string) string {
	return joinURL(l.Library, key)
}

// ArchiveURL returns the Internet Archive details page for id.
func (l Links) ArchiveURL(id string) string {
	return joinURL(l.Archive, "details/"+id)
}

func joinURL(base, path string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/") + "/" + strings.TrimLeft(path, "/")
}
