package catalog

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/five82/shelf/internal/openlibrary"
)

// TitleLimit is the number of characters a card title keeps before truncation.
const TitleLimit = 30

const (
	ellipsis      = "..."
	notAvailable  = "N/A"
	unknownAuthor = "Unknown"
)

// DecodeTitle resolves HTML entities in a provider title.
func DecodeTitle(raw string) string {
	return norm.NFC.String(html.UnescapeString(raw))
}

// CardTitle decodes raw and truncates it to TitleLimit characters. The limit
// counts the decoded code points; NFC is applied to the kept text afterwards.
func CardTitle(raw string) string {
	return norm.NFC.String(Truncate(html.UnescapeString(raw), TitleLimit))
}

// Truncate keeps the first limit characters of s and appends "..." when
// anything was cut.
func Truncate(s string, limit int) string {
	if limit < 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + ellipsis
}

// Authors joins author names, or "Unknown" when there are none.
func Authors(b openlibrary.Book) string {
	if len(b.AuthorNames) == 0 {
		return unknownAuthor
	}
	return strings.Join(b.AuthorNames, ", ")
}

// FirstPublished returns the first publish year, or "N/A".
func FirstPublished(b openlibrary.Book) string {
	if b.FirstPublishYear == nil || *b.FirstPublishYear == 0 {
		return notAvailable
	}
	return strconv.Itoa(*b.FirstPublishYear)
}

// Editions returns the edition count, or an empty string when absent.
func Editions(b openlibrary.Book) string {
	if b.EditionCount == nil {
		return ""
	}
	return strconv.Itoa(*b.EditionCount)
}

// Languages joins language codes, or returns fallback when there are none.
// Cards pass an empty fallback, the detail view passes "N/A".
func Languages(b openlibrary.Book, fallback string) string {
	if len(b.Languages) == 0 {
		return fallback
	}
	return strings.Join(b.Languages, ", ")
}

// LanguagesOrNA is Languages with the "N/A" fallback.
func LanguagesOrNA(b openlibrary.Book) string {
	return Languages(b, notAvailable)
}

// AvailabilityLabel describes whether the ebook is openly readable.
func AvailabilityLabel(b openlibrary.Book) string {
	if b.IsPublic() {
		return "eBook available"
	}
	return "Restricted Access"
}

// Collections splits the archive collection string on ";" and returns one
// label per segment with underscores shown as spaces.
func Collections(b openlibrary.Book) []string {
	if b.IACollection == "" {
		return nil
	}
	parts := strings.Split(b.IACollection, ";")
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(p, "_", " ")
	}
	return parts
}

// Link is a labelled external URL.
type Link struct {
	Label string
	URL   string
}

// ReadLinks returns one "Version N" link per archive identifier.
func ReadLinks(b openlibrary.Book, links openlibrary.Links) []Link {
	if len(b.IA) == 0 {
		return nil
	}
	out := make([]Link, 0, len(b.IA))
	for i, id := range b.IA {
		out = append(out, Link{
			Label: fmt.Sprintf("Version %d", i+1),
			URL:   links.ArchiveURL(id),
		})
	}
	return out
}

// RecordLink returns the canonical page link, or false when the record has no key.
func RecordLink(b openlibrary.Book, links openlibrary.Links) (Link, bool) {
	if b.Key == "" {
		return Link{}, false
	}
	return Link{Label: "View on OpenLibrary", URL: links.RecordURL(b.Key)}, true
}

// CoverURL returns the cover image URL, or false when the record has no cover.
func CoverURL(b openlibrary.Book, links openlibrary.Links) (string, bool) {
	if !b.HasCover() {
		return "", false
	}
	return links.CoverURL(*b.CoverID), true
}
