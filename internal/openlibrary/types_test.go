package openlibrary

import (
	"encoding/json"
	"testing"
)

func TestBookDecodesProviderFields(t *testing.T) {
	raw := `{
		"key": "/works/OL893415W",
		"title": "Dune &amp; Friends",
		"author_name": ["Frank Herbert"],
		"first_publish_year": 1965,
		"edition_count": 120,
		"language": ["eng", "spa"],
		"cover_i": 11481354,
		"ebook_access": "borrowable",
		"ia": ["dune00herb", "dune0000herb"],
		"ia_collection_s": "inlibrary;printdisabled",
		"unknown_field": {"nested": true}
	}`
	var b Book
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if b.Key != "/works/OL893415W" || b.Title != "Dune &amp; Friends" {
		t.Fatalf("key/title = %q/%q", b.Key, b.Title)
	}
	if b.FirstPublishYear == nil || *b.FirstPublishYear != 1965 {
		t.Fatalf("FirstPublishYear = %v, want 1965", b.FirstPublishYear)
	}
	if b.EditionCount == nil || *b.EditionCount != 120 {
		t.Fatalf("EditionCount = %v, want 120", b.EditionCount)
	}
	if !b.HasCover() || *b.CoverID != 11481354 {
		t.Fatalf("CoverID = %v, want 11481354", b.CoverID)
	}
	if b.IsPublic() {
		t.Fatalf("IsPublic = true for borrowable")
	}
	if len(b.IA) != 2 || b.IACollection != "inlibrary;printdisabled" {
		t.Fatalf("ia fields = %v / %q", b.IA, b.IACollection)
	}
}

func TestBookMissingOptionalFields(t *testing.T) {
	var b Book
	if err := json.Unmarshal([]byte(`{"title":"Untitled"}`), &b); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if b.FirstPublishYear != nil || b.EditionCount != nil || b.CoverID != nil {
		t.Fatalf("optional numbers should stay nil: %#v", b)
	}
	if b.HasCover() {
		t.Fatalf("HasCover = true without cover_i")
	}
	if b.AuthorNames != nil || b.Languages != nil || b.IA != nil {
		t.Fatalf("optional slices should stay nil: %#v", b)
	}
}

func TestHasCoverIgnoresZeroID(t *testing.T) {
	zero := int64(0)
	if (Book{CoverID: &zero}).HasCover() {
		t.Fatalf("HasCover = true for cover_i 0")
	}
}

func TestLinks(t *testing.T) {
	links := Links{
		Covers:  "https://covers.openlibrary.org/",
		Library: "https://openlibrary.org",
		Archive: " https://archive.org ",
	}
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"cover", links.CoverURL(42), "https://covers.openlibrary.org/b/id/42-M.jpg"},
		{"record with leading slash", links.RecordURL("/works/OL1W"), "https://openlibrary.org/works/OL1W"},
		{"record without leading slash", links.RecordURL("works/OL1W"), "https://openlibrary.org/works/OL1W"},
		{"archive", links.ArchiveURL("dune00herb"), "https://archive.org/details/dune00herb"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("got %q, want %q", tc.got, tc.want)
			}
		})
	}
}
