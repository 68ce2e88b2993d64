package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/shelf/internal/config"
	"github.com/five82/shelf/internal/prefs"
	"github.com/five82/shelf/internal/ui"
)

func TestRun_BadConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`search_url = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := Run(context.Background(), Options{ConfigPath: path})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("Run error = %v, want load config error", err)
	}
}

func TestRun_BadLogLevelFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "log_file = \"" + filepath.Join(dir, "shelf.log") + "\"\nlog_level = \"loud\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := Run(context.Background(), Options{ConfigPath: path})
	if err == nil || !strings.Contains(err.Error(), "init logging") {
		t.Fatalf("Run error = %v, want init logging error", err)
	}
}

func TestBuildUIOptions_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	got, err := buildUIOptions(context.Background(), config.Default(), Options{})
	if err != nil {
		t.Fatalf("buildUIOptions returned error: %v", err)
	}
	if got.DefaultQuery != "Book" {
		t.Fatalf("DefaultQuery = %q, want Book", got.DefaultQuery)
	}
	if got.StartRoute != ui.RouteHome {
		t.Fatalf("StartRoute = %q, want /", got.StartRoute)
	}
	if got.ThemeName != prefs.DefaultTheme {
		t.Fatalf("ThemeName = %q, want %q", got.ThemeName, prefs.DefaultTheme)
	}
	if got.Searcher == nil {
		t.Fatalf("Searcher is nil")
	}
	if got.Links.RecordURL("/works/OL1W") != "https://openlibrary.org/works/OL1W" {
		t.Fatalf("RecordURL = %q", got.Links.RecordURL("/works/OL1W"))
	}
}

func TestBuildUIOptions_Overrides(t *testing.T) {
	dir := t.TempDir()
	prefsPath := filepath.Join(dir, "prefs.toml")
	if err := prefs.Save(prefsPath, prefs.Prefs{Theme: "Slate"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := buildUIOptions(context.Background(), config.Default(), Options{
		PrefsPath: prefsPath,
		Query:     "  dune  ",
		Route:     "/books",
	})
	if err != nil {
		t.Fatalf("buildUIOptions returned error: %v", err)
	}
	if got.DefaultQuery != "dune" {
		t.Fatalf("DefaultQuery = %q, want dune", got.DefaultQuery)
	}
	if got.StartRoute != ui.RouteBooks {
		t.Fatalf("StartRoute = %q, want /books", got.StartRoute)
	}
	if got.ThemeName != "Slate" || got.PrefsPath != prefsPath {
		t.Fatalf("ThemeName = %q, PrefsPath = %q", got.ThemeName, got.PrefsPath)
	}
}

func TestBuildUIOptions_BadSearchURLFails(t *testing.T) {
	cfg := config.Default()
	cfg.SearchURL = "://nope"

	_, err := buildUIOptions(context.Background(), cfg, Options{})
	if err == nil || !strings.Contains(err.Error(), "init search client") {
		t.Fatalf("error = %v, want init search client error", err)
	}
}
