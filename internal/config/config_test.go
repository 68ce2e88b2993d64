package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SearchURL != defaultSearchURL {
		t.Fatalf("SearchURL = %q, want %q", cfg.SearchURL, defaultSearchURL)
	}
	if cfg.DefaultQuery != "Book" {
		t.Fatalf("DefaultQuery = %q, want Book", cfg.DefaultQuery)
	}
	if cfg.RequestsPerSecond != defaultRequestsRate {
		t.Fatalf("RequestsPerSecond = %v, want %v", cfg.RequestsPerSecond, defaultRequestsRate)
	}
	if cfg.RequestTimeout != 0 {
		t.Fatalf("RequestTimeout = %v, want none", cfg.RequestTimeout)
	}

	wantLog, err := ExpandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("ExpandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
search_url = "  http://10.0.0.5:9999/search.json  "
covers_url = "https://covers.example"
library_url = "https://library.example"
archive_url = "https://archive.example"
default_query = "  dune  "
log_file = "  ~/logs/shelf.log  "
log_level = "DEBUG"
user_agent = "shelf-test/1"
requests_per_second = 0
request_timeout = "15s"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SearchURL != "http://10.0.0.5:9999/search.json" {
		t.Fatalf("SearchURL = %q", cfg.SearchURL)
	}
	if cfg.DefaultQuery != "dune" {
		t.Fatalf("DefaultQuery = %q, want dune", cfg.DefaultQuery)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.RequestsPerSecond != 0 {
		t.Fatalf("RequestsPerSecond = %v, want 0 (disabled)", cfg.RequestsPerSecond)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Fatalf("RequestTimeout = %v, want 15s", cfg.RequestTimeout)
	}

	links := cfg.Links()
	if links.CoverURL(7) != "https://covers.example/b/id/7-M.jpg" {
		t.Fatalf("CoverURL = %q", links.CoverURL(7))
	}
	if links.ArchiveURL("x") != "https://archive.example/details/x" {
		t.Fatalf("ArchiveURL = %q", links.ArchiveURL("x"))
	}

	opts := cfg.ClientOptions()
	if opts.UserAgent != "shelf-test/1" || opts.Timeout != 15*time.Second {
		t.Fatalf("ClientOptions = %#v", opts)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
search_url = "   "
default_query = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SearchURL != defaultSearchURL {
		t.Fatalf("SearchURL = %q, want %q", cfg.SearchURL, defaultSearchURL)
	}
	if cfg.DefaultQuery != defaultQuery {
		t.Fatalf("DefaultQuery = %q, want %q", cfg.DefaultQuery, defaultQuery)
	}
}

func TestLoad_EmptyLogFileDisablesLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`log_file = ""`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`search_url = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidTimeoutFails(t *testing.T) {
	for _, value := range []string{"soon", "-5s"} {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(`request_timeout = "`+value+`"`), 0o600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), "request_timeout") {
			t.Fatalf("Load(%q) error = %v, want request_timeout error", value, err)
		}
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}
