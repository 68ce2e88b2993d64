package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/shelf/internal/openlibrary"
)

// Config captures everything Shelf reads from config.toml.
type Config struct {
	SearchURL         string
	CoversURL         string
	LibraryURL        string
	ArchiveURL        string
	DefaultQuery      string
	LogFile           string
	LogLevel          string
	UserAgent         string
	RequestsPerSecond float64
	RequestTimeout    time.Duration
}

const (
	defaultConfigPath   = "~/.config/shelf/config.toml"
	defaultSearchURL    = "https://openlibrary.org/search.json"
	defaultCoversURL    = "https://covers.openlibrary.org"
	defaultLibraryURL   = "https://openlibrary.org"
	defaultArchiveURL   = "https://archive.org"
	defaultQuery        = "Book"
	defaultLogFile      = "~/.local/state/shelf/shelf.log"
	defaultLogLevel     = "info"
	defaultUserAgent    = "shelf/0.1"
	defaultRequestsRate = 1.0
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		SearchURL:         defaultSearchURL,
		CoversURL:         defaultCoversURL,
		LibraryURL:        defaultLibraryURL,
		ArchiveURL:        defaultArchiveURL,
		DefaultQuery:      defaultQuery,
		LogFile:           mustExpand(defaultLogFile),
		LogLevel:          defaultLogLevel,
		UserAgent:         defaultUserAgent,
		RequestsPerSecond: defaultRequestsRate,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		SearchURL         string   `toml:"search_url"`
		CoversURL         string   `toml:"covers_url"`
		LibraryURL        string   `toml:"library_url"`
		ArchiveURL        string   `toml:"archive_url"`
		DefaultQuery      string   `toml:"default_query"`
		LogFile           *string  `toml:"log_file"`
		LogLevel          string   `toml:"log_level"`
		UserAgent         string   `toml:"user_agent"`
		RequestsPerSecond *float64 `toml:"requests_per_second"`
		RequestTimeout    string   `toml:"request_timeout"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.SearchURL = orDefault(raw.SearchURL, defaultSearchURL)
	cfg.CoversURL = orDefault(raw.CoversURL, defaultCoversURL)
	cfg.LibraryURL = orDefault(raw.LibraryURL, defaultLibraryURL)
	cfg.ArchiveURL = orDefault(raw.ArchiveURL, defaultArchiveURL)
	cfg.DefaultQuery = orDefault(raw.DefaultQuery, defaultQuery)
	cfg.LogLevel = strings.ToLower(orDefault(raw.LogLevel, defaultLogLevel))
	cfg.UserAgent = orDefault(raw.UserAgent, defaultUserAgent)

	// An explicitly empty log_file disables logging.
	if raw.LogFile != nil {
		cfg.LogFile = ""
		if trimmed := strings.TrimSpace(*raw.LogFile); trimmed != "" {
			cfg.LogFile = mustExpand(trimmed)
		}
	}

	if raw.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = *raw.RequestsPerSecond
	}

	if timeout := strings.TrimSpace(raw.RequestTimeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse request_timeout: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("parse request_timeout: negative duration %q", timeout)
		}
		cfg.RequestTimeout = d
	}

	return cfg, nil
}

// Links returns the external host rules for covers, records and archive scans.
func (c Config) Links() openlibrary.Links {
	return openlibrary.Links{
		Covers:  c.CoversURL,
		Library: c.LibraryURL,
		Archive: c.ArchiveURL,
	}
}

// ClientOptions returns the search client settings.
func (c Config) ClientOptions() openlibrary.Options {
	return openlibrary.Options{
		SearchURL:         c.SearchURL,
		UserAgent:         c.UserAgent,
		RequestsPerSecond: c.RequestsPerSecond,
		Timeout:           c.RequestTimeout,
	}
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading "~" and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
