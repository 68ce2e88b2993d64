package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/shelf/internal/config"
	"github.com/five82/shelf/internal/logging"
	"github.com/five82/shelf/internal/openlibrary"
	"github.com/five82/shelf/internal/prefs"
	"github.com/five82/shelf/internal/ui"
)

// Options configure the Shelf application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shelf/prefs.toml
	Query      string // overrides default_query when set
	Route      string // "/" or "/books"; anything else opens the landing page
}

// Run boots the Shelf TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closer, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	uiOpts, err := buildUIOptions(ctx, cfg, opts)
	if err != nil {
		return err
	}

	logging.For(ctx).WithField("route", string(uiOpts.StartRoute)).Info("shelf starting")
	defer logging.For(ctx).Info("shelf stopped")

	return ui.Run(uiOpts)
}

func buildUIOptions(ctx context.Context, cfg config.Config, opts Options) (ui.Options, error) {
	client, err := openlibrary.NewClient(cfg.ClientOptions())
	if err != nil {
		return ui.Options{}, fmt.Errorf("init search client: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	query := cfg.DefaultQuery
	if q := strings.TrimSpace(opts.Query); q != "" {
		query = q
	}

	return ui.Options{
		Context:      ctx,
		Searcher:     client,
		Links:        cfg.Links(),
		DefaultQuery: query,
		StartRoute:   ui.ParseRoute(strings.TrimSpace(opts.Route)),
		ThemeName:    userPrefs.Theme,
		PrefsPath:    opts.PrefsPath,
	}, nil
}
