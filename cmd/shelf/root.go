package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/shelf/internal/app"
)

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "shelf",
		Short: "Browse and search the Open Library catalog from your terminal",
		Long: `Shelf is a terminal book-discovery app backed by Open Library search.

It opens on a landing page; the books view runs a search, shows the results
as a card grid and lets you filter them by first publication year and
public-scan availability.`,
		Example: `  # Start on the landing page
  shelf

  # Jump straight to the books view with a custom first search
  shelf --route /books --query "frank herbert"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/shelf/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/shelf/prefs.toml)")
	flags.StringVarP(&opts.Query, "query", "q", "", "first search run on the books view (overrides default_query)")
	flags.StringVarP(&opts.Route, "route", "r", "/", `view to open on: "/" or "/books"`)

	return cmd
}
