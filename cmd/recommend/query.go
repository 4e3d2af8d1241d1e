// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinesim/internal/catalog"
	"github.com/tomtom215/cinesim/internal/config"
	"github.com/tomtom215/cinesim/internal/logging"
	"github.com/tomtom215/cinesim/internal/recommend"
)

func newSearchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "List catalog titles containing a substring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, args[0])
		},
	}
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", recommend.DefaultSearchLimit, "maximum number of titles")
	return cmd
}

func runRecommend(cmd *cobra.Command, opts *options, title string) error {
	if opts.n < 1 {
		return fmt.Errorf("--num must be positive, got %d", opts.n)
	}

	engine, err := buildEngine(cmd.Context(), opts)
	if err != nil {
		return err
	}

	res, err := engine.Recommend(cmd.Context(), title, opts.n)
	if err != nil {
		return err
	}

	out := newPrinter(cmd.OutOrStdout(), opts.json)
	if res.NotFound() {
		if err := out.notFound(res); err != nil {
			return err
		}
		return errTitleNotFound
	}
	return out.recommendations(res)
}

func runSearch(cmd *cobra.Command, opts *options, query string) error {
	engine, err := buildEngine(cmd.Context(), opts)
	if err != nil {
		return err
	}

	titles, err := engine.Search(query, opts.limit)
	if err != nil {
		return err
	}
	return newPrinter(cmd.OutOrStdout(), opts.json).titles(query, titles)
}

// buildEngine resolves the catalog settings, loads the catalog and builds
// the model.
func buildEngine(ctx context.Context, opts *options) (*recommend.Engine, error) {
	level := "error"
	if opts.verbose {
		level = "info"
	}
	logging.Init(logging.Config{Level: level, Format: logging.FormatConsole})

	cfg, err := config.Load()
	if err != nil {
		return nil, &configError{err: err}
	}
	applyFlags(cfg, opts)

	loader, err := catalog.NewLoader(catalog.Options{
		Path:      cfg.Catalog.Path,
		Format:    cfg.Catalog.Format,
		Delimiter: cfg.Catalog.DelimiterRune(),
	})
	if err != nil {
		return nil, err
	}

	ec := recommend.DefaultConfig()
	ec.Build.Workers = cfg.Recommend.Workers
	ec.Cache.Enabled = false

	engine, err := recommend.NewEngine(ec, logging.WithComponent("recommend"))
	if err != nil {
		return nil, err
	}
	engine.SetLoader(loader)

	if ctx == nil {
		ctx = context.Background()
	}
	if err := engine.Rebuild(ctx); err != nil {
		return nil, err
	}
	return engine, nil
}

// applyFlags overrides configuration with flags that were set.
func applyFlags(cfg *config.Config, opts *options) {
	if opts.catalogPath != "" {
		cfg.Catalog.Path = opts.catalogPath
	}
	if opts.format != "" {
		cfg.Catalog.Format = opts.format
	}
	if opts.delimiter != "" {
		cfg.Catalog.Delimiter = opts.delimiter
	}
}
