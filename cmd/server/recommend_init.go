// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinesim/internal/catalog"
	"github.com/tomtom215/cinesim/internal/config"
	"github.com/tomtom215/cinesim/internal/recommend"
	"github.com/tomtom215/cinesim/internal/supervisor"
	"github.com/tomtom215/cinesim/internal/supervisor/services"
)

// RecommendComponents holds the engine and the service that feeds it.
type RecommendComponents struct {
	Engine  *recommend.Engine
	Catalog *services.CatalogService
}

// initRecommend creates the engine, attaches the catalog loader and adds the
// catalog service to the tree. The first build happens when the tree starts.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, logger zerolog.Logger, tree *supervisor.SupervisorTree) (*RecommendComponents, error) {
	engine, err := recommend.NewEngine(buildEngineConfig(cfg), logger)
	if err != nil {
		return nil, err
	}

	loader, err := catalog.NewLoader(catalog.Options{
		Path:      cfg.Catalog.Path,
		Format:    cfg.Catalog.Format,
		Delimiter: cfg.Catalog.DelimiterRune(),
	})
	if err != nil {
		return nil, fmt.Errorf("catalog loader: %w", err)
	}
	engine.SetLoader(loader)

	svc := services.NewCatalogService(engine, buildCatalogServiceConfig(cfg), logger)
	tree.AddCatalogService(svc)

	logger.Info().
		Str("source", loader.Source()).
		Bool("watch", cfg.Catalog.Watch).
		Dur("reload_interval", cfg.Catalog.ReloadInterval).
		Int("workers", cfg.Recommend.Workers).
		Bool("cache_enabled", cfg.Recommend.CacheEnabled).
		Msg("recommendation engine initialized")

	return &RecommendComponents{Engine: engine, Catalog: svc}, nil
}

// buildEngineConfig converts the application config to the engine's.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	c := recommend.DefaultConfig()

	c.Limits.DefaultN = cfg.Recommend.DefaultN
	c.Limits.SuggestionLimit = cfg.Recommend.SuggestionLimit

	c.Build.Workers = cfg.Recommend.Workers
	if cfg.Recommend.BuildTimeout > 0 {
		c.Build.Timeout = cfg.Recommend.BuildTimeout
	}

	c.Cache.Enabled = cfg.Recommend.CacheEnabled
	c.Cache.TTL = cfg.Recommend.CacheTTL
	c.Cache.MaxEntries = cfg.Recommend.CacheMaxEntries

	return c
}

func buildCatalogServiceConfig(cfg *config.Config) services.CatalogServiceConfig {
	sc := services.CatalogServiceConfig{
		ReloadInterval:  cfg.Catalog.ReloadInterval,
		BreakerFailures: cfg.Catalog.BreakerFailures,
		BreakerTimeout:  cfg.Catalog.BreakerTimeout,
	}
	if cfg.Catalog.Watch {
		sc.WatchPath = cfg.Catalog.Path
	}
	return sc
}
