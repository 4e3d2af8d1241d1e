// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinesim/internal/config"
	"github.com/tomtom215/cinesim/internal/logging"
	"github.com/tomtom215/cinesim/internal/supervisor"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "movies.csv")
	data := "movieId,title,genres\n1,Toy Story,Animation|Comedy\n2,Heat,Action|Crime\n3,Toy Story 2,Animation|Comedy\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	cfg := &config.Config{}
	cfg.Catalog.Path = path
	cfg.Catalog.Format = "auto"
	cfg.Catalog.Delimiter = ","
	cfg.Recommend.DefaultN = 5
	cfg.Recommend.SuggestionLimit = 10
	cfg.Recommend.BuildTimeout = time.Minute
	cfg.Recommend.CacheEnabled = true
	cfg.Recommend.CacheTTL = time.Minute
	cfg.Recommend.CacheMaxEntries = 100
	return cfg
}

func TestBuildEngineConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Recommend.Workers = 3

	ec := buildEngineConfig(cfg)
	if ec.Limits.DefaultN != 5 || ec.Limits.SuggestionLimit != 10 || ec.Build.Workers != 3 {
		t.Errorf("unexpected engine config %+v", ec)
	}
	if err := ec.Validate(); err != nil {
		t.Errorf("expected valid engine config: %v", err)
	}

	cfg.Recommend.BuildTimeout = 0
	if got := buildEngineConfig(cfg).Build.Timeout; got != 10*time.Minute {
		t.Errorf("expected default build timeout, got %v", got)
	}
}

func TestBuildCatalogServiceConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	if sc := buildCatalogServiceConfig(cfg); sc.WatchPath != "" {
		t.Errorf("expected no watch path when watching is off, got %q", sc.WatchPath)
	}

	cfg.Catalog.Watch = true
	if sc := buildCatalogServiceConfig(cfg); sc.WatchPath != cfg.Catalog.Path {
		t.Errorf("expected watch path %q, got %q", cfg.Catalog.Path, sc.WatchPath)
	}
}

func TestInitRecommend_BuildsOnStartup(t *testing.T) {
	t.Parallel()

	tree, err := supervisor.NewSupervisorTree(slog.New(logging.NewSlogHandler(zerolog.Nop())), supervisor.TreeConfig{
		ShutdownTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("NewSupervisorTree: %v", err)
	}

	components, err := initRecommend(testConfig(t), zerolog.Nop(), tree)
	if err != nil {
		t.Fatalf("initRecommend: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	deadline := time.Now().Add(5 * time.Second)
	for !components.Engine.Ready() {
		if time.Now().After(deadline) {
			t.Fatal("engine was not built")
		}
		time.Sleep(10 * time.Millisecond)
	}

	res, err := components.Engine.Recommend(ctx, "toy story", 1)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(res.Items) != 1 || res.Items[0].Title != "Toy Story 2" {
		t.Errorf("expected Toy Story 2, got %+v", res.Items)
	}

	cancel()
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		t.Errorf("unexpected supervisor error: %v", err)
	}
}

func TestInitRecommend_BadFormat(t *testing.T) {
	t.Parallel()

	tree, err := supervisor.NewSupervisorTree(slog.New(logging.NewSlogHandler(zerolog.Nop())), supervisor.TreeConfig{})
	if err != nil {
		t.Fatalf("NewSupervisorTree: %v", err)
	}

	cfg := testConfig(t)
	cfg.Catalog.Format = "xml"
	if _, err := initRecommend(cfg, zerolog.Nop(), tree); err == nil {
		t.Error("expected error for unsupported format")
	}
}
