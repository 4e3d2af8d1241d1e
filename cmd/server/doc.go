// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

/*
Package main is the Cinesim HTTP server.

Cinesim recommends catalog items whose titles and genres look alike. It
reads a catalog (CSV, or Parquet through DuckDB), builds a TF-IDF model of
each item's combined text, precomputes pairwise cosine similarity and
answers "more like this title" queries over a JSON API.

# Architecture

	RootSupervisor ("cinesim")
	├── CatalogSupervisor ("catalog-layer")
	│   └── CatalogService: startup build, interval and file-change reloads
	└── APISupervisor ("api-layer")
	    └── HTTPServerService: chi router

Startup order:

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Engine: recommend.Engine with the configured catalog loader
 4. Supervisor tree: suture v4, events logged through sutureslog
 5. HTTP server: chi with request IDs, CORS, rate limiting and Prometheus

The API answers 503 NOT_READY until the first build publishes a model.

# Configuration

	CATALOG_PATH=movies.csv          # catalog file (.csv, .tsv, .parquet)
	CATALOG_FORMAT=auto              # auto, csv or duckdb
	CATALOG_WATCH=true               # reload when the file changes
	CATALOG_RELOAD_INTERVAL=1h       # periodic reload, 0 disables
	RECOMMEND_DEFAULT_N=10
	HTTP_PORT=8080
	LOG_LEVEL=info
	LOG_FORMAT=json

See internal/config for the full list and config.yaml support.

# Endpoints

	GET  /api/v1/recommendations?title=Toy%20Story&n=5
	GET  /api/v1/titles/search?q=story&limit=10
	GET  /api/v1/status
	POST /api/v1/catalog/reload
	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /metrics

# Signals

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains for
up to HTTP_SHUTDOWN_TIMEOUT before the process exits.
*/
package main
