// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

// Package config loads Cinesim configuration with koanf v2.
//
// Sources, lowest precedence first:
//
//  1. Built-in defaults
//  2. A YAML file: CONFIG_PATH, else config.yaml, config.yml,
//     /etc/cinesim/config.yaml, /etc/cinesim/config.yml
//  3. Environment variables (CATALOG_PATH, HTTP_PORT, LOG_LEVEL, ...)
//
// Example config.yaml:
//
//	catalog:
//	  path: /data/movies.csv
//	  watch: true
//	recommend:
//	  default_n: 10
//	  suggestion_limit: 5
//	server:
//	  port: 8080
//	  cors_origins: ["https://example.com"]
//	logging:
//	  level: debug
//	  format: console
//
// Load validates field rules through internal/validation and then the
// cross-field rules in config_validate.go. Config is not modified after
// Load and may be read from any goroutine.
//
// WatchFile reports writes to a single file; the catalog service uses it to
// rebuild when the catalog changes on disk.
package config
