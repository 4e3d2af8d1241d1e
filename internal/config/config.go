// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
	"unicode/utf8"
)

// Config holds all application configuration.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CatalogConfig locates the item catalog and controls reloads.
//
// Environment Variables:
//   - CATALOG_PATH: path to the CSV or Parquet file (default: movies.csv)
//   - CATALOG_FORMAT: auto, csv or duckdb (default: auto)
//   - CATALOG_DELIMITER: CSV field separator, "tab" for TSV (default: ",")
//   - CATALOG_WATCH: rebuild when the file changes (default: false)
//   - CATALOG_RELOAD_INTERVAL: periodic rebuild, 0 disables (default: 0)
//   - CATALOG_BREAKER_FAILURES: consecutive failures that open the reload breaker (default: 3)
//   - CATALOG_BREAKER_TIMEOUT: how long the breaker stays open (default: 1m)
type CatalogConfig struct {
	Path            string        `koanf:"path" validate:"notblank"`
	Format          string        `koanf:"format" validate:"oneof=auto csv duckdb"`
	Delimiter       string        `koanf:"delimiter" validate:"required"`
	Watch           bool          `koanf:"watch"`
	ReloadInterval  time.Duration `koanf:"reload_interval" validate:"gte=0"`
	BreakerFailures uint32        `koanf:"breaker_failures" validate:"min=1"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout" validate:"gt=0"`
}

// DelimiterRune returns the CSV separator. "tab" and `\t` both mean a tab.
func (c *CatalogConfig) DelimiterRune() rune {
	switch c.Delimiter {
	case "tab", `\t`:
		return '\t'
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// RecommendConfig holds query limits and model build settings.
//
// Environment Variables:
//   - RECOMMEND_DEFAULT_N: results when the query asks for none (default: 10)
//   - RECOMMEND_SUGGESTION_LIMIT: "did you mean" titles for unknown queries, 1-10 (default: 10)
//   - RECOMMEND_WORKERS: matrix build goroutines, 0 = GOMAXPROCS (default: 0)
//   - RECOMMEND_BUILD_TIMEOUT: upper bound on one load and build (default: 10m)
//   - RECOMMEND_CACHE_ENABLED: cache query results (default: true)
//   - RECOMMEND_CACHE_TTL: cached result lifetime (default: 5m)
//   - RECOMMEND_CACHE_MAX_ENTRIES: cached result count (default: 10000)
type RecommendConfig struct {
	DefaultN        int           `koanf:"default_n" validate:"min=1"`
	SuggestionLimit int           `koanf:"suggestion_limit" validate:"min=1,max=10"`
	Workers         int           `koanf:"workers" validate:"gte=0"`
	BuildTimeout    time.Duration `koanf:"build_timeout" validate:"gt=0"`
	CacheEnabled    bool          `koanf:"cache_enabled"`
	CacheTTL        time.Duration `koanf:"cache_ttl" validate:"gte=0"`
	CacheMaxEntries int           `koanf:"cache_max_entries" validate:"gte=0"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: bind address (default: 0.0.0.0)
//   - HTTP_PORT: listen port (default: 8080)
//   - HTTP_TIMEOUT: request timeout (default: 30s)
//   - HTTP_SHUTDOWN_TIMEOUT: graceful shutdown limit (default: 10s)
//   - CORS_ORIGINS: comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQUESTS: requests per window per client IP (default: 100)
//   - RATE_LIMIT_WINDOW: rate limit window (default: 1m)
//   - DISABLE_RATE_LIMIT: turn rate limiting off (default: false)
type ServerConfig struct {
	Host              string        `koanf:"host" validate:"required"`
	Port              int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout           time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Addr returns host:port for net.Listen.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration with precedence defaults < config file < environment.
// See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// String summarizes the effective configuration for the startup log.
func (c *Config) String() string {
	return fmt.Sprintf("catalog=%s format=%s listen=%s log=%s/%s",
		c.Catalog.Path, c.Catalog.Format, c.Server.Addr(), c.Logging.Level, c.Logging.Format)
}
