// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package recommend

import (
	"encoding/json"
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Limits contains query limits.
	Limits LimitsConfig `json:"limits"`

	// Build contains model build parameters.
	Build BuildConfig `json:"build"`

	// Cache contains result caching parameters.
	Cache CacheConfig `json:"cache"`
}

// MaxSuggestionLimit is the largest "did you mean" list a not-found result carries.
const MaxSuggestionLimit = 10

// LimitsConfig contains query limits.
type LimitsConfig struct {
	// DefaultN is used when a query asks for zero or fewer results.
	// Default: 10.
	DefaultN int `json:"default_n"`

	// SuggestionLimit caps the "did you mean" list for unknown titles.
	// Default: 10, at most MaxSuggestionLimit.
	SuggestionLimit int `json:"suggestion_limit"`
}

// BuildConfig contains model build parameters.
type BuildConfig struct {
	// Workers bounds the goroutines computing matrix rows.
	// Zero uses GOMAXPROCS.
	Workers int `json:"workers"`

	// Timeout is the maximum time allowed for one build, load included.
	// Default: 10m.
	Timeout time.Duration `json:"timeout"`
}

// CacheConfig contains result caching parameters.
type CacheConfig struct {
	// Enabled controls whether query results are cached.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the maximum number of cached results.
	// Default: 10000.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultN:        10,
			SuggestionLimit: 10,
		},
		Build: BuildConfig{
			Workers: 0,
			Timeout: 10 * time.Minute,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 10000,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limits.DefaultN < 1 {
		return fmt.Errorf("limits.default_n must be positive, got %d", c.Limits.DefaultN)
	}
	if c.Limits.SuggestionLimit < 1 || c.Limits.SuggestionLimit > MaxSuggestionLimit {
		return fmt.Errorf("limits.suggestion_limit must be between 1 and %d, got %d",
			MaxSuggestionLimit, c.Limits.SuggestionLimit)
	}

	if c.Build.Workers < 0 {
		return fmt.Errorf("build.workers must be non-negative, got %d", c.Build.Workers)
	}
	if c.Build.Timeout <= 0 {
		return fmt.Errorf("build.timeout must be positive, got %v", c.Build.Timeout)
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive when cache is enabled, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive when cache is enabled, got %d", c.Cache.MaxEntries)
		}
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs hold value types only.
	clone := *c
	return &clone
}

// MarshalJSON renders durations as strings ("10m0s") instead of nanoseconds.
func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Limits LimitsConfig `json:"limits"`
		Build  struct {
			Workers int    `json:"workers"`
			Timeout string `json:"timeout"`
		} `json:"build"`
		Cache struct {
			Enabled    bool   `json:"enabled"`
			TTL        string `json:"ttl"`
			MaxEntries int    `json:"max_entries"`
		} `json:"cache"`
	}{
		Limits: c.Limits,
		Build: struct {
			Workers int    `json:"workers"`
			Timeout string `json:"timeout"`
		}{
			Workers: c.Build.Workers,
			Timeout: c.Build.Timeout.String(),
		},
		Cache: struct {
			Enabled    bool   `json:"enabled"`
			TTL        string `json:"ttl"`
			MaxEntries int    `json:"max_entries"`
		}{
			Enabled:    c.Cache.Enabled,
			TTL:        c.Cache.TTL.String(),
			MaxEntries: c.Cache.MaxEntries,
		},
	})
}
