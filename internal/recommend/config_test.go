// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package recommend

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Limits.DefaultN != 10 {
		t.Errorf("expected DefaultN 10, got %d", cfg.Limits.DefaultN)
	}
	if cfg.Limits.SuggestionLimit != 10 {
		t.Errorf("expected SuggestionLimit 10, got %d", cfg.Limits.SuggestionLimit)
	}
	if !cfg.Cache.Enabled {
		t.Error("expected cache enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to be valid, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero default_n", func(c *Config) { c.Limits.DefaultN = 0 }, "limits.default_n"},
		{"zero suggestion limit", func(c *Config) { c.Limits.SuggestionLimit = 0 }, "limits.suggestion_limit"},
		{"suggestion limit above 10", func(c *Config) { c.Limits.SuggestionLimit = 11 }, "limits.suggestion_limit"},
		{"negative workers", func(c *Config) { c.Build.Workers = -1 }, "build.workers"},
		{"zero timeout", func(c *Config) { c.Build.Timeout = 0 }, "build.timeout"},
		{"cache zero ttl", func(c *Config) { c.Cache.TTL = 0 }, "cache.ttl"},
		{"cache zero entries", func(c *Config) { c.Cache.MaxEntries = 0 }, "cache.max_entries"},
		{"disabled cache ignores sizing", func(c *Config) {
			c.Cache.Enabled = false
			c.Cache.TTL = 0
			c.Cache.MaxEntries = 0
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	t.Parallel()

	orig := DefaultConfig()
	clone := orig.Clone()
	clone.Limits.DefaultN = 99

	if orig.Limits.DefaultN == 99 {
		t.Error("expected clone to be independent of original")
	}
}

func TestConfig_MarshalJSON(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Cache.TTL = 90 * time.Second

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var out map[string]map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got := out["cache"]["ttl"]; got != "1m30s" {
		t.Errorf("expected ttl 1m30s, got %v", got)
	}
	if got := out["build"]["timeout"]; got != "10m0s" {
		t.Errorf("expected timeout 10m0s, got %v", got)
	}
	if got := out["limits"]["default_n"]; got != float64(10) {
		t.Errorf("expected default_n 10, got %v", got)
	}
}
