// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/tomtom215/cinesim/internal/validation"
)

// Validate checks field rules, then the rules that span fields.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	return c.validateRecommend()
}

func (c *Config) validateCatalog() error {
	switch c.Catalog.Delimiter {
	case "tab", `\t`:
		return nil
	}
	if utf8.RuneCountInString(c.Catalog.Delimiter) != 1 {
		return fmt.Errorf("catalog.delimiter must be a single character or \"tab\", got %q", c.Catalog.Delimiter)
	}
	if c.Catalog.Delimiter == "\"" || c.Catalog.Delimiter == "\n" || c.Catalog.Delimiter == "\r" {
		return fmt.Errorf("catalog.delimiter %q is not allowed", c.Catalog.Delimiter)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.CacheEnabled && c.Recommend.CacheMaxEntries == 0 {
		return fmt.Errorf("recommend.cache_max_entries must be positive when the cache is enabled")
	}
	return nil
}

// ShouldWarnAboutCORS reports a wildcard origin, which the server logs at startup.
func (c *Config) ShouldWarnAboutCORS() bool {
	for _, o := range c.Server.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}
