// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Supported loader formats.
const (
	FormatAuto   = "auto"
	FormatCSV    = "csv"
	FormatDuckDB = "duckdb"
)

// Required column names, matched case-insensitively.
const (
	ColumnTitle  = "title"
	ColumnGenres = "genres"
)

// Loader reads a full catalog.
type Loader interface {
	Load(ctx context.Context) ([]Item, error)
	// Source identifies what is being read, for logs and errors.
	Source() string
}

// Options selects and configures a Loader.
type Options struct {
	Path string
	// Format is "csv", "duckdb" or "auto". Auto reads Parquet through
	// DuckDB and everything else with the CSV loader.
	Format string
	// Delimiter for the CSV loader. Zero means comma.
	Delimiter rune
}

// NewLoader returns the loader for opts.
func NewLoader(opts Options) (Loader, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("catalog path is required")
	}

	format := strings.ToLower(opts.Format)
	if format == "" || format == FormatAuto {
		format = FormatCSV
		if isParquet(opts.Path) {
			format = FormatDuckDB
		}
	}

	switch format {
	case FormatCSV:
		return NewCSVLoader(opts.Path, opts.Delimiter), nil
	case FormatDuckDB:
		return NewDuckDBLoader(opts.Path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}
}

func isParquet(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".parquet" || ext == ".pq"
}

// locateColumns finds the title and genres positions in a header.
func locateColumns(header []string) (titleIdx, genresIdx int, err error) {
	titleIdx, genresIdx = -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case ColumnTitle:
			if titleIdx < 0 {
				titleIdx = i
			}
		case ColumnGenres:
			if genresIdx < 0 {
				genresIdx = i
			}
		}
	}

	var missing []string
	if titleIdx < 0 {
		missing = append(missing, ColumnTitle)
	}
	if genresIdx < 0 {
		missing = append(missing, ColumnGenres)
	}
	if len(missing) > 0 {
		return -1, -1, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return titleIdx, genresIdx, nil
}
