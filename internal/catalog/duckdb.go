// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// DuckDB driver - reads CSV and Parquet catalogs through table functions
	_ "github.com/duckdb/duckdb-go/v2"
)

// DuckDBLoader reads a CSV or Parquet catalog through an in-memory DuckDB
// connection. The file type is picked from the extension.
type DuckDBLoader struct {
	path string
}

// NewDuckDBLoader creates a loader for the file at path.
func NewDuckDBLoader(path string) *DuckDBLoader {
	return &DuckDBLoader{path: path}
}

// Source returns the file path.
func (l *DuckDBLoader) Source() string {
	return l.path
}

// Load queries the file and normalizes the rows. Row order follows the file.
func (l *DuckDBLoader) Load(ctx context.Context) ([]Item, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, newLoadError(l.path, "open", fmt.Errorf("open duckdb: %w", err))
	}
	defer db.Close() //nolint:errcheck // in-memory database

	// A single connection keeps the scan ordered and avoids pool churn.
	db.SetMaxOpenConns(1)

	source := l.tableFunction()

	titleCol, genresCol, err := l.resolveColumns(ctx, db, source)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf( //nolint:gosec // identifiers are quoted, path is escaped
		"SELECT CAST(%s AS VARCHAR), CAST(%s AS VARCHAR) FROM %s",
		quoteIdent(titleCol), quoteIdent(genresCol), source,
	)
	rs, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, newLoadError(l.path, "query", err)
	}
	defer rs.Close() //nolint:errcheck // rows closed after iteration

	var rows []Row
	for rs.Next() {
		var r Row
		if err := rs.Scan(&r.Title, &r.Genres); err != nil {
			return nil, newLoadError(l.path, "read", err)
		}
		rows = append(rows, r)
	}
	if err := rs.Err(); err != nil {
		return nil, newLoadError(l.path, "read", err)
	}

	return Normalize(rows), nil
}

// tableFunction returns the DuckDB table function expression for the file.
func (l *DuckDBLoader) tableFunction() string {
	path := quoteLiteral(l.path)
	if isParquet(l.path) {
		return fmt.Sprintf("read_parquet(%s)", path)
	}
	return fmt.Sprintf("read_csv_auto(%s, header = true, all_varchar = true)", path)
}

// resolveColumns maps the required columns to their actual names in the file.
func (l *DuckDBLoader) resolveColumns(ctx context.Context, db *sql.DB, source string) (string, string, error) {
	probe, err := db.QueryContext(ctx, "SELECT * FROM "+source+" LIMIT 0") //nolint:gosec // path is escaped
	if err != nil {
		return "", "", newLoadError(l.path, "open", err)
	}
	defer probe.Close() //nolint:errcheck // probe has no rows

	columns, err := probe.Columns()
	if err != nil {
		return "", "", newLoadError(l.path, "header", err)
	}

	titleIdx, genresIdx, err := locateColumns(columns)
	if err != nil {
		return "", "", newLoadError(l.path, "header", err)
	}
	return columns[titleIdx], columns[genresIdx], nil
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
