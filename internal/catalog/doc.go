// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

// Package catalog loads item catalogs and normalizes them for vectorizing.
//
// A catalog is a table with at least a title and a genres column. Genres are
// pipe-delimited labels ("Adventure|Animation|Children"). Normalization keeps
// row order, replaces missing values with empty strings and produces the
// combined text used by the similarity model:
//
//	"Toy Story" + " " + "Adventure Animation Children"
//
// Two loaders are provided:
//
//   - CSVLoader reads delimited text with encoding/csv.
//   - DuckDBLoader reads CSV or Parquet through DuckDB's read_csv_auto and
//     read_parquet table functions.
//
// Both report unreadable sources and missing columns as *LoadError.
package catalog
