// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package catalog

import (
	"database/sql"
	"strings"
)

// GenreSeparator delimits genre labels in the raw genres field.
const GenreSeparator = "|"

// Row is one raw catalog record as read from a source. Missing or NULL
// cells are represented by an invalid NullString.
type Row struct {
	Title  sql.NullString
	Genres sql.NullString
}

// NewRow creates a row with both fields present.
func NewRow(title, genres string) Row {
	return Row{
		Title:  sql.NullString{String: title, Valid: true},
		Genres: sql.NullString{String: genres, Valid: true},
	}
}

// Item is a normalized catalog entry.
type Item struct {
	// Index is the 0-based position in the catalog. Indices are contiguous.
	Index int `json:"index"`

	// Title as it appears in the source, "" when missing.
	Title string `json:"title"`

	// Genres is the original pipe-delimited value, "" when missing.
	Genres string `json:"genres"`

	// GenresText is Genres with every separator replaced by a single space.
	GenresText string `json:"-"`

	// CombinedText is Title + " " + GenresText, the text that gets vectorized.
	CombinedText string `json:"-"`
}

// Normalize converts raw rows into items. Row order is preserved and no
// rows are dropped or deduplicated, so Items[i].Index == i.
func Normalize(rows []Row) []Item {
	items := make([]Item, len(rows))
	for i, r := range rows {
		title := r.Title.String
		genres := r.Genres.String
		if !r.Title.Valid {
			title = ""
		}
		if !r.Genres.Valid {
			genres = ""
		}
		genresText := strings.ReplaceAll(genres, GenreSeparator, " ")

		items[i] = Item{
			Index:        i,
			Title:        title,
			Genres:       genres,
			GenresText:   genresText,
			CombinedText: title + " " + genresText,
		}
	}
	return items
}

// Titles returns the item titles in catalog order.
func Titles(items []Item) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].Title
	}
	return out
}

// Documents returns the combined text of every item in catalog order.
func Documents(items []Item) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].CombinedText
	}
	return out
}
