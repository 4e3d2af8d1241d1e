// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const moviesCSV = `movieId,title,genres
1,Toy Story (1995),Adventure|Animation|Children|Comedy|Fantasy
2,Jumanji (1995),Adventure|Children|Fantasy
3,,Comedy|Romance
4,Heat (1995),
5,"Father of the Bride, Part II",Comedy
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	rows := []Row{
		NewRow("Toy Story", "Adventure|Animation|Children"),
		{Title: sql.NullString{}, Genres: sql.NullString{String: "Comedy", Valid: true}},
		{Title: sql.NullString{String: "Heat", Valid: true}},
		NewRow("Toy Story", "Drama"),
	}

	items := Normalize(rows)
	if len(items) != len(rows) {
		t.Fatalf("expected %d items, got %d", len(rows), len(items))
	}

	tests := []struct {
		idx          int
		title        string
		genres       string
		genresText   string
		combinedText string
	}{
		{0, "Toy Story", "Adventure|Animation|Children", "Adventure Animation Children", "Toy Story Adventure Animation Children"},
		{1, "", "Comedy", "Comedy", " Comedy"},
		{2, "Heat", "", "", "Heat "},
		{3, "Toy Story", "Drama", "Drama", "Toy Story Drama"},
	}
	for _, tt := range tests {
		got := items[tt.idx]
		if got.Index != tt.idx {
			t.Errorf("item %d: expected index %d, got %d", tt.idx, tt.idx, got.Index)
		}
		if got.Title != tt.title || got.Genres != tt.genres {
			t.Errorf("item %d: expected (%q, %q), got (%q, %q)", tt.idx, tt.title, tt.genres, got.Title, got.Genres)
		}
		if got.GenresText != tt.genresText {
			t.Errorf("item %d: expected genres text %q, got %q", tt.idx, tt.genresText, got.GenresText)
		}
		if got.CombinedText != tt.combinedText {
			t.Errorf("item %d: expected combined text %q, got %q", tt.idx, tt.combinedText, got.CombinedText)
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	t.Parallel()

	if items := Normalize(nil); len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestCSVLoader_Load(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "movies.csv", moviesCSV)
	items, err := NewCSVLoader(path, 0).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}
	if items[0].Title != "Toy Story (1995)" {
		t.Errorf("expected first title Toy Story (1995), got %q", items[0].Title)
	}
	if items[2].Title != "" || items[2].Genres != "Comedy|Romance" {
		t.Errorf("expected missing title to be empty, got %+v", items[2])
	}
	if items[3].Genres != "" || items[3].CombinedText != "Heat (1995) " {
		t.Errorf("expected missing genres to be empty, got %+v", items[3])
	}
	if items[4].Title != "Father of the Bride, Part II" {
		t.Errorf("expected quoted title to keep its comma, got %q", items[4].Title)
	}
	for i, it := range items {
		if it.Index != i {
			t.Errorf("expected index %d, got %d", i, it.Index)
		}
	}
}

func TestCSVLoader_HeaderVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		delimiter rune
		want      []string
	}{
		{"reordered and upper case", "Genres,TITLE\nDrama,Heat\n", 0, []string{"Heat"}},
		{"byte order mark", "\ufefftitle,genres\nHeat,Drama\n", 0, []string{"Heat"}},
		{"tab delimited", "title\tgenres\nHeat\tAction|Crime\n", '\t', []string{"Heat"}},
		{"short row", "title,genres,year\nHeat\n", 0, []string{"Heat"}},
		{"header only", "title,genres\n", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rows, err := NewCSVLoader("inline", tt.delimiter).readRows(context.Background(), strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("readRows failed: %v", err)
			}
			items := Normalize(rows)
			if len(items) != len(tt.want) {
				t.Fatalf("expected %d items, got %d", len(tt.want), len(items))
			}
			for i, title := range tt.want {
				if items[i].Title != title {
					t.Errorf("expected title %q, got %q", title, items[i].Title)
				}
			}
		})
	}
}

func TestCSVLoader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		path          string
		wantOp        string
		wantMissing   bool
		wantNotExists bool
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.csv"), "open", false, true},
		{"missing genres column", writeFile(t, "a.csv", "title,year\nHeat,1995\n"), "header", true, false},
		{"missing both columns", writeFile(t, "b.csv", "name\nHeat\n"), "header", true, false},
		{"empty file", writeFile(t, "c.csv", ""), "header", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewCSVLoader(tt.path, 0).Load(context.Background())
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected *LoadError, got %T (%v)", err, err)
			}
			if loadErr.Op != tt.wantOp {
				t.Errorf("expected op %q, got %q", tt.wantOp, loadErr.Op)
			}
			if loadErr.Source != tt.path {
				t.Errorf("expected source %q, got %q", tt.path, loadErr.Source)
			}
			if tt.wantMissing && !errors.Is(err, ErrMissingColumn) {
				t.Errorf("expected ErrMissingColumn, got %v", err)
			}
			if tt.wantNotExists && !errors.Is(err, os.ErrNotExist) {
				t.Errorf("expected os.ErrNotExist, got %v", err)
			}
		})
	}
}

func TestNewLoader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    Options
		wantCSV bool
		wantErr bool
	}{
		{"auto csv", Options{Path: "movies.csv"}, true, false},
		{"auto parquet", Options{Path: "movies.parquet", Format: FormatAuto}, false, false},
		{"explicit duckdb", Options{Path: "movies.csv", Format: "DuckDB"}, false, false},
		{"explicit csv", Options{Path: "movies.tsv", Format: FormatCSV, Delimiter: '\t'}, true, false},
		{"unknown format", Options{Path: "movies.csv", Format: "xml"}, false, true},
		{"missing path", Options{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, err := NewLoader(tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_, isCSV := loader.(*CSVLoader)
			if isCSV != tt.wantCSV {
				t.Errorf("expected CSV loader %v, got %T", tt.wantCSV, loader)
			}
			if loader.Source() != tt.opts.Path {
				t.Errorf("expected source %q, got %q", tt.opts.Path, loader.Source())
			}
		})
	}
}

func TestNewLoader_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := NewLoader(Options{Path: "x.csv", Format: "xml"})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestTitlesAndDocuments(t *testing.T) {
	t.Parallel()

	items := Normalize([]Row{NewRow("A Film", "Drama|War"), NewRow("B Film", "")})
	titles := Titles(items)
	docs := Documents(items)
	if titles[0] != "A Film" || titles[1] != "B Film" {
		t.Errorf("unexpected titles %v", titles)
	}
	if docs[0] != "A Film Drama War" || docs[1] != "B Film " {
		t.Errorf("unexpected documents %q", docs)
	}
}
