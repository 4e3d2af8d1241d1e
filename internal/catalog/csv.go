// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package catalog

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// utf8BOM is stripped from the first header cell.
const utf8BOM = "\ufeff"

// CSVLoader reads a delimited text file with a header row.
type CSVLoader struct {
	path      string
	delimiter rune
}

// NewCSVLoader creates a loader for the file at path. A zero delimiter means comma.
func NewCSVLoader(path string, delimiter rune) *CSVLoader {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVLoader{path: path, delimiter: delimiter}
}

// Source returns the file path.
func (l *CSVLoader) Source() string {
	return l.path
}

// Load reads and normalizes every row of the file.
func (l *CSVLoader) Load(ctx context.Context) ([]Item, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, newLoadError(l.path, "open", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	rows, err := l.readRows(ctx, f)
	if err != nil {
		return nil, err
	}
	return Normalize(rows), nil
}

func (l *CSVLoader) readRows(ctx context.Context, r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.Comma = l.delimiter
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, newLoadError(l.path, "header", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	titleIdx, genresIdx, err := locateColumns(header)
	if err != nil {
		return nil, newLoadError(l.path, "header", err)
	}

	var rows []Row
	for line := 2; ; line++ {
		if line%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newLoadError(l.path, "read", err)
		}

		rows = append(rows, Row{
			Title:  cell(record, titleIdx),
			Genres: cell(record, genresIdx),
		})
	}
	return rows, nil
}

// cell returns record[idx], treating short rows and empty cells as missing.
func cell(record []string, idx int) sql.NullString {
	if idx >= len(record) || record[idx] == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: record[idx], Valid: true}
}
