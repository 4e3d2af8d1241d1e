// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is wrapped by LoadError when the source lacks a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrUnsupportedFormat is returned for unknown loader formats or file types.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// LoadError reports a catalog source that could not be read or interpreted.
type LoadError struct {
	// Source is the path or DSN being read.
	Source string
	// Op is the failing step: "open", "header", "read" or "query".
	Op  string
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("catalog %s %s: %v", e.Op, e.Source, e.Err)
}

// Unwrap returns the underlying cause for error unwrapping.
func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(source, op string, err error) *LoadError {
	return &LoadError{Source: source, Op: op, Err: err}
}
