// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package recommend

import "errors"

var (
	// ErrNotReady is returned by queries before the first model is published.
	ErrNotReady = errors.New("recommend: model not built")

	// ErrBuildInProgress is returned when a build is requested while another runs.
	ErrBuildInProgress = errors.New("recommend: build already in progress")

	// ErrNoLoader is returned by Rebuild when no catalog loader is configured.
	ErrNoLoader = errors.New("recommend: catalog loader not set")
)

// Build stages reported by BuildError.
const (
	StageLoad      = "load"
	StageVectorize = "vectorize"
	StageMatrix    = "matrix"
)

// BuildError reports a failed model build. The previously published model,
// if any, stays live.
type BuildError struct {
	Stage string
	Err   error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return "recommend: build failed at " + e.Stage + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause for error unwrapping.
func (e *BuildError) Unwrap() error {
	return e.Err
}
