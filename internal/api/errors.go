// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinesim/internal/catalog"
	"github.com/tomtom215/cinesim/internal/recommend"
	"github.com/tomtom215/cinesim/internal/validation"
)

// Error codes.
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeValidation         = validation.CodeValidation
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeTitleNotFound      = "TITLE_NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeBuildInProgress    = "BUILD_IN_PROGRESS"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeNotReady           = "NOT_READY"
	ErrCodeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	ErrCodeReloadFailed       = "RELOAD_FAILED"
	ErrCodeTimeout            = "TIMEOUT"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// errorResponse describes how an error is reported to the client.
type errorResponse struct {
	status  int
	code    string
	message string
}

// classifyError maps engine, catalog and breaker errors to HTTP responses.
// The boolean is false for errors that should be logged as internal.
func classifyError(err error) (errorResponse, bool) {
	var loadErr *catalog.LoadError
	var buildErr *recommend.BuildError

	switch {
	case errors.Is(err, recommend.ErrNotReady):
		return errorResponse{http.StatusServiceUnavailable, ErrCodeNotReady, "model is not built yet"}, true
	case errors.Is(err, recommend.ErrBuildInProgress):
		return errorResponse{http.StatusConflict, ErrCodeBuildInProgress, "a catalog build is already running"}, true
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return errorResponse{http.StatusServiceUnavailable, ErrCodeCatalogUnavailable, "catalog reloads are paused after repeated failures"}, true
	case errors.Is(err, recommend.ErrNoLoader):
		return errorResponse{http.StatusServiceUnavailable, ErrCodeCatalogUnavailable, "no catalog source is configured"}, true
	case errors.Is(err, context.DeadlineExceeded):
		return errorResponse{http.StatusGatewayTimeout, ErrCodeTimeout, "request timed out"}, true
	case errors.As(err, &loadErr):
		return errorResponse{http.StatusBadGateway, ErrCodeReloadFailed, loadErr.Error()}, true
	case errors.As(err, &buildErr):
		return errorResponse{http.StatusUnprocessableEntity, ErrCodeReloadFailed, buildErr.Error()}, true
	default:
		return errorResponse{http.StatusInternalServerError, ErrCodeInternalError, "internal error"}, false
	}
}

// writeEngineError reports err through rw.
func writeEngineError(rw *ResponseWriter, err error) {
	resp, known := classifyError(err)
	if !known {
		rw.InternalError(resp.message, err)
		return
	}
	if resp.status == http.StatusServiceUnavailable {
		rw.ServiceUnavailable(resp.code, resp.message)
		return
	}
	rw.Error(resp.status, resp.code, resp.message)
}
