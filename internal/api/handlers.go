// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinesim/internal/logging"
	"github.com/tomtom215/cinesim/internal/recommend"
)

// DefaultQueryTimeout bounds a single recommendation or search request.
const DefaultQueryTimeout = 10 * time.Second

// Engine is the part of *recommend.Engine the handlers use.
type Engine interface {
	Recommend(ctx context.Context, title string, n int) (*recommend.Result, error)
	Search(query string, limit int) ([]string, error)
	Status() recommend.EngineStatus
	Ready() bool
}

// Reloader rebuilds the model from the catalog source. trigger labels the
// reload in logs and metrics.
type Reloader interface {
	Reload(ctx context.Context, trigger string) error
}

// Handler holds the dependencies of the API handlers.
//
// Handler methods are split across files:
//   - handlers_recommend.go: recommendations, title search, reload, status
//   - handlers_health.go: liveness and readiness
type Handler struct {
	engine       Engine
	reloader     Reloader
	logger       zerolog.Logger
	startTime    time.Time
	queryTimeout time.Duration
}

// NewHandler creates the API handler. reloader may be nil, in which case
// POST /catalog/reload answers 503.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewHandler(engine Engine, reloader Reloader, logger zerolog.Logger) *Handler {
	return &Handler{
		engine:       engine,
		reloader:     reloader,
		logger:       logger.With().Str("component", "api").Logger(),
		startTime:    time.Now(),
		queryTimeout: DefaultQueryTimeout,
	}
}

// SetQueryTimeout changes the per-query timeout. Non-positive values are ignored.
func (h *Handler) SetQueryTimeout(d time.Duration) {
	if d > 0 {
		h.queryTimeout = d
	}
}

// log returns the handler logger with the request's IDs attached.
func (h *Handler) log(r *http.Request) *zerolog.Logger {
	return logging.Ctx(logging.ContextWithLogger(r.Context(), h.logger))
}
