// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinesim/internal/middleware"
)

// RouterConfig configures the middleware stack.
type RouterConfig struct {
	CORSOrigins          []string
	RateLimitRequests    int
	RateLimitWindow      time.Duration
	RateLimitDisabled    bool
	SlowRequestThreshold time.Duration
}

// Router mounts the handlers on a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	logger        zerolog.Logger
	slowThreshold time.Duration
}

// NewRouter creates a router for handler.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewRouter(handler *Handler, cfg RouterConfig, logger zerolog.Logger) *Router {
	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.CORSAllowedOrigins = cfg.CORSOrigins
	if cfg.RateLimitRequests > 0 {
		mwCfg.RateLimitRequests = cfg.RateLimitRequests
	}
	if cfg.RateLimitWindow > 0 {
		mwCfg.RateLimitWindow = cfg.RateLimitWindow
	}
	mwCfg.RateLimitDisabled = cfg.RateLimitDisabled

	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwCfg),
		logger:        logger.With().Str("component", "http").Logger(),
		slowThreshold: cfg.SlowRequestThreshold,
	}
}

// SetupChi builds the route tree.
//
//	GET  /api/v1/health/live
//	GET  /api/v1/health/ready
//	GET  /api/v1/recommendations?title=&n=
//	GET  /api/v1/titles/search?q=&limit=
//	GET  /api/v1/status
//	POST /api/v1/catalog/reload
//	GET  /metrics
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(router.logger, router.slowThreshold))
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		WriteError(w, req, http.StatusNotFound, ErrCodeNotFound, "no such endpoint")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		WriteError(w, req, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Health probes are not rate limited.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.Compression)

		r.Get("/recommendations", router.handler.GetRecommendations)
		r.Get("/titles/search", router.handler.SearchTitles)
		r.Get("/status", router.handler.GetStatus)
		r.Post("/catalog/reload", router.handler.ReloadCatalog)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
