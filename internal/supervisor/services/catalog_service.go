// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinesim/internal/config"
	"github.com/tomtom215/cinesim/internal/logging"
	"github.com/tomtom215/cinesim/internal/metrics"
	"github.com/tomtom215/cinesim/internal/recommend"
)

// Reload triggers, used as the catalog_reloads_total label.
const (
	TriggerStartup    = "startup"
	TriggerInterval   = "interval"
	TriggerFileChange = "file_change"
)

// CatalogBreakerName labels the reload circuit breaker in metrics.
const CatalogBreakerName = "catalog-reload"

// CatalogEngine is the part of *recommend.Engine the service drives.
type CatalogEngine interface {
	Rebuild(ctx context.Context) error
	Ready() bool
}

// CatalogServiceConfig configures reloads.
type CatalogServiceConfig struct {
	// WatchPath is the catalog file to watch. Empty disables watching.
	WatchPath string

	// ReloadInterval rebuilds on a timer. Zero disables it.
	ReloadInterval time.Duration

	// RetryInterval retries the build while no model is published.
	// Default: 30s
	RetryInterval time.Duration

	// WatchDebounce collapses bursts of file events into one reload.
	// Default: 500ms
	WatchDebounce time.Duration

	// BreakerFailures is how many consecutive failed reloads open the breaker.
	// Default: 3
	BreakerFailures uint32

	// BreakerTimeout is how long the open breaker rejects reloads.
	// Default: 1m
	BreakerTimeout time.Duration
}

func (c *CatalogServiceConfig) applyDefaults() {
	if c.RetryInterval <= 0 {
		c.RetryInterval = 30 * time.Second
	}
	if c.WatchDebounce <= 0 {
		c.WatchDebounce = 500 * time.Millisecond
	}
	if c.BreakerFailures == 0 {
		c.BreakerFailures = 3
	}
	if c.BreakerTimeout <= 0 {
		c.BreakerTimeout = time.Minute
	}
}

// CatalogService owns the catalog lifecycle: the startup build, periodic
// and file-change reloads, and reloads requested over the API. All reloads
// pass through one circuit breaker, so a broken catalog source is not
// re-read on every trigger.
type CatalogService struct {
	engine  CatalogEngine
	config  CatalogServiceConfig
	breaker *gobreaker.CircuitBreaker[struct{}]
	logger  zerolog.Logger
	changes chan struct{}
	name    string
}

// NewCatalogService creates the service.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCatalogService(engine CatalogEngine, cfg CatalogServiceConfig, logger zerolog.Logger) *CatalogService {
	cfg.applyDefaults()
	logger = logger.With().Str("service", "catalog").Logger()

	metrics.CircuitBreakerState.WithLabelValues(CatalogBreakerName).Set(0)

	s := &CatalogService{
		engine:  engine,
		config:  cfg,
		logger:  logger,
		changes: make(chan struct{}, 1),
		name:    "catalog-service",
	}

	s.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        CatalogBreakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		// A busy engine or a canceled caller says nothing about the source.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, recommend.ErrBuildInProgress) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("catalog reload breaker changed state")
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
		},
	})

	return s
}

// Reload rebuilds the model from the catalog source. trigger labels the
// reload in logs and metrics. It returns gobreaker.ErrOpenState while the
// breaker is open and recommend.ErrBuildInProgress when a build is running.
func (s *CatalogService) Reload(ctx context.Context, trigger string) error {
	metrics.CatalogReloads.WithLabelValues(trigger).Inc()

	if logging.CorrelationIDFromContext(ctx) == "" {
		ctx = logging.ContextWithNewCorrelationID(ctx)
	}
	ctx = logging.ContextWithLogger(ctx, s.logger)
	log := logging.Ctx(ctx).With().Str("trigger", trigger).Logger()

	start := time.Now()
	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, s.engine.Rebuild(ctx)
	})

	rejected := errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
	metrics.RecordCircuitBreakerResult(CatalogBreakerName, err, rejected)

	switch {
	case err == nil:
		log.Info().Dur("duration", time.Since(start)).Msg("catalog reloaded")
	case rejected:
		log.Warn().Err(err).Msg("catalog reload rejected by open breaker")
	case errors.Is(err, recommend.ErrBuildInProgress):
		log.Debug().Msg("catalog reload skipped, build already running")
	default:
		log.Error().Err(err).Dur("duration", time.Since(start)).Msg("catalog reload failed")
	}
	return err
}

// BreakerState returns the reload breaker's state.
func (s *CatalogService) BreakerState() gobreaker.State {
	return s.breaker.State()
}

// Serve implements suture.Service. It builds once, then reloads on the
// configured triggers until ctx is canceled. Failed builds are logged and
// retried; they never stop the service.
func (s *CatalogService) Serve(ctx context.Context) error {
	s.logger.Info().
		Str("watch_path", s.config.WatchPath).
		Dur("reload_interval", s.config.ReloadInterval).
		Msg("catalog service starting")

	if !s.engine.Ready() {
		_ = s.Reload(ctx, TriggerStartup)
	}

	if s.config.WatchPath != "" {
		watcher, err := config.WatchFile(s.config.WatchPath, s.notifyChange, func(err error) {
			s.logger.Warn().Err(err).Msg("catalog watch error")
		})
		if err != nil {
			s.logger.Warn().Err(err).Str("path", s.config.WatchPath).Msg("catalog file watch unavailable")
		} else {
			defer func() { _ = watcher.Close() }()
		}
	}

	var tick <-chan time.Time
	if s.config.ReloadInterval > 0 {
		ticker := time.NewTicker(s.config.ReloadInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	var debounce <-chan time.Time
	for {
		var retry <-chan time.Time
		if !s.engine.Ready() {
			retry = time.After(s.config.RetryInterval)
		}

		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog service shutting down")
			return ctx.Err()

		case <-retry:
			_ = s.Reload(ctx, TriggerStartup)

		case <-tick:
			_ = s.Reload(ctx, TriggerInterval)

		case <-s.changes:
			debounce = time.After(s.config.WatchDebounce)

		case <-debounce:
			debounce = nil
			_ = s.Reload(ctx, TriggerFileChange)
		}
	}
}

func (s *CatalogService) notifyChange() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// String names the service in supervisor events.
func (s *CatalogService) String() string {
	return s.name
}
