// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

// Package services holds the suture services run by the supervisor tree.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinesim/internal/logging"
)

// DefaultShutdownTimeout bounds graceful HTTP shutdown when none is given.
const DefaultShutdownTimeout = 10 * time.Second

// HTTPServer is the part of *http.Server the service drives. Tests swap in
// a fake; *http.Server satisfies it directly.
//
// If the value also implements io.Closer (as *http.Server does), Close is
// used to drop connections that outlive the shutdown timeout.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs an HTTP server under supervision.
//
// ListenAndServe blocks, so it runs in its own goroutine while Serve waits
// for either a listener error or cancellation:
//
//   - listener error: returned wrapped, and suture restarts the service
//   - cancellation: Shutdown with a fresh deadline, then ctx.Err()
//   - shutdown deadline exceeded: Close, then the deadline error
//
//	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
//	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	name            string
	logger          zerolog.Logger
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout uses
// DefaultShutdownTimeout.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
		logger:          logging.WithComponent("http"),
	}
}

// Serve implements suture.Service.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	if srv, ok := h.server.(*http.Server); ok {
		h.logger.Info().Str("addr", srv.Addr).Msg("http server starting")
	}

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		// Closed from outside the supervisor.
		return nil

	case <-ctx.Done():
		return h.shutdown(ctx, errCh)
	}
}

// shutdown drains in-flight requests. ctx is already canceled, so the
// deadline hangs off a fresh context.
func (h *HTTPServerService) shutdown(ctx context.Context, errCh <-chan error) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	start := time.Now()
	err := h.server.Shutdown(shutdownCtx)
	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded):
		closer, ok := h.server.(io.Closer)
		if !ok {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		h.logger.Warn().Dur("timeout", h.shutdownTimeout).Msg("http shutdown timed out, closing connections")
		if cerr := closer.Close(); cerr != nil {
			return fmt.Errorf("http server close failed: %w", errors.Join(err, cerr))
		}
		<-errCh
		return fmt.Errorf("http server shutdown timed out after %v: %w", h.shutdownTimeout, err)
	default:
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	<-errCh
	h.logger.Info().Dur("took", time.Since(start)).Msg("http server stopped")
	return ctx.Err()
}

// String names the service in supervisor events.
func (h *HTTPServerService) String() string {
	return h.name
}
