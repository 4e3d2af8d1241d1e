// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

// Package middleware holds the HTTP middleware mounted by the API router.
//
//   - RequestID: X-Request-ID propagation and logging context
//   - RequestLogger: per-request debug log, warn on slow requests
//   - PrometheusMetrics: request count, latency and in-flight gauge by route pattern
//   - Compression: gzip for clients that accept it
//
// All middleware use the chi signature func(http.Handler) http.Handler.
package middleware
