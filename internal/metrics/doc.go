// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics by the API router:

	curl http://localhost:8080/metrics

# Available Metrics

Model build:
  - similarity_build_duration_seconds: full build latency (histogram)
  - similarity_builds_total: builds by result (counter)
  - similarity_build_errors_total: failures by stage (counter)
  - catalog_items, similarity_vocabulary_terms, similarity_model_version (gauges)

Queries:
  - recommend_queries_total: queries by outcome found|not_found|error (counter)
  - recommend_query_duration_seconds: query latency (histogram)
  - cache_hits_total, cache_misses_total, cache_entries: result cache efficiency

HTTP:
  - api_requests_total, api_request_duration_seconds, api_active_requests
  - api_rate_limit_hits_total

Catalog reload:
  - catalog_reloads_total: reload attempts by trigger
  - circuit_breaker_state, circuit_breaker_requests_total,
    circuit_breaker_state_transitions_total

# Usage

Callers use the Record* helpers rather than touching collectors directly:

	start := time.Now()
	res, err := engine.Recommend(ctx, title, n)
	metrics.RecordQuery(metrics.OutcomeFound, time.Since(start))
*/
package metrics
