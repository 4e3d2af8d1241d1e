// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

/*
Package api serves the recommendation engine over HTTP.

Endpoints:

	GET  /api/v1/recommendations?title=Toy+Story&n=5
	GET  /api/v1/titles/search?q=story&limit=10
	GET  /api/v1/status
	POST /api/v1/catalog/reload
	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /metrics

Every JSON response uses the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 0}}

Errors carry a code, a message and optional details:

	{"success": false,
	 "error": {"code": "TITLE_NOT_FOUND", "message": "...",
	           "details": {"query": "toy", "suggestions": ["Toy Story", "Toy Story 2"]}},
	 "meta": {...}}

Error codes and their statuses:

	VALIDATION_ERROR, BAD_REQUEST  400
	TITLE_NOT_FOUND, NOT_FOUND     404
	BUILD_IN_PROGRESS              409
	TOO_MANY_REQUESTS              429
	NOT_READY, CATALOG_UNAVAILABLE 503

The middleware stack is request ID, real IP, request logging, panic
recovery and CORS for all routes. The /api/v1 routes add per-IP rate
limiting (go-chi/httprate), security headers, Prometheus metrics and gzip.
*/
package api
