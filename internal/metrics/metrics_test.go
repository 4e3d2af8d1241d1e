// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Metrics are process-global, so these tests compare deltas and do not run in parallel.

func TestRecordBuild(t *testing.T) {
	beforeOK := testutil.ToFloat64(BuildsTotal.WithLabelValues("success"))
	beforeFail := testutil.ToFloat64(BuildsTotal.WithLabelValues("failure"))

	RecordBuild(120*time.Millisecond, 42, 300, 7, nil)

	if got := testutil.ToFloat64(BuildsTotal.WithLabelValues("success")); got != beforeOK+1 {
		t.Errorf("expected success count %v, got %v", beforeOK+1, got)
	}
	if got := testutil.ToFloat64(CatalogItems); got != 42 {
		t.Errorf("expected catalog_items 42, got %v", got)
	}
	if got := testutil.ToFloat64(VocabularySize); got != 300 {
		t.Errorf("expected vocabulary 300, got %v", got)
	}
	if got := testutil.ToFloat64(ModelVersion); got != 7 {
		t.Errorf("expected model version 7, got %v", got)
	}

	RecordBuild(time.Millisecond, 0, 0, 0, errors.New("boom"))

	if got := testutil.ToFloat64(BuildsTotal.WithLabelValues("failure")); got != beforeFail+1 {
		t.Errorf("expected failure count %v, got %v", beforeFail+1, got)
	}
	if got := testutil.ToFloat64(CatalogItems); got != 42 {
		t.Errorf("expected failed build to leave catalog_items at 42, got %v", got)
	}
}

func TestRecordBuildError(t *testing.T) {
	before := testutil.ToFloat64(BuildErrors.WithLabelValues("load"))
	RecordBuildError("load")
	if got := testutil.ToFloat64(BuildErrors.WithLabelValues("load")); got != before+1 {
		t.Errorf("expected %v, got %v", before+1, got)
	}
}

func TestRecordQuery(t *testing.T) {
	tests := []string{OutcomeFound, OutcomeNotFound, OutcomeError}

	for _, outcome := range tests {
		t.Run(outcome, func(t *testing.T) {
			before := testutil.ToFloat64(QueriesTotal.WithLabelValues(outcome))
			RecordQuery(outcome, time.Millisecond)
			if got := testutil.ToFloat64(QueriesTotal.WithLabelValues(outcome)); got != before+1 {
				t.Errorf("expected %v, got %v", before+1, got)
			}
		})
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("test"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("test"))

	RecordCacheLookup("test", true)
	RecordCacheLookup("test", false)
	RecordCacheLookup("test", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("test")); got != hits+1 {
		t.Errorf("expected hits %v, got %v", hits+1, got)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("test")); got != misses+2 {
		t.Errorf("expected misses %v, got %v", misses+2, got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/status", "200"))
	RecordAPIRequest("GET", "/api/v1/status", "200", 5*time.Millisecond)
	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/status", "200")); got != before+1 {
		t.Errorf("expected %v, got %v", before+1, got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("expected %v after inc, got %v", before+1, got)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("expected %v after dec, got %v", before, got)
	}
}

func TestCircuitBreakerMetrics(t *testing.T) {
	const name = "catalog-test"

	RecordCircuitBreakerResult(name, nil, false)
	RecordCircuitBreakerResult(name, errors.New("x"), false)
	RecordCircuitBreakerResult(name, nil, true)

	for _, result := range []string{"success", "failure", "rejected"} {
		if got := testutil.ToFloat64(CircuitBreakerRequests.WithLabelValues(name, result)); got != 1 {
			t.Errorf("expected 1 %s request, got %v", result, got)
		}
	}

	tests := []struct {
		to   string
		want float64
	}{
		{"open", 2},
		{"half-open", 1},
		{"closed", 0},
	}
	from := "closed"
	for _, tt := range tests {
		RecordCircuitBreakerTransition(name, from, tt.to)
		if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues(name)); got != tt.want {
			t.Errorf("state %s: expected gauge %v, got %v", tt.to, tt.want, got)
		}
		from = tt.to
	}
}
