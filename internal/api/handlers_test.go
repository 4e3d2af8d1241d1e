// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinesim/internal/catalog"
	"github.com/tomtom215/cinesim/internal/recommend"
)

// testCatalog is a small slice of the MovieLens catalog.
func testCatalog() []catalog.Item {
	return catalog.Normalize([]catalog.Row{
		catalog.NewRow("Toy Story", "Adventure|Animation|Children|Comedy|Fantasy"),
		catalog.NewRow("Jumanji", "Adventure|Children|Fantasy"),
		catalog.NewRow("Heat", "Action|Crime|Thriller"),
		catalog.NewRow("Toy Story 2", "Adventure|Animation|Children|Comedy|Fantasy"),
		catalog.NewRow("Casino", "Crime|Drama"),
		catalog.NewRow("Sabrina", "Comedy|Romance"),
	})
}

func newTestEngine(t *testing.T, build bool) *recommend.Engine {
	t.Helper()

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if build {
		if err := engine.Build(context.Background(), testCatalog()); err != nil {
			t.Fatalf("Build: %v", err)
		}
	}
	return engine
}

// stubReloader returns err and counts calls.
type stubReloader struct {
	err      error
	calls    atomic.Int32
	triggers chan string
}

func (s *stubReloader) Reload(_ context.Context, trigger string) error {
	s.calls.Add(1)
	if s.triggers != nil {
		s.triggers <- trigger
	}
	return s.err
}

// engineReloader rebuilds the engine from the test catalog.
type engineReloader struct {
	engine *recommend.Engine
}

func (e engineReloader) Reload(ctx context.Context, _ string) error {
	return e.engine.Build(ctx, testCatalog())
}

// testResponse mirrors APIResponse with raw data for per-test decoding.
type testResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code      string          `json:"code"`
		Message   string          `json:"message"`
		Details   json.RawMessage `json:"details"`
		RequestID string          `json:"request_id"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		Cached    bool   `json:"cached"`
	} `json:"meta"`
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) testResponse {
	t.Helper()

	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("expected JSON content type, got %q", ct)
	}
	var resp testResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, rec.Body.String())
	}
	return resp
}

func serve(h http.HandlerFunc, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(method, target, nil))
	return rec
}
