// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/cinesim/internal/recommend"
)

// TriggerAPI labels reloads requested over HTTP.
const TriggerAPI = "api"

// NotFoundDetails is the details object of a TITLE_NOT_FOUND error.
type NotFoundDetails struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// SearchResponse is the data of GET /titles/search.
type SearchResponse struct {
	Query  string   `json:"query"`
	Titles []string `json:"titles"`
}

// ReloadResponse is the data of POST /catalog/reload.
type ReloadResponse struct {
	Reloaded bool                   `json:"reloaded"`
	Status   recommend.EngineStatus `json:"status"`
}

// GetRecommendations handles GET /api/v1/recommendations?title=...&n=...
//
// 200 carries the ranked items. An unknown title is 404 TITLE_NOT_FOUND
// with up to ten substring suggestions in details. 503 until the first
// model is built.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	n, err := intParam(r, "n", 0)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	req := RecommendRequest{Title: r.URL.Query().Get("title"), N: n}
	if !validateRequest(rw, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.queryTimeout)
	defer cancel()

	res, err := h.engine.Recommend(ctx, req.Title, req.N)
	if err != nil {
		writeEngineError(rw, err)
		return
	}

	if res.NotFound() {
		h.log(r).Debug().
			Str("title", sanitizeLogValue(req.Title)).
			Int("suggestions", len(res.Suggestions)).
			Msg("title not found")

		suggestions := res.Suggestions
		if suggestions == nil {
			suggestions = []string{}
		}
		rw.ErrorWithDetails(http.StatusNotFound, ErrCodeTitleNotFound,
			"no catalog item has that title",
			NotFoundDetails{Query: req.Title, Suggestions: suggestions})
		return
	}

	rw.SuccessCached(res, res.CacheHit)
}

// SearchTitles handles GET /api/v1/titles/search?q=...&limit=...
func (h *Handler) SearchTitles(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, err := intParam(r, "limit", recommend.DefaultSearchLimit)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	req := SearchRequest{Q: r.URL.Query().Get("q"), Limit: limit}
	if !validateRequest(rw, &req) {
		return
	}
	if req.Limit == 0 {
		req.Limit = recommend.DefaultSearchLimit
	}

	titles, err := h.engine.Search(req.Q, req.Limit)
	if err != nil {
		writeEngineError(rw, err)
		return
	}
	if titles == nil {
		titles = []string{}
	}
	rw.Success(SearchResponse{Query: req.Q, Titles: titles})
}

// ReloadCatalog handles POST /api/v1/catalog/reload.
//
// The reload runs to completion even if the client disconnects. 409 when a
// build is already running.
func (h *Handler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.reloader == nil {
		rw.ServiceUnavailable(ErrCodeCatalogUnavailable, "catalog reload is not configured")
		return
	}

	ctx := context.WithoutCancel(r.Context())
	if err := h.reloader.Reload(ctx, TriggerAPI); err != nil {
		h.log(r).Warn().Err(err).Msg("catalog reload request failed")
		writeEngineError(rw, err)
		return
	}

	rw.Success(ReloadResponse{Reloaded: true, Status: h.engine.Status()})
}

// GetStatus handles GET /api/v1/status.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.engine.Status())
}
