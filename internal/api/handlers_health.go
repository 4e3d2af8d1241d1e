// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the data of the health endpoints.
type HealthStatus struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	ModelVersion  uint64  `json:"model_version,omitempty"`
	Items         int     `json:"items,omitempty"`
}

// HealthLive handles GET /api/v1/health/live. It answers 200 while the process serves HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{
		Status:        "alive",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /api/v1/health/ready: 200 once a model is
// published, 503 before.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if !h.engine.Ready() {
		rw.ServiceUnavailable(ErrCodeNotReady, "model is not built yet")
		return
	}

	st := h.engine.Status()
	rw.Success(HealthStatus{
		Status:        "ready",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		ModelVersion:  st.Version,
		Items:         st.Items,
	})
}
