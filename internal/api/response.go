// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinesim/internal/logging"
)

// APIResponse is the envelope of every JSON response.
type APIResponse struct {
	// Success is false exactly when Error is set.
	Success bool `json:"success"`

	// Data is the payload, omitted on error.
	Data interface{} `json:"data,omitempty"`

	// Error describes a failed request.
	Error *APIError `json:"error,omitempty"`

	// Meta is always present.
	Meta *APIMeta `json:"meta"`
}

// APIError is the error body.
type APIError struct {
	// Code is machine-readable, e.g. TITLE_NOT_FOUND.
	Code string `json:"code"`

	// Message is for humans.
	Message string `json:"message"`

	// Details carries structured context such as suggestions or failed fields.
	Details interface{} `json:"details,omitempty"`

	// RequestID echoes X-Request-ID.
	RequestID string `json:"request_id,omitempty"`
}

// APIMeta is response metadata.
type APIMeta struct {
	RequestID  string    `json:"request_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	DurationMs int64     `json:"duration_ms"`
	Cached     bool      `json:"cached,omitempty"`
}

// ResponseWriter writes enveloped responses and fills in the metadata.
type ResponseWriter struct {
	w         http.ResponseWriter
	r         *http.Request
	startTime time.Time
}

// NewResponseWriter starts timing a response.
func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{w: w, r: r, startTime: time.Now()}
}

// Success writes 200 with data.
func (rw *ResponseWriter) Success(data interface{}) {
	rw.write(http.StatusOK, true, data, nil, false)
}

// SuccessCached writes 200 with data and the cached flag.
func (rw *ResponseWriter) SuccessCached(data interface{}, cached bool) {
	rw.write(http.StatusOK, true, data, nil, cached)
}

// Error writes an error response.
func (rw *ResponseWriter) Error(status int, code, message string) {
	rw.ErrorWithDetails(status, code, message, nil)
}

// ErrorWithDetails writes an error response with a details object.
func (rw *ResponseWriter) ErrorWithDetails(status int, code, message string, details interface{}) {
	rw.write(status, false, nil, &APIError{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: logging.RequestIDFromContext(rw.r.Context()),
	}, false)
}

// BadRequest writes 400.
func (rw *ResponseWriter) BadRequest(message string) {
	rw.Error(http.StatusBadRequest, ErrCodeBadRequest, message)
}

// ServiceUnavailable writes 503.
func (rw *ResponseWriter) ServiceUnavailable(code, message string) {
	rw.w.Header().Set("Retry-After", "5")
	rw.Error(http.StatusServiceUnavailable, code, message)
}

// InternalError writes 500 and logs err. The client sees only message.
func (rw *ResponseWriter) InternalError(message string, err error) {
	logging.Ctx(rw.r.Context()).Error().Err(err).Str("path", rw.r.URL.Path).Msg(message)
	rw.Error(http.StatusInternalServerError, ErrCodeInternalError, message)
}

func (rw *ResponseWriter) write(status int, ok bool, data interface{}, apiErr *APIError, cached bool) {
	resp := APIResponse{
		Success: ok,
		Data:    data,
		Error:   apiErr,
		Meta: &APIMeta{
			RequestID:  logging.RequestIDFromContext(rw.r.Context()),
			Timestamp:  time.Now().UTC(),
			DurationMs: time.Since(rw.startTime).Milliseconds(),
			Cached:     cached,
		},
	}

	rw.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.w.WriteHeader(status)
	if err := json.NewEncoder(rw.w).Encode(resp); err != nil {
		logging.Ctx(rw.r.Context()).Error().Err(err).Msg("failed to encode JSON response")
	}
}

// WriteError writes an error response without keeping a ResponseWriter.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	NewResponseWriter(w, r).Error(status, code, message)
}
