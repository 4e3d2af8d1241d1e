// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/cinesim/internal/validation"
)

// sanitizeLogValue escapes control characters so query strings cannot forge log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			fmt.Fprintf(&b, "\\x%02x", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// intParam parses an optional integer query parameter. Absent means def.
func intParam(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return v, nil
}

// validateRequest writes a 400 and returns false when v fails validation.
func validateRequest(rw *ResponseWriter, v interface{}) bool {
	err := validation.Struct(v)
	if err == nil {
		return true
	}
	var verrs *validation.Errors
	if errors.As(err, &verrs) {
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidation, verrs.Error(), verrs.Details())
		return false
	}
	rw.BadRequest(err.Error())
	return false
}
