// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

// Package validation wraps go-playground/validator v10 with a shared,
// lazily built validator and readable error messages.
//
// It checks both configuration structs (koanf tags) and HTTP query
// parameters (query tags):
//
//	type recommendParams struct {
//	    Title string `query:"title" validate:"notblank,max=500"`
//	    N     int    `query:"n" validate:"gte=0,lte=1000"`
//	}
//
//	if err := validation.Struct(&p); err != nil {
//	    var verrs *validation.Errors
//	    if errors.As(err, &verrs) { ... verrs.Details() ... }
//	}
package validation
