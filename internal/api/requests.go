// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package api

// Query parameter structs. Field names in validation errors come from the
// query tag.

// RecommendRequest is GET /api/v1/recommendations.
//
// Fields:
//   - Title: catalog title, matched case-insensitively
//   - N: results wanted; 0 or absent uses the server default, larger values are capped
type RecommendRequest struct {
	Title string `query:"title" validate:"notblank,max=500"`
	N     int    `query:"n" validate:"gte=0,lte=10000"`
}

// SearchRequest is GET /api/v1/titles/search. An empty Q matches every title.
type SearchRequest struct {
	Q     string `query:"q" validate:"max=500"`
	Limit int    `query:"limit" validate:"gte=0,lte=1000"`
}
