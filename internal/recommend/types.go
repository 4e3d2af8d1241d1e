// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package recommend

import "time"

// ResultStatus tells which variant of Result is populated.
type ResultStatus string

const (
	// StatusFound means the title resolved and Items holds the ranked neighbours.
	StatusFound ResultStatus = "found"

	// StatusNotFound means no exact match; Suggestions holds substring matches.
	StatusNotFound ResultStatus = "not_found"
)

// String returns the status name.
func (s ResultStatus) String() string {
	return string(s)
}

// Recommendation is one ranked neighbour of the query item.
type Recommendation struct {
	// Index is the item's catalog position.
	Index int `json:"index"`

	// Title as it appears in the catalog.
	Title string `json:"title"`

	// Genres is the original pipe-delimited genres value.
	Genres string `json:"genres"`

	// Similarity is the linear-kernel score against the query item.
	Similarity float64 `json:"similarity"`
}

// Result is the answer to a recommendation query. Exactly one of Items
// (Found) or Suggestions (NotFound) is meaningful, as given by Status.
type Result struct {
	Status ResultStatus `json:"status"`

	// Query is the title as supplied by the caller.
	Query string `json:"query"`

	// ResolvedIndex is the catalog index the query resolved to, -1 when not found.
	ResolvedIndex int `json:"resolved_index"`

	// ResolvedTitle is the catalog title at ResolvedIndex.
	ResolvedTitle string `json:"resolved_title,omitempty"`

	// Items are at most n neighbours in descending similarity order.
	Items []Recommendation `json:"items,omitempty"`

	// Suggestions are up to SuggestionLimit titles containing the query.
	Suggestions []string `json:"suggestions,omitempty"`

	// ModelVersion identifies the snapshot that answered the query.
	ModelVersion uint64 `json:"model_version"`

	// CacheHit is true when the result came from the result cache.
	CacheHit bool `json:"cache_hit"`
}

// Found reports whether the query title resolved.
func (r *Result) Found() bool {
	return r.Status == StatusFound
}

// NotFound reports whether the query title did not resolve.
func (r *Result) NotFound() bool {
	return r.Status == StatusNotFound
}

// clone returns a copy whose slices do not alias r.
func (r *Result) clone() *Result {
	c := *r
	if r.Items != nil {
		c.Items = make([]Recommendation, len(r.Items))
		copy(c.Items, r.Items)
	}
	if r.Suggestions != nil {
		c.Suggestions = make([]string, len(r.Suggestions))
		copy(c.Suggestions, r.Suggestions)
	}
	return &c
}

// EngineStatus describes the published model and the build state.
type EngineStatus struct {
	// Ready is true once a model has been published.
	Ready bool `json:"ready"`

	// Building is true while a build is running.
	Building bool `json:"building"`

	// Version increments on every published model.
	Version uint64 `json:"version"`

	// Items is the catalog size of the published model.
	Items int `json:"items"`

	// Vocabulary is the number of distinct terms in the published model.
	Vocabulary int `json:"vocabulary"`

	// Source identifies where the published catalog was read from.
	Source string `json:"source,omitempty"`

	// BuiltAt is when the published model was built.
	BuiltAt time.Time `json:"built_at,omitempty"`

	// BuildDurationMS is how long the published model took to build.
	BuildDurationMS int64 `json:"build_duration_ms"`

	// LastError is the error of the most recent failed build, cleared on success.
	LastError string `json:"last_error,omitempty"`

	// LastAttemptAt is when the most recent build finished, successful or not.
	LastAttemptAt time.Time `json:"last_attempt_at,omitempty"`

	// Queries, CacheHits and CacheMisses are counters since process start.
	Queries     int64 `json:"queries"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
}
