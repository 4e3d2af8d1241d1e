// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

// Package recommend implements content-based "more like this" recommendations.
//
// # Architecture
//
// A build turns a catalog into an immutable snapshot:
//
//	[]catalog.Item ──► similarity.Vectorizer ──► similarity.BuildMatrix ──► snapshot
//	                                                                        ├─ TF-IDF model
//	                                                                        ├─ N×N similarity matrix
//	                                                                        └─ TitleIndex
//
// Queries resolve a title through the TitleIndex, rank the matching matrix
// row by descending score (stable, so ties keep catalog order), drop the
// top-ranked entry and return the next n. Unknown titles produce a NotFound
// result with up to ten substring suggestions.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	engine.SetLoader(loader)
//	if err := engine.Rebuild(ctx); err != nil {
//	    return err
//	}
//
//	res, err := engine.Recommend(ctx, "Toy Story (1995)", 10)
//	if res.NotFound() {
//	    fmt.Println("Did you mean:", res.Suggestions)
//	}
//
// # Thread Safety
//
// The published snapshot lives behind an atomic pointer, so queries never
// block on builds. Builds are serialized: a second build requested while one
// is running fails fast with ErrBuildInProgress. A failed build leaves the
// previous snapshot in place. Publishing a snapshot clears the result cache.
package recommend
