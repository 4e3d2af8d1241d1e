// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

/*
Package cache provides a generic, thread-safe LRU cache with TTL expiry.

The recommendation engine stores query results here, keyed by model version,
normalized title and result size. Publishing a new model clears the cache.

# Usage

	results := cache.NewLRU[resultKey, *Result](10000, 5*time.Minute)
	results.Add(key, res)
	if res, ok := results.Get(key); ok {
	    // hit
	}

# Expiry

Entries expire lazily: Get treats an expired entry as a miss and drops it.
CleanupExpired sweeps the whole list and can be called periodically.
*/
package cache
