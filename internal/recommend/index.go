// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package recommend

import (
	"strings"

	"github.com/tomtom215/cinesim/internal/catalog"
)

// DefaultSearchLimit is used by Search when limit is not positive.
const DefaultSearchLimit = 10

// TitleIndex resolves titles to catalog indices case-insensitively.
// It is immutable after construction.
type TitleIndex struct {
	byTitle map[string]int
	lowered []string
	titles  []string
}

// NewTitleIndex indexes items by lowercased title. When several items share
// a title the last one wins.
func NewTitleIndex(items []catalog.Item) *TitleIndex {
	idx := &TitleIndex{
		byTitle: make(map[string]int, len(items)),
		lowered: make([]string, len(items)),
		titles:  catalog.Titles(items),
	}
	for i := range items {
		key := strings.ToLower(items[i].Title)
		idx.byTitle[key] = items[i].Index
		idx.lowered[i] = key
	}
	return idx
}

// Len returns the number of indexed items, duplicates included.
func (x *TitleIndex) Len() int {
	return len(x.titles)
}

// Lookup returns the catalog index for an exact, case-insensitive title match.
func (x *TitleIndex) Lookup(title string) (int, bool) {
	i, ok := x.byTitle[strings.ToLower(title)]
	return i, ok
}

// Search returns up to limit titles whose lowercase form contains the
// lowercased query as a literal substring, in catalog order. An empty
// query matches every title.
func (x *TitleIndex) Search(query string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	q := strings.ToLower(query)

	matches := make([]string, 0, min(limit, len(x.titles)))
	for i, lowered := range x.lowered {
		if !strings.Contains(lowered, q) {
			continue
		}
		matches = append(matches, x.titles[i])
		if len(matches) == limit {
			break
		}
	}
	return matches
}
