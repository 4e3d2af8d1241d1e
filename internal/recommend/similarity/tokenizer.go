// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package similarity

import (
	"strings"
	"unicode"
)

// minTokenLength is the shortest run of word characters kept as a token.
// Single characters ("2" in "Toy Story 2", "a") are dropped.
const minTokenLength = 2

// isWordRune matches the \w character class: letters, digits, marks and underscore.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}

// Tokenize lowercases text and splits it into runs of word characters,
// dropping runs shorter than two runes and English stop words.
// Punctuation and whitespace are separators, so "Sci-Fi" yields "sci" and "fi".
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < minTokenLength {
			continue
		}
		if IsStopWord(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
