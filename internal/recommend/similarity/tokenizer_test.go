// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package similarity

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"title and genres", "Toy Story Adventure Animation Children Comedy Fantasy",
			[]string{"toy", "story", "adventure", "animation", "children", "comedy", "fantasy"}},
		{"single chars dropped", "Toy Story 2", []string{"toy", "story"}},
		{"stop words dropped", "The Lord of the Rings", []string{"lord", "rings"}},
		{"punctuation splits", "Sci-Fi Film-Noir", []string{"sci", "fi", "film", "noir"}},
		{"digits kept", "Apollo 13 (1995)", []string{"apollo", "13", "1995"}},
		{"underscore is a word char", "foo_bar", []string{"foo_bar"}},
		{"unicode letters", "Amélie Romance", []string{"amélie", "romance"}},
		{"only stop words", "the and of", []string{}},
		{"repeated terms kept", "war war peace", []string{"war", "war", "peace"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tokenize(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsStopWord(t *testing.T) {
	t.Parallel()

	for _, w := range []string{"the", "and", "of", "yourselves", "amoungst"} {
		if !IsStopWord(w) {
			t.Errorf("expected %q to be a stop word", w)
		}
	}
	for _, w := range []string{"story", "comedy", "toy", "The"} {
		if IsStopWord(w) {
			t.Errorf("expected %q not to be a stop word", w)
		}
	}
	if got := len(englishStopWords); got != 318 {
		t.Errorf("expected 318 stop words, got %d", got)
	}
}
