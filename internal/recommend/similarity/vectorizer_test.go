// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package similarity

import (
	"context"
	"math"
	"testing"
)

const epsilon = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func TestVectorizer_Fit_VocabularyOrder(t *testing.T) {
	t.Parallel()

	model, err := NewVectorizer().Fit(context.Background(), []string{"zebra apple", "mango apple"})
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if model.VocabularySize() != 3 {
		t.Fatalf("expected vocabulary size 3, got %d", model.VocabularySize())
	}
	for i, want := range []string{"apple", "mango", "zebra"} {
		if got := model.terms[i]; got != want {
			t.Errorf("expected term %d to be %q, got %q", i, want, got)
		}
		idx, ok := model.vocabulary[want]
		if !ok || idx != i {
			t.Errorf("expected vocabulary[%q] = %d, got %d (ok=%v)", want, i, idx, ok)
		}
	}
	if _, ok := model.vocabulary["the"]; ok {
		t.Error("expected stop word to be absent from vocabulary")
	}
}

func TestVectorizer_Fit_Weights(t *testing.T) {
	t.Parallel()

	model, err := NewVectorizer().Fit(context.Background(), []string{"apple banana", "apple"})
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	// apple appears in both docs, banana in one.
	if got := model.idf[0]; !almostEqual(got, 1) {
		t.Errorf("expected idf(apple) = 1, got %v", got)
	}
	wantBanana := math.Log(3.0/2.0) + 1
	if got := model.idf[1]; !almostEqual(got, wantBanana) {
		t.Errorf("expected idf(banana) = %v, got %v", wantBanana, got)
	}

	vecs := model.Vectors()
	norm := math.Sqrt(1 + wantBanana*wantBanana)
	if got := vecs[0].Values[0]; !almostEqual(got, 1/norm) {
		t.Errorf("expected apple weight %v, got %v", 1/norm, got)
	}
	if got := vecs[0].Values[1]; !almostEqual(got, wantBanana/norm) {
		t.Errorf("expected banana weight %v, got %v", wantBanana/norm, got)
	}
	if got := vecs[1].Values[0]; !almostEqual(got, 1) {
		t.Errorf("expected single-term vector weight 1, got %v", got)
	}
}

func TestVectorizer_Fit_RawCounts(t *testing.T) {
	t.Parallel()

	model, err := NewVectorizer().Fit(context.Background(), []string{"war war peace", "war peace"})
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	// Both terms have idf 1, so the first vector is (2, 1)/sqrt(5) over (peace, war).
	v := model.Vectors()[0]
	if !almostEqual(v.Values[0], 1/math.Sqrt(5)) {
		t.Errorf("expected peace weight %v, got %v", 1/math.Sqrt(5), v.Values[0])
	}
	if !almostEqual(v.Values[1], 2/math.Sqrt(5)) {
		t.Errorf("expected war weight %v, got %v", 2/math.Sqrt(5), v.Values[1])
	}
}

func TestVectorizer_Fit_UnitNorms(t *testing.T) {
	t.Parallel()

	docs := []string{
		"Toy Story Adventure Animation Children Comedy Fantasy",
		"Jumanji Adventure Children Fantasy",
		"Grumpier Old Men Comedy Romance",
		"",
		"the of and",
	}
	model, err := NewVectorizer().Fit(context.Background(), docs)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if model.Len() != len(docs) {
		t.Fatalf("expected %d vectors, got %d", len(docs), model.Len())
	}

	for i, v := range model.Vectors() {
		want := 1.0
		if i >= 3 {
			want = 0
		}
		if got := v.Norm(); math.Abs(got-want) > 1e-9 {
			t.Errorf("vector %d: expected norm %v, got %v", i, want, got)
		}
		for k := 1; k < len(v.Indices); k++ {
			if v.Indices[k] <= v.Indices[k-1] {
				t.Errorf("vector %d: indices not strictly increasing: %v", i, v.Indices)
				break
			}
		}
	}
}

func TestVectorizer_Fit_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewVectorizer().Fit(ctx, []string{"a b"}); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestVectorizer_CustomTokenizer(t *testing.T) {
	t.Parallel()

	v := &Vectorizer{Tokenize: func(s string) []string { return []string{s} }}
	model, err := v.Fit(context.Background(), []string{"The", "a"})
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if model.VocabularySize() != 2 {
		t.Errorf("expected custom tokenizer to keep both docs as terms, got %d", model.VocabularySize())
	}
}

func TestSparseVector_Dot(t *testing.T) {
	t.Parallel()

	a := SparseVector{Indices: []int{0, 2, 5}, Values: []float64{1, 2, 3}}
	b := SparseVector{Indices: []int{1, 2, 5, 7}, Values: []float64{4, 5, 6, 7}}

	if got := a.Dot(b); !almostEqual(got, 2*5+3*6) {
		t.Errorf("expected dot 28, got %v", got)
	}
	if got := a.Dot(SparseVector{}); got != 0 {
		t.Errorf("expected dot with zero vector 0, got %v", got)
	}
	if a.IsZero() || !(SparseVector{}).IsZero() {
		t.Error("expected only the empty vector to report IsZero")
	}
}
