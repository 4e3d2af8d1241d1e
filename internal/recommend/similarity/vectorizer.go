// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package similarity

import (
	"context"
	"math"
	"sort"
)

// Vectorizer converts documents into TF-IDF weighted sparse vectors over a
// vocabulary learned from the documents themselves.
//
// Weighting for term t in document d over a corpus of N documents:
//
//	tf(t, d)  = raw count of t in d
//	idf(t)    = ln((1 + N) / (1 + df(t))) + 1
//	w(t, d)   = tf(t, d) * idf(t), then each document vector is scaled to unit L2 norm
//
// The same formula is applied to every document, so dot products between any
// two vectors are directly comparable.
type Vectorizer struct {
	// Tokenize splits a document into terms. Defaults to Tokenize.
	Tokenize func(string) []string
}

// NewVectorizer creates a vectorizer using the default English tokenizer.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{Tokenize: Tokenize}
}

// Model is the immutable output of Fit.
type Model struct {
	vocabulary map[string]int
	terms      []string
	idf        []float64
	vectors    []SparseVector
}

// VocabularySize returns the number of distinct terms.
func (m *Model) VocabularySize() int {
	return len(m.terms)
}

// Vectors returns the per-document vectors in input order.
// Callers must not modify them.
func (m *Model) Vectors() []SparseVector {
	return m.vectors
}

// Len returns the number of documents the model was fitted on.
func (m *Model) Len() int {
	return len(m.vectors)
}

// Fit learns the vocabulary and idf weights from docs and returns one vector
// per document. A document that tokenizes to nothing gets a zero vector.
func (v *Vectorizer) Fit(ctx context.Context, docs []string) (*Model, error) {
	tokenize := v.Tokenize
	if tokenize == nil {
		tokenize = Tokenize
	}

	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)

	for i, doc := range docs {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		tf := make(map[string]int)
		for _, tok := range tokenize(doc) {
			tf[tok]++
		}
		for term := range tf {
			df[term]++
		}
		counts[i] = tf
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(docs))
	for idx, term := range terms {
		vocabulary[term] = idx
		idf[idx] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]SparseVector, len(docs))
	for i, tf := range counts {
		vectors[i] = weigh(tf, vocabulary, idf)
	}

	return &Model{
		vocabulary: vocabulary,
		terms:      terms,
		idf:        idf,
		vectors:    vectors,
	}, nil
}

// weigh builds the normalized TF-IDF vector for one document's term counts.
func weigh(tf map[string]int, vocabulary map[string]int, idf []float64) SparseVector {
	if len(tf) == 0 {
		return SparseVector{}
	}

	indices := make([]int, 0, len(tf))
	for term := range tf {
		indices = append(indices, vocabulary[term])
	}
	sort.Ints(indices)

	vec := SparseVector{
		Indices: indices,
		Values:  make([]float64, len(indices)),
	}
	for k, idx := range indices {
		vec.Values[k] = idf[idx]
	}
	// Second pass keeps the term lookup out of the sort.
	for term, count := range tf {
		idx := vocabulary[term]
		k := sort.SearchInts(indices, idx)
		vec.Values[k] *= float64(count)
	}

	vec.normalize()
	return vec
}
