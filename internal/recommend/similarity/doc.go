// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

/*
Package similarity turns short item descriptions into TF-IDF vectors and
computes the pairwise similarity matrix used for content-based recommendations.

# Pipeline

	docs ──► Tokenize ──► Vectorizer.Fit ──► []SparseVector ──► BuildMatrix ──► *Matrix

Tokenize lowercases a document, splits it on non-word characters, and drops
single-character runs and English stop words. Fit assigns each remaining term a
dimension in sorted term order and weights each document as raw term count
times smoothed inverse document frequency:

	idf(t) = ln((1 + N) / (1 + df(t))) + 1

Document vectors are scaled to unit length, so BuildMatrix can use the plain
dot product (the linear kernel) and the result equals cosine similarity.
A document with no surviving terms has a zero vector and scores 0 against
everything, itself included.

# Concurrency

BuildMatrix fans rows out over an errgroup bounded by the requested worker
count. A Model and a Matrix are immutable after construction and are safe to
share between goroutines.
*/
package similarity
