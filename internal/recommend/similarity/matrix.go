// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package similarity

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrEmptyCorpus is returned when a matrix is requested for zero documents.
var ErrEmptyCorpus = errors.New("similarity: empty corpus")

// Matrix is a dense, symmetric N×N matrix of pairwise linear-kernel scores.
// It is immutable once built.
type Matrix struct {
	n    int
	data []float64
}

// Size returns N.
func (m *Matrix) Size() int {
	return m.n
}

// At returns the score between documents i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns the scores of document i against every document, in catalog order.
// The returned slice aliases the matrix and must not be modified.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
}

// BuildMatrix computes M[i][j] = vectors[i] · vectors[j] for every pair.
// Each worker owns row i and writes cells (i, j) and (j, i) for j >= i, so no
// cell is written twice and the result is exactly symmetric.
// workers <= 0 uses GOMAXPROCS.
func BuildMatrix(ctx context.Context, vectors []SparseVector, workers int) (*Matrix, error) {
	n := len(vectors)
	if n == 0 {
		return nil, ErrEmptyCorpus
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	m := &Matrix{n: n, data: make([]float64, n*n)}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			vi := vectors[i]
			if vi.IsZero() {
				return nil // row and column stay zero
			}
			for j := i; j < n; j++ {
				score := vi.Dot(vectors[j])
				m.data[i*n+j] = score
				m.data[j*n+i] = score
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m, nil
}
