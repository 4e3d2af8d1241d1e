// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

package similarity

import "math"

// SparseVector is a vector over the shared vocabulary holding only non-zero
// weights. Indices are strictly increasing; Values[k] is the weight at Indices[k].
type SparseVector struct {
	Indices []int
	Values  []float64
}

// IsZero reports whether the vector has no non-zero entries.
func (v SparseVector) IsZero() bool {
	return len(v.Indices) == 0
}

// Norm returns the L2 norm of the vector.
func (v SparseVector) Norm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dot computes the dot product of two sparse vectors by merging their
// sorted index lists.
func (v SparseVector) Dot(other SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(other.Indices) {
		switch {
		case v.Indices[i] == other.Indices[j]:
			sum += v.Values[i] * other.Values[j]
			i++
			j++
		case v.Indices[i] < other.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// normalize scales the vector in place to unit L2 norm. Zero vectors are left as-is.
func (v SparseVector) normalize() {
	n := v.Norm()
	if n == 0 {
		return
	}
	for k := range v.Values {
		v.Values[k] /= n
	}
}
