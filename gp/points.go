// SPDX-License-Identifier: MIT

package gp

import (
	"math"

	"github.com/cockroachdb/errors"
)

// PointSet is the ordered training-input container owned by a Process.
// Insertion order fixes the row/column index of each point in the covariance
// matrix. It implements kernel.Points; At returns the stored slice, which
// callers must treat as read-only.
type PointSet struct {
	dim int
	pts [][]float64
}

// newPointSet returns an empty set for points of length dim.
func newPointSet(dim, capacity int) *PointSet {
	return &PointSet{dim: dim, pts: make([][]float64, 0, capacity)}
}

// Len returns the number of points.
func (s *PointSet) Len() int { return len(s.pts) }

// At returns the i-th point without copying.
func (s *PointSet) At(i int) []float64 { return s.pts[i] }

// Dim returns the dimension every point has.
func (s *PointSet) Dim() int { return s.dim }

// push appends a copy of x.
func (s *PointSet) push(x []float64) {
	s.pts = append(s.pts, append([]float64(nil), x...))
}

// truncate drops every point at index ≥ n.
func (s *PointSet) truncate(n int) {
	for i := n; i < len(s.pts); i++ {
		s.pts[i] = nil
	}
	s.pts = s.pts[:n]
}

// copyAll returns a deep copy of the points.
func (s *PointSet) copyAll() [][]float64 {
	out := make([][]float64, len(s.pts))
	for i, x := range s.pts {
		out[i] = append([]float64(nil), x...)
	}
	return out
}

// validatePoint checks length and finiteness of x against dim.
func validatePoint(x []float64, dim int) error {
	if len(x) != dim {
		return errors.Wrapf(ErrDimensionMismatch, "got %d, want %d", len(x), dim)
	}
	for j, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrNonFinite, "coordinate %d", j)
		}
	}
	return nil
}

// validateScalar rejects NaN and ±Inf.
func validateScalar(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Wrapf(ErrNonFinite, "%s=%v", name, v)
	}
	return nil
}
