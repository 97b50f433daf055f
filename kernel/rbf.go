// SPDX-License-Identifier: MIT
// Package: ogp/kernel
//
// rbf.go: squared-exponential (RBF) kernel with one length scale per
// input dimension (automatic relevance determination).
//
//	k(x, y) = exp(-½ Σ_d ((x_d − y_d) / ℓ_d)²)
//
// Values lie in (0, 1] and equal 1 only when x == y.

package kernel

import (
	"math"

	"github.com/cockroachdb/errors"
)

// RBF is the squared-exponential kernel. The zero value is not usable;
// construct with NewRBF.
type RBF struct {
	lengths []float64
}

// NewRBF returns an RBF kernel with the given length scales, one per input
// dimension. The slice is copied.
//
// Errors:
//   - ErrNoParameters if lengths is empty.
//   - ErrLengthScale  if any scale is ≤ 0, NaN or ±Inf.
func NewRBF(lengths []float64) (*RBF, error) {
	if err := validateLengths(lengths); err != nil {
		return nil, err
	}
	r := &RBF{lengths: make([]float64, len(lengths))}
	copy(r.lengths, lengths)

	return r, nil
}

// validateLengths enforces the RBF invariant: at least one scale, all finite and > 0.
func validateLengths(lengths []float64) error {
	if len(lengths) == 0 {
		return ErrNoParameters
	}
	for i, l := range lengths {
		if !(l > 0) || math.IsInf(l, 0) {
			return errors.Wrapf(ErrLengthScale, "length[%d]=%v", i, l)
		}
	}

	return nil
}

// sqDist returns Σ_d ((x_d − y_d)/ℓ_d)².
//
// Complexity: O(d).
func (r *RBF) sqDist(x, y []float64) float64 {
	var s, z float64
	for d, l := range r.lengths {
		z = (x[d] - y[d]) / l
		s += z * z
	}

	return s
}

// Evaluate returns exp(-½ Σ_d ((x_d − y_d)/ℓ_d)²).
func (r *RBF) Evaluate(x, y []float64) float64 {
	return math.Exp(-0.5 * r.sqDist(x, y))
}

// Partial returns the derivative of Evaluate with respect to the i-th length
// scale: k(x, y)·(x_i − y_i)²/ℓ_i³.
func (r *RBF) Partial(x, y []float64, i int) (float64, error) {
	if i < 0 || i >= len(r.lengths) {
		return 0, errors.Wrapf(ErrParameterIndex, "index %d of %d", i, len(r.lengths))
	}
	l := r.lengths[i]
	diff := x[i] - y[i]

	return r.Evaluate(x, y) * diff * diff / (l * l * l), nil
}

// Gradient returns k(x, y)·(x − y)²/ℓ³ element-wise, reusing dst when it has
// the right length.
//
// Complexity: O(d), one exp evaluation.
func (r *RBF) Gradient(x, y, dst []float64) []float64 {
	if len(dst) != len(r.lengths) {
		dst = make([]float64, len(r.lengths))
	}
	k := r.Evaluate(x, y)
	var diff float64
	for d, l := range r.lengths {
		diff = x[d] - y[d]
		dst[d] = k * diff * diff / (l * l * l)
	}

	return dst
}

// Dimension returns the point length the kernel accepts, one per length scale.
func (r *RBF) Dimension() int { return len(r.lengths) }

// NumParameters returns the number of length scales.
func (r *RBF) NumParameters() int { return len(r.lengths) }

// Parameters returns a copy of the length scales.
func (r *RBF) Parameters() []float64 {
	out := make([]float64, len(r.lengths))
	copy(out, r.lengths)

	return out
}

// SetParameters replaces the length scales. The vector must have
// NumParameters entries, all finite and > 0.
func (r *RBF) SetParameters(p []float64) error {
	if len(p) != len(r.lengths) {
		return errors.Wrapf(ErrParameterCount, "got %d, want %d", len(p), len(r.lengths))
	}
	if err := validateLengths(p); err != nil {
		return err
	}
	copy(r.lengths, p)

	return nil
}

// Clone returns an independent copy of the kernel.
func (r *RBF) Clone() Kernel {
	c := &RBF{lengths: make([]float64, len(r.lengths))}
	copy(c.lengths, r.lengths)

	return c
}
