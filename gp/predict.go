// SPDX-License-Identifier: MIT

package gp

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// Evaluate returns the posterior mean and variance at x:
//
//	mean     = k*ᵀ · K⁻¹y
//	variance = 1 − k*ᵀ · K⁻¹ · k*
//
// where k* is the noise-free cross-covariance against the training points.
// With no training points the prior (0, 1) is returned. The variance is not
// clamped; tiny negative values can only come from rounding.
//
// Errors:
//   - ErrDimensionMismatch, ErrNonFinite.
//
// Complexity: O(N) kernel evaluations + O(N²) for the triangular solves.
func (p *Process) Evaluate(x []float64) (mean, variance float64, err error) {
	if err = validatePoint(x, p.dim); err != nil {
		return 0, 0, errors.Wrap(err, "evaluate")
	}
	n := p.points.Len()
	if n == 0 {
		return 0, 1, nil
	}

	cross := p.crossCovariance(x)
	mean = floats.Dot(cross, p.regressed[:n])
	variance = 1 - floats.Dot(cross, p.solve(cross))

	return mean, variance, nil
}

// EvaluateTrainingPoint is Evaluate at the i-th training point, reusing
// covariance column i. The noise added to the stored diagonal is removed so
// the self-covariance is the noise-free kernel value.
//
// Errors:
//   - ErrIndexOutOfRange when i ∉ [0, N).
//
// Complexity: O(N²).
func (p *Process) EvaluateTrainingPoint(i int) (mean, variance float64, err error) {
	n := p.points.Len()
	if i < 0 || i >= n {
		return 0, 0, errors.Wrapf(ErrIndexOutOfRange, "index %d, N=%d", i, n)
	}

	cross := make([]float64, n)
	for j := 0; j < n; j++ {
		cross[j] = p.cov.At(j, i)
	}
	cross[i] -= p.noise

	mean = floats.Dot(cross, p.regressed[:n])
	variance = 1 - floats.Dot(cross, p.solve(cross))

	return mean, variance, nil
}
