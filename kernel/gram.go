// SPDX-License-Identifier: MIT
// Package: ogp/kernel
//
// gram.go: pairwise covariance (Gram) matrix construction.
//
// Contract:
//   - Only the top-left n×n block of dst is written, n = pts.Len().
//   - The diagonal receives the caller-supplied value, not k(x_i, x_i);
//     the GP engine uses 1+noise there for conditioning.
//   - Off-diagonal (i, j) receives k(x_i, x_j) for j < i, mirrored by SymDense.
//
// Concurrency:
//   - workers ≤ 1 runs serially. Otherwise rows are fanned out through an
//     errgroup bounded by SetLimit(workers). Every entry is written by exactly
//     one goroutine, so the result is bit-identical to the serial path.

package kernel

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Gram fills the top-left pts.Len() block of dst with kernel values between
// every pair of points and diag on the diagonal.
//
// Errors:
//   - ErrNilKernel if k is nil.
//   - ErrGramShape if dst is nil or smaller than pts.Len().
//
// Complexity: O(n²) kernel evaluations.
func Gram(k Kernel, pts Points, diag float64, dst *mat.SymDense, workers int) error {
	if k == nil {
		return ErrNilKernel
	}
	n := pts.Len()
	if n == 0 {
		return nil
	}
	if dst == nil {
		return errors.Wrapf(ErrGramShape, "nil destination for %d points", n)
	}
	if r, _ := dst.Dims(); r < n {
		return errors.Wrapf(ErrGramShape, "destination %d, points %d", r, n)
	}

	if workers <= 1 || n < 2 {
		for i := 0; i < n; i++ {
			gramRow(k, pts, diag, dst, i)
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		row := i
		g.Go(func() error {
			gramRow(k, pts, diag, dst, row)
			return nil
		})
	}

	return g.Wait()
}

// gramRow writes row i of the lower triangle (and its mirror) plus the diagonal.
func gramRow(k Kernel, pts Points, diag float64, dst *mat.SymDense, i int) {
	xi := pts.At(i)
	dst.SetSym(i, i, diag)
	for j := 0; j < i; j++ {
		dst.SetSym(i, j, k.Evaluate(xi, pts.At(j)))
	}
}
