// SPDX-License-Identifier: MIT
// Package: ogp/gp
//
// linalg.go: covariance construction, factorisation and solves.
//
// These helpers are the only places the kernel is evaluated structurally:
// recomputeCovariance (O(N²) evaluations) and crossCovariance (O(N)).
// insert extends the covariance by one row/column (O(N) evaluations).

package gp

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/ogp/kernel"
	"gonum.org/v1/gonum/mat"
)

// recomputeCovariance rebuilds the leading N×N block from scratch.
func (p *Process) recomputeCovariance() error {
	return kernel.Gram(p.kern, p.points, 1+p.noise, p.cov, p.workers)
}

// crossCovariance returns k(x_i, x) for every training point x_i. No noise is
// added: x is a fresh query, not a training input.
func (p *Process) crossCovariance(x []float64) []float64 {
	n := p.points.Len()
	cross := make([]float64, n)
	for i := 0; i < n; i++ {
		cross[i] = p.kern.Evaluate(p.points.At(i), x)
	}
	return cross
}

// insert appends (x, target) and extends the covariance by one row/column.
// The factor is not touched; callers extend or refactorise afterwards.
// The caller guarantees N < capacity.
func (p *Process) insert(x []float64, target float64) {
	n := p.points.Len()
	for j := 0; j < n; j++ {
		p.cov.SetSym(j, n, p.kern.Evaluate(x, p.points.At(j)))
	}
	p.cov.SetSym(n, n, 1+p.noise)
	p.targets[n] = target
	p.points.push(x)
}

// rebuild recomputes covariance, factor and regressed targets.
func (p *Process) rebuild() error {
	if err := p.recomputeCovariance(); err != nil {
		return err
	}
	return p.refactor()
}

// refactor factorises the leading N×N block from scratch and regresses.
// On failure the previous factor is kept.
//
// Complexity: O(N³).
func (p *Process) refactor() error {
	n := p.points.Len()
	if n == 0 {
		p.chol = nil
		p.stale = false
		return nil
	}
	chol := &mat.Cholesky{}
	if ok := chol.Factorize(p.cov.SliceSym(0, n)); !ok {
		return errors.Wrapf(ErrNotPositiveDefinite, "n=%d", n)
	}
	p.chol = chol
	p.regress()
	return nil
}

// extendFactor grows the factor by the newest row/column with a rank
// extension, which matches a from-scratch factorisation up to rounding.
// It falls back to refactor when the extension is rejected.
//
// Complexity: O(N²).
func (p *Process) extendFactor() error {
	n := p.points.Len()
	if p.chol == nil || n == 1 {
		return p.refactor()
	}
	col := make([]float64, n)
	for i := 0; i < n; i++ {
		col[i] = p.cov.At(i, n-1)
	}
	ext := &mat.Cholesky{}
	if ok := ext.ExtendVecSym(p.chol, mat.NewVecDense(n, col)); !ok {
		p.logger.Debugw("factor extension rejected, refactorising", "n", n)
		return p.refactor()
	}
	p.chol = ext
	p.regress()
	return nil
}

// regress sets regressed[:N] = K⁻¹·targets[:N] and clears the stale flag.
func (p *Process) regress() {
	n := p.points.Len()
	if n > 0 {
		copy(p.regressed[:n], p.solve(p.targets[:n]))
	}
	p.stale = false
}

// solve returns K⁻¹·b through the current factor. gonum reports poor
// conditioning as mat.Condition but still returns the solution, so that case
// is only logged.
func (p *Process) solve(b []float64) []float64 {
	n := len(b)
	var x mat.VecDense
	if err := p.chol.SolveVecTo(&x, mat.NewVecDense(n, b)); err != nil {
		p.logger.Debugw("ill-conditioned solve", "n", n, "error", err)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out
}
