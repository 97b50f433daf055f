// SPDX-License-Identifier: MIT
// Package: ogp/gp
//
// update.go: training-set growth and target refinement.

package gp

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// Add inserts one training point. It returns (false, nil) and leaves the
// model untouched when the training set is full.
//
// The covariance gains one row/column, the factor is extended in place of a
// full refactorisation and the regressed targets are recomputed over N+1
// entries (which also settles any pending UpdateTargets).
//
// Errors:
//   - ErrDimensionMismatch, ErrNonFinite.
//   - ErrNotPositiveDefinite if the grown block cannot be factorised; the
//     point is then removed again.
//
// Complexity: O(N) kernel evaluations + O(N²).
func (p *Process) Add(x []float64, target float64) (bool, error) {
	if err := p.validateObservation(x, target); err != nil {
		return false, errors.Wrap(err, "add")
	}
	n := p.points.Len()
	if n >= p.capacity {
		p.logger.Debugw("training set full, point dropped", "capacity", p.capacity)
		return false, nil
	}

	p.insert(x, target)
	if err := p.extendFactor(); err != nil {
		p.points.truncate(n)
		return false, err
	}

	return true, nil
}

// AddBatch inserts points one at a time until the training set is full and
// refactorises once at the end.
//
// The result reports whether the whole batch fitted, N+len(points) ≤
// Capacity(), evaluated before insertion; a false result does not mean
// nothing was inserted.
//
// Errors:
//   - ErrBatchLength when len(points) != len(targets).
//   - ErrDimensionMismatch, ErrNonFinite for any entry; nothing is inserted.
//   - ErrNotPositiveDefinite; the batch is then rolled back.
//
// Complexity: O(N·B) kernel evaluations + one O(N³) factorisation.
func (p *Process) AddBatch(points [][]float64, targets []float64) (bool, error) {
	if len(points) != len(targets) {
		return false, errors.Wrapf(ErrBatchLength, "points %d, targets %d", len(points), len(targets))
	}
	for i := range points {
		if err := p.validateObservation(points[i], targets[i]); err != nil {
			return false, errors.Wrapf(err, "add batch: entry %d", i)
		}
	}

	n0 := p.points.Len()
	hadRoom := n0+len(points) <= p.capacity

	added := 0
	for i := range points {
		if p.points.Len() >= p.capacity {
			break
		}
		p.insert(points[i], targets[i])
		added++
	}
	if added < len(points) {
		p.logger.Debugw("training set full, batch truncated",
			"capacity", p.capacity, "added", added, "dropped", len(points)-added)
	}

	if added == 0 {
		p.regress()
		return hadRoom, nil
	}
	if err := p.refactor(); err != nil {
		p.points.truncate(n0)
		return false, err
	}

	return hadRoom, nil
}

// UpdateTargets takes one gradient-descent step on the training targets so
// that predictions move towards the observations (points[i], targets[i]).
// The covariance and its factor are not modified.
//
// For each observation with cross-covariance k*:
//
//	r     = K⁻¹·k*
//	e     = r·y − target
//	mse  += e²,  grad += e·r
//
// then mse /= B, grad *= 2/B and y -= stepSize·grad. The returned mse is
// measured before the step.
//
// With finalize the regressed targets are recomputed; without it they are
// left stale on purpose so several calls can be chained before one final
// reconciliation (a finalised call, Finalize, Add or AddBatch).
//
// Errors:
//   - ErrBatchLength, ErrEmptyBatch, ErrNoTrainingPoints,
//     ErrDimensionMismatch, ErrNonFinite.
//
// Complexity: O(B·N²).
func (p *Process) UpdateTargets(points [][]float64, targets []float64, stepSize float64, finalize bool) (float64, error) {
	if len(points) != len(targets) {
		return 0, errors.Wrapf(ErrBatchLength, "points %d, targets %d", len(points), len(targets))
	}
	if len(points) == 0 {
		return 0, ErrEmptyBatch
	}
	if err := validateScalar("step size", stepSize); err != nil {
		return 0, errors.Wrap(err, "update targets")
	}
	for i := range points {
		if err := p.validateObservation(points[i], targets[i]); err != nil {
			return 0, errors.Wrapf(err, "update targets: entry %d", i)
		}
	}
	n := p.points.Len()
	if n == 0 {
		return 0, ErrNoTrainingPoints
	}

	y := p.targets[:n]
	grad := make([]float64, n)
	var mse float64
	for i, x := range points {
		rc := p.solve(p.crossCovariance(x))
		e := floats.Dot(rc, y) - targets[i]
		mse += e * e
		floats.AddScaled(grad, e, rc)
	}

	batch := float64(len(points))
	mse /= batch
	floats.Scale(2/batch, grad)
	floats.AddScaled(y, -stepSize, grad)

	if finalize {
		p.regress()
	} else {
		p.stale = true
	}

	return mse, nil
}

// Finalize recomputes the regressed targets from the current targets,
// settling any non-finalised UpdateTargets. It is a no-op on an empty model.
func (p *Process) Finalize() {
	if p.points.Len() == 0 {
		return
	}
	p.regress()
}

// validateObservation checks one (point, target) pair against the model.
func (p *Process) validateObservation(x []float64, target float64) error {
	if err := validatePoint(x, p.dim); err != nil {
		return err
	}
	return validateScalar("target", target)
}
