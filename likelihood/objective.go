// SPDX-License-Identifier: MIT
// Package: ogp/likelihood
//
// objective.go: negative training log-likelihood with analytic gradient.

package likelihood

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/ogp/kernel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// log2Pi is log(2π).
var log2Pi = math.Log(2 * math.Pi)

// Objective is the negative log-likelihood of a fixed training set as a
// function of the kernel hyperparameters. It implements optim.Cost.
//
// The factorisation of the last parameter vector is kept, so a value request
// followed by a gradient request at the same point (the pattern of an
// accepted line-search step) builds and factorises K once. An Objective is
// not safe for concurrent use.
type Objective struct {
	points  kernel.Points
	targets []float64
	kern    kernel.Kernel
	noise   float64

	cov     *mat.SymDense
	scratch []float64

	// last factorisation; valid only while cached is true.
	cached bool
	last   []float64
	cost   float64
	chol   mat.Cholesky
	alpha  mat.VecDense
}

// New builds an Objective over points and targets.
// targets is copied and k is cloned; points is only read.
//
// Errors:
//   - ErrNilKernel, ErrNoPoints, ErrTargetCount, ErrNoise.
func New(points kernel.Points, targets []float64, k kernel.Kernel, noise float64) (*Objective, error) {
	if k == nil {
		return nil, ErrNilKernel
	}
	if points == nil || points.Len() == 0 {
		return nil, ErrNoPoints
	}
	n := points.Len()
	if len(targets) != n {
		return nil, errors.Wrapf(ErrTargetCount, "targets %d, points %d", len(targets), n)
	}
	if !(noise > 0) || math.IsInf(noise, 0) {
		return nil, errors.Wrapf(ErrNoise, "noise=%v", noise)
	}

	o := &Objective{
		points:  points,
		targets: append([]float64(nil), targets...),
		kern:    k.Clone(),
		noise:   noise,
		cov:     mat.NewSymDense(n, nil),
	}
	o.scratch = make([]float64, o.kern.NumParameters())

	return o, nil
}

// NumParameters returns the length of the hyperparameter vector.
func (o *Objective) NumParameters() int { return o.kern.NumParameters() }

// Evaluate returns the negative log-likelihood at params and, when grad is
// non-nil, writes its gradient into grad.
//
// Parameters the kernel rejects, or a covariance that fails to factorise,
// yield +Inf with a zeroed gradient so that line searches back away.
//
// Complexity: O(N²·P) kernel work plus O(N³) for the factorisation (skipped
// when params repeat the previous call) and, with a gradient, the explicit
// inverse.
func (o *Objective) Evaluate(params, grad []float64) float64 {
	if !o.cached || !floats.Equal(params, o.last) {
		if !o.factorize(params) {
			return reject(grad)
		}
	}
	if grad == nil {
		return o.cost
	}

	var inv mat.SymDense
	if err := o.chol.InverseTo(&inv); !usable(err) {
		return reject(grad)
	}
	for i := range grad {
		grad[i] = 0
	}
	n := len(o.targets)
	var w float64
	for j := 1; j < n; j++ {
		xj := o.points.At(j)
		for k := 0; k < j; k++ {
			w = o.alpha.AtVec(j)*o.alpha.AtVec(k) - inv.At(j, k)
			o.scratch = o.kern.Gradient(xj, o.points.At(k), o.scratch)
			floats.AddScaled(grad, -w, o.scratch)
		}
	}

	return o.cost
}

// factorize sets the kernel to params, builds and factorises K, solves for
// α = K⁻¹y and caches the cost. It reports false, with the cache cleared,
// when any step fails.
func (o *Objective) factorize(params []float64) bool {
	o.cached = false
	if err := o.kern.SetParameters(params); err != nil {
		return false
	}
	if err := kernel.Gram(o.kern, o.points, 1+o.noise, o.cov, 1); err != nil {
		return false
	}
	if ok := o.chol.Factorize(o.cov); !ok {
		return false
	}

	n := len(o.targets)
	y := mat.NewVecDense(n, o.targets)
	if err := o.chol.SolveVecTo(&o.alpha, y); !usable(err) {
		return false
	}

	o.cost = 0.5*mat.Dot(y, &o.alpha) + 0.5*o.chol.LogDet() + 0.5*float64(n)*log2Pi
	o.last = append(o.last[:0], params...)
	o.cached = true

	return true
}

// LogLikelihood returns the marginal log-likelihood at params (−Evaluate).
func (o *Objective) LogLikelihood(params []float64) float64 {
	return -o.Evaluate(params, nil)
}

// reject zeroes grad and returns +Inf.
func reject(grad []float64) float64 {
	for i := range grad {
		grad[i] = 0
	}
	return math.Inf(1)
}

// usable treats gonum's mat.Condition as a warning: the solution is still
// computed, only its accuracy is in question.
func usable(err error) bool {
	if err == nil {
		return true
	}
	_, ok := err.(mat.Condition)
	return ok
}
