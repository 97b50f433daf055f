// SPDX-License-Identifier: MIT
// Package: ogp/gp
//
// process.go: the Process type, its three constructor forms and read-only
// accessors.

package gp

import (
	"math"
	"math/rand/v2"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/ogp/kernel"
	"github.com/katalvlaran/ogp/optim"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Process is an online Gaussian Process regressor with a bounded training set.
//
// Storage is allocated once at capacity: targets and regressed have capacity
// entries and cov is capacity×capacity; only the leading N entries / N×N block
// are meaningful. chol is nil while N == 0.
type Process struct {
	kern     kernel.Kernel
	noise    float64
	capacity int
	dim      int

	points    *PointSet
	targets   []float64
	regressed []float64
	cov       *mat.SymDense
	chol      *mat.Cholesky

	// stale is set by a non-finalised UpdateTargets: regressed lags targets.
	stale bool

	optimizer optim.Optimizer
	logger    *zap.SugaredLogger
	src       rand.Source
	workers   int
}

// New builds a Process for points of the given dimension.
//
// By default the training set starts empty. WithInitialSample(n) draws n
// points uniformly from [-1, 1]^dimension with N(0, 0.1²) targets instead.
//
// Errors:
//   - ErrNilKernel, ErrNoise, ErrCapacity, ErrDimension, ErrSampleSize.
//   - ErrDimensionMismatch when the kernel is kernel.Dimensioned and built
//     for another dimension.
func New(k kernel.Kernel, noise float64, dimension, capacity int, opts ...Option) (*Process, error) {
	if dimension < 1 {
		return nil, errors.Wrapf(ErrDimension, "dimension=%d", dimension)
	}
	p, cfg, err := newProcess(k, noise, dimension, capacity, opts)
	if err != nil {
		return nil, err
	}
	if cfg.sample > capacity {
		return nil, errors.Wrapf(ErrSampleSize, "sample %d, capacity %d", cfg.sample, capacity)
	}

	if cfg.sample > 0 {
		points, targets := drawSample(p.src, cfg.sample, dimension)
		for i, x := range points {
			p.points.push(x)
			p.targets[i] = targets[i]
		}
	}
	if err = p.rebuild(); err != nil {
		return nil, err
	}

	return p, nil
}

// NewFromPoints builds a Process over an initial point set whose targets are
// drawn from N(0, 0.1²) with the configured random source. Points are copied.
//
// Errors:
//   - ErrNilKernel, ErrNoise, ErrCapacity, ErrNoPoints, ErrTooManyPoints,
//     ErrDimensionMismatch (ragged points or a kernel.Dimensioned kernel of
//     another dimension), ErrNonFinite.
func NewFromPoints(k kernel.Kernel, noise float64, points [][]float64, capacity int, opts ...Option) (*Process, error) {
	dim, err := initialDimension(points, capacity)
	if err != nil {
		return nil, err
	}
	p, _, err := newProcess(k, noise, dim, capacity, opts)
	if err != nil {
		return nil, err
	}

	targets := make([]float64, len(points))
	drawTargets(p.src, targets)

	return p.seed(points, targets)
}

// NewWithTargets builds a Process over an initial point set with explicit
// targets. Points and targets are copied.
//
// Errors:
//   - ErrNilKernel, ErrNoise, ErrCapacity, ErrNoPoints, ErrTooManyPoints,
//     ErrTargetCount, ErrDimensionMismatch (ragged points or a
//     kernel.Dimensioned kernel of another dimension), ErrNonFinite.
func NewWithTargets(k kernel.Kernel, noise float64, points [][]float64, targets []float64, capacity int, opts ...Option) (*Process, error) {
	dim, err := initialDimension(points, capacity)
	if err != nil {
		return nil, err
	}
	if len(targets) != len(points) {
		return nil, errors.Wrapf(ErrTargetCount, "targets %d, points %d", len(targets), len(points))
	}
	p, _, err := newProcess(k, noise, dim, capacity, opts)
	if err != nil {
		return nil, err
	}

	return p.seed(points, targets)
}

// newProcess validates the shared constructor arguments, applies options and
// allocates capacity-sized storage.
func newProcess(k kernel.Kernel, noise float64, dim, capacity int, opts []Option) (*Process, config, error) {
	cfg := defaultConfig()
	if k == nil {
		return nil, cfg, ErrNilKernel
	}
	if !(noise > 0) || math.IsInf(noise, 0) {
		return nil, cfg, errors.Wrapf(ErrNoise, "noise=%v", noise)
	}
	if capacity < 1 {
		return nil, cfg, errors.Wrapf(ErrCapacity, "capacity=%d", capacity)
	}
	if d, ok := k.(kernel.Dimensioned); ok && d.Dimension() != dim {
		return nil, cfg, errors.Wrapf(ErrDimensionMismatch, "kernel dimension %d, model dimension %d", d.Dimension(), dim)
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.optimizer == nil {
		lbfgs, err := optim.NewLBFGS(optim.DefaultSettings(), optim.WithLogger(cfg.logger))
		if err != nil {
			return nil, cfg, err
		}
		cfg.optimizer = lbfgs
	}

	return &Process{
		kern:      k,
		noise:     noise,
		capacity:  capacity,
		dim:       dim,
		points:    newPointSet(dim, capacity),
		targets:   make([]float64, capacity),
		regressed: make([]float64, capacity),
		cov:       mat.NewSymDense(capacity, nil),
		optimizer: cfg.optimizer,
		logger:    cfg.logger,
		src:       cfg.src,
		workers:   cfg.workers,
	}, cfg, nil
}

// initialDimension validates the size of an initial point set and returns
// the dimension implied by its first point.
func initialDimension(points [][]float64, capacity int) (int, error) {
	if len(points) == 0 {
		return 0, ErrNoPoints
	}
	if capacity >= 1 && len(points) > capacity {
		return 0, errors.Wrapf(ErrTooManyPoints, "points %d, capacity %d", len(points), capacity)
	}
	if len(points[0]) < 1 {
		return 0, errors.Wrap(ErrDimension, "first point is empty")
	}
	return len(points[0]), nil
}

// seed validates and stores the initial training set, then builds the
// covariance, factor and regressed targets.
func (p *Process) seed(points [][]float64, targets []float64) (*Process, error) {
	for i, x := range points {
		if err := validatePoint(x, p.dim); err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
		if err := validateScalar("target", targets[i]); err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
	}
	for i, x := range points {
		p.points.push(x)
		p.targets[i] = targets[i]
	}
	if err := p.rebuild(); err != nil {
		return nil, err
	}

	return p, nil
}

// Len returns the number of training points N.
func (p *Process) Len() int { return p.points.Len() }

// Capacity returns the maximum number of training points.
func (p *Process) Capacity() int { return p.capacity }

// Dimension returns the length of every training and query point.
func (p *Process) Dimension() int { return p.dim }

// Noise returns the noise level added to the covariance diagonal.
func (p *Process) Noise() float64 { return p.noise }

// Kernel returns the covariance function. It is shared with the Process:
// changing its parameters directly leaves the cached covariance stale.
func (p *Process) Kernel() kernel.Kernel { return p.kern }

// Points returns a deep copy of the training points in insertion order.
func (p *Process) Points() [][]float64 { return p.points.copyAll() }

// Targets returns a copy of the N training targets.
func (p *Process) Targets() []float64 {
	return append([]float64(nil), p.targets[:p.points.Len()]...)
}

// Regressed returns a copy of the N regressed targets K⁻¹·y. While Stale()
// is true they correspond to the targets before the pending update.
func (p *Process) Regressed() []float64 {
	return append([]float64(nil), p.regressed[:p.points.Len()]...)
}

// Stale reports whether regressed targets lag behind a non-finalised
// UpdateTargets.
func (p *Process) Stale() bool { return p.stale }

// Covariance returns a copy of the N×N covariance block, or nil when N == 0.
func (p *Process) Covariance() *mat.SymDense {
	n := p.points.Len()
	if n == 0 {
		return nil
	}
	c := mat.NewSymDense(n, nil)
	c.CopySym(p.cov.SliceSym(0, n))
	return c
}

// Factor returns a copy of the lower-triangular Cholesky factor L with
// L·Lᵀ equal to the covariance block, or nil when N == 0.
func (p *Process) Factor() *mat.TriDense {
	if p.chol == nil {
		return nil
	}
	var l mat.TriDense
	p.chol.LTo(&l)
	return &l
}
