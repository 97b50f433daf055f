// SPDX-License-Identifier: MIT
// Package: ogp/optim
//
// lbfgs.go: default Optimizer: gonum L-BFGS with a bounded backtracking line
// search and steepest-descent direction restarts.

package optim

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/optimize"
)

const (
	// gradientThreshold stops a run once the gradient infinity-norm falls below it.
	gradientThreshold = 1e-10

	// functionTolerance and convergeIterations declare convergence when the
	// cost improves by less than the tolerance over that many major iterations.
	functionTolerance  = 1e-10
	convergeIterations = 20
)

// Option configures an LBFGS optimizer.
type Option func(*LBFGS)

// WithLogger attaches a logger. Panics on nil.
func WithLogger(l *zap.SugaredLogger) Option {
	if l == nil {
		panic("optim: WithLogger(nil)")
	}
	return func(o *LBFGS) {
		o.logger = l
	}
}

// LBFGS minimises a Cost with limited-memory BFGS.
type LBFGS struct {
	settings Settings
	logger   *zap.SugaredLogger
}

// NewLBFGS returns an optimizer bounded by s.
//
// Errors:
//   - ErrBadSettings if s fails Validate.
func NewLBFGS(s Settings, opts ...Option) (*LBFGS, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	o := &LBFGS{settings: s, logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// Settings returns the limits this optimizer was built with.
func (o *LBFGS) Settings() Settings { return o.settings }

// Minimize runs L-BFGS from initial. A line-search failure restarts the
// direction from the best point found so far until the restart budget is
// spent; the major-iteration budget is shared by all restarts.
//
// The returned Result always carries the best point seen, which is initial
// itself when no step was ever accepted.
func (o *LBFGS) Minimize(cost Cost, initial []float64) Result {
	best := Result{
		X:      append([]float64(nil), initial...),
		Status: optimize.NotTerminated.String(),
	}
	best.Value = cost.Evaluate(best.X, nil)
	if math.IsNaN(best.Value) || math.IsInf(best.Value, 0) {
		best.Status = optimize.Failure.String()
		o.logger.Warnw("optimizer start point has non-finite cost", "cost", best.Value)
		return best
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 { return cost.Evaluate(x, nil) },
		Grad: func(grad, x []float64) { cost.Evaluate(x, grad) },
	}

	remaining := o.settings.MaxIterations
	for {
		method := &optimize.LBFGS{
			Linesearcher: &boundedLinesearcher{
				inner: &optimize.Backtracking{},
				limit: o.settings.MaxLineSearchStepIterations,
			},
			Store: o.settings.MaxRank,
		}
		settings := &optimize.Settings{
			MajorIterations:   remaining,
			GradientThreshold: gradientThreshold,
			Converger: &optimize.FunctionConverge{
				Absolute:   functionTolerance,
				Relative:   functionTolerance,
				Iterations: convergeIterations,
			},
		}

		res, err := optimize.Minimize(problem, best.X, settings, method)
		if res != nil {
			best.Iterations += res.MajorIterations
			remaining -= res.MajorIterations
			best.Status = res.Status.String()
			if res.F < best.Value && len(res.X) == len(best.X) {
				best.X = append([]float64(nil), res.X...)
				best.Value = res.F
			}
		}

		switch {
		case err == nil:
			best.Usable = true
		case remaining <= 0:
			// Out of iterations while recovering: not converged, still valid.
			best.Usable = true
		case best.Restarts < o.settings.MaxLineSearchDirectionRestarts:
			best.Restarts++
			o.logger.Debugw("line search failed, restarting direction",
				"restart", best.Restarts, "cost", best.Value, "error", err)
			continue
		default:
			best.Status = optimize.Failure.String()
			o.logger.Debugw("line search restarts exhausted", "restarts", best.Restarts, "error", err)
		}

		o.logger.Debugw("optimizer finished",
			"status", best.Status, "usable", best.Usable, "cost", best.Value,
			"iterations", best.Iterations, "restarts", best.Restarts)

		return best
	}
}

// boundedLinesearcher caps the number of trial steps of a single line search
// at limit. Init issues the first trial; each further trial the inner search
// requests is counted and refused once limit trials have been issued. The
// count resets on every Init, i.e. for every new search direction.
type boundedLinesearcher struct {
	inner optimize.Linesearcher
	limit int
	n     int
}

func (b *boundedLinesearcher) Init(value, derivative, step float64) optimize.Operation {
	b.n = 1
	return b.inner.Init(value, derivative, step)
}

func (b *boundedLinesearcher) Iterate(value, derivative float64) (optimize.Operation, float64, error) {
	op, step, err := b.inner.Iterate(value, derivative)
	if err != nil || op == optimize.MajorIteration {
		return op, step, err
	}
	if b.n >= b.limit {
		return optimize.NoOperation, 0, errLineSearchExhausted
	}
	b.n++

	return op, step, nil
}
