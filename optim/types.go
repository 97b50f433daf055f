// SPDX-License-Identifier: MIT

package optim

import "github.com/cockroachdb/errors"

// Cost is a scalar objective with gradient.
//
// Evaluate returns the cost at x. When grad is non-nil it has len(x) entries
// and receives ∂cost/∂x. Implementations may return +Inf for x outside their
// domain; the line search treats that as a rejected step.
type Cost interface {
	Evaluate(x, grad []float64) float64
}

// Optimizer minimises a Cost starting from initial. It must not retain
// cost or initial after returning.
type Optimizer interface {
	Minimize(cost Cost, initial []float64) Result
}

// Result reports the outcome of a minimisation.
type Result struct {
	// X is the best parameter vector found (a fresh slice).
	X []float64
	// Value is the cost at X.
	Value float64
	// Usable is false when the run failed and X should not be trusted as an
	// improvement; X is still the best point seen.
	Usable bool
	// Status is the terminal status reported by the underlying method.
	Status string
	// Iterations is the number of major iterations across all restarts.
	Iterations int
	// Restarts is the number of line-search direction restarts performed.
	Restarts int
}

// Settings bounds the work of a minimisation.
type Settings struct {
	// MaxIterations caps major iterations across the whole run.
	MaxIterations int
	// MaxLineSearchStepIterations caps trial steps within a single line search.
	MaxLineSearchStepIterations int
	// MaxLineSearchDirectionRestarts caps direction restarts after line-search failures.
	MaxLineSearchDirectionRestarts int
	// MaxRank is the number of correction pairs kept by L-BFGS.
	MaxRank int
}

// DefaultSettings returns the limits used for hyperparameter learning.
func DefaultSettings() Settings {
	return Settings{
		MaxIterations:                  100,
		MaxLineSearchStepIterations:    50,
		MaxLineSearchDirectionRestarts: 25,
		MaxRank:                        15,
	}
}

// Validate reports ErrBadSettings when a limit is out of range.
// MaxLineSearchDirectionRestarts may be zero (no restarts); the others must be positive.
func (s Settings) Validate() error {
	switch {
	case s.MaxIterations < 1:
		return errors.Wrapf(ErrBadSettings, "MaxIterations=%d", s.MaxIterations)
	case s.MaxLineSearchStepIterations < 1:
		return errors.Wrapf(ErrBadSettings, "MaxLineSearchStepIterations=%d", s.MaxLineSearchStepIterations)
	case s.MaxLineSearchDirectionRestarts < 0:
		return errors.Wrapf(ErrBadSettings, "MaxLineSearchDirectionRestarts=%d", s.MaxLineSearchDirectionRestarts)
	case s.MaxRank < 1:
		return errors.Wrapf(ErrBadSettings, "MaxRank=%d", s.MaxRank)
	}

	return nil
}
