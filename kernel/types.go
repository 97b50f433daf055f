// SPDX-License-Identifier: MIT

package kernel

// Kernel is a covariance function with first-derivative information with
// respect to its own hyperparameters.
//
// Implementations must be symmetric (Evaluate(x, y) == Evaluate(y, x)) and
// positive-semidefinite. Points passed to Evaluate, Partial and Gradient must
// share the dimension the kernel was built for; mismatched lengths are a
// programmer error and may panic.
type Kernel interface {
	// Evaluate returns k(x, y).
	Evaluate(x, y []float64) float64

	// Partial returns ∂k(x, y)/∂θ_i.
	// Errors: ErrParameterIndex when i ∉ [0, NumParameters()).
	Partial(x, y []float64, i int) (float64, error)

	// Gradient returns every partial at once. dst is reused when its length
	// equals NumParameters(), otherwise a new slice is allocated.
	Gradient(x, y, dst []float64) []float64

	// NumParameters returns the length of the hyperparameter vector.
	NumParameters() int

	// Parameters returns a copy of the hyperparameter vector.
	Parameters() []float64

	// SetParameters replaces the hyperparameter vector after validating it.
	// On error the kernel is left unchanged.
	SetParameters(p []float64) error

	// Clone returns an independent copy; mutating one never affects the other.
	Clone() Kernel
}

// Dimensioned is implemented by kernels that accept points of one fixed
// length only. Consumers holding points of a known dimension check it before
// the first evaluation.
type Dimensioned interface {
	Dimension() int
}

// Points is read-only, index-addressable access to an ordered point set.
// At returns the stored slice; callers must not modify it.
type Points interface {
	Len() int
	At(i int) []float64
}
