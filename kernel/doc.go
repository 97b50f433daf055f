// SPDX-License-Identifier: MIT

// Package kernel defines the covariance-function contract used by the
// Gaussian Process engine, together with the squared-exponential (RBF)
// kernel and a Gram-matrix builder.
//
// 🚀 What is a kernel?
//
//	A kernel k(x, y) scores the similarity of two points. Evaluated over
//	every pair of training points it yields the prior covariance matrix of
//	a Gaussian Process. Kernels here also expose first derivatives with
//	respect to their own hyperparameters, which drive log-likelihood
//	maximisation.
//
// ✨ Contract:
//   - Evaluate(x, y)     - scalar similarity, symmetric in x and y.
//   - Partial(x, y, i)   - ∂k/∂θ_i; ErrParameterIndex when i is out of range.
//   - Gradient(x, y, d)  - every partial in one pass.
//   - Parameters / SetParameters - the ordered hyperparameter vector.
//   - Clone              - an independent copy for read-only consumers.
//
// The dimension of accepted points is not stored by the contract; the RBF
// kernel implies it through its number of length scales. Callers are
// responsible for passing points of matching length.
//
// ⚙️ Usage:
//
//	k, err := kernel.NewRBF([]float64{1.0, 0.5})
//	if err != nil {
//	    return err
//	}
//	sim := k.Evaluate([]float64{0, 0}, []float64{0.1, -0.2})
//
// Kernels are pure functions of their inputs and parameters; concurrent
// Evaluate calls are safe as long as nobody calls SetParameters meanwhile.
package kernel
