// Package likelihood packages a GP training set into the scalar cost and
// gradient consumed by an optim.Optimizer during hyperparameter learning.
//
// The cost is the negative marginal log-likelihood of the targets y under a
// zero-mean GP whose covariance K has kernel values off the diagonal and
// 1+noise on it:
//
//	cost(θ) = ½·yᵀK⁻¹y + ½·log|K| + ½·N·log(2π)
//	∂cost/∂θ_i = −½·tr((ααᵀ − K⁻¹)·∂K/∂θ_i),   α = K⁻¹y
//
// The diagonal of K does not depend on θ, so only off-diagonal kernel
// partials contribute.
//
// An Objective reads the point set through kernel.Points and never writes to
// it. It snapshots the targets and works on a clone of the kernel, so the
// caller's kernel keeps its parameters until the caller commits new ones.
// An Objective is not safe for concurrent use.
package likelihood
