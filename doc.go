// Package ogp is an online Gaussian Process regression toolkit: a bounded,
// incrementally updated GP model with a pluggable covariance function and a
// hyperparameter learner driven by the marginal log-likelihood.
//
// 🚀 What is ogp?
//
//	A small, dependency-light library that brings together:
//		• Kernels: the Kernel contract and a squared-exponential (RBF) kernel
//		  with one length scale per input dimension
//		• GP engine: posterior mean/variance queries, online Add/AddBatch,
//		  gradient refinement of training targets
//		• Likelihood: negative log marginal likelihood and its analytic gradient
//		• Optimisation: a bounded L-BFGS driver with line-search restarts
//
// ✨ Why ogp?
//
//   - Online – adding a point extends the Cholesky factor in O(N²)
//   - Bounded – memory is allocated once at capacity, never grows
//   - Deterministic – random initialisation flows through an explicit seed
//   - Observable – structured zap logging, errors matchable with errors.Is
//
// Under the hood, everything is organized under four subpackages:
//
//	kernel/     - Kernel contract, RBF kernel, Gram matrix construction
//	likelihood/ - log marginal likelihood objective over kernel parameters
//	optim/      - Optimizer contract and the default L-BFGS implementation
//	gp/         - the Process type: construction, prediction, updates, learning
//
// Quick example:
//
//	k, _ := kernel.NewRBF([]float64{1})
//	p, _ := gp.NewWithTargets(k, 0.01,
//	    [][]float64{{-1}, {0}, {1}}, []float64{0, 1, 0}, gp.DefaultCapacity)
//	mean, variance, _ := p.Evaluate([]float64{0}) // ≈ 0.9728, 0.0097
//
// See examples/ for an end-to-end run.
package ogp
