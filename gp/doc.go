// Package gp implements online Gaussian Process regression.
//
// 🚀 What is it?
//
//	A Process conditions a zero-mean, unit-prior-variance GP on a bounded,
//	growable training set and answers predictive (mean, variance) queries.
//	It keeps the covariance matrix, its Cholesky factor and the regressed
//	targets (K⁻¹·y) up to date as the model changes:
//	  • Add / AddBatch       - grow the training set up to its capacity
//	  • UpdateTargets        - gradient-refine the training targets themselves
//	  • LearnHyperparams     - maximise the marginal log-likelihood over the
//	                           kernel's hyperparameters
//
// ✨ Invariants (after every public call except a non-finalised UpdateTargets):
//   - N ≤ Capacity().
//   - The N×N covariance block is symmetric with 1+noise on the diagonal and
//     kernel values elsewhere.
//   - The Cholesky factor factors exactly that block.
//   - Regressed()[i] = (K⁻¹·Targets())[i].
//
// ⚙️ Usage:
//
//	k, _ := kernel.NewRBF([]float64{1})
//	p, err := gp.NewWithTargets(k, 0.01,
//	    [][]float64{{-1}, {0}, {1}}, []float64{0, 1, 0}, gp.DefaultCapacity)
//	if err != nil {
//	    return err
//	}
//	mean, variance, err := p.Evaluate([]float64{0.5})
//
// Contract violations (nil kernel, bad noise, mismatched batches, wrong
// dimensions, out-of-range indices) surface as sentinel errors; capacity
// exhaustion is a normal (false, nil) outcome. A Process is not safe for
// concurrent use.
package gp
