// SPDX-License-Identifier: MIT

package gp

import (
	"github.com/katalvlaran/ogp/likelihood"
)

// LearnHyperparams tunes the kernel parameters by maximising the marginal
// log-likelihood of the current training set and returns the optimizer's
// usability verdict.
//
// Whatever vector the optimizer returns is committed and the covariance,
// factor and regressed targets are rebuilt, even when the verdict is false.
// The only exception is a vector the kernel itself rejects (for RBF, a
// non-positive length scale): it is not committed and false is returned with
// the model untouched. An empty model returns false without optimising.
//
// Complexity: one O(N³) objective per optimizer evaluation, then O(N³).
func (p *Process) LearnHyperparams() bool {
	n := p.points.Len()
	if n == 0 {
		p.logger.Debugw("no training points, hyperparameter learning skipped")
		return false
	}

	obj, err := likelihood.New(p.points, p.targets[:n], p.kern, p.noise)
	if err != nil {
		p.logger.Warnw("cannot build log-likelihood objective", "error", err)
		return false
	}

	previous := p.kern.Parameters()
	res := p.optimizer.Minimize(obj, previous)

	if err = p.kern.SetParameters(res.X); err != nil {
		p.logger.Warnw("optimizer returned parameters the kernel rejects",
			"parameters", res.X, "error", err)
		return false
	}
	if err = p.rebuild(); err != nil {
		p.logger.Warnw("covariance rebuild failed, restoring parameters", "error", err)
		if rerr := p.kern.SetParameters(previous); rerr == nil {
			if rerr = p.rebuild(); rerr != nil {
				p.logger.Errorw("restoring previous parameters failed", "error", rerr)
			}
		}
		return false
	}

	p.logger.Infow("hyperparameters updated",
		"usable", res.Usable,
		"status", res.Status,
		"negative_log_likelihood", res.Value,
		"iterations", res.Iterations,
		"restarts", res.Restarts,
		"parameters", res.X)

	return res.Usable
}
