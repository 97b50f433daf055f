// SPDX-License-Identifier: MIT
// Package: ogp/gp
//
// options.go: functional options for Process constructors.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     constructors and methods themselves return errors, never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRandSource.
//   • No hidden globals; everything flows through config.

package gp

import (
	"math/rand/v2"

	"github.com/katalvlaran/ogp/optim"
	"go.uber.org/zap"
)

// DefaultCapacity is the training-set capacity used by callers without a
// specific bound in mind.
const DefaultCapacity = 100

// Option customizes a Process before its first factorisation.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config collects everything options can change.
type config struct {
	logger    *zap.SugaredLogger
	optimizer optim.Optimizer
	src       rand.Source
	sample    int
	workers   int
}

// defaultConfig returns the no-option configuration: silent logger, default
// L-BFGS optimizer (built lazily), fixed-seed source, no initial sample,
// serial covariance construction.
func defaultConfig() config {
	return config{
		logger:  zap.NewNop().Sugar(),
		src:     sourceFromSeed(0),
		workers: 1,
	}
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.SugaredLogger) Option {
	if l == nil {
		panic("gp: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithOptimizer replaces the hyperparameter optimizer. Panics on nil.
func WithOptimizer(o optim.Optimizer) Option {
	if o == nil {
		panic("gp: WithOptimizer(nil)")
	}
	return func(c *config) {
		c.optimizer = o
	}
}

// WithSeed seeds the random source used for default targets and the initial
// sample. seed==0 maps to the package default seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.src = sourceFromSeed(seed)
	}
}

// WithRandSource injects an explicit random source. Panics on nil.
func WithRandSource(src rand.Source) Option {
	if src == nil {
		panic("gp: WithRandSource(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// WithInitialSample makes New draw n training points uniformly from
// [-1, 1]^dimension with N(0, 0.1²) targets. The default (0) starts New with
// an empty training set. Ignored by NewFromPoints and NewWithTargets.
// Panics on n < 0; n > capacity is reported by New as ErrSampleSize.
func WithInitialSample(n int) Option {
	if n < 0 {
		panic("gp: WithInitialSample(n < 0)")
	}
	return func(c *config) {
		c.sample = n
	}
}

// WithWorkers bounds the goroutines used to rebuild the covariance matrix.
// 1 (the default) is serial. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("gp: WithWorkers(n < 1)")
	}
	return func(c *config) {
		c.workers = n
	}
}
