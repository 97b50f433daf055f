// SPDX-License-Identifier: MIT
// Package gp - random-source policy for default targets and initial samples.
//
// Goals:
//   - Determinism: the same seed gives identical models across runs.
//   - Encapsulation: one source per Process, passed in through options; no
//     global or time-based generator anywhere.
//
// Concurrency:
//   - rand.Source is not goroutine-safe. A Process owns its source.

package gp

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// defaultSeed is used when callers pass seed==0 or give no seed at all.
	defaultSeed uint64 = 1

	// targetSigma is the standard deviation of randomly initialised targets.
	targetSigma = 0.1

	// sampleMin and sampleMax bound the initial random sample, per coordinate.
	sampleMin, sampleMax = -1.0, 1.0
)

// sourceFromSeed returns a deterministic PCG source.
// Policy: seed==0 ⇒ defaultSeed; the second PCG word is derived from the seed.
//
// Complexity: O(1).
func sourceFromSeed(seed uint64) rand.Source {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.NewPCG(seed, deriveStream(seed))
}

// deriveStream mixes a seed into a decorrelated second state word with a
// SplitMix64-style finalizer.
//
// Complexity: O(1).
func deriveStream(seed uint64) uint64 {
	x := seed + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// drawTargets fills dst with N(0, targetSigma²) draws from src.
func drawTargets(src rand.Source, dst []float64) {
	normal := distuv.Normal{Mu: 0, Sigma: targetSigma, Src: src}
	for i := range dst {
		dst[i] = normal.Rand()
	}
}

// drawSample returns n points uniform in [sampleMin, sampleMax]^dim and their
// N(0, targetSigma²) targets, drawn point by point (coordinates, then target).
//
// Complexity: O(n·dim).
func drawSample(src rand.Source, n, dim int) ([][]float64, []float64) {
	unif := distuv.Uniform{Min: sampleMin, Max: sampleMax, Src: src}
	normal := distuv.Normal{Mu: 0, Sigma: targetSigma, Src: src}

	points := make([][]float64, n)
	targets := make([]float64, n)
	for i := range points {
		x := make([]float64, dim)
		for j := range x {
			x[j] = unif.Rand()
		}
		points[i] = x
		targets[i] = normal.Rand()
	}

	return points, targets
}
