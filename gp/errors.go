// SPDX-License-Identifier: MIT
// Package gp: sentinel error set.
// Every message is prefixed with "gp: ..."; public methods may wrap these with
// context via errors.Wrapf, so callers must match with errors.Is.

package gp

import "github.com/cockroachdb/errors"

var (
	// ErrNilKernel indicates a nil covariance function.
	ErrNilKernel = errors.New("gp: nil kernel")

	// ErrNoise indicates a noise level that is not finite and > 0.
	ErrNoise = errors.New("gp: noise must be finite and > 0")

	// ErrCapacity indicates a capacity < 1.
	ErrCapacity = errors.New("gp: capacity must be >= 1")

	// ErrDimension indicates a point dimension < 1.
	ErrDimension = errors.New("gp: dimension must be >= 1")

	// ErrNoPoints indicates an empty initial point set.
	ErrNoPoints = errors.New("gp: initial point set is empty")

	// ErrTooManyPoints indicates more initial points than capacity.
	ErrTooManyPoints = errors.New("gp: more initial points than capacity")

	// ErrSampleSize indicates an initial random sample larger than capacity.
	ErrSampleSize = errors.New("gp: initial sample exceeds capacity")

	// ErrDimensionMismatch indicates a point whose length differs from the
	// model dimension.
	ErrDimensionMismatch = errors.New("gp: point dimension mismatch")

	// ErrNonFinite indicates a NaN or ±Inf coordinate, target or step size.
	ErrNonFinite = errors.New("gp: NaN or Inf encountered")

	// ErrTargetCount indicates len(targets) != len(points) at construction.
	ErrTargetCount = errors.New("gp: target count mismatch")

	// ErrBatchLength indicates point and target batches of different lengths.
	ErrBatchLength = errors.New("gp: batch length mismatch")

	// ErrEmptyBatch indicates UpdateTargets was called without observations.
	ErrEmptyBatch = errors.New("gp: empty batch")

	// ErrNoTrainingPoints indicates an operation that needs at least one
	// training point was called on an empty model.
	ErrNoTrainingPoints = errors.New("gp: no training points")

	// ErrIndexOutOfRange indicates a training-point index outside [0, N).
	ErrIndexOutOfRange = errors.New("gp: training point index out of range")

	// ErrNotPositiveDefinite indicates the covariance block failed to factorise.
	ErrNotPositiveDefinite = errors.New("gp: covariance is not positive definite")
)
