// SPDX-License-Identifier: MIT

package likelihood

import "github.com/cockroachdb/errors"

var (
	// ErrNilKernel indicates a nil kernel was supplied.
	ErrNilKernel = errors.New("likelihood: nil kernel")

	// ErrNoPoints indicates an empty or nil point set.
	ErrNoPoints = errors.New("likelihood: empty point set")

	// ErrTargetCount indicates len(targets) != points.Len().
	ErrTargetCount = errors.New("likelihood: target count mismatch")

	// ErrNoise indicates a non-positive or non-finite noise level.
	ErrNoise = errors.New("likelihood: noise must be finite and > 0")
)
