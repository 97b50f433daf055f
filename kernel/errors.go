// SPDX-License-Identifier: MIT
// Package kernel: sentinel error set.
// Every message is prefixed with "kernel: ..." and callers match with
// errors.Is. Boundaries may add context with errors.Wrapf.

package kernel

import "github.com/cockroachdb/errors"

var (
	// ErrNoParameters is returned when a kernel would be built with an empty
	// hyperparameter vector.
	ErrNoParameters = errors.New("kernel: empty parameter vector")

	// ErrParameterCount signals SetParameters received a vector whose length
	// differs from NumParameters.
	ErrParameterCount = errors.New("kernel: parameter count mismatch")

	// ErrParameterIndex signals a Partial request for a parameter index
	// outside [0, NumParameters).
	ErrParameterIndex = errors.New("kernel: parameter index out of range")

	// ErrLengthScale signals a non-positive or non-finite RBF length scale.
	ErrLengthScale = errors.New("kernel: length scale must be finite and > 0")

	// ErrNilKernel indicates a nil Kernel was passed where one is required.
	ErrNilKernel = errors.New("kernel: nil kernel")

	// ErrGramShape signals that the destination of Gram is smaller than the
	// point set.
	ErrGramShape = errors.New("kernel: gram destination too small")
)
