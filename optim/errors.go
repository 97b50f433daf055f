// SPDX-License-Identifier: MIT

package optim

import "github.com/cockroachdb/errors"

var (
	// ErrBadSettings signals a Settings value with a non-positive limit.
	ErrBadSettings = errors.New("optim: invalid settings")

	// errLineSearchExhausted is raised by the bounded line searcher when a
	// single line search used up its step budget.
	errLineSearchExhausted = errors.New("optim: line search step budget exhausted")
)
