// SPDX-License-Identifier: MIT
// Package: connectivity
//
// errors.go: sentinel errors for the connectivity package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers use errors.Is.
//   - Context (function, offending values) is attached with %w.
//
// Priority when several validations fail:
//   - ErrNegativeSize → ErrInvalidProbability / ErrInvalidFanOut →
//     ErrNeedRandSource → ErrCapacity.

package connectivity

import (
	"errors"
)

var (
	// ErrNegativeSize indicates a negative row, column or population count.
	ErrNegativeSize = errors.New("connectivity: size must be >= 0")

	// ErrInvalidProbability indicates a probability or fill fraction outside [0,1].
	ErrInvalidProbability = errors.New("connectivity: probability out of range")

	// ErrInvalidFanOut indicates a round-robin fan-out smaller than 1 or a
	// negative capacity.
	ErrInvalidFanOut = errors.New("connectivity: fan-out must be >= 1")

	// ErrNeedRandSource indicates that a nil *rand.Rand was supplied.
	ErrNeedRandSource = errors.New("connectivity: rng is required")

	// ErrCapacity indicates that destination capacities cannot absorb the
	// requested assignment (total capacity too small or fan-out larger than
	// the number of destinations).
	ErrCapacity = errors.New("connectivity: insufficient capacity")
)
