// SPDX-License-Identifier: MIT
// Package: sampling
//
// errors.go: sentinel errors for the sampling package.
//
// Callers MUST branch with errors.Is; context is attached with %w at the
// detection site.

package sampling

import (
	"errors"
	"fmt"
)

var (
	// ErrNilRand indicates that a nil *rand.Rand was passed to a sampler.
	ErrNilRand = errors.New("sampling: rng is required")

	// ErrNegativeSize indicates a negative vector length or matrix dimension.
	ErrNegativeSize = errors.New("sampling: size must be >= 0")

	// ErrNegativeStd indicates a negative standard deviation for a Gaussian draw.
	ErrNegativeStd = errors.New("sampling: std must be >= 0")

	// ErrNonPositiveStd indicates std <= 0 where a Gamma distribution is requested.
	ErrNonPositiveStd = errors.New("sampling: std must be > 0")

	// ErrNonPositiveMean indicates mean <= 0 where a Gamma distribution is requested.
	ErrNonPositiveMean = errors.New("sampling: mean must be > 0")

	// ErrNonFinite indicates a NaN or ±Inf distribution parameter.
	ErrNonFinite = errors.New("sampling: parameter is NaN or Inf")

	// ErrUnknownFamily indicates a noise family other than gaussian or gamma.
	ErrUnknownFamily = errors.New("sampling: unknown distribution family")

	// ErrNegativeCeiling indicates a negative outlier ceiling.
	ErrNegativeCeiling = errors.New("sampling: ceiling must be >= 0")
)

// samplingErrorf wraps err with a method tag: "<method>: <err>".
func samplingErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
