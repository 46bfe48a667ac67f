// SPDX-License-Identifier: MIT
// Package: circuit
//
// errors.go: sentinel errors for the circuit package.
//
// Error policy:
//   - Precondition failures wrap ErrInvalidParams AND the lower-level sentinel
//     (connectivity.ErrInvalidProbability, sampling.ErrNonPositiveStd, ...),
//     so callers can branch on either with errors.Is.
//   - Stage failures are wrapped with the stage name; no partial Model is
//     ever returned.

package circuit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParams indicates that a Params field violates its domain.
	ErrInvalidParams = errors.New("circuit: invalid params")

	// ErrLayoutMismatch indicates that a built artifact does not match the
	// shape declared by Layout. It signals an internal inconsistency.
	ErrLayoutMismatch = errors.New("circuit: artifact does not match layout")
)

// paramErrorf wraps a field violation: "circuit: invalid params: <field>: <cause>".
func paramErrorf(field string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidParams, field, err)
}

// stageErrorf wraps a stage failure with the stage name.
func stageErrorf(stage string, err error) error {
	return fmt.Errorf("Build: %s: %w", stage, err)
}
