// SPDX-License-Identifier: MIT
// Package: circuit
//
// options.go: functional options for Build.
//
// Contract:
//   - Options are functional (type Option func(*buildConfig)).
//   - Option constructors panic on meaningless inputs (nil Rand, nil logger);
//     Build itself never panics on user input.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package circuit

import (
	"log/slog"
	"math/rand/v2"

	"github.com/katalvlaran/glomnet/sampling"
)

// Option customizes Build by mutating a buildConfig before construction.
type Option func(*buildConfig)

// WithSeed seeds a fresh PCG stream (see sampling.NewRand).
// Same seed and same Params ⇒ bit-identical Model.
func WithSeed(seed uint64) Option {
	return func(c *buildConfig) {
		c.rng = sampling.NewRand(seed)
	}
}

// WithRand provides an explicit RNG. Build advances it; do not share it
// with concurrent builds. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("circuit: WithRand(nil)")
	}
	return func(c *buildConfig) {
		c.rng = r
	}
}

// WithLogger sets the structured logger used for build progress.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("circuit: WithLogger(nil)")
	}
	return func(c *buildConfig) {
		c.logger = l
	}
}
