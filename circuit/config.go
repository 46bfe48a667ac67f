// SPDX-License-Identifier: MIT
// Package: circuit
//
// config.go: internal build configuration and deterministic defaults.
//
// Design:
//   - buildConfig is the single source of truth for Build knobs.
//   - newBuildConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   - rng    = sampling.NewRand(DefaultSeed)
//   - logger = slog logger writing to io.Discard

package circuit

import (
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/katalvlaran/glomnet/sampling"
)

// DefaultSeed seeds the RNG when neither WithSeed nor WithRand is given.
const DefaultSeed uint64 = 1

// buildConfig aggregates the knobs resolved from Options.
type buildConfig struct {
	// RNG driving every draw of a build; owned by that build.
	rng *rand.Rand
	// Logger for stage progress (Debug) and the final summary (Info).
	logger *slog.Logger
}

// newBuildConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)).
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = sampling.NewRand(DefaultSeed)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return cfg
}
