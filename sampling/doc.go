// SPDX-License-Identifier: MIT

// Package sampling draws the random quantities of a connectivity model:
// synaptic magnitudes, per-neuron Gaussian vectors, moment-matched Gamma
// vectors and noise levels.
//
// Determinism:
//
//   - Every function takes the caller's *rand.Rand (math/rand/v2) and never
//     falls back to a global source. The same Rand is handed to gonum's
//     distuv distributions as their Src, so one stream drives all draws.
//   - Draw order is row-major for matrices and ascending index for vectors.
//     Magnitude matrices consume one draw per entry whether or not the entry
//     is masked, so RNG consumption depends on shape only.
//   - NewRand(seed) builds a PCG stream whose second state word is derived
//     from the seed with a SplitMix64 finalizer.
//
// All arithmetic is plain float64. Negative draws are clamped to 0: synaptic
// weights and firing-rate noise levels are non-negative by construction.
package sampling
