// SPDX-License-Identifier: MIT

// Package connectivity generates the structural part of a synaptic model:
// binary masks, the lateral (glomerulus-to-glomerulus) template and the
// derived two-hop projections.
//
// What is provided:
//
//   - BernoulliMask: independent inclusion of every destination/source pair.
//   - RoundRobinMask: capacity-constrained assignment; every source column is
//     connected to exactly fanOut destination rows while no row exceeds its
//     capacity and load is spread as evenly as possible.
//   - KeepOneInputPerRow: optional constraint leaving a single active input
//     per destination.
//   - Lateral: square template with a zero diagonal and an explicit
//     off-diagonal fill target.
//   - Modulate: multiplicative jitter of a template.
//   - Compose, ComposeColumns, RowAverage: relaying quantities through a
//     (row-normalized) connection matrix.
//
// Determinism:
//
//   - Every generator takes the caller's *rand.Rand; trial order is
//     row-major (i asc, then j asc) unless stated otherwise.
//   - Random selections over matrix entries flatten the matrix in row-major
//     order before sampling.
//
// Errors are sentinels (errors.go) wrapped with the function name; nothing
// panics on user input.
package connectivity
