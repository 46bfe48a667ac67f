// SPDX-License-Identifier: MIT

// Package matrix provides the dense and boolean matrix primitives used to
// describe synaptic connectivity between neuron populations.
//
// The package offers:
//
//   - Dense: a row-major float64 matrix (weights, templates).
//   - Mask: a row-major boolean matrix (which source/destination pairs connect).
//   - In-place element-wise kernels (clamping, masking, row/column scaling,
//     diagonal zeroing) with a *Dense fast path.
//   - Row statistics and L1 row normalization that leaves zero-sum rows untouched.
//   - Matrix products backed by gonum's mat package.
//
// Conventions:
//
//   - Shapes are destination × source: entry (i, j) is the synapse going to
//     destination i from source j.
//   - Zero-area shapes (0×n, n×0) are legal; a population of size zero yields
//     an empty but correctly shaped matrix.
//   - Every traversal is row-major (i ascending, then j ascending). Algorithms
//     that flatten a matrix (e.g. to select entries at random) use the same
//     order, so results never depend on platform defaults.
//   - Public methods return sentinel errors (see errors.go) instead of panicking.
package matrix
