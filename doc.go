// SPDX-License-Identifier: MIT

// Package glomnet generates the randomized synaptic connectivity of a
// glomerular olfactory network (receptor, projection and lateral neurons per
// glomerulus, inhibitory projection neurons, Kenyon cells and readout
// neurons) for firing-rate models.
//
// Give it population sizes and distribution hyperparameters; get back a
// fixed, enumerable set of binary masks, non-negative weight matrices and
// per-neuron vectors, reproducible from a seed.
//
// Subpackages:
//
//	matrix/       : Dense and Mask primitives, element-wise kernels, products
//	sampling/     : seeded RNG, Normal and moment-matched Gamma draws, noise vectors
//	connectivity/ : Bernoulli and round-robin masks, lateral template, two-hop composition
//	circuit/      : Params, Layout, Build and the resulting Model
//	config/       : YAML params files
//	cmd/glomnet/  : command-line builder and summary
//
// Quick start:
//
//	m, err := circuit.Build(circuit.DefaultParams(), circuit.WithSeed(7))
//	if err != nil { ... }
//	fmt.Println(m.P2K.Rows(), m.P2K.Cols()) // Kenyon × glomeruli
//
// Conventions shared by every package: matrices are destination × source and
// row-major, size-zero populations are valid, errors are sentinels matched
// with errors.Is, and nothing panics on user input.
package glomnet
