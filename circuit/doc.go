// SPDX-License-Identifier: MIT

// Package circuit assembles the complete connectivity model of a
// glomerular olfactory network from population sizes and distribution
// hyperparameters.
//
// Populations:
//
//   - Features (F): input feature channels.
//   - Glomeruli (G): one receptor (R), one projection (P) and one lateral (L)
//     neuron per glomerulus.
//   - PI: inhibitory projection neurons.
//   - Kenyon (K): Kenyon cells.
//   - Extrinsic (E): readout neurons.
//
// Every matrix is destination × source: F2R is G×F, P2K is K×G and so on.
// A population of size 0 is valid and yields empty, correctly shaped
// artifacts.
//
// Entry point:
//
//	model, err := circuit.Build(circuit.DefaultParams(), circuit.WithSeed(7))
//
// Build validates the whole Params record first and aborts on the first
// violation (errors.Is(err, ErrInvalidParams) plus the lower-level sentinel
// naming the cause). It then runs its stages in a fixed order, all driven by
// one *rand.Rand, so a seed and a Params value reproduce the model bit for
// bit. The produced Model is checked against Layout before it is returned and
// is read-only afterwards.
//
// Invariants of every built Model:
//
//   - all weights and vectors are ≥ 0;
//   - weight[i,j] ≠ 0 implies mask[i,j] for every masked projection;
//   - the L2G family has an exactly zero diagonal;
//   - G2PI rows sum to 1, or to 0 for PIs without glomerular input.
package circuit
