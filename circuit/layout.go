// SPDX-License-Identifier: MIT
// Package: circuit
//
// layout.go: the declared name → shape contract of a Model.
//
// Layout depends on Populations only. Build checks the produced Model
// against it, and Model.Artifacts enumerates the same entries in the same
// order with their data attached.

package circuit

import (
	"fmt"

	"github.com/katalvlaran/glomnet/matrix"
)

// Kind classifies an artifact.
type Kind uint8

const (
	// KindMask is a binary connectivity matrix (*matrix.Mask).
	KindMask Kind = iota
	// KindWeights is a non-negative weight matrix (*matrix.Dense).
	KindWeights
	// KindVector is a per-neuron column vector ([]float64, n×1).
	KindVector
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindMask:
		return "mask"
	case KindWeights:
		return "weights"
	case KindVector:
		return "vector"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Shape is a destination × source shape; vectors are n×1.
type Shape struct {
	Rows int
	Cols int
}

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Entry declares one artifact of a Model.
type Entry struct {
	Name  string
	Kind  Kind
	Shape Shape
}

// Artifact pairs an Entry with its data. Exactly one of Mask, Weights and
// Vector is set, according to Kind.
type Artifact struct {
	Entry
	Mask    *matrix.Mask
	Weights *matrix.Dense
	Vector  []float64
}

// Layout returns every artifact name with its kind and shape for the given
// populations, in a fixed order: masks, weights, then vectors.
func Layout(pop Populations) []Entry {
	f, g, pi, k, e := pop.Features, pop.Glomeruli, pop.PI, pop.Kenyon, pop.Extrinsic
	mask := func(name string, r, c int) Entry { return Entry{name, KindMask, Shape{r, c}} }
	weights := func(name string, r, c int) Entry { return Entry{name, KindWeights, Shape{r, c}} }
	vector := func(name string, n int) Entry { return Entry{name, KindVector, Shape{n, 1}} }

	return []Entry{
		mask("F2RMask", g, f),
		mask("P2KMask", k, g),
		mask("G2PIMask", pi, g),
		mask("PI2KMask", k, pi),
		mask("K2EMask", e, k),

		weights("F2R", g, f),
		weights("L2G", g, g),
		weights("L2R", g, g),
		weights("L2P", g, g),
		weights("L2L", g, g),
		weights("P2K", k, g),
		weights("G2PI", pi, g),
		weights("L2PI", pi, g),
		weights("R2PI", pi, g),
		weights("PI2K", k, pi),
		weights("K2E", e, k),

		vector("RSpont", g),
		vector("R2G", g),
		vector("R2P", g),
		vector("R2L", g),
		vector("R2PICol", g),
		vector("GABASens", g),
		vector("Octo2G", g),
		vector("Octo2P", g),
		vector("Octo2L", g),
		vector("Octo2R", g),
		vector("NoiseR", g),
		vector("NoiseP", g),
		vector("NoiseL", g),
		vector("Octo2PI", pi),
		vector("NoisePI", pi),
		vector("Octo2K", k),
		vector("NoiseK", k),
		vector("KGlobalDamp", k),
		vector("Octo2E", e),
		vector("NoiseE", e),
	}
}

// shapeOf returns the actual shape and kind of an artifact's data.
func (a Artifact) shapeOf() (Shape, bool) {
	switch a.Kind {
	case KindMask:
		if a.Mask == nil {
			return Shape{}, false
		}
		return Shape{a.Mask.Rows(), a.Mask.Cols()}, true
	case KindWeights:
		if a.Weights == nil {
			return Shape{}, false
		}
		return Shape{a.Weights.Rows(), a.Weights.Cols()}, true
	case KindVector:
		if a.Vector == nil {
			return Shape{}, false
		}
		return Shape{len(a.Vector), 1}, true
	default:
		return Shape{}, false
	}
}

// checkLayout verifies that m provides exactly the entries Layout declares,
// with matching kinds and shapes.
func checkLayout(m *Model) error {
	want := Layout(m.Params.Populations)
	got := m.Artifacts()
	if len(want) != len(got) {
		return fmt.Errorf("%d artifacts, want %d: %w", len(got), len(want), ErrLayoutMismatch)
	}
	for i, w := range want {
		a := got[i]
		if a.Name != w.Name || a.Kind != w.Kind {
			return fmt.Errorf("artifact %d is %s/%s, want %s/%s: %w",
				i, a.Name, a.Kind, w.Name, w.Kind, ErrLayoutMismatch)
		}
		shape, ok := a.shapeOf()
		if !ok {
			return fmt.Errorf("%s: missing data: %w", w.Name, ErrLayoutMismatch)
		}
		if shape != w.Shape {
			return fmt.Errorf("%s: shape %s, want %s: %w", w.Name, shape, w.Shape, ErrLayoutMismatch)
		}
	}

	return nil
}
