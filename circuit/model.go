// SPDX-License-Identifier: MIT
// Package: circuit
//
// model.go: the output record of Build.

package circuit

import (
	"github.com/katalvlaran/glomnet/matrix"
)

// Model is the generated connectivity substrate. Shapes are
// destination × source; vectors are indexed by neuron. A Model is built once
// by Build and must be treated as read-only.
type Model struct {
	// Params is a copy of the input the model was built from.
	Params Params

	// Masks.
	F2RMask  *matrix.Mask // G×F
	P2KMask  *matrix.Mask // K×G
	G2PIMask *matrix.Mask // PI×G
	PI2KMask *matrix.Mask // K×PI
	K2EMask  *matrix.Mask // E×K

	// Weights.
	F2R  *matrix.Dense // G×F
	L2G  *matrix.Dense // G×G, template scaled by GABASens.Mean
	L2R  *matrix.Dense // G×G
	L2P  *matrix.Dense // G×G
	L2L  *matrix.Dense // G×G
	P2K  *matrix.Dense // K×G
	G2PI *matrix.Dense // PI×G, row-normalized
	L2PI *matrix.Dense // PI×G, G2PI·L2G
	R2PI *matrix.Dense // PI×G, G2PI·diag(R2PICol)
	PI2K *matrix.Dense // K×PI
	K2E  *matrix.Dense // E×K

	// Glomerular vectors (length G).
	RSpont   []float64
	R2G      []float64
	R2P      []float64
	R2L      []float64
	R2PICol  []float64
	GABASens []float64
	Octo2G   []float64
	Octo2P   []float64
	Octo2L   []float64
	Octo2R   []float64
	NoiseR   []float64
	NoiseP   []float64
	NoiseL   []float64

	// PI vectors (length PI).
	Octo2PI []float64
	NoisePI []float64

	// Kenyon vectors (length K).
	Octo2K      []float64
	NoiseK      []float64
	KGlobalDamp []float64

	// Extrinsic vectors (length E).
	Octo2E []float64
	NoiseE []float64
}

// Artifacts enumerates every artifact of m in Layout order.
func (m *Model) Artifacts() []Artifact {
	masks := map[string]*matrix.Mask{
		"F2RMask": m.F2RMask, "P2KMask": m.P2KMask, "G2PIMask": m.G2PIMask,
		"PI2KMask": m.PI2KMask, "K2EMask": m.K2EMask,
	}
	weights := map[string]*matrix.Dense{
		"F2R": m.F2R, "L2G": m.L2G, "L2R": m.L2R, "L2P": m.L2P, "L2L": m.L2L,
		"P2K": m.P2K, "G2PI": m.G2PI, "L2PI": m.L2PI, "R2PI": m.R2PI,
		"PI2K": m.PI2K, "K2E": m.K2E,
	}
	vectors := map[string][]float64{
		"RSpont": m.RSpont, "R2G": m.R2G, "R2P": m.R2P, "R2L": m.R2L,
		"R2PICol": m.R2PICol, "GABASens": m.GABASens, "Octo2G": m.Octo2G,
		"Octo2P": m.Octo2P, "Octo2L": m.Octo2L, "Octo2R": m.Octo2R,
		"NoiseR": m.NoiseR, "NoiseP": m.NoiseP, "NoiseL": m.NoiseL,
		"Octo2PI": m.Octo2PI, "NoisePI": m.NoisePI,
		"Octo2K": m.Octo2K, "NoiseK": m.NoiseK, "KGlobalDamp": m.KGlobalDamp,
		"Octo2E": m.Octo2E, "NoiseE": m.NoiseE,
	}

	// Iterate the declared layout, never the maps, to keep a stable order.
	layout := Layout(m.Params.Populations)
	out := make([]Artifact, 0, len(layout))
	for _, e := range layout {
		a := Artifact{Entry: e}
		switch e.Kind {
		case KindMask:
			a.Mask = masks[e.Name]
		case KindWeights:
			a.Weights = weights[e.Name]
		case KindVector:
			a.Vector = vectors[e.Name]
		}
		out = append(out, a)
	}

	return out
}

// Artifact returns the artifact called name, if it exists.
func (m *Model) Artifact(name string) (Artifact, bool) {
	for _, a := range m.Artifacts() {
		if a.Name == name {
			return a, true
		}
	}

	return Artifact{}, false
}
