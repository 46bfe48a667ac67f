// SPDX-License-Identifier: MIT
// Package: circuit
//
// summary.go: per-artifact descriptive statistics.

package circuit

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes one artifact. Masks are summarized as 0/1 values.
// Mean and Std are over all entries (zeros included); Std is the sample
// standard deviation and 0 for fewer than two entries.
type Stats struct {
	Name    string
	Kind    Kind
	Shape   Shape
	NonZero int
	Mean    float64
	Std     float64
	Min     float64
	Max     float64
}

// Summarize computes Stats for a.
func Summarize(a Artifact) Stats {
	s := Stats{Name: a.Name, Kind: a.Kind, Shape: a.Shape}

	var values []float64
	switch a.Kind {
	case KindMask:
		if a.Mask != nil {
			values = a.Mask.Dense().RawData()
		}
	case KindWeights:
		if a.Weights != nil {
			values = a.Weights.RawData()
		}
	case KindVector:
		values = a.Vector
	}
	if len(values) == 0 {
		return s
	}

	for _, v := range values {
		if v != 0 {
			s.NonZero++
		}
	}
	s.Min, s.Max = floats.Min(values), floats.Max(values)
	if len(values) == 1 {
		s.Mean = values[0]
		return s
	}
	s.Mean, s.Std = stat.MeanStdDev(values, nil)

	return s
}

// Summary returns Stats for every artifact of m, in Layout order.
func (m *Model) Summary() []Stats {
	arts := m.Artifacts()
	out := make([]Stats, len(arts))
	for i, a := range arts {
		out[i] = Summarize(a)
	}

	return out
}
