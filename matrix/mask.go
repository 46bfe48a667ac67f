// SPDX-License-Identifier: MIT

// Package matrix - Mask: boolean connectivity matrix (row-major).
//
// A Mask marks which destination/source pairs carry a synapse. It shares the
// Dense conventions: destination rows, source columns, row-major storage,
// zero-area shapes allowed, errors instead of panics.

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxMaskAt  = "At"
	ctxMaskSet = "Set"
)

// Mask is a row-major boolean matrix.
type Mask struct {
	r, c int
	bits []bool // len == r*c
}

var _ fmt.Stringer = (*Mask)(nil)

// NewMask allocates an all-false r×c mask. Negative shapes return
// ErrInvalidDimensions; zero-area shapes are legal.
func NewMask(rows, cols int) (*Mask, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewMask(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Mask{r: rows, c: cols, bits: make([]bool, rows*cols)}, nil
}

// Rows returns the number of destination rows.
func (m *Mask) Rows() int { return m.r }

// Cols returns the number of source columns.
func (m *Mask) Cols() int { return m.c }

func (m *Mask) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At reports whether (row, col) is connected.
func (m *Mask) At(row, col int) (bool, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return false, maskErrorf(ctxMaskAt, row, col, err)
	}

	return m.bits[off], nil
}

// Set marks (row, col) as connected (v=true) or not.
func (m *Mask) Set(row, col int, v bool) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return maskErrorf(ctxMaskSet, row, col, err)
	}
	m.bits[off] = v

	return nil
}

// Count returns the number of connected pairs.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}

	return n
}

// RowCounts returns the in-degree of every destination row.
func (m *Mask) RowCounts() []int {
	out := make([]int, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if m.bits[base+j] {
				out[i]++
			}
		}
	}

	return out
}

// ColCounts returns the out-degree of every source column.
func (m *Mask) ColCounts() []int {
	out := make([]int, m.c)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if m.bits[base+j] {
				out[j]++
			}
		}
	}

	return out
}

// Copy returns an independent deep copy.
func (m *Mask) Copy() *Mask {
	cp := make([]bool, len(m.bits))
	copy(cp, m.bits)

	return &Mask{r: m.r, c: m.c, bits: cp}
}

// Equal reports whether both masks have the same shape and pattern.
func (m *Mask) Equal(o *Mask) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for idx := range m.bits {
		if m.bits[idx] != o.bits[idx] {
			return false
		}
	}

	return true
}

// Dense converts the mask to a 0/1 Dense of the same shape.
func (m *Mask) Dense() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.bits)), validateNaNInf: DefaultValidateNaNInf}
	for idx, b := range m.bits {
		if b {
			out.data[idx] = 1
		}
	}

	return out
}

// String renders rows of 0/1 for diagnostics.
func (m *Mask) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if m.bits[i*m.c+j] {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
