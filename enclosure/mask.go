package enclosure

import (
	"strings"

	"github.com/katalvlaran/gardencraft/farm"
)

// Mask is a boolean grid, row-major like farm.Grid.
type Mask struct {
	width, height int
	bits          []bool
}

// newMask allocates an all-false width×height mask.
func newMask(width, height int) *Mask {
	return &Mask{width: width, height: height, bits: make([]bool, width*height)}
}

// Width returns the number of columns.
func (m *Mask) Width() int { return m.width }

// Height returns the number of rows.
func (m *Mask) Height() int { return m.height }

// At reports the mask value at (row, col); out-of-bounds coordinates are false.
func (m *Mask) At(row, col int) bool {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		return false
	}

	return m.bits[row*m.width+col]
}

// Count returns the number of true cells.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}

	return n
}

// Coords lists the true cells in row-major order.
func (m *Mask) Coords() []farm.Coord {
	var out []farm.Coord
	for i, b := range m.bits {
		if b {
			out = append(out, farm.Coord{Row: i / m.width, Col: i % m.width})
		}
	}

	return out
}

// Rows returns a deep copy of the mask as [row][col].
func (m *Mask) Rows() [][]bool {
	out := make([][]bool, m.height)
	for r := range out {
		out[r] = append([]bool(nil), m.bits[r*m.width:(r+1)*m.width]...)
	}

	return out
}

// Equal reports whether m and o have the same dimensions and values.
func (m *Mask) Equal(o *Mask) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.width != o.width || m.height != o.height {
		return false
	}
	for i := range m.bits {
		if m.bits[i] != o.bits[i] {
			return false
		}
	}

	return true
}

// String renders true cells as '#' and false cells as '.', one line per row.
func (m *Mask) String() string {
	var sb strings.Builder
	for r := 0; r < m.height; r++ {
		for c := 0; c < m.width; c++ {
			if m.bits[r*m.width+c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if r < m.height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
