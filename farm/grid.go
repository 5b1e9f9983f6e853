package farm

import (
	"fmt"
	"math"
	"strings"
)

// NewGrid constructs a width×height grid with every cell set to Empty.
// Returns ErrInvalidDimensions if width or height is not positive, or if
// width*height does not fit in an int.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int) (*Grid, error) {
	if err := checkDims(width, height); err != nil {
		return nil, err
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellKind, width*height), // zero value is Empty
	}, nil
}

// FromCells constructs a grid from caller-supplied codes, data[row][col].
// data must have exactly height rows of exactly width codes each, otherwise
// ErrInvalidDimensions is returned. Every code is checked individually; the first
// one outside 0..3 returns ErrInvalidCellCode naming its coordinate.
// The input is copied; later changes to data do not affect the Grid.
// On any error the returned Grid is nil.
func FromCells(width, height int, data [][]int) (*Grid, error) {
	if err := checkShape(width, height, len(data), func(r int) int { return len(data[r]) }); err != nil {
		return nil, err
	}
	cells := make([]CellKind, width*height)
	for r, row := range data {
		for c, code := range row {
			kind, err := Classify(code)
			if err != nil {
				return nil, fmt.Errorf("farm: cell %v: %w", Coord{Row: r, Col: c}, err)
			}
			cells[r*width+c] = kind
		}
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// FromKinds is FromCells for already-typed input. Kinds are still validated
// since a CellKind can hold any uint8.
func FromKinds(width, height int, kinds [][]CellKind) (*Grid, error) {
	if err := checkShape(width, height, len(kinds), func(r int) int { return len(kinds[r]) }); err != nil {
		return nil, err
	}
	cells := make([]CellKind, width*height)
	for r, row := range kinds {
		for c, kind := range row {
			if !kind.Valid() {
				return nil, fmt.Errorf("farm: cell %v: %w: got %d", Coord{Row: r, Col: c}, ErrInvalidCellCode, uint8(kind))
			}
			cells[r*width+c] = kind
		}
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// checkDims requires positive sides whose product, the cell count, fits in an int.
func checkDims(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if height > math.MaxInt/width {
		return fmt.Errorf("%w: %dx%d cells overflow int", ErrInvalidDimensions, width, height)
	}

	return nil
}

// checkShape verifies declared dimensions against rows rows whose lengths are given by rowLen.
func checkShape(width, height, rows int, rowLen func(int) int) error {
	if err := checkDims(width, height); err != nil {
		return err
	}
	if rows != height {
		return fmt.Errorf("%w: declared height %d, got %d rows", ErrInvalidDimensions, height, rows)
	}
	for r := 0; r < rows; r++ {
		if n := rowLen(r); n != width {
			return fmt.Errorf("%w: declared width %d, row %d has %d cells", ErrInvalidDimensions, width, r, n)
		}
	}

	return nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells, Width()*Height().
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the kind at (row, col). It panics if the coordinate is out of bounds.
func (g *Grid) At(row, col int) CellKind {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("farm: At(%d,%d) out of bounds for %dx%d grid", row, col, g.width, g.height))
	}

	return g.cells[g.Index(row, col)]
}

// AtIndex returns the kind at row-major index i.
func (g *Grid) AtIndex(i int) CellKind {
	return g.cells[i]
}

// Index maps (row, col) to its row-major index: row*Width + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.width + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(i int) Coord {
	return Coord{Row: i / g.width, Col: i % g.width}
}

// Count returns the number of cells of the given kind.
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, k := range g.cells {
		if k == kind {
			n++
		}
	}

	return n
}

// Codes returns a deep copy of the grid as raw codes, [row][col].
func (g *Grid) Codes() [][]int {
	out := make([][]int, g.height)
	for r := range out {
		row := make([]int, g.width)
		for c := range row {
			row[c] = int(g.cells[g.Index(r, c)])
		}
		out[r] = row
	}

	return out
}

// String renders the grid as rows of digit codes separated by spaces.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte('0' + g.cells[g.Index(r, c)]))
		}
		if r < g.height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
