package farm

import (
	"fmt"
	"strings"
)

// CellKind is the kind of a single farm cell.
// The set is closed: only the four constants below are valid.
type CellKind uint8

const (
	// Empty is a cell with no assigned kind (code 0).
	Empty CellKind = iota
	// Border is a fence cell; borders encircle the usable farm area (code 1).
	Border
	// Terrain is fillable ground (code 2).
	Terrain
	// Water is a water cell (code 3).
	Water
)

// numKinds is the number of defined kinds; codes are 0..numKinds-1.
const numKinds = 4

// String returns the lower-case name of the kind.
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Border:
		return "border"
	case Terrain:
		return "terrain"
	case Water:
		return "water"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the four defined kinds.
func (k CellKind) Valid() bool {
	switch k {
	case Empty, Border, Terrain, Water:
		return true
	default:
		return false
	}
}

// Classify maps a raw cell code to its kind.
// Codes outside 0..3 return ErrInvalidCellCode.
func Classify(code int) (CellKind, error) {
	if code < 0 || code >= numKinds {
		return Empty, fmt.Errorf("%w: got %d", ErrInvalidCellCode, code)
	}

	return CellKind(code), nil
}

// ParseCellKind maps a kind name (as returned by String, case-insensitive)
// to its kind.
func ParseCellKind(name string) (CellKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "empty":
		return Empty, nil
	case "border":
		return Border, nil
	case "terrain":
		return Terrain, nil
	case "water":
		return Water, nil
	default:
		return Empty, fmt.Errorf("%w: unknown kind %q", ErrInvalidCellCode, name)
	}
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c translated by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Grid is an immutable, validated 2D array of cell kinds.
// Cells are stored row-major: cells[row*width+col].
// A Grid has no mutating methods and is safe for concurrent readers.
type Grid struct {
	width, height int
	cells         []CellKind
}
