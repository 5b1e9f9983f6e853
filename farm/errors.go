package farm

import "errors"

var (
	// ErrInvalidDimensions indicates a zero or negative width/height, or cell data
	// whose shape does not match the declared dimensions.
	ErrInvalidDimensions = errors.New("farm: grid must have a positive width and height matching its data")
	// ErrInvalidCellCode indicates a cell value outside the four defined kinds.
	ErrInvalidCellCode = errors.New("farm: cell code must be within 0-3")
)
