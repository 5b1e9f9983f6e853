// Package farmfile reads and writes farm grids.
//
// YAML documents carry "width", "height" and "cells" (rows of codes). Width
// and height may be omitted and are then taken from "cells":
//
//	width: 3
//	height: 3
//	cells:
//	  - [1, 1, 1]
//	  - [1, 2, 1]
//	  - [1, 1, 1]
//
// Text files hold one row per line. Cells are the codes 0-3, separated by
// spaces or commas, or written back to back ("121"). Blank lines and lines
// starting with '#' are skipped.
//
// Cell validation is left to farm.FromCells, so farm.ErrInvalidDimensions and
// farm.ErrInvalidCellCode stay reachable with errors.Is through the
// file/line context added here.
package farmfile
