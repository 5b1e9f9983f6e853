// Package farm holds the typed 2D grid ("farm") analyzed by the rest of
// gardencraft.
//
// What:
//
//   - CellKind is the closed set of cell kinds: Empty, Border, Terrain, Water.
//   - Grid is an immutable, rectangular array of CellKind addressed by (row, col).
//   - Every cell is validated at construction time; a Grid is never partially valid.
//
// Why:
//
//   - Fence analysis (bordergraph, loop, enclosure) needs a read-only grid it can
//     index by flat row-major position without re-checking codes.
//
// Complexity:
//
//   - NewGrid, FromCells, FromKinds: O(W×H) time and memory.
//   - At, AtIndex, Index, Coordinate, InBounds: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: zero/negative width or height, or data whose shape
//     differs from the declared width and height.
//   - ErrInvalidCellCode: a value outside 0..3.
package farm
