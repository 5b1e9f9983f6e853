// Package gardencraft validates and analyzes farm grids: 2D arrays of typed
// cells (empty, border, terrain, water) whose border cells should fence off
// the usable farm area.
//
// Under the hood, everything is organized in small subpackages:
//
//	farm/        — CellKind, Coord and the immutable, validated Grid
//	bordergraph/ — graph induced over Border cells (4-neighbor adjacency)
//	loop/        — "exactly one closed loop?" check over that graph
//	enclosure/   — enclosure (fence) mask and interior (fenced-in area) mask
//	analysis/    — runs the passes concurrently into a single Report
//	farmfile/    — YAML and text grid files
//	cmd/farmcheck — command-line checker and renderer
//
// Quick ASCII example:
//
//	1 1 1
//	1 2 1
//	1 1 1
//
// is a single closed loop of eight border cells enclosing one terrain cell.
package gardencraft
