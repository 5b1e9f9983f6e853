// Package bordergraph derives the graph induced over the Border cells of a
// farm.Grid, using 4-directional (up, down, left, right) adjacency.
//
// What:
//
//   - Graph is an arena keyed by the grid's row-major index: only Border cells
//     are nodes, and two nodes share an edge when they are orthogonal neighbors.
//   - Components splits the nodes into connected fence fragments.
//
// Why:
//
//   - Loop detection and enclosure masks (packages loop and enclosure) both walk
//     this same graph; it is built once and read concurrently.
//
// Complexity:
//
//   - Build:      O(W×H×4), Memory: O(W×H).
//   - Components: O(V+E),   Memory: O(W×H) for the seen flags.
//
// A Graph is derived data: it is never stored in the Grid and has no mutating
// methods after Build returns.
package bordergraph
