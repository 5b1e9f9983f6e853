// Package loop decides whether the Border cells of a farm.Grid form exactly
// one closed loop.
//
// A closed loop is a cycle in the Border adjacency graph (see bordergraph).
// Depth-first traversal from every unvisited Border node, sharing one state
// array across the whole scan, finds each cycle as a back-edge: an edge to a
// node that is still on the traversal stack and is not the current node's
// parent. Each back-edge is one closed loop, so
//
//   - a simple ring contributes 1,
//   - a path or an isolated cell contributes 0,
//   - a figure-eight (two rings sharing a cell) contributes 2.
//
// For a connected component this count is E−V+1, the number of independent cycles.
//
// The traversal uses an explicit stack, so grid size is not bounded by
// goroutine stack depth.
//
// Complexity:
//
//   - Time:   O(V+E), stopping early once the count exceeds the caller's limit.
//   - Memory: O(W×H) for the state array, O(V) for the stack.
package loop
