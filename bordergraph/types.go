package bordergraph

import "github.com/katalvlaran/gardencraft/farm"

// neighborOffsets lists the 4-directional moves as (dRow, dCol), in the order
// neighbors are recorded: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Graph is the adjacency graph over Border cells of one grid.
// Nodes and neighbors are row-major indices into the source grid.
type Graph struct {
	width, height int
	border        []bool  // border[i] reports whether index i is a node
	adj           [][]int // adj[i] holds Border neighbors of i; nil for non-nodes
	nodes         []int   // node indices in ascending order
	edges         int     // undirected edge count
}

// Coordinate converts a row-major index back to a grid coordinate.
// Complexity: O(1).
func (bg *Graph) Coordinate(i int) farm.Coord {
	return farm.Coord{Row: i / bg.width, Col: i % bg.width}
}

// index maps (row, col) to row-major order.
func (bg *Graph) index(row, col int) int {
	return row*bg.width + col
}
