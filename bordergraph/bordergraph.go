package bordergraph

import "github.com/katalvlaran/gardencraft/farm"

// Build derives the Border adjacency graph of g.
// For every Border cell it examines the up to four orthogonal neighbors and
// records those that are in bounds and also Border. Out-of-bounds neighbors
// never produce an edge. Isolated Border cells become degree-0 nodes.
// Complexity: O(W×H×4) time, O(W×H) memory.
func Build(g *farm.Grid) *Graph {
	w, h := g.Width(), g.Height()
	bg := &Graph{
		width:  w,
		height: h,
		border: make([]bool, w*h),
		adj:    make([][]int, w*h),
	}
	for i := 0; i < w*h; i++ {
		if g.AtIndex(i) == farm.Border {
			bg.border[i] = true
			bg.nodes = append(bg.nodes, i)
		}
	}

	degreeSum := 0
	for _, u := range bg.nodes {
		c := bg.Coordinate(u)
		nbrs := make([]int, 0, len(neighborOffsets))
		for _, d := range neighborOffsets {
			r, col := c.Row+d[0], c.Col+d[1]
			if !g.InBounds(r, col) {
				continue
			}
			if v := bg.index(r, col); bg.border[v] {
				nbrs = append(nbrs, v)
			}
		}
		bg.adj[u] = nbrs
		degreeSum += len(nbrs)
	}
	bg.edges = degreeSum / 2

	return bg
}

// Width returns the column count of the source grid.
func (bg *Graph) Width() int { return bg.width }

// Height returns the row count of the source grid.
func (bg *Graph) Height() int { return bg.height }

// Len returns the size of the index space, Width()*Height().
func (bg *Graph) Len() int { return len(bg.border) }

// Nodes returns the Border indices in ascending order.
// The slice is shared; callers must not modify it.
func (bg *Graph) Nodes() []int { return bg.nodes }

// NodeCount returns the number of Border cells.
func (bg *Graph) NodeCount() int { return len(bg.nodes) }

// EdgeCount returns the number of undirected edges.
func (bg *Graph) EdgeCount() int { return bg.edges }

// IsNode reports whether index i is a Border cell.
func (bg *Graph) IsNode(i int) bool {
	return i >= 0 && i < len(bg.border) && bg.border[i]
}

// Neighbors returns the Border neighbors of i in up, down, left, right order,
// or nil if i is not a node. The slice is shared; callers must not modify it.
func (bg *Graph) Neighbors(i int) []int {
	if !bg.IsNode(i) {
		return nil
	}

	return bg.adj[i]
}

// Degree returns the number of Border neighbors of i (0 for non-nodes).
func (bg *Graph) Degree(i int) int {
	return len(bg.Neighbors(i))
}

// Adjacency returns the graph as a coordinate mapping: every Border cell maps to
// its ordered Border neighbors. Non-Border cells never appear as keys.
// The result is freshly allocated.
func (bg *Graph) Adjacency() map[farm.Coord][]farm.Coord {
	out := make(map[farm.Coord][]farm.Coord, len(bg.nodes))
	for _, u := range bg.nodes {
		nbrs := make([]farm.Coord, len(bg.adj[u]))
		for k, v := range bg.adj[u] {
			nbrs[k] = bg.Coordinate(v)
		}
		out[bg.Coordinate(u)] = nbrs
	}

	return out
}
