package enclosure

import (
	"github.com/katalvlaran/gardencraft/bordergraph"
	"github.com/katalvlaran/gardencraft/farm"
)

// EnclosureMask returns a mask of g's dimensions that is true at every Border
// cell reached while walking the Border components, and false elsewhere.
// Components are not filtered by whether they form a closed loop, and the
// interior of a fence is not marked; see InteriorMask for that.
// A grid without Border cells yields an all-false mask.
func EnclosureMask(g *farm.Grid) *Mask {
	return FromGraph(bordergraph.Build(g))
}

// FromGraph is EnclosureMask over an already built Border graph.
// Visiting a node and marking it are the same step, so the mask is exactly the
// set of nodes reached from every unvisited starting node.
func FromGraph(bg *bordergraph.Graph) *Mask {
	m := newMask(bg.Width(), bg.Height())
	stack := make([]int, 0, 64)

	for _, root := range bg.Nodes() {
		if m.bits[root] {
			continue
		}
		m.bits[root] = true
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, v := range bg.Neighbors(u) {
				if !m.bits[v] {
					m.bits[v] = true
					stack = append(stack, v)
				}
			}
		}
	}

	return m
}
