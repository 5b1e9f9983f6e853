package loop

import (
	"github.com/katalvlaran/gardencraft/bordergraph"
	"github.com/katalvlaran/gardencraft/farm"
)

// Visitation state per node index.
const (
	white uint8 = iota // unvisited
	gray               // on the DFS stack
	black              // finished
)

// NoLimit disables the early exit of ClosedLoops.
const NoLimit = -1

// frame is one DFS stack entry: the node, its tree parent (-1 for a root),
// and the position of the next neighbor to examine.
type frame struct {
	node, parent, next int
}

// ClosedLoops counts the closed loops of bg.
// Components are scanned in ascending order of their lowest node; the state
// array is shared by every traversal so no loop is counted twice.
// If limit >= 0 the scan stops as soon as the count exceeds limit and that
// count (limit+1) is returned.
func ClosedLoops(bg *bordergraph.Graph, limit int) int {
	state := make([]uint8, bg.Len())
	stack := make([]frame, 0, 64)
	loops := 0

	for _, root := range bg.Nodes() {
		if state[root] != white {
			continue
		}
		state[root] = gray
		stack = append(stack[:0], frame{node: root, parent: -1})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			nbrs := bg.Neighbors(top.node)
			if top.next == len(nbrs) {
				state[top.node] = black
				stack = stack[:len(stack)-1]
				continue
			}
			v := nbrs[top.next]
			top.next++

			switch state[v] {
			case white:
				state[v] = gray
				stack = append(stack, frame{node: v, parent: top.node})
			case gray:
				if v == top.parent {
					continue // the tree edge we arrived by
				}
				loops++
				if limit >= 0 && loops > limit {
					return loops
				}
			case black:
				// already counted from the deeper endpoint
			}
		}
	}

	return loops
}

// CountClosedLoops returns the total number of closed loops in g.
func CountClosedLoops(g *farm.Grid) int {
	return ClosedLoops(bordergraph.Build(g), NoLimit)
}

// HasSingleClosedLoop reports whether the Border cells of g contain exactly one
// closed loop. Zero loops (including a grid without Border cells) and more
// than one loop both return false; the scan stops at the second loop.
func HasSingleClosedLoop(g *farm.Grid) bool {
	return ClosedLoops(bordergraph.Build(g), 1) == 1
}
