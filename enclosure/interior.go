package enclosure

import (
	"github.com/katalvlaran/gardencraft/bordergraph"
	"github.com/katalvlaran/gardencraft/farm"
)

// InteriorMask returns a mask that is true at every non-Border cell of g that
// cannot reach the edge of the grid by orthogonal moves through non-Border
// cells. Border cells are impassable and always false. A gap in a fence lets
// the outside flow in, so an open fence encloses nothing.
func InteriorMask(g *farm.Grid) *Mask {
	return InteriorFromGraph(bordergraph.Build(g))
}

// InteriorFromGraph is InteriorMask over an already built Border graph.
func InteriorFromGraph(bg *bordergraph.Graph) *Mask {
	w, h := bg.Width(), bg.Height()
	outside := make([]bool, w*h)
	queue := make([]int, 0, 2*(w+h))

	// Seed with every non-Border cell on the grid's edge.
	seed := func(row, col int) {
		i := row*w + col
		if !bg.IsNode(i) && !outside[i] {
			outside[i] = true
			queue = append(queue, i)
		}
	}
	for c := 0; c < w; c++ {
		seed(0, c)
		seed(h-1, c)
	}
	for r := 0; r < h; r++ {
		seed(r, 0)
		seed(r, w-1)
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ur, uc := u/w, u%w
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			r, c := ur+d[0], uc+d[1]
			if r < 0 || r >= h || c < 0 || c >= w {
				continue
			}
			seed(r, c)
		}
	}

	m := newMask(w, h)
	for i := range m.bits {
		m.bits[i] = !outside[i] && !bg.IsNode(i)
	}

	return m
}
