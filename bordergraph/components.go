package bordergraph

// Components finds all connected fence fragments.
// Returns a slice of components; each component is a slice of row-major
// indices in BFS order from its lowest index. Components are ordered by their
// lowest index. A Border cell with no Border neighbors is its own component.
//
// To convert an index back to (row,col), use Coordinate(idx).
//
// Time:   O(V+E).
// Memory: O(W·H) for seen flags and output.
func (bg *Graph) Components() [][]int {
	seen := make([]bool, len(bg.border))
	var comps [][]int

	for _, i0 := range bg.nodes {
		if seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			for _, v := range bg.adj[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
