package bfs

import "github.com/katalvlaran/metroplan/core"

// Components labels every vertex of g with a connected-component id.
// Ids are dense, start at 0, and follow the lowest vertex index of each
// component, so vertex 0 is always in component 0.
//
// Two vertices share a label iff some path joins them, which makes the
// labels a constant-time reachability test for the weighted searches.
//
// Complexity: O(V + E).
func Components(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Sealed() {
		return nil, ErrGraphNotSealed
	}

	n := g.VertexCount()
	label := make([]int, n)
	for v := range label {
		label[v] = -1
	}

	next := 0
	for v := 0; v < n; v++ {
		if label[v] >= 0 {
			continue
		}
		id := next
		if _, err := BFS(g, v, WithOnVisit(func(u, _ int) error {
			label[u] = id
			return nil
		})); err != nil {
			return nil, err
		}
		next++
	}

	return label, nil
}

// Count returns the number of distinct labels produced by Components.
func Count(labels []int) int {
	top := -1
	for _, l := range labels {
		top = max(top, l)
	}

	return top + 1
}
