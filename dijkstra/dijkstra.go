package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/metroplan/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Tie-breaking is fixed so results are reproducible:
//   - among unvisited vertices with equal tentative distance the lowest
//     index is settled first;
//   - a distance is only replaced by a strictly smaller one, so the first
//     predecessor found keeps the slot.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must be sealed (ErrGraphNotSealed).
//  3. source must be a vertex of g (ErrVertexNotFound).
//
// Edge weights are positive by construction (core.ErrBadWeight), so no
// negative-weight scan is needed.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Tree, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Sealed() {
		return nil, ErrGraphNotSealed
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d of %d", ErrVertexNotFound, source, n)
	}

	// 3) Initialize: every vertex unreachable, no predecessors
	t := &Tree{
		Source: source,
		Dist:   make([]Distance, n),
		Prev:   make([]int, n),
	}
	for v := 0; v < n; v++ {
		t.Prev[v] = -1
	}
	t.Dist[source] = Finite(0)
	visited := make([]bool, n)

	// 4) Settle one vertex per round
	for round := 0; round < n; round++ {
		u := closest(t.Dist, visited)
		if u < 0 {
			break // the rest is unreachable
		}
		visited[u] = true

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
		}
		du := t.Dist[u].v
		for _, v := range neighbors {
			if visited[v] {
				continue
			}
			nd := du + g.Weight(u, v)
			if nd > cfg.MaxDistance {
				continue
			}
			if !t.Dist[v].ok || nd < t.Dist[v].v {
				t.Dist[v] = Finite(nd)
				t.Prev[v] = u
			}
		}
	}

	return t, nil
}

// closest returns the unvisited reachable vertex with the smallest distance,
// lowest index on ties, or -1 when none is left.
func closest(dist []Distance, visited []bool) int {
	best := -1
	for v, d := range dist {
		if visited[v] || !d.ok {
			continue
		}
		if best < 0 || d.v < dist[best].v {
			best = v
		}
	}

	return best
}
