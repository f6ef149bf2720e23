// File: methods_query.go
// Role: read-only queries over vertices, edges, and the station-name index.
// Determinism:
//   - Neighbors() returns ascending indices once sealed.
//   - Stations() and Lines() follow first-occurrence order.
//   - Edges() follows insertion order.
// All returned slices are fresh copies; callers may keep or modify them.

package core

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/metroplan/matrix"
)

// Sealed reports whether Seal has been called.
func (g *Graph) Sealed() bool { return g.sealed }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertex returns the vertex at index v.
func (g *Graph) Vertex(v int) (Vertex, error) {
	if !g.inRange(v) {
		return Vertex{}, fmt.Errorf("vertex %d: %w", v, ErrVertexOutOfRange)
	}

	return g.vertices[v], nil
}

// Name returns the station name of vertex v, or "" when v is out of range.
func (g *Graph) Name(v int) string {
	if !g.inRange(v) {
		return ""
	}

	return g.vertices[v].Station
}

// Weight returns the weight of the edge u—v, or 0 when there is no edge
// (including u == v and out-of-range indices).
// Complexity: O(1).
func (g *Graph) Weight(u, v int) int64 {
	if !g.inRange(u) || !g.inRange(v) || u == v {
		return 0
	}
	if g.weights != nil {
		w, _ := g.weights.At(u, v) // in range by the check above
		return w
	}
	if idx, ok := g.pairs[pairKey(u, v)]; ok {
		return g.edges[idx].Weight
	}

	return 0
}

// HasEdge reports whether an edge joins u and v.
func (g *Graph) HasEdge(u, v int) bool { return g.Weight(u, v) > 0 }

// EdgeBetween returns the edge joining u and v.
func (g *Graph) EdgeBetween(u, v int) (Edge, bool) {
	idx, ok := g.pairs[pairKey(u, v)]
	if !ok {
		return Edge{}, false
	}

	return g.edges[idx], true
}

// Neighbors returns the indices adjacent to v.
// Complexity: O(d).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.inRange(v) {
		return nil, fmt.Errorf("neighbors of %d: %w", v, ErrVertexOutOfRange)
	}

	return slices.Clone(g.adj[v]), nil
}

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Indices returns the vertex indices of every occurrence of station, in
// insertion order. An unknown name yields nil.
func (g *Graph) Indices(station string) []int {
	return slices.Clone(g.byName[station])
}

// HasStation reports whether at least one vertex carries the name.
func (g *Graph) HasStation(station string) bool {
	_, ok := g.byName[station]
	return ok
}

// Stations returns distinct station names in first-occurrence order.
func (g *Graph) Stations() []string { return slices.Clone(g.stations) }

// Lines returns distinct line tags in first-occurrence order.
func (g *Graph) Lines() []string { return slices.Clone(g.lines) }

// Weights returns a copy of the symmetric weight relation.
// Errors: ErrGraphNotSealed before Seal; matrix.ErrBadShape on an empty graph.
// Complexity: O(n²).
func (g *Graph) Weights() (matrix.Matrix, error) {
	if !g.sealed {
		return nil, ErrGraphNotSealed
	}
	if g.weights == nil {
		return nil, matrix.ErrBadShape
	}

	return g.weights.Clone(), nil
}

// Stats returns catalog sizes.
// Complexity: O(E).
func (g *Graph) Stats() GraphStats {
	s := GraphStats{
		Vertices: len(g.vertices),
		Edges:    len(g.edges),
		Stations: len(g.stations),
		Lines:    len(g.lines),
	}
	for _, e := range g.edges {
		if e.Kind == TransferEdge {
			s.TransferEdges++
		} else {
			s.LineEdges++
		}
	}

	return s
}
