// File: methods_build.go
// Role: construction-phase mutators (AddVertex, AddEdge) and Seal.
// Policy:
//   - Mutators validate eagerly and return sentinel errors wrapped with context.
//   - After Seal every mutator returns ErrGraphSealed; the graph is read-only.

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/metroplan/matrix"
)

// AddVertex appends a new occurrence of station on line and returns its index.
// Indices are assigned densely in call order, so a line added stop by stop
// occupies a contiguous index range.
//
// Errors: ErrGraphSealed, ErrEmptyStationName, ErrEmptyLineTag.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(station, line string) (int, error) {
	if g.sealed {
		return -1, ErrGraphSealed
	}
	if station == "" {
		return -1, ErrEmptyStationName
	}
	if line == "" {
		return -1, fmt.Errorf("station %q: %w", station, ErrEmptyLineTag)
	}

	idx := len(g.vertices)
	pos, seen := g.linePos[line]
	if !seen {
		g.lines = append(g.lines, line)
	}
	g.linePos[line] = pos + 1

	g.vertices = append(g.vertices, Vertex{Index: idx, Station: station, Line: line, Position: pos})
	g.adj = append(g.adj, nil)

	if _, ok := g.byName[station]; !ok {
		g.stations = append(g.stations, station)
	}
	g.byName[station] = append(g.byName[station], idx)

	return idx, nil
}

// AddEdge joins from and to with an undirected edge of the given weight and kind.
//
// Validation order:
//  1. graph not sealed (ErrGraphSealed)
//  2. both indices in range (ErrVertexOutOfRange)
//  3. from != to (ErrLoopNotAllowed)
//  4. weight > 0 (ErrBadWeight)
//  5. transfer edges join identical station names (ErrTransferMismatch)
//  6. no existing edge between the pair (ErrMultiEdgeNotAllowed)
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64, kind EdgeKind) error {
	if g.sealed {
		return ErrGraphSealed
	}
	if !g.inRange(from) || !g.inRange(to) {
		return fmt.Errorf("edge %d—%d: %w", from, to, ErrVertexOutOfRange)
	}
	if from == to {
		return fmt.Errorf("edge %d—%d: %w", from, to, ErrLoopNotAllowed)
	}
	if weight <= 0 {
		return fmt.Errorf("edge %d—%d weight=%d: %w", from, to, weight, ErrBadWeight)
	}
	if kind == TransferEdge && g.vertices[from].Station != g.vertices[to].Station {
		return fmt.Errorf("edge %q—%q: %w", g.vertices[from].Station, g.vertices[to].Station, ErrTransferMismatch)
	}
	key := pairKey(from, to)
	if _, dup := g.pairs[key]; dup {
		return fmt.Errorf("edge %d—%d: %w", from, to, ErrMultiEdgeNotAllowed)
	}

	g.pairs[key] = len(g.edges)
	g.edges = append(g.edges, Edge{From: key[0], To: key[1], Weight: weight, Kind: kind})
	g.adj[from] = append(g.adj[from], to)
	g.adj[to] = append(g.adj[to], from)

	return nil
}

// Seal freezes the graph: neighbor lists are sorted ascending and the
// symmetric weight relation is materialized as an n×n matrix.
// Seal is idempotent.
//
// Complexity: O(n² + E log E).
func (g *Graph) Seal() error {
	if g.sealed {
		return nil
	}
	for v := range g.adj {
		sort.Ints(g.adj[v])
	}
	if n := len(g.vertices); n > 0 {
		w, err := matrix.NewSquare(n)
		if err != nil {
			return fmt.Errorf("core: seal: %w", err)
		}
		for _, e := range g.edges {
			if err = w.SetSymmetric(e.From, e.To, e.Weight); err != nil {
				return fmt.Errorf("core: seal: %w", err)
			}
		}
		g.weights = w
	}
	g.sealed = true

	return nil
}

// pairKey normalizes an undirected pair so that key[0] < key[1].
func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}

func (g *Graph) inRange(v int) bool { return v >= 0 && v < len(g.vertices) }
