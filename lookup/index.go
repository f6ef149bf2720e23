// Package lookup resolves free-text station queries against a network.
//
// An Index lists the distinct station names of a core.Graph in vertex
// insertion order. Each entry is addressed by the first vertex index that
// carries the name, so ids are stable for a given dataset and can be fed
// back into id-based routing. Matching is a case-sensitive contiguous
// substring test using a KMP matcher compiled once per query; an empty
// query matches nothing.
package lookup

import "github.com/katalvlaran/metroplan/core"

// Entry is one distinct station.
type Entry struct {
	ID   int // first vertex index of the station
	Name string
}

// Occurrence is one line-specific vertex of a station.
type Occurrence struct {
	ID   int
	Name string
	Line string
}

// Index is an ordered station catalogue over one graph.
type Index struct {
	entries  []Entry
	vertices []Occurrence
}

// New indexes g. Entries follow first-occurrence order of the names.
// Complexity: O(V).
func New(g *core.Graph) *Index {
	n := g.VertexCount()
	ix := &Index{vertices: make([]Occurrence, 0, n)}
	seen := make(map[string]struct{}, n)
	for v := 0; v < n; v++ {
		vx, err := g.Vertex(v)
		if err != nil {
			continue
		}
		ix.vertices = append(ix.vertices, Occurrence{ID: v, Name: vx.Station, Line: vx.Line})
		if _, ok := seen[vx.Station]; ok {
			continue
		}
		seen[vx.Station] = struct{}{}
		ix.entries = append(ix.entries, Entry{ID: v, Name: vx.Station})
	}

	return ix
}

// Len returns the number of distinct stations.
func (ix *Index) Len() int { return len(ix.entries) }

// Entries returns every distinct station in order.
func (ix *Index) Entries() []Entry {
	out := make([]Entry, len(ix.entries))
	copy(out, ix.entries)

	return out
}

// Find returns the stations whose name contains query, in index order.
// An empty query yields an empty, non-nil result.
// Complexity: O(len(query) + Σ len(name)).
func (ix *Index) Find(query string) []Entry {
	p := Compile(query)
	out := []Entry{}
	for _, e := range ix.entries {
		if p.In(e.Name) {
			out = append(out, e)
		}
	}

	return out
}

// FindVertices returns every vertex whose station name contains query.
func (ix *Index) FindVertices(query string) []Occurrence {
	p := Compile(query)
	out := []Occurrence{}
	for _, o := range ix.vertices {
		if p.In(o.Name) {
			out = append(out, o)
		}
	}

	return out
}
