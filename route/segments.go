package route

import "github.com/katalvlaran/metroplan/core"

// Segment is one uninterrupted ride along a single line.
type Segment struct {
	Line  string
	From  string
	To    string
	Stops int // number of line edges ridden
}

// Segments splits a vertex path into per-line rides. Transfer edges end the
// current segment; a path without line edges yields no segments.
// Complexity: O(len(path)).
func Segments(g *core.Graph, path []int) []Segment {
	var (
		out []Segment
		cur *Segment
	)
	for i := 1; i < len(path); i++ {
		e, ok := g.EdgeBetween(path[i-1], path[i])
		if !ok || e.Kind != core.LineEdge {
			cur = nil
			continue
		}
		from, _ := g.Vertex(path[i-1])
		to, _ := g.Vertex(path[i])
		if cur == nil || cur.Line != from.Line {
			out = append(out, Segment{Line: from.Line, From: from.Station})
			cur = &out[len(out)-1]
		}
		cur.To = to.Station
		cur.Stops++
	}

	return out
}
