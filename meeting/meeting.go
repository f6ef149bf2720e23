// Package meeting finds the vertex a group of travellers can all reach
// soonest.
//
// Each traveller starts from a source vertex. Distances are weighted
// shortest paths (one Dijkstra tree per source), not hop counts, since
// transfers cost more than a single ride. The best meeting point minimizes
// the worst traveller's distance; ties go to the smaller summed distance and
// then to the lower vertex index.
//
// A traveller may also be described by a group of vertices, such as every
// occurrence of one interchange station; the group's distance to a vertex is
// the minimum over its members.
package meeting

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/metroplan/dijkstra"
)

// Sentinel errors for meeting-point search.
var (
	// ErrNoSources is returned for an empty source set or an empty group.
	ErrNoSources = errors.New("meeting: no sources")

	// ErrVertexOutOfRange is returned for a source outside [0, n).
	ErrVertexOutOfRange = errors.New("meeting: source vertex out of range")

	// ErrNoMeetingPoint is returned when no vertex is reachable from every source.
	ErrNoMeetingPoint = errors.New("meeting: no vertex reachable from every source")
)

// TreeSource yields single-source shortest-path trees; *dijkstra.Engine
// satisfies it.
type TreeSource interface {
	Tree(source int) (*dijkstra.Tree, error)
}

// Point is a meeting-point result.
type Point struct {
	Vertex int
	Max    int64 // worst distance over all sources
	Total  int64 // summed distance over all sources
}

// Distances returns, for each source in order, its distance to every vertex.
// Errors from src are returned wrapped.
func Distances(src TreeSource, sources []int) ([][]dijkstra.Distance, error) {
	out := make([][]dijkstra.Distance, len(sources))
	for i, s := range sources {
		t, err := src.Tree(s)
		if err != nil {
			return nil, fmt.Errorf("meeting: source %d: %w", s, err)
		}
		out[i] = t.Dist
	}

	return out, nil
}

// BestMeetingPoint picks the vertex of [0, n) minimizing the maximum
// distance from sources, then the summed distance, then the index.
// Vertices unreachable from any source are never chosen.
//
// Errors: ErrNoSources, ErrVertexOutOfRange, ErrNoMeetingPoint.
// Complexity: O(k·V²) on a cold engine for k sources, then O(k·V).
func BestMeetingPoint(src TreeSource, n int, sources []int) (Point, error) {
	groups := make([][]int, len(sources))
	for i, s := range sources {
		groups[i] = []int{s}
	}

	return BestMeetingPointGroups(src, n, groups)
}

// BestMeetingPointGroups is BestMeetingPoint where each traveller is a set
// of equivalent start vertices.
func BestMeetingPointGroups(src TreeSource, n int, groups [][]int) (Point, error) {
	if len(groups) == 0 {
		return Point{}, ErrNoSources
	}
	for i, grp := range groups {
		if len(grp) == 0 {
			return Point{}, fmt.Errorf("group %d: %w", i, ErrNoSources)
		}
		for _, s := range grp {
			if s < 0 || s >= n {
				return Point{}, fmt.Errorf("%w: %d of %d", ErrVertexOutOfRange, s, n)
			}
		}
	}

	// Stage 1: per-group distance to every vertex (min over members).
	reach := make([][]dijkstra.Distance, len(groups))
	for i, grp := range groups {
		dists, err := Distances(src, grp)
		if err != nil {
			return Point{}, err
		}
		reach[i] = fold(dists, n)
	}

	// Stage 2: scan candidates in index order; strict improvement only.
	best := Point{Vertex: -1}
	for v := 0; v < n; v++ {
		p, ok := score(reach, v)
		if !ok {
			continue
		}
		if best.Vertex < 0 || p.Max < best.Max || (p.Max == best.Max && p.Total < best.Total) {
			best = p
		}
	}
	if best.Vertex < 0 {
		return Point{}, ErrNoMeetingPoint
	}

	return best, nil
}

// fold merges per-member distance rows into one row of minima.
func fold(rows [][]dijkstra.Distance, n int) []dijkstra.Distance {
	out := make([]dijkstra.Distance, n)
	for _, row := range rows {
		for v := 0; v < n && v < len(row); v++ {
			if row[v].Less(out[v]) {
				out[v] = row[v]
			}
		}
	}

	return out
}

// score returns the max and total distance to v, or false when some
// traveller cannot reach v.
func score(reach [][]dijkstra.Distance, v int) (Point, bool) {
	p := Point{Vertex: v}
	for _, row := range reach {
		d, ok := row[v].Value()
		if !ok {
			return Point{}, false
		}
		p.Max = max(p.Max, d)
		p.Total += d
	}

	return p, true
}
