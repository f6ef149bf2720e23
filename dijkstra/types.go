// Package dijkstra defines the types, options, and errors of the
// shortest-path engine over a sealed core.Graph.
//
// Dijkstra computes the minimum-cost path from one source vertex to every
// vertex of a transit network with positive integer weights. It uses the
// dense O(V²) selection loop: at each step the unvisited vertex with the
// smallest tentative distance is settled, ties going to the lowest index.
// Networks are small (a few hundred vertices) and a dense scan keeps the
// tie-breaking rule trivially deterministic.
//
// Complexity:
//
//	– Time:  O(V² + E)
//	– Space: O(V)
//
// Options:
//
//	– MaxDistance: optional cap; vertices farther than this stay Unreachable.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrGraphNotSealed    if the graph is still under construction.
//	– ErrVertexNotFound    if a vertex index is outside the graph.
//	– ErrUnknownStation    if a station name has no vertex.
//	– ErrUnreachable       if no path joins the requested endpoints.
//	– ErrBadMaxDistance    if MaxDistance < 0 (panics in the option).
//	– ErrBadCacheSize      if a cache size < 0 (panics in the option).
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/metroplan/route"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrGraphNotSealed indicates a graph still accepting mutations.
	ErrGraphNotSealed = errors.New("dijkstra: graph is not sealed")

	// ErrVertexNotFound indicates a vertex index outside [0, VertexCount()).
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrUnknownStation indicates a station name that no vertex carries.
	ErrUnknownStation = errors.New("dijkstra: unknown station")

	// ErrUnreachable indicates that no path joins the endpoints.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadCacheSize indicates a negative tree-cache size.
	ErrBadCacheSize = errors.New("dijkstra: cache size must be non-negative")
)

// Distance is a shortest-path length that may be absent.
// The zero value is Unreachable; there is no in-band infinity.
type Distance struct {
	v  int64
	ok bool
}

// Unreachable is the distance to a vertex no path reaches.
var Unreachable = Distance{}

// Finite wraps a reachable distance.
func Finite(v int64) Distance { return Distance{v: v, ok: true} }

// Value returns the length and whether it is reachable.
func (d Distance) Value() (int64, bool) { return d.v, d.ok }

// Reachable reports whether d is finite.
func (d Distance) Reachable() bool { return d.ok }

// Less orders distances with Unreachable above every finite value.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.ok:
		return false
	case !o.ok:
		return true
	default:
		return d.v < o.v
	}
}

// String renders the length, or "unreachable".
func (d Distance) String() string {
	if !d.ok {
		return "unreachable"
	}

	return strconv.FormatInt(d.v, 10)
}

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance – vertices whose distance would exceed this value are left
// Unreachable. Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	MaxDistance int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt64}
}

// Tree is a single-source shortest-path result.
//
// Dist[v] is the distance from Source to v. Prev[v] is the predecessor of v
// on a shortest path, or -1 for Source and for unreachable vertices.
// A Tree returned from an Engine may be shared; treat it as read-only.
type Tree struct {
	Source int
	Dist   []Distance
	Prev   []int
}

// To returns the distance to v, Unreachable when v is out of range.
func (t *Tree) To(v int) Distance {
	if v < 0 || v >= len(t.Dist) {
		return Unreachable
	}

	return t.Dist[v]
}

// PathTo returns the vertex path Source → v.
// Errors: ErrVertexNotFound, ErrUnreachable, route.ErrCorruptChain.
func (t *Tree) PathTo(v int) ([]int, error) {
	if v < 0 || v >= len(t.Dist) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	if !t.Dist[v].ok {
		return nil, fmt.Errorf("%d → %d: %w", t.Source, v, ErrUnreachable)
	}

	return route.Reconstruct(t.Prev, v)
}
