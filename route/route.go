// Package route turns raw shortest-path results into station sequences.
//
// A shortest-path run yields a predecessor array prev where prev[v] is the
// vertex before v on the best path from the source, and prev[source] == -1.
// Reconstruct walks that chain back from a destination; Names, Weight, and
// Segments interpret the resulting vertex path against a core.Graph.
package route

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/metroplan/core"
)

// Sentinel errors returned by route helpers.
var (
	// ErrCorruptChain indicates the predecessor chain is cyclic or points
	// outside the array. It is an internal invariant violation of the engine
	// that produced prev, never a user error.
	ErrCorruptChain = errors.New("route: predecessor chain is corrupt")

	// ErrDestOutOfRange indicates dest is not an index of prev.
	ErrDestOutOfRange = errors.New("route: destination out of range")

	// ErrBrokenPath indicates two consecutive path vertices share no edge.
	ErrBrokenPath = errors.New("route: consecutive vertices are not adjacent")
)

// Reconstruct walks prev from dest back to the source (the vertex whose
// predecessor is -1) and returns the path source → dest.
//
// The walk is capped at len(prev) vertices: a well-formed chain can never be
// longer, so exceeding the cap means prev contains a cycle and ErrCorruptChain
// is returned instead of looping forever.
//
// Complexity: O(len(path)).
func Reconstruct(prev []int, dest int) ([]int, error) {
	n := len(prev)
	if dest < 0 || dest >= n {
		return nil, fmt.Errorf("dest %d of %d: %w", dest, n, ErrDestOutOfRange)
	}

	path := make([]int, 0, 8)
	for at := dest; at != -1; at = prev[at] {
		if at < 0 || at >= n {
			return nil, fmt.Errorf("predecessor %d of %d: %w", at, n, ErrCorruptChain)
		}
		if len(path) == n {
			return nil, fmt.Errorf("walk from %d exceeds %d steps: %w", dest, n, ErrCorruptChain)
		}
		path = append(path, at)
	}
	slices.Reverse(path)

	return path, nil
}

// Names maps a vertex path to station names. A transfer shows up as the same
// name twice in a row; see Compact.
func Names(g *core.Graph, path []int) []string {
	out := make([]string, len(path))
	for i, v := range path {
		out[i] = g.Name(v)
	}

	return out
}

// Compact drops consecutive duplicate names, so a transfer between two
// occurrences of one interchange reads as a single stop.
func Compact(names []string) []string {
	return slices.Compact(slices.Clone(names))
}

// Weight sums edge weights along path.
// Errors: ErrBrokenPath if two consecutive vertices are not adjacent.
// Complexity: O(len(path)).
func Weight(g *core.Graph, path []int) (int64, error) {
	var total int64
	for i := 1; i < len(path); i++ {
		w := g.Weight(path[i-1], path[i])
		if w == 0 {
			return 0, fmt.Errorf("%d—%d: %w", path[i-1], path[i], ErrBrokenPath)
		}
		total += w
	}

	return total, nil
}
