package tsp

import (
	"fmt"

	"github.com/katalvlaran/metroplan/matrix"
)

// tourStart is the fixed start and return vertex.
const tourStart = 0

// searchEngine holds all search data.
// The visited set travels through dfs by value; only path and the
// incumbent live here.
type searchEngine struct {
	n        int
	useBound bool

	// w[u*n+v] is the prefetched distance u→v.
	w []int64

	// minEdge[v] is the cheapest edge leaving v (excluding self).
	minEdge []int64

	// path[0:depth] is the current partial tour; slots past depth are stale.
	path []int

	bestTour []int
	bestCost int64
	foundAny bool
}

// at is a fast accessor into the dense weight buffer.
func (e *searchEngine) at(u, v int) int64 { return e.w[u*e.n+v] }

// prefetch loads dist into a dense buffer, rejecting negative entries.
func (e *searchEngine) prefetch(dist matrix.Matrix) error {
	e.w = make([]int64, e.n*e.n)
	for i := 0; i < e.n; i++ {
		for j := 0; j < e.n; j++ {
			x, err := dist.At(i, j)
			if err != nil {
				return fmt.Errorf("tsp: (%d,%d): %w", i, j, err)
			}
			if x < 0 {
				return fmt.Errorf("tsp: (%d,%d)=%d: %w", i, j, x, ErrNegativeWeight)
			}
			e.w[i*e.n+j] = x
		}
	}

	e.minEdge = make([]int64, e.n)
	for v := 0; v < e.n; v++ {
		first := true
		for u := 0; u < e.n; u++ {
			if u == v {
				continue
			}
			if c := e.at(v, u); first || c < e.minEdge[v] {
				e.minEdge[v], first = c, false
			}
		}
	}

	return nil
}

// lowerBound implements the degree-1 relaxation. Every vertex still waiting
// for its outgoing edge (the unvisited ones plus last) pays at least
// minEdge, and the same holds for incoming edges (unvisited plus start).
// With a symmetric matrix both sums coincide in value, so one is enough:
//
//	LB = costSoFar + Σ minEdge[v] over v ∈ unvisited ∪ {last}
func (e *searchEngine) lowerBound(visited uint32, last int, costSoFar int64) int64 {
	if !e.useBound {
		return costSoFar
	}
	extra := e.minEdge[last]
	for v := 0; v < e.n; v++ {
		if visited&(1<<v) == 0 {
			extra += e.minEdge[v]
		}
	}

	return costSoFar + extra
}

// dfs extends the partial tour ending at last. visited is the set of
// vertices already on path; depth == popcount(visited).
func (e *searchEngine) dfs(last int, visited uint32, depth int, costSoFar int64) {
	if e.foundAny && e.lowerBound(visited, last, costSoFar) >= e.bestCost {
		return
	}

	if depth == e.n {
		total := costSoFar
		if last != tourStart {
			total += e.at(last, tourStart)
		}
		if !e.foundAny || total < e.bestCost {
			copy(e.bestTour, e.path[:e.n])
			e.bestTour[e.n] = tourStart
			e.bestCost = total
			e.foundAny = true
		}

		return
	}

	for v := 0; v < e.n; v++ {
		if visited&(1<<v) != 0 {
			continue
		}
		e.path[depth] = v
		e.dfs(v, visited|1<<v, depth+1, costSoFar+e.at(last, v))
	}
}

// TSPExhaustive returns the cheapest closed tour over every vertex of dist,
// starting and ending at vertex 0.
//
// Errors:
//   - ErrBadOptions for Options no constructor produces.
//   - ErrNonSquare for a non-square or empty matrix.
//   - ErrTooManyStops when the order exceeds the configured cap.
//   - ErrNegativeWeight for a negative entry.
func TSPExhaustive(dist matrix.Matrix, opts Options) (TSResult, error) {
	limit, err := opts.maxStops()
	if err != nil {
		return TSResult{}, err
	}
	if dist == nil {
		return TSResult{}, ErrNonSquare
	}
	n := dist.Rows()
	if n == 0 || n != dist.Cols() {
		return TSResult{}, fmt.Errorf("%w: %dx%d", ErrNonSquare, n, dist.Cols())
	}
	if n > limit {
		return TSResult{}, fmt.Errorf("%w: %d > %d", ErrTooManyStops, n, limit)
	}

	e := searchEngine{n: n, useBound: opts.BoundAlgo == SimpleBound}
	if err = e.prefetch(dist); err != nil {
		return TSResult{}, err
	}
	e.path = make([]int, n)
	e.bestTour = make([]int, n+1)
	e.path[0] = tourStart

	e.dfs(tourStart, 1<<tourStart, 1, 0)

	if err = ValidateTour(e.bestTour, n, tourStart); err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: e.bestTour, Cost: e.bestCost}, nil
}
