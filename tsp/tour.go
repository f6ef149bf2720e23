package tsp

import (
	"fmt"

	"github.com/katalvlaran/metroplan/matrix"
)

// ValidateTour enforces the closed-tour invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each vertex of [0, n) appears exactly once in tour[0:n].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("%w: tour must start and end at %d", ErrDimensionMismatch, start)
	}

	seen := make([]bool, n)
	for _, v := range tour[:n] {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: vertex %d", ErrDimensionMismatch, v)
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums dist along consecutive tour entries.
// Returns ErrDimensionMismatch for a tour shorter than 2 or an index the
// matrix rejects, ErrNegativeWeight for a negative entry.
//
// Complexity: O(len(tour)).
func TourCost(dist matrix.Matrix, tour []int) (int64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var total int64
	for i := 1; i < len(tour); i++ {
		u, v := tour[i-1], tour[i]
		if u == v {
			continue
		}
		w, err := dist.At(u, v)
		if err != nil {
			return 0, fmt.Errorf("%w: edge %d→%d: %v", ErrDimensionMismatch, u, v, err)
		}
		if w < 0 {
			return 0, fmt.Errorf("%w: edge %d→%d", ErrNegativeWeight, u, v)
		}
		total += w
	}

	return total, nil
}
