package tsp

import (
	"fmt"

	"github.com/katalvlaran/metroplan/matrix"
)

// DistanceOracle answers station-to-station shortest distances.
// *dijkstra.Engine satisfies it.
type DistanceOracle interface {
	StationDistance(src, dst string) (int64, error)
}

// Trip is a planned closed multi-stop journey.
type Trip struct {
	// Order lists the stops in visiting order, closed: Order[0] and
	// Order[len-1] are both the start stop.
	Order []string

	// Tour is Order expressed as indices into the requested stops.
	Tour []int

	// Cost is the total distance of the closed trip.
	Cost int64
}

// PlanTrip finds the shortest closed trip that starts at stops[0], visits
// every other stop once, and returns to stops[0].
//
// Stage 1: enforce the stop cap (ErrNoStops, ErrTooManyStops, ErrBadOptions).
// Stage 2: fill the symmetric cost matrix from the oracle, one query per pair.
// Stage 3: run TSPExhaustive and price the tour against the same table.
//
// Oracle errors (unknown station, unreachable pair) are returned wrapped
// with the stop names; a tour needs every pair to be finite.
func PlanTrip(oracle DistanceOracle, stops []string, opts Options) (Trip, error) {
	limit, err := opts.maxStops()
	if err != nil {
		return Trip{}, err
	}
	n := len(stops)
	if n == 0 {
		return Trip{}, ErrNoStops
	}
	if n > limit {
		return Trip{}, fmt.Errorf("%w: %d > %d", ErrTooManyStops, n, limit)
	}

	dist, err := matrix.NewSquare(n)
	if err != nil {
		return Trip{}, fmt.Errorf("tsp: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, qerr := oracle.StationDistance(stops[i], stops[j])
			if qerr != nil {
				return Trip{}, fmt.Errorf("tsp: %q → %q: %w", stops[i], stops[j], qerr)
			}
			if err = dist.SetSymmetric(i, j, d); err != nil {
				return Trip{}, fmt.Errorf("tsp: %w", err)
			}
		}
	}

	res, err := TSPExhaustive(dist, opts)
	if err != nil {
		return Trip{}, err
	}
	cost, err := TourCost(dist, res.Tour)
	if err != nil {
		return Trip{}, fmt.Errorf("tsp: %w", err)
	}
	order := make([]string, len(res.Tour))
	for i, v := range res.Tour {
		order[i] = stops[v]
	}

	return Trip{Order: order, Tour: res.Tour, Cost: cost}, nil
}
