// Package tsp orders a small set of stops into the shortest closed trip.
//
// The first stop is the mandatory start and return point. Pairwise costs
// come from a DistanceOracle (a shortest-path engine over the network) and
// are placed into a symmetric int64 matrix; TSPExhaustive then searches
// every ordering of the remaining stops.
//
// Search:
//   - Depth-first over stop indices in ascending order.
//   - The visited set is an immutable bitmask passed by value into each
//     call, so backtracking never has to restore shared state.
//   - Options.BoundAlgo = SimpleBound prunes with the admissible degree-1
//     relaxation; NoBound enumerates every permutation.
//   - Only a strictly cheaper tour replaces the incumbent, so among equal
//     costs the first tour in recursion order wins with or without pruning.
//
// Capacity:
//
//	The search is (n-1)! in the worst case. PlanTrip refuses more than
//	Options.MaxStops stops (DefaultMaxStops unless raised by WithMaxStops,
//	never above HardMaxStops) with ErrTooManyStops, before asking the
//	oracle for a single distance.
//
// Complexity:
//   - Time:   O(n!) worst case, O(n) per search node with SimpleBound.
//   - Memory: O(n²) for the dense cost buffer.
package tsp
