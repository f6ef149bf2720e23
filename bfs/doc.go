// Package bfs provides breadth-first search over a sealed core.Graph,
// counting hops (edges) and ignoring weights.
//
// What
//
//   - BFS explores vertices in non-decreasing hop count from a start vertex
//     and returns a Result holding:
//   - Order: visit sequence
//   - Depth: hop count per vertex, -1 when unreached
//   - Parent: predecessor per vertex, -1 for the start and unreached vertices
//   - Hooks run at three stages: OnEnqueue, OnDequeue, and OnVisit (which may
//     abort the walk with an error).
//   - WithFilterNeighbor prunes individual edges, e.g. to stay on one line by
//     skipping transfer edges.
//   - Components labels the connected components of the whole network.
//
// Determinism
//
//	A sealed core.Graph lists neighbors in ascending index order and BFS
//	enqueues them in that order, so Order is fully reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//	ErrGraphNil         - nil graph.
//	ErrGraphNotSealed   - graph still under construction.
//	ErrStartOutOfRange  - start index outside [0, VertexCount()).
//	ErrOptionViolation  - invalid option (e.g. negative MaxDepth).
//	Hook errors are wrapped and returned unchanged via errors.Is.
package bfs
