// Package metroplan is the routing core of a multi-line transit network:
// build a network of lines and interchanges, then ask it for shortest
// routes or meeting points. Short round trips are solved exactly.
//
// A station served by k lines appears as k vertices, one per line, joined
// pairwise by transfer edges. Routes between station names consider every
// occurrence at both ends and keep the shortest.
//
// Packages:
//
//	matrix/   - dense int64 matrices for weights and distance tables
//	core/     - Graph, Vertex and Edge with construction and sealing
//	builder/  - lines and interchanges assembled into a sealed Graph
//	bfs/      - breadth-first traversal and connected components
//	dijkstra/ - single-source trees and a caching shortest-path Engine
//	route/    - predecessor chains turned into vertex paths, names and line segments
//	meeting/  - minimax meeting point for several travellers
//	tsp/      - exact round trip over a handful of stops
//	lookup/   - substring station search (KMP)
//	dataset/  - YAML network descriptions and the embedded Delhi Metro
//	planner/  - one facade over all of the above
//
// The metroplan command (cmd/metroplan) exposes the planner on the
// command line.
package metroplan
