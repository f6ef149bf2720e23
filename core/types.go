// Package core defines the central Graph, Vertex, and Edge types of a
// multi-line transit network.
//
// A Vertex is one line-specific occurrence of a station: a station served by
// k lines occupies k vertices, all sharing the same station name. Edges are
// undirected with positive integer weights and come in two kinds:
// line-adjacency edges between consecutive stops of one line, and transfer
// edges between same-named vertices of an interchange.
//
// Lifecycle: a Graph is filled through AddVertex/AddEdge and then sealed.
// Sealing freezes the vertex set and the symmetric weight relation; every
// later mutation returns ErrGraphSealed. A sealed Graph is read-only and may
// be shared freely across queries without locking.
//
// Errors:
//
//	ErrEmptyStationName    - vertex station name is the empty string.
//	ErrEmptyLineTag        - vertex line tag is the empty string.
//	ErrVertexOutOfRange    - vertex index outside [0, VertexCount()).
//	ErrLoopNotAllowed      - self-loop requested.
//	ErrBadWeight           - non-positive edge weight.
//	ErrMultiEdgeNotAllowed - an edge already joins the two vertices.
//	ErrTransferMismatch    - transfer edge between different station names.
//	ErrGraphSealed         - mutation after Seal.
//	ErrGraphNotSealed      - query that requires a sealed graph.
package core

import (
	"errors"

	"github.com/katalvlaran/metroplan/matrix"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyStationName indicates that a vertex was added without a station name.
	ErrEmptyStationName = errors.New("core: station name is empty")

	// ErrEmptyLineTag indicates that a vertex was added without a line tag.
	ErrEmptyLineTag = errors.New("core: line tag is empty")

	// ErrVertexOutOfRange indicates an operation referenced a non-existent vertex index.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a zero or negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrTransferMismatch indicates a transfer edge between vertices of different stations.
	ErrTransferMismatch = errors.New("core: transfer edge joins different stations")

	// ErrGraphSealed indicates a mutation of a sealed graph.
	ErrGraphSealed = errors.New("core: graph is sealed")

	// ErrGraphNotSealed indicates a query that needs the frozen weight relation.
	ErrGraphNotSealed = errors.New("core: graph is not sealed")
)

// EdgeKind distinguishes riding along a line from changing lines.
type EdgeKind uint8

const (
	// LineEdge joins consecutive stops of the same line.
	LineEdge EdgeKind = iota + 1

	// TransferEdge joins two occurrences of one interchange station.
	TransferEdge
)

// String returns a short label for logs and CLI output.
func (k EdgeKind) String() string {
	switch k {
	case LineEdge:
		return "line"
	case TransferEdge:
		return "transfer"
	default:
		return "unknown"
	}
}

// Vertex is one line-specific occurrence of a station.
type Vertex struct {
	// Index is the vertex position in [0, VertexCount()).
	Index int

	// Station is the human-readable station name shared by all occurrences.
	Station string

	// Line is the tag of the line this occurrence belongs to.
	Line string

	// Position is the 0-based stop number along Line.
	Position int
}

// Edge is an undirected weighted connection; From < To always holds.
type Edge struct {
	From   int
	To     int
	Weight int64
	Kind   EdgeKind
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	Vertices      int
	Edges         int
	LineEdges     int
	TransferEdges int
	Stations      int
	Lines         int
}

// Graph is the in-memory transit network.
//
// vertices and edges are append-only until Seal; weights is materialized by
// Seal from the edge catalog and is the symmetric weight relation (0 = no edge).
type Graph struct {
	sealed bool

	vertices []Vertex
	edges    []Edge
	adj      [][]int        // adj[v] = neighbor indices, ascending after Seal
	pairs    map[[2]int]int // normalized (lo,hi) → index into edges

	byName   map[string][]int // station name → vertex indices in insertion order
	stations []string         // distinct station names, first-occurrence order
	lines    []string         // distinct line tags, first-occurrence order
	linePos  map[string]int   // next Position per line

	weights *matrix.Dense
}

// NewGraph creates an empty, unsealed Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		pairs:   make(map[[2]int]int),
		byName:  make(map[string][]int),
		linePos: make(map[string]int),
	}
}
