// SPDX-License-Identifier: MIT
// Package core_test covers construction, sealing, and read-only queries of core.Graph.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroplan/core"
	"github.com/katalvlaran/metroplan/matrix"
)

// Common names used across core tests (avoid magic strings in test bodies).
const (
	LineRed  = "red"
	LineBlue = "blue"

	StationA = "A"
	StationB = "B"
	StationX = "X"
)

// buildCross returns two lines crossing at X:
//
//	red:  A — X      (0, 1)
//	blue: X — B      (2, 3)
//
// with a transfer edge X(1)—X(2), sealed.
func buildCross(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	a, _ := g.AddVertex(StationA, LineRed)
	x1, _ := g.AddVertex(StationX, LineRed)
	x2, _ := g.AddVertex(StationX, LineBlue)
	b, _ := g.AddVertex(StationB, LineBlue)
	require.NoError(t, g.AddEdge(a, x1, 1, core.LineEdge))
	require.NoError(t, g.AddEdge(x2, b, 1, core.LineEdge))
	require.NoError(t, g.AddEdge(x2, x1, 2, core.TransferEdge))
	require.NoError(t, g.Seal())

	return g
}

func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertex("", LineRed)
	assert.ErrorIs(t, err, core.ErrEmptyStationName)
	_, err = g.AddVertex(StationA, "")
	assert.ErrorIs(t, err, core.ErrEmptyLineTag)
	assert.Zero(t, g.VertexCount())
}

func TestAddVertex_PositionsAndIndex(t *testing.T) {
	g := buildCross(t)
	require.Equal(t, 4, g.VertexCount())

	v, err := g.Vertex(2)
	require.NoError(t, err)
	assert.Equal(t, core.Vertex{Index: 2, Station: StationX, Line: LineBlue, Position: 0}, v)

	assert.Equal(t, []int{1, 2}, g.Indices(StationX))
	assert.Nil(t, g.Indices("nowhere"))
	assert.True(t, g.HasStation(StationB))
	assert.False(t, g.HasStation("nowhere"))
	assert.Equal(t, []string{StationA, StationX, StationB}, g.Stations())
	assert.Equal(t, []string{LineRed, LineBlue}, g.Lines())
	assert.Equal(t, StationB, g.Name(3))
	assert.Empty(t, g.Name(99))

	_, err = g.Vertex(4)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex(StationA, LineRed)
	b, _ := g.AddVertex(StationB, LineRed)

	assert.ErrorIs(t, g.AddEdge(a, 7, 1, core.LineEdge), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(a, a, 1, core.LineEdge), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(a, b, 0, core.LineEdge), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge(a, b, 2, core.TransferEdge), core.ErrTransferMismatch)
	require.NoError(t, g.AddEdge(a, b, 1, core.LineEdge))
	assert.ErrorIs(t, g.AddEdge(b, a, 1, core.LineEdge), core.ErrMultiEdgeNotAllowed)
}

func TestSeal_FreezesGraph(t *testing.T) {
	g := buildCross(t)
	assert.True(t, g.Sealed())
	assert.NoError(t, g.Seal(), "Seal is idempotent")

	_, err := g.AddVertex("Late", LineRed)
	assert.ErrorIs(t, err, core.ErrGraphSealed)
	assert.ErrorIs(t, g.AddEdge(0, 3, 1, core.LineEdge), core.ErrGraphSealed)
}

func TestWeight_SymmetricAndNeighbors(t *testing.T) {
	g := buildCross(t)
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, g.Weight(i, j), g.Weight(j, i), "weight(%d,%d)", i, j)
		}
		assert.Zero(t, g.Weight(i, i), "no self-loops")
	}
	assert.EqualValues(t, 2, g.Weight(1, 2))
	assert.False(t, g.HasEdge(0, 3))

	nb, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, nb, "ascending after Seal")

	_, err = g.Neighbors(-1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	e, ok := g.EdgeBetween(2, 1)
	require.True(t, ok)
	assert.Equal(t, core.Edge{From: 1, To: 2, Weight: 2, Kind: core.TransferEdge}, e)
}

func TestWeight_BeforeSealUsesCatalog(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex(StationA, LineRed)
	b, _ := g.AddVertex(StationB, LineRed)
	require.NoError(t, g.AddEdge(a, b, 3, core.LineEdge))
	assert.EqualValues(t, 3, g.Weight(b, a))

	_, err := g.Weights()
	assert.ErrorIs(t, err, core.ErrGraphNotSealed)
}

func TestWeights_MatrixIsSymmetricCopy(t *testing.T) {
	g := buildCross(t)
	w, err := g.Weights()
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(w))

	_ = w.Set(0, 3, 42)
	assert.Zero(t, g.Weight(0, 3), "Weights returns a copy")
}

func TestWeights_EmptyGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Seal())
	_, err := g.Weights()
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestStats(t *testing.T) {
	s := buildCross(t).Stats()
	assert.Equal(t, core.GraphStats{
		Vertices: 4, Edges: 3, LineEdges: 2, TransferEdges: 1, Stations: 3, Lines: 2,
	}, s)
	assert.Equal(t, "transfer", core.TransferEdge.String())
	assert.Equal(t, "line", core.LineEdge.String())
	assert.Equal(t, "unknown", core.EdgeKind(0).String())
}
