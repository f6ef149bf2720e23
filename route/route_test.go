package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroplan/builder"
	"github.com/katalvlaran/metroplan/route"
)

func TestReconstruct(t *testing.T) {
	// 0 ← 1 ← 3, 2 unreached
	prev := []int{-1, 0, -1, 1}

	path, err := route.Reconstruct(prev, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, path)

	path, err = route.Reconstruct(prev, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)

	_, err = route.Reconstruct(prev, 4)
	assert.ErrorIs(t, err, route.ErrDestOutOfRange)
}

func TestReconstruct_CorruptChain(t *testing.T) {
	_, err := route.Reconstruct([]int{1, 0}, 0)
	assert.ErrorIs(t, err, route.ErrCorruptChain, "cycle")

	_, err = route.Reconstruct([]int{-1, 7}, 1)
	assert.ErrorIs(t, err, route.ErrCorruptChain, "dangling predecessor")
}

func TestNamesWeightSegments(t *testing.T) {
	g, err := builder.BuildNetwork(nil,
		builder.Line("red", "A", "B", "X"),
		builder.Line("blue", "X", "C"),
		builder.Interchanges("X"),
	)
	require.NoError(t, err)
	path := []int{0, 1, 2, 3, 4}

	names := route.Names(g, path)
	assert.Equal(t, []string{"A", "B", "X", "X", "C"}, names)
	assert.Equal(t, []string{"A", "B", "X", "C"}, route.Compact(names))
	assert.Equal(t, []string{"A", "B", "X", "X", "C"}, names, "Compact leaves input intact")

	w, err := route.Weight(g, path)
	require.NoError(t, err)
	assert.EqualValues(t, 5, w)

	_, err = route.Weight(g, []int{0, 2})
	assert.ErrorIs(t, err, route.ErrBrokenPath)

	w, err = route.Weight(g, []int{1})
	require.NoError(t, err)
	assert.Zero(t, w)

	assert.Equal(t, []route.Segment{
		{Line: "red", From: "A", To: "X", Stops: 2},
		{Line: "blue", From: "X", To: "C", Stops: 1},
	}, route.Segments(g, path))
	assert.Empty(t, route.Segments(g, []int{2, 3}))
}
