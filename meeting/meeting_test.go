package meeting_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroplan/builder"
	"github.com/katalvlaran/metroplan/dijkstra"
	"github.com/katalvlaran/metroplan/meeting"
)

// engine builds
//
//	red:   A(0) — B(1) — C(2) — D(3) — E(4)
//	blue:  C(5) — F(6)
//	green: G(7)
//
// with C an interchange and G isolated.
func engine(t *testing.T) *dijkstra.Engine {
	t.Helper()
	g, err := builder.BuildNetwork(nil,
		builder.Line("red", "A", "B", "C", "D", "E"),
		builder.Line("blue", "C", "F"),
		builder.Line("green", "G"),
		builder.Interchanges("C"),
	)
	require.NoError(t, err)
	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)

	return e
}

func TestBestMeetingPoint_SingleSourceIsItself(t *testing.T) {
	e := engine(t)
	for s := 0; s < e.Graph().VertexCount(); s++ {
		p, err := meeting.BestMeetingPoint(e, e.Graph().VertexCount(), []int{s})
		require.NoError(t, err)
		assert.Equal(t, meeting.Point{Vertex: s}, p, "source %d", s)
	}
}

func TestBestMeetingPoint_MinMaxThenTotal(t *testing.T) {
	e := engine(t)
	n := e.Graph().VertexCount()

	// A and E meet in the middle at C(2): max 2, total 4.
	p, err := meeting.BestMeetingPoint(e, n, []int{0, 4})
	require.NoError(t, err)
	assert.Equal(t, meeting.Point{Vertex: 2, Max: 2, Total: 4}, p)

	// A and F: red C(2) is 2 and 3 away, blue C(5) is 4 and 1 away.
	p, err = meeting.BestMeetingPoint(e, n, []int{0, 6})
	require.NoError(t, err)
	assert.Equal(t, meeting.Point{Vertex: 2, Max: 3, Total: 5}, p)

	// A and D: B(1) and C(2) both give max 2, total 3; the lower index wins.
	p, err = meeting.BestMeetingPoint(e, n, []int{0, 3})
	require.NoError(t, err)
	assert.Equal(t, meeting.Point{Vertex: 1, Max: 2, Total: 3}, p)
}

func TestBestMeetingPoint_Errors(t *testing.T) {
	e := engine(t)
	n := e.Graph().VertexCount()

	_, err := meeting.BestMeetingPoint(e, n, nil)
	assert.ErrorIs(t, err, meeting.ErrNoSources)

	_, err = meeting.BestMeetingPoint(e, n, []int{0, 99})
	assert.ErrorIs(t, err, meeting.ErrVertexOutOfRange)

	_, err = meeting.BestMeetingPoint(e, n, []int{0, 7})
	assert.ErrorIs(t, err, meeting.ErrNoMeetingPoint)

	_, err = meeting.BestMeetingPointGroups(e, n, [][]int{{0}, {}})
	assert.ErrorIs(t, err, meeting.ErrNoSources)
}

func TestBestMeetingPointGroups_MinOverMembers(t *testing.T) {
	e := engine(t)
	n := e.Graph().VertexCount()

	// Traveller 1 may start at either C; traveller 2 at F.
	// C(5) and F(6) both score (1, 1); the lower index wins.
	p, err := meeting.BestMeetingPointGroups(e, n, [][]int{{2, 5}, {6}})
	require.NoError(t, err)
	assert.Equal(t, 5, p.Vertex)
	assert.EqualValues(t, 1, p.Max)
	assert.EqualValues(t, 1, p.Total)
}

func TestDistances(t *testing.T) {
	e := engine(t)
	rows, err := meeting.Distances(e, []int{0, 7})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, dijkstra.Finite(4), rows[0][4])
	assert.False(t, rows[1][0].Reachable())

	_, err = meeting.Distances(e, []int{42})
	assert.True(t, errors.Is(err, dijkstra.ErrVertexNotFound))
}
