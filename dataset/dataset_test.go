package dataset_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/metroplan/builder"
	"github.com/katalvlaran/metroplan/core"
	"github.com/katalvlaran/metroplan/dataset"
)

const tiny = `
name: Tiny
lines:
  - tag: r
    stations: [A, Hub, B]
  - tag: b
    stations: [C, Hub]
interchanges: [Hub]
`

func TestParse_DefaultsAndBuild(t *testing.T) {
	ds, err := dataset.Parse([]byte(tiny))
	require.NoError(t, err)
	assert.Equal(t, "Tiny", ds.Name)
	assert.Equal(t, dataset.DefaultSpeedKMH, ds.SpeedKMH)
	assert.Equal(t, dataset.DefaultUnitKM, ds.UnitKM)

	g, err := ds.Build()
	require.NoError(t, err)
	assert.Equal(t, core.GraphStats{
		Vertices: 5, Edges: 4, LineEdges: 3, TransferEdges: 1, Stations: 4, Lines: 2,
	}, g.Stats())
	assert.EqualValues(t, 2, g.Weight(1, 4))
}

func TestParse_WeightsOverride(t *testing.T) {
	ds, err := dataset.Parse([]byte(tiny + "weights:\n  line: 3\n  transfer: 7\n"))
	require.NoError(t, err)

	g, err := ds.Build()
	require.NoError(t, err)
	assert.EqualValues(t, 3, g.Weight(0, 1))
	assert.EqualValues(t, 7, g.Weight(1, 4))

	// Caller options come last and win.
	g, err = ds.Build(builder.WithTransferWeight(4))
	require.NoError(t, err)
	assert.EqualValues(t, 4, g.Weight(1, 4))
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing name":      "lines: [{tag: r, stations: [A]}]",
		"no lines":          "name: X",
		"empty stations":    "name: X\nlines: [{tag: r, stations: []}]",
		"blank station":     "name: X\nlines: [{tag: r, stations: [A, '']}]",
		"missing tag":       "name: X\nlines: [{stations: [A]}]",
		"duplicate tag":     "name: X\nlines: [{tag: r, stations: [A]}, {tag: r, stations: [B]}]",
		"negative speed":    "name: X\nspeed_kmh: -1\nlines: [{tag: r, stations: [A]}]",
		"negative weight":   "name: X\nweights: {line: -1}\nlines: [{tag: r, stations: [A]}]",
		"blank interchange": "name: X\nlines: [{tag: r, stations: [A]}]\ninterchanges: ['']",
	}
	for name, doc := range cases {
		_, err := dataset.Parse([]byte(doc))
		assert.ErrorIs(t, err, dataset.ErrInvalid, name)
	}

	_, err := dataset.Parse([]byte("name: [unclosed"))
	assert.ErrorIs(t, err, dataset.ErrDecode)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tiny), 0o600))

	ds, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Len(t, ds.Lines, 2)

	_, err = dataset.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefault_DelhiMetro(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ds := dataset.Default()
	assert.Equal(t, "Delhi Metro", ds.Name)
	assert.Equal(t, 50.0, ds.SpeedKMH)

	g, err := ds.Build(builder.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, core.GraphStats{
		Vertices: 162, Edges: 165, LineEdges: 157, TransferEdges: 8, Stations: 151, Lines: 5,
	}, g.Stats())

	// The branch starts at its own Yamuna Bank vertex joined by a transfer,
	// so Noida Electronic City is not adjacent to the branch.
	ids := g.Indices("Yamuna Bank")
	require.Len(t, ids, 2)
	e, ok := g.EdgeBetween(ids[0], ids[1])
	require.True(t, ok)
	assert.Equal(t, core.TransferEdge, e.Kind)
	nec := g.Indices("Noida Electronic City")
	require.Len(t, nec, 1)
	nb, err := g.Neighbors(nec[0])
	require.NoError(t, err)
	assert.Len(t, nb, 1)

	// Mandi House and Central Secretariat sit on one line here.
	assert.Contains(t, buf.String(), "Mandi House")
	assert.Contains(t, buf.String(), "Central Secretariat")

	// Default hands out independent copies.
	ds.Lines = nil
	assert.NotEmpty(t, dataset.Default().Lines)
}

func TestLogValue(t *testing.T) {
	ds, err := dataset.Parse([]byte(tiny))
	require.NoError(t, err)

	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("loaded", "dataset", ds)
	assert.Contains(t, buf.String(), "dataset.name=Tiny")
	assert.Contains(t, buf.String(), "dataset.stops=5")
}
