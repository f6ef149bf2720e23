package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroplan/dijkstra"
	"github.com/katalvlaran/metroplan/matrix"
)

// floydWarshall computes all-pairs distances over the weight matrix w
// (0 off-diagonal = no edge) in fixed k → i → j order. It is independent
// of the single-source code under test.
// Complexity: O(n³).
func floydWarshall(t *testing.T, w matrix.Matrix) [][]dijkstra.Distance {
	t.Helper()
	require.NoError(t, matrix.ValidateSquare(w))
	n := w.Rows()

	d := make([][]dijkstra.Distance, n)
	for i := range d {
		d[i] = make([]dijkstra.Distance, n)
		d[i][i] = dijkstra.Finite(0)
		for j := 0; j < n; j++ {
			x, err := w.At(i, j)
			require.NoError(t, err)
			if i != j && x > 0 {
				d[i][j] = dijkstra.Finite(x)
			}
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik, ok := d[i][k].Value()
			if !ok {
				continue
			}
			for j := 0; j < n; j++ {
				kj, ok := d[k][j].Value()
				if !ok {
					continue
				}
				if cand := dijkstra.Finite(ik + kj); cand.Less(d[i][j]) {
					d[i][j] = cand
				}
			}
		}
	}

	return d
}

func TestFloydWarshall_ShortcutAndIsolated(t *testing.T) {
	m, err := matrix.NewSquare(4)
	require.NoError(t, err)
	require.NoError(t, m.SetSymmetric(0, 1, 1))
	require.NoError(t, m.SetSymmetric(1, 2, 1))
	require.NoError(t, m.SetSymmetric(0, 2, 5))

	d := floydWarshall(t, m)
	require.Equal(t, dijkstra.Finite(2), d[0][2])
	require.Equal(t, dijkstra.Unreachable, d[0][3])
	require.Equal(t, dijkstra.Finite(0), d[3][3])
}
