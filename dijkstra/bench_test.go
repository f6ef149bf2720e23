package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/metroplan/builder"
	"github.com/katalvlaran/metroplan/dataset"
	"github.com/katalvlaran/metroplan/dijkstra"
)

// BenchmarkDijkstra_Delhi measures one full tree over the embedded network.
func BenchmarkDijkstra_Delhi(b *testing.B) {
	g, err := dataset.Default().Build()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, i%g.VertexCount())
	}
}

// BenchmarkDijkstra_LongLine runs on a single line of n stops; the O(V²)
// scan dominates.
func BenchmarkDijkstra_LongLine(b *testing.B) {
	const n = 500
	stops := make([]string, n)
	for i := range stops {
		stops[i] = fmt.Sprintf("s%d", i)
	}
	g, err := builder.BuildNetwork(nil, builder.Line("l", stops...))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, 0)
	}
}

// BenchmarkEngine_BetweenStations repeats one query so every tree after
// the first comes from the cache.
func BenchmarkEngine_BetweenStations(b *testing.B) {
	g, err := dataset.Default().Build()
	if err != nil {
		b.Fatal(err)
	}
	e, err := dijkstra.NewEngine(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.BetweenStations("Kashmere Gate", "Rajiv Chowk")
	}
}
