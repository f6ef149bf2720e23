package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/metroplan/builder"
	"github.com/katalvlaran/metroplan/dijkstra"
	"github.com/katalvlaran/metroplan/route"
)

// ExampleEngine_BetweenStations rides two lines with one change at Hub.
func ExampleEngine_BetweenStations() {
	g, err := builder.BuildNetwork(nil,
		builder.Line("red", "Airport", "Park", "Hub"),
		builder.Line("blue", "Hub", "Market", "Harbour"),
		builder.Interchanges("Hub"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	e, err := dijkstra.NewEngine(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, err := e.BetweenStations("Airport", "Harbour")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Distance)
	fmt.Println(route.Compact(route.Names(g, p.Vertices)))
	// Output:
	// 6
	// [Airport Park Hub Market Harbour]
}
