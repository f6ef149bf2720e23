package planner

import (
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/metroplan/dataset"
	"github.com/katalvlaran/metroplan/dijkstra"
	"github.com/katalvlaran/metroplan/tsp"
)

// Option configures a Planner.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	cacheSize int
	maxStops  int
	speedKMH  float64
	unitKM    float64
}

func defaultConfig() config {
	return config{
		cacheSize: dijkstra.DefaultCacheSize,
		maxStops:  tsp.DefaultMaxStops,
		speedKMH:  dataset.DefaultSpeedKMH,
		unitKM:    dataset.DefaultUnitKM,
	}
}

// WithLogger routes planner, engine, and builder logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithCacheSize bounds the shortest-path tree cache; 0 disables it.
// Panics on a negative size.
func WithCacheSize(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("planner: WithCacheSize(%d): negative size", n))
	}

	return func(c *config) { c.cacheSize = n }
}

// WithMaxStops sets the trip stop cap, at most tsp.HardMaxStops.
// Panics outside [1, tsp.HardMaxStops].
func WithMaxStops(n int) Option {
	tsp.WithMaxStops(n) // validates
	return func(c *config) { c.maxStops = n }
}

// WithSpeed sets the average speed used by TravelTime.
// Panics unless kmh > 0.
func WithSpeed(kmh float64) Option {
	if kmh <= 0 {
		panic(fmt.Sprintf("planner: WithSpeed(%v): speed must be positive", kmh))
	}

	return func(c *config) { c.speedKMH = kmh }
}

// WithUnitKM sets how many kilometres one unit of edge weight stands for.
// Panics unless km > 0.
func WithUnitKM(km float64) Option {
	if km <= 0 {
		panic(fmt.Sprintf("planner: WithUnitKM(%v): length must be positive", km))
	}

	return func(c *config) { c.unitKM = km }
}
