// Package planner is the one-stop entry point for routing queries.
//
// A Planner owns a sealed network, a cached shortest-path engine, and a
// station-name index. Every query comes in two addressing modes: by
// station name, where a name may cover several line-specific vertices, and
// by raw vertex id, which bypasses name resolution.
package planner

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/metroplan/bfs"
	"github.com/katalvlaran/metroplan/builder"
	"github.com/katalvlaran/metroplan/core"
	"github.com/katalvlaran/metroplan/dataset"
	"github.com/katalvlaran/metroplan/dijkstra"
	"github.com/katalvlaran/metroplan/lookup"
	"github.com/katalvlaran/metroplan/meeting"
	"github.com/katalvlaran/metroplan/route"
	"github.com/katalvlaran/metroplan/tsp"
)

// ErrNilGraph is returned by New for a nil graph.
var ErrNilGraph = errors.New("planner: graph is nil")

// Planner answers routing queries over one network. It is read-only after
// New and safe for concurrent use.
type Planner struct {
	g        *core.Graph
	engine   *dijkstra.Engine
	index    *lookup.Index
	log      *slog.Logger
	trip     tsp.Options
	speedKMH float64
	unitKM   float64
}

// Route is a resolved journey between two stations.
type Route struct {
	From      string
	To        string
	Distance  int64
	Vertices  []int
	Stations  []string // consecutive duplicates from transfers removed
	Segments  []route.Segment
	Transfers int
}

// Meeting is a resolved meeting point.
type Meeting struct {
	Station string
	Vertex  int
	Max     int64
	Total   int64
}

// New wraps a sealed graph.
// Errors: ErrNilGraph, dijkstra.ErrGraphNotSealed.
func New(g *core.Graph, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	engine, err := dijkstra.NewEngine(g,
		dijkstra.WithCacheSize(cfg.cacheSize),
		dijkstra.WithLogger(cfg.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}

	p := &Planner{
		g:        g,
		engine:   engine,
		index:    lookup.New(g),
		log:      cfg.logger,
		trip:     tsp.NewOptions(tsp.WithMaxStops(cfg.maxStops)),
		speedKMH: cfg.speedKMH,
		unitKM:   cfg.unitKM,
	}
	p.debug("planner ready", "stats", g.Stats())

	return p, nil
}

// FromDataset builds the dataset's network and wraps it. The dataset's
// speed and unit length apply unless opts override them.
func FromDataset(ds *dataset.Dataset, opts ...Option) (*Planner, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	g, err := ds.Build(builder.WithLogger(cfg.logger))
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}

	all := make([]Option, 0, len(opts)+2)
	if ds.SpeedKMH > 0 {
		all = append(all, WithSpeed(ds.SpeedKMH))
	}
	if ds.UnitKM > 0 {
		all = append(all, WithUnitKM(ds.UnitKM))
	}
	all = append(all, opts...)

	return New(g, all...)
}

// Graph returns the underlying network.
func (p *Planner) Graph() *core.Graph { return p.g }

// Route returns the shortest route between two stations by name.
// Errors: dijkstra.ErrUnknownStation, dijkstra.ErrUnreachable.
func (p *Planner) Route(src, dst string) (Route, error) {
	path, err := p.engine.BetweenStations(src, dst)
	if err != nil {
		return Route{}, err
	}
	r := p.compose(path)
	p.debug("route", "from", src, "to", dst, "distance", r.Distance, "transfers", r.Transfers)

	return r, nil
}

// RouteByID returns the shortest route between two vertices.
// Errors: dijkstra.ErrVertexNotFound, dijkstra.ErrUnreachable.
func (p *Planner) RouteByID(a, b int) (Route, error) {
	path, err := p.engine.Between(a, b)
	if err != nil {
		return Route{}, err
	}

	return p.compose(path), nil
}

func (p *Planner) compose(path dijkstra.Path) Route {
	names := route.Names(p.g, path.Vertices)
	r := Route{
		From:     p.g.Name(path.Source),
		To:       p.g.Name(path.Target),
		Distance: path.Distance,
		Vertices: path.Vertices,
		Stations: route.Compact(names),
		Segments: route.Segments(p.g, path.Vertices),
	}
	r.Transfers = len(names) - len(r.Stations)

	return r
}

// MeetingPoint finds the station the named travellers reach with the
// smallest worst-case distance. Each traveller may board at any occurrence
// of its station.
// Errors: dijkstra.ErrUnknownStation, meeting.ErrNoSources,
// meeting.ErrNoMeetingPoint.
func (p *Planner) MeetingPoint(names []string) (Meeting, error) {
	groups := make([][]int, len(names))
	for i, name := range names {
		if groups[i] = p.g.Indices(name); len(groups[i]) == 0 {
			return Meeting{}, fmt.Errorf("%w: %q", dijkstra.ErrUnknownStation, name)
		}
	}
	pt, err := meeting.BestMeetingPointGroups(p.engine, p.g.VertexCount(), groups)
	if err != nil {
		return Meeting{}, err
	}

	return p.meetingOf(pt), nil
}

// MeetingPointByID is MeetingPoint over raw vertex ids.
// Errors: meeting.ErrNoSources, meeting.ErrVertexOutOfRange,
// meeting.ErrNoMeetingPoint.
func (p *Planner) MeetingPointByID(ids []int) (Meeting, error) {
	pt, err := meeting.BestMeetingPoint(p.engine, p.g.VertexCount(), ids)
	if err != nil {
		return Meeting{}, err
	}

	return p.meetingOf(pt), nil
}

func (p *Planner) meetingOf(pt meeting.Point) Meeting {
	m := Meeting{Station: p.g.Name(pt.Vertex), Vertex: pt.Vertex, Max: pt.Max, Total: pt.Total}
	p.debug("meeting point", "station", m.Station, "max", m.Max, "total", m.Total)

	return m
}

// Trip plans the shortest closed trip from names[0] through every other
// named station and back.
// Errors: dijkstra.ErrUnknownStation, dijkstra.ErrUnreachable,
// tsp.ErrNoStops, tsp.ErrTooManyStops.
func (p *Planner) Trip(names []string) (tsp.Trip, error) {
	for _, name := range names {
		if !p.g.HasStation(name) {
			return tsp.Trip{}, fmt.Errorf("%w: %q", dijkstra.ErrUnknownStation, name)
		}
	}
	trip, err := tsp.PlanTrip(p.engine, names, p.trip)
	if err != nil {
		return tsp.Trip{}, err
	}
	p.debug("trip", "stops", len(names), "distance", trip.Cost)

	return trip, nil
}

// Search returns the stations whose name contains q, in dataset order.
// The empty query matches nothing.
func (p *Planner) Search(q string) []lookup.Entry { return p.index.Find(q) }

// SearchVertices returns every line-specific vertex whose name contains q.
func (p *Planner) SearchVertices(q string) []lookup.Occurrence { return p.index.FindVertices(q) }

// Stations returns every distinct station with its id.
func (p *Planner) Stations() []lookup.Entry { return p.index.Entries() }

// Components groups station names by connected component, in vertex order.
// A name appears once per component holding any of its occurrences, so a
// station whose occurrences are not joined by transfers shows up in each.
func (p *Planner) Components() ([][]string, error) {
	labels, err := bfs.Components(p.g)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	out := make([][]string, bfs.Count(labels))
	seen := make([]map[string]bool, len(out))
	for v, l := range labels {
		name := p.g.Name(v)
		if seen[l] == nil {
			seen[l] = make(map[string]bool)
		}
		if seen[l][name] {
			continue
		}
		seen[l][name] = true
		out[l] = append(out[l], name)
	}

	return out, nil
}

// TravelTime estimates riding time for a distance at the configured
// average speed, rounded to the second.
func (p *Planner) TravelTime(distance int64) time.Duration {
	hours := float64(distance) * p.unitKM / p.speedKMH

	return time.Duration(hours * float64(time.Hour)).Round(time.Second)
}

func (p *Planner) debug(msg string, args ...any) {
	if p.log != nil {
		p.log.Debug(msg, args...)
	}
}
