package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/metroplan/lookup"
	"github.com/katalvlaran/metroplan/planner"
)

type stationsCommand struct{}

func (*stationsCommand) Run(ctx Context) error {
	printEntries(ctx, ctx.planner.Stations())
	return nil
}

type searchCommand struct {
	Query string `arg:"" help:"Case-sensitive substring of the station name"`
}

func (s *searchCommand) Run(ctx Context) error {
	found := ctx.planner.Search(s.Query)
	if len(found) == 0 {
		fmt.Fprintf(ctx.out, "no station matches %q\n", s.Query)
		return nil
	}
	printEntries(ctx, found)

	return nil
}

type routeCommand struct {
	From string `arg:"" help:"Departure station"`
	To   string `arg:"" help:"Arrival station"`
}

func (r *routeCommand) Run(ctx Context) error {
	rt, err := ctx.planner.Route(r.From, r.To)
	if err != nil {
		return err
	}
	printRoute(ctx, rt)

	return nil
}

type rideCommand struct {
	From int `arg:"" help:"Departure vertex id"`
	To   int `arg:"" help:"Arrival vertex id"`
}

func (r *rideCommand) Run(ctx Context) error {
	rt, err := ctx.planner.RouteByID(r.From, r.To)
	if err != nil {
		return err
	}
	printRoute(ctx, rt)

	return nil
}

type meetCommand struct {
	Stations []string `arg:"" name:"station" help:"Where each traveller starts"`
}

func (m *meetCommand) Run(ctx Context) error {
	pt, err := ctx.planner.MeetingPoint(m.Stations)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.out, "meet at %s (longest ride %d, %d in total)\n", pt.Station, pt.Max, pt.Total)

	return nil
}

type tripCommand struct {
	Stations []string `arg:"" name:"station" help:"Stops to visit; the first is where the trip starts and ends"`
}

func (t *tripCommand) Run(ctx Context) error {
	trip, err := ctx.planner.Trip(t.Stations)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.out, strings.Join(trip.Order, " → "))
	fmt.Fprintf(ctx.out, "distance %d, about %s\n", trip.Cost, ctx.planner.TravelTime(trip.Cost))

	return nil
}

type componentsCommand struct{}

func (*componentsCommand) Run(ctx Context) error {
	comps, err := ctx.planner.Components()
	if err != nil {
		return err
	}
	for i, c := range comps {
		if len(c) == 0 {
			continue
		}
		fmt.Fprintf(ctx.out, "%d: %d stations, from %s\n", i, len(c), c[0])
	}

	return nil
}

func printEntries(ctx Context, entries []lookup.Entry) {
	for _, e := range entries {
		fmt.Fprintf(ctx.out, "%4d  %s\n", e.ID, e.Name)
	}
}

func printRoute(ctx Context, rt planner.Route) {
	fmt.Fprintf(ctx.out, "%s → %s: distance %d, about %s, %d change(s)\n",
		rt.From, rt.To, rt.Distance, ctx.planner.TravelTime(rt.Distance), rt.Transfers)
	for i, s := range rt.Segments {
		if i > 0 {
			fmt.Fprintf(ctx.out, "  change at %s\n", s.From)
		}
		fmt.Fprintf(ctx.out, "  %s: %s → %s (%d stops)\n", s.Line, s.From, s.To, s.Stops)
	}
}
