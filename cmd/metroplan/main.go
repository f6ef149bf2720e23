// Command metroplan answers routing queries over a transit network.
//
// The network comes from a YAML dataset (--dataset) or, by default, the
// embedded Delhi Metro tables. Every subcommand prints plain text to stdout;
// logs go to stderr at --log-level.
//
//	metroplan route "Rajiv Chowk" "Kashmere Gate"
//	metroplan meet Rithala "Huda City Centre"
//	metroplan trip "Rajiv Chowk" INA Saket
//	metroplan search Nagar
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/metroplan/dataset"
	"github.com/katalvlaran/metroplan/planner"
	"github.com/katalvlaran/metroplan/tsp"
)

type CLI struct {
	Dataset  string `name:"dataset" placeholder:"PATH" env:"METROPLAN_DATASET" help:"Network dataset in YAML (default: embedded Delhi Metro)"`
	LogLevel string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level on stderr (${enum})"`
	MaxStops int    `name:"max-stops" default:"7" help:"Largest stop count accepted by trip (at most 10)"`

	Stations   stationsCommand   `cmd:"" help:"List every station with its id"`
	Search     searchCommand     `cmd:"" help:"Find stations whose name contains a substring"`
	Route      routeCommand      `cmd:"" help:"Shortest route between two stations"`
	Ride       rideCommand       `cmd:"" help:"Shortest route between two vertex ids"`
	Meet       meetCommand       `cmd:"" help:"Best meeting station for a group"`
	Trip       tripCommand       `cmd:"" help:"Shortest closed trip through several stations"`
	Components componentsCommand `cmd:"" help:"List connected parts of the network"`
}

// Context is bound into every command's Run.
type Context struct {
	planner *planner.Planner
	out     io.Writer
}

func (cli CLI) AfterApply(kongCtx *kong.Context) error {
	logger, err := newLogger(kongCtx.Stderr, cli.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if cli.MaxStops < 1 || cli.MaxStops > tsp.HardMaxStops {
		return fmt.Errorf("--max-stops=%d: want 1..%d", cli.MaxStops, tsp.HardMaxStops)
	}

	ds := dataset.Default()
	if cli.Dataset != "" {
		if ds, err = dataset.Load(cli.Dataset); err != nil {
			return err
		}
	}
	logger.Debug("dataset loaded", "dataset", ds)

	p, err := planner.FromDataset(ds, planner.WithLogger(logger), planner.WithMaxStops(cli.MaxStops))
	if err != nil {
		return err
	}
	kongCtx.Bind(Context{planner: p, out: kongCtx.Stdout})

	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("metroplan"),
		kong.Description("Shortest routes, meeting points, and trips over a transit network."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kongCtx.Run()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "metroplan:", err)
		os.Exit(1)
	}
}
