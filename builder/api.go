// SPDX-License-Identifier: MIT
// Package: metroplan/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildNetwork(bopts, cons...). Creates g, resolves cfg, runs cons in order, seals g.
//   - Constructors are declared in impl_*.go (Line, Interchanges).
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/metroplan/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate parameters early, return
// sentinel errors (no panics), and preserve determinism for the same call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildNetwork creates a new core.Graph, resolves the builder configuration
// from bopts, applies all constructors in order, and seals the graph.
// Any constructor error is wrapped with the context "BuildNetwork: %w" and
// returned immediately; the partial graph is discarded.
//
// Typical use:
//
//	g, err := builder.BuildNetwork(nil,
//	    builder.Line("red", "A", "B", "C"),
//	    builder.Line("blue", "D", "B", "E"),
//	    builder.Interchanges("B"),
//	)
//
// Complexity: Σ cost of each constructor plus O(n² + E log E) for Seal.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}
	if err := g.Seal(); err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	s := g.Stats()
	cfg.debug("network built",
		"vertices", s.Vertices, "stations", s.Stations, "lines", s.Lines,
		"line_edges", s.LineEdges, "transfer_edges", s.TransferEdges)

	return g, nil
}
