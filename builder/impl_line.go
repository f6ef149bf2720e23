// SPDX-License-Identifier: MIT
// Package: metroplan/builder
//
// impl_line.go - implementation of the Line(tag, stations...) constructor.
//
// Contract:
//   - len(stations) ≥ 1 (else ErrEmptyLine); a single-stop line adds a vertex and no edges.
//   - tag must not already be present in the graph (else ErrDuplicateLine).
//   - Adds one vertex per station occurrence, preserving order.
//   - Emits edges i-1 — i for i=1..len-1 with cfg.lineWeight.
//
// Complexity: O(len(stations)).

package builder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/metroplan/core"
)

const methodLine = "Line"

// Line returns a Constructor that appends one transit line.
func Line(tag string, stations ...string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(stations) == 0 {
			return fmt.Errorf("%s(%s): %w", methodLine, tag, ErrEmptyLine)
		}
		if slices.Contains(g.Lines(), tag) {
			return fmt.Errorf("%s(%s): %w", methodLine, tag, ErrDuplicateLine)
		}

		prev := -1
		for i, name := range stations {
			v, err := g.AddVertex(name, tag)
			if err != nil {
				return fmt.Errorf("%s(%s): stop %d: %w", methodLine, tag, i, err)
			}
			if prev >= 0 {
				if err = g.AddEdge(prev, v, cfg.lineWeight, core.LineEdge); err != nil {
					return fmt.Errorf("%s(%s): %q—%q: %w", methodLine, tag, stations[i-1], name, err)
				}
			}
			prev = v
		}
		cfg.debug("line added", "line", tag, "stops", len(stations))

		return nil
	}
}
