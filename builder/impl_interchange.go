// SPDX-License-Identifier: MIT
// Package: metroplan/builder
//
// impl_interchange.go - implementation of the Interchanges(names...) constructor.
//
// Contract:
//   - For each name, all of its occurrence-vertices are joined pairwise
//     (i<j in insertion order) with cfg.transferWeight.
//   - A name with fewer than 2 occurrences is a no-op, logged at warn level.
//   - A pair already joined (e.g. a line listing the same name twice in a row)
//     keeps its existing edge.
//
// Complexity: O(Σ k²) over interchange occurrence counts k.

package builder

import (
	"fmt"

	"github.com/katalvlaran/metroplan/core"
)

const (
	methodInterchanges = "Interchanges"
	minOccurrences     = 2
)

// Interchanges returns a Constructor that adds transfer edges for the named
// stations. Run it after every Line it should cover.
func Interchanges(names ...string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, name := range names {
			ids := g.Indices(name)
			if len(ids) < minOccurrences {
				cfg.warn("interchange ignored", "station", name, "occurrences", len(ids))
				continue
			}
			for i := 0; i < len(ids); i++ {
				for j := i + 1; j < len(ids); j++ {
					if g.HasEdge(ids[i], ids[j]) {
						continue
					}
					if err := g.AddEdge(ids[i], ids[j], cfg.transferWeight, core.TransferEdge); err != nil {
						return fmt.Errorf("%s(%s): %w", methodInterchanges, name, err)
					}
				}
			}
		}

		return nil
	}
}
