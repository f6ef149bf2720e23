// SPDX-License-Identifier: MIT
// Package: metroplan/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     constructors and BuildNetwork itself never panic.

package builder

import "golang.org/x/exp/slog"

// BuilderOption customizes network construction by mutating a builderConfig
// before any constructor runs.
type BuilderOption func(*builderConfig)

// WithLineWeight sets the weight of line-adjacency edges. Panics on w <= 0.
func WithLineWeight(w int64) BuilderOption {
	if w <= 0 {
		panic("builder: WithLineWeight(w<=0)")
	}
	return func(c *builderConfig) { c.lineWeight = w }
}

// WithTransferWeight sets the weight of interchange transfer edges. Panics on w <= 0.
func WithTransferWeight(w int64) BuilderOption {
	if w <= 0 {
		panic("builder: WithTransferWeight(w<=0)")
	}
	return func(c *builderConfig) { c.transferWeight = w }
}

// WithLogger routes construction diagnostics (ignored interchanges, line
// summaries) to l. A nil logger keeps the builder silent.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(c *builderConfig) { c.logger = l }
}
