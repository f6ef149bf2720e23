// SPDX-License-Identifier: MIT
// Package: metroplan/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults (taken from the network model, not tunable magic):
//   • lineWeight     = 1  (one hop between consecutive stops)
//   • transferWeight = 2  (changing lines costs two hops)
//   • logger         = nil (silent)

package builder

import "golang.org/x/exp/slog"

const (
	defaultLineWeight     = int64(1)
	defaultTransferWeight = int64(2)
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	lineWeight     int64
	transferWeight int64
	logger         *slog.Logger
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		lineWeight:     defaultLineWeight,
		transferWeight: defaultTransferWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// warn logs through the configured logger, if any.
func (c builderConfig) warn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}

// debug logs through the configured logger, if any.
func (c builderConfig) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
