// SPDX-License-Identifier: MIT
// Package: metroplan/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w; core sentinels pass through.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrEmptyLine indicates that a line was declared without any stations.
var ErrEmptyLine = errors.New("builder: line has no stations")

// ErrDuplicateLine indicates that two Line constructors share one tag.
// Positions along a line would interleave, so this is rejected outright.
var ErrDuplicateLine = errors.New("builder: duplicate line tag")

// ErrConstructFailed indicates a nil constructor was passed to BuildNetwork.
var ErrConstructFailed = errors.New("builder: construction failed")
