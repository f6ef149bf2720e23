package tsp

import (
	"errors"
	"fmt"
)

// Sentinel errors for trip optimization.
var (
	// ErrNoStops is returned when no stop is given.
	ErrNoStops = errors.New("tsp: no stops")

	// ErrTooManyStops is returned when the stop count exceeds the exhaustive-search cap.
	ErrTooManyStops = errors.New("tsp: too many stops for exhaustive search")

	// ErrBadOptions is returned when Options carry a value no option constructor produces.
	ErrBadOptions = errors.New("tsp: invalid options")

	// ErrNonSquare is returned for a non-square distance matrix.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrDimensionMismatch is returned when a tour does not fit the matrix.
	ErrDimensionMismatch = errors.New("tsp: tour does not match matrix dimensions")

	// ErrNegativeWeight is returned for a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrStartOutOfRange is returned when the start vertex is not in [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")
)

const (
	// DefaultMaxStops is the stop cap when none is configured.
	DefaultMaxStops = 7

	// HardMaxStops is the largest cap WithMaxStops accepts.
	HardMaxStops = 10
)

// BoundAlgo selects the lower bound used for pruning.
type BoundAlgo int

const (
	// SimpleBound prunes with the degree-1 relaxation.
	SimpleBound BoundAlgo = iota

	// NoBound disables pruning.
	NoBound
)

// Options configures TSPExhaustive and PlanTrip.
type Options struct {
	BoundAlgo BoundAlgo
	MaxStops  int // 0 means DefaultMaxStops
}

// Option mutates Options.
type Option func(*Options)

// WithMaxStops raises or lowers the stop cap.
// Panics if n is outside [1, HardMaxStops].
func WithMaxStops(n int) Option {
	if n < 1 || n > HardMaxStops {
		panic(fmt.Sprintf("tsp: WithMaxStops(%d): want 1..%d", n, HardMaxStops))
	}

	return func(o *Options) { o.MaxStops = n }
}

// WithBound selects the pruning bound.
func WithBound(b BoundAlgo) Option {
	return func(o *Options) { o.BoundAlgo = b }
}

// DefaultOptions returns SimpleBound with DefaultMaxStops.
func DefaultOptions() Options {
	return Options{BoundAlgo: SimpleBound, MaxStops: DefaultMaxStops}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// maxStops resolves the effective cap.
func (o Options) maxStops() (int, error) {
	if o.BoundAlgo != SimpleBound && o.BoundAlgo != NoBound {
		return 0, fmt.Errorf("%w: BoundAlgo=%d", ErrBadOptions, o.BoundAlgo)
	}
	switch {
	case o.MaxStops == 0:
		return DefaultMaxStops, nil
	case o.MaxStops < 0 || o.MaxStops > HardMaxStops:
		return 0, fmt.Errorf("%w: MaxStops=%d", ErrBadOptions, o.MaxStops)
	default:
		return o.MaxStops, nil
	}
}

// TSResult holds the outcome of TSPExhaustive.
type TSResult struct {
	// Tour starts and ends at 0; len(Tour) == n+1.
	Tour []int

	// Cost is the total distance of the closed tour.
	Cost int64
}
