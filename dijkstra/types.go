// Package dijkstra defines core types and configuration options
// for the entered-cell shortest-path search over a gridgraph.GridGraph.
//
// The weight of a step is the weight of the cell being entered; the cell the
// search starts from is never charged. All weights must be strictly positive.
//
// Options:
//
//	– MaxDistance: optional cap; cells farther than this are never settled.
//	– Impassable:  cells whose weight is >= this threshold are treated as walls.
//	– OnVisit:     hook invoked once per settled cell; a non-nil error aborts.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided grid pointer is nil.
//	– ErrNilWeight         if the weight function is nil.
//	– ErrOutOfBounds       if start or end lies outside the grid.
//	– ErrNonPositiveWeight if a traversable cell reports a weight <= 0.
//	– ErrUnreachable       if the search ends without settling the end cell.
//	– ErrBadMaxDistance    if MaxDistance < 0 (panic from WithMaxDistance).
//	– ErrBadImpassable     if the impassable threshold <= 0 (panic from WithImpassable).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/citywalk/gridgraph"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilWeight indicates that no weight function was supplied.
	ErrNilWeight = errors.New("dijkstra: weight function is nil")

	// ErrOutOfBounds indicates that start or end is not a cell of the grid.
	ErrOutOfBounds = errors.New("dijkstra: cell lies outside the grid")

	// ErrNonPositiveWeight indicates that a traversable cell reported a weight <= 0.
	ErrNonPositiveWeight = errors.New("dijkstra: cell weight must be positive")

	// ErrUnreachable indicates that the frontier was exhausted (or capped by
	// MaxDistance) before the end cell was settled.
	ErrUnreachable = errors.New("dijkstra: destination is unreachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadImpassable indicates that the impassable threshold was zero or negative.
	ErrBadImpassable = errors.New("dijkstra: impassable threshold must be positive")
)

// WeightFunc returns the time cost of stepping onto c.
type WeightFunc func(c gridgraph.Cell) int64

// VisitFunc is called when c is settled at its final distance dist.
type VisitFunc func(c gridgraph.Cell, dist int64) error

// Options configures the behavior of ShortestPath.
//
// MaxDistance – cells whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// Impassable  – cells whose weight is ≥ this threshold cannot be entered.
//
//	Must be > 0. Default is math.MaxInt64 (no walls).
type Options struct {
	MaxDistance int64     // Maximum distance to explore
	Impassable  int64     // Weight threshold at or above which a cell is a wall
	OnVisit     VisitFunc // Optional hook on every settled cell
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored,
// so an end cell beyond it is reported as ErrUnreachable.
// Negative values panic with ErrBadMaxDistance when the option is built.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithImpassable marks every cell whose weight is ≥ threshold as a wall.
// Zero or negative thresholds panic with ErrBadImpassable when the option
// is built.
func WithImpassable(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadImpassable.Error())
	}

	return func(o *Options) {
		o.Impassable = threshold
	}
}

// WithOnVisit registers a hook called once per settled cell, in settle order.
// Returning an error aborts the search; the error is wrapped and returned.
func WithOnVisit(fn VisitFunc) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// DefaultOptions returns Options with no distance cap, no walls and no hook.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
		Impassable:  math.MaxInt64,
	}
}

// Result is a single route: the ordered cells from start to end inclusive,
// the accumulated entered-cell cost, and how many cells were settled.
type Result struct {
	Path    []gridgraph.Cell
	Cost    int64
	Settled int
}
