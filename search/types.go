// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Public contracts of the search driver: Space, Score, options,
//       statistics, results and sentinel errors.

package search

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for search execution.
var (
	// ErrNilSpace is returned when Solve receives a nil Space.
	ErrNilSpace = errors.New("search: space is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrPopLimit is returned when the pop budget is exhausted before the
	// search proved optimality. The Result carries the incumbent so far.
	ErrPopLimit = errors.New("search: pop limit reached")
)

// ctxCheckMask spaces out cancellation checks (every 4096 pops).
const ctxCheckMask = 4095

// Score is the numeric type of values and bounds.
type Score interface {
	constraints.Integer | constraints.Float
}

// Space describes a maximization problem over an implicit state space.
//
// Contract:
//   - Bound(s) ≥ Value(t) for every terminal t reachable from s, and
//     Bound(s) ≥ Value(s). For a terminal s, Bound(s) == Value(s).
//   - Key(s) identifies states whose futures are interchangeable: two
//     states with equal keys reach exactly the same set of value gains.
//     It must exclude the accumulated value.
//   - Expand emits every successor of a non-terminal s via emit; it is
//     never called on terminals. Emission order is the tie-break order.
//   - States are values; successors must not alias their parent's memory
//     in a way later emissions could mutate.
type Space[S any, K comparable, V Score] interface {
	Root() S
	Key(s S) K
	Value(s S) V
	Bound(s S) V
	Terminal(s S) bool
	Expand(s S, emit func(S))
}

// Option configures Solve via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the driver policy.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Dominance enables BestSeen filtering before enqueueing.
	Dominance bool

	// BoundPruning discards states whose bound cannot beat the incumbent.
	BoundPruning bool

	// Drain keeps popping after the frontier maximum falls to the
	// incumbent, discarding every remaining entry one by one.
	Drain bool

	// PopLimit, if > 0, stops the search after this many pops.
	PopLimit int

	// RecordHistory collects every incumbent improvement in Result.History.
	RecordHistory bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the recommended policy:
//   - Context.Background()
//   - dominance and bound pruning enabled
//   - early stop (no drain), no pop limit, no history
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Dominance:    true,
		BoundPruning: true,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDominance toggles BestSeen filtering.
func WithDominance(on bool) Option {
	return func(o *Options) { o.Dominance = on }
}

// WithBoundPruning toggles bound pruning. With pruning off the search is
// exhaustive (modulo dominance) and still returns the optimum.
func WithBoundPruning(on bool) Option {
	return func(o *Options) { o.BoundPruning = on }
}

// WithDrain keeps popping until the frontier is empty.
func WithDrain() Option {
	return func(o *Options) { o.Drain = true }
}

// WithPopLimit caps the number of pops.
//
//	n > 0: stop after n pops with ErrPopLimit
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithPopLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: PopLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.PopLimit = n
	}
}

// WithHistory records every incumbent improvement.
func WithHistory() Option {
	return func(o *Options) { o.RecordHistory = true }
}

// Stats counts driver events.
type Stats struct {
	Pushed          int // states enqueued (root included)
	Popped          int // states dequeued
	Expanded        int // non-terminal states expanded
	PrunedBound     int // states discarded because bound ≤ incumbent
	PrunedDominance int // states discarded by BestSeen
	Improvements    int // incumbent replacements
	PeakFrontier    int // largest frontier size observed
}

// Improvement is one incumbent replacement, in discovery order.
type Improvement[V Score] struct {
	Pop   int // Stats.Popped at the time of discovery
	Value V
}

// Result is the outcome of Solve.
//
// Found is false when no terminal was reached (only possible with a pop
// limit or cancellation, or for spaces without terminals). Best and Value
// are then zero.
type Result[S any, V Score] struct {
	Best    S
	Value   V
	Found   bool
	Stats   Stats
	History []Improvement[V]
}
