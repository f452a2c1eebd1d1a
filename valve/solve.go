// SPDX-License-Identifier: MIT
//
// File: solve.go
// Role: Options and the Solve entry point, adapting a Problem to the
//       generic search driver.

package valve

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valvenet/search"
)

// Model selects the branch generator.
type Model uint8

const (
	// Hop advances time one step per expansion; agents move edge by edge.
	Hop Model = iota
	// Travel jumps between decision points using the distance table.
	Travel
)

// String returns "hop" or "travel".
func (m Model) String() string {
	switch m {
	case Hop:
		return "hop"
	case Travel:
		return "travel"
	default:
		return fmt.Sprintf("model(%d)", uint8(m))
	}
}

// ParseModel maps "hop" and "travel" to a Model.
func ParseModel(name string) (Model, error) {
	switch name {
	case "hop":
		return Hop, nil
	case "travel":
		return Travel, nil
	default:
		return 0, fmt.Errorf("%w: unknown model %q", ErrOptionViolation, name)
	}
}

// Option configures Solve via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the solver policy.
type Options struct {
	Model     Model
	Trace     bool // collect the schedule in Result.Steps
	Symmetric bool // agents are interchangeable in the dominance key

	// Driver policy, forwarded to search.Solve.
	Dominance    bool
	BoundPruning bool
	Drain        bool
	PopLimit     int
	History      bool

	err error
}

// DefaultOptions returns hop model, no trace, no symmetry reduction,
// dominance and bound pruning on, early stop, no limit, no history.
func DefaultOptions() Options {
	return Options{
		Model:        Hop,
		Dominance:    true,
		BoundPruning: true,
	}
}

// WithModel selects the branch generator.
func WithModel(m Model) Option {
	return func(o *Options) {
		if m != Hop && m != Travel {
			o.err = fmt.Errorf("%w: model %d", ErrOptionViolation, uint8(m))
			return
		}
		o.Model = m
	}
}

// WithTrace records the winning schedule.
func WithTrace() Option {
	return func(o *Options) { o.Trace = true }
}

// WithSymmetryReduction merges states that differ only by swapping agents.
func WithSymmetryReduction() Option {
	return func(o *Options) { o.Symmetric = true }
}

// WithDominance toggles BestSeen filtering.
func WithDominance(on bool) Option {
	return func(o *Options) { o.Dominance = on }
}

// WithBoundPruning toggles bound pruning.
func WithBoundPruning(on bool) Option {
	return func(o *Options) { o.BoundPruning = on }
}

// WithDrain keeps popping until the frontier is empty.
func WithDrain() Option {
	return func(o *Options) { o.Drain = true }
}

// WithPopLimit caps the number of pops; n < 0 is an ErrOptionViolation.
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
	return func(o *Options) { o.History = true }
}

// Result is the outcome of Solve.
type Result struct {
	// Value is the best total credit found.
	Value int

	// Steps is the schedule reaching Value (WithTrace only).
	Steps []Step

	Stats   search.Stats
	History []search.Improvement[int]
}

// base carries what both branch generators share.
type base struct {
	p         *Problem
	symmetric bool
	trace     bool
}

func (b base) Key(s State) Key       { return s.key(b.symmetric) }
func (b base) Value(s State) int     { return s.Value }
func (b base) Bound(s State) int     { return b.p.Bound(s) }
func (b base) Terminal(s State) bool { return s.Remaining == 0 }

// Solve returns the maximum total credit for p.
//
// Implementation:
//   - Stage 1: Resolve options; reject a nil problem and invalid options.
//   - Stage 2: Wrap p in the selected model's search space.
//   - Stage 3: Run search.Solve and translate its result.
//
// Behavior highlights:
//   - Both models return the same optimum; Travel expands far fewer states.
//   - Calls are independent; p is never modified.
//
// Errors:
//   - ErrNilProblem, ErrOptionViolation.
//   - search.ErrPopLimit and ctx.Err(); Result then holds the incumbent.
func Solve(ctx context.Context, p *Problem, opts ...Option) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	b := base{p: p, symmetric: o.Symmetric, trace: o.Trace}
	var space search.Space[State, Key, int] = hopSpace{b}
	if o.Model == Travel {
		space = travelSpace{b}
	}

	sopts := []search.Option{
		search.WithContext(ctx),
		search.WithDominance(o.Dominance),
		search.WithBoundPruning(o.BoundPruning),
		search.WithPopLimit(o.PopLimit),
	}
	if o.Drain {
		sopts = append(sopts, search.WithDrain())
	}
	if o.History {
		sopts = append(sopts, search.WithHistory())
	}

	sr, err := search.Solve(space, sopts...)
	res := Result{
		Value:   sr.Value,
		Stats:   sr.Stats,
		History: sr.History,
	}
	if o.Trace && sr.Found {
		res.Steps = sr.Best.trail.steps()
	}

	return res, err
}
