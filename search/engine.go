// Package search - best-first branch-and-bound driver.
//
// Solve pops the state with the highest bound, records terminals as
// incumbents and expands the rest. Successors pass two filters before they
// are enqueued:
//
//  1. Bound: a successor whose bound cannot beat the incumbent is dropped.
//  2. Dominance: a successor whose key already reached an equal or better
//     value is dropped; otherwise BestSeen[key] is raised to its value.
//
// Entries made stale by a later, better state with the same key are
// skipped when popped (lazy decrease-key, as in a heap-based Dijkstra).
//
// Complexity:
//   - Worst case exponential in the problem size; pruning does the work.
//   - Per pop: O(log F) heap work + the cost of Expand/Bound/Key calls.
//   - Memory: O(F + |BestSeen|).

package search

// engine holds all mutable state of one Solve call.
type engine[S any, K comparable, V Score] struct {
	space Space[S, K, V]
	opts  Options

	frontier Frontier[node[S, K, V], V]
	seen     map[K]V

	res Result[S, V]
}

// node caches the key and value of a queued state.
type node[S any, K comparable, V Score] struct {
	state S
	key   K
	value V
}

// Solve runs best-first branch-and-bound over space and returns the best
// terminal state found.
//
// Implementation:
//   - Stage 1: Resolve options; reject nil space and invalid options.
//   - Stage 2: Seed the frontier with the root (registered in BestSeen).
//   - Stage 3: Pop until the frontier is empty, the frontier maximum can no
//     longer beat the incumbent (unless draining), the pop budget is spent,
//     or the context is cancelled.
//
// Behavior highlights:
//   - With admissible bounds the returned value is optimal, whatever the
//     options (pruning toggles only change the amount of work).
//   - Ties keep the first terminal reached.
//
// Returns:
//   - Result: incumbent, statistics and (optionally) improvement history.
//     It is filled even when an error is returned.
//
// Errors:
//   - ErrNilSpace, ErrOptionViolation, ErrPopLimit, ctx.Err().
//
// AI-Hints:
//   - Disable pruning (WithBoundPruning(false), WithDominance(false)) in
//     tests to obtain an exhaustive reference for the same Space.
func Solve[S any, K comparable, V Score](space Space[S, K, V], opts ...Option) (Result[S, V], error) {
	var empty Result[S, V]
	if space == nil {
		return empty, ErrNilSpace
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return empty, o.err
	}

	e := &engine[S, K, V]{
		space: space,
		opts:  o,
		seen:  make(map[K]V),
	}
	e.seed()
	err := e.loop()

	return e.res, err
}

// seed enqueues the root state.
func (e *engine[S, K, V]) seed() {
	root := e.space.Root()
	n := node[S, K, V]{state: root, key: e.space.Key(root), value: e.space.Value(root)}
	e.seen[n.key] = n.value
	e.push(n, e.space.Bound(root))
}

// loop processes the frontier until a stop condition is met.
func (e *engine[S, K, V]) loop() error {
	ctx := e.opts.Ctx
	for e.frontier.Len() > 0 {
		// cancellation check (sparse)
		if e.res.Stats.Popped&ctxCheckMask == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		if e.opts.PopLimit > 0 && e.res.Stats.Popped >= e.opts.PopLimit {
			return ErrPopLimit
		}

		n, priority := e.frontier.Pop()
		e.res.Stats.Popped++

		if e.space.Terminal(n.state) {
			e.offer(n)
			continue
		}

		if e.opts.BoundPruning && e.res.Found && priority <= e.res.Value {
			if !e.opts.Drain {
				// The frontier maximum cannot beat the incumbent; neither can the rest.
				e.res.Stats.PrunedBound += 1 + e.frontier.Len()
				return nil
			}
			e.res.Stats.PrunedBound++
			continue
		}

		// stale entry: a better state with the same key was enqueued later
		if e.opts.Dominance && e.seen[n.key] > n.value {
			e.res.Stats.PrunedDominance++
			continue
		}

		e.res.Stats.Expanded++
		e.space.Expand(n.state, e.emit)
	}

	return nil
}

// emit filters one successor and enqueues it.
func (e *engine[S, K, V]) emit(s S) {
	bound := e.space.Bound(s)
	if e.opts.BoundPruning && e.res.Found && bound <= e.res.Value {
		e.res.Stats.PrunedBound++
		return
	}
	n := node[S, K, V]{state: s, key: e.space.Key(s), value: e.space.Value(s)}
	if e.opts.Dominance {
		if best, ok := e.seen[n.key]; ok && best >= n.value {
			e.res.Stats.PrunedDominance++
			return
		}
		e.seen[n.key] = n.value
	}
	e.push(n, bound)
}

// push enqueues n and tracks frontier statistics.
func (e *engine[S, K, V]) push(n node[S, K, V], priority V) {
	e.frontier.Push(n, priority)
	e.res.Stats.Pushed++
	if l := e.frontier.Len(); l > e.res.Stats.PeakFrontier {
		e.res.Stats.PeakFrontier = l
	}
}

// offer compares a terminal with the incumbent.
func (e *engine[S, K, V]) offer(n node[S, K, V]) {
	if e.res.Found && n.value <= e.res.Value {
		return
	}
	e.res.Best = n.state
	e.res.Value = n.value
	e.res.Found = true
	e.res.Stats.Improvements++
	if e.opts.RecordHistory {
		e.res.History = append(e.res.History, Improvement[V]{Pop: e.res.Stats.Popped, Value: n.value})
	}
}
