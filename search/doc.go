// Package search implements a generic best-first branch-and-bound driver
// for maximization problems over an implicit state space.
//
// What
//
//   - A problem describes its state space through the Space interface:
//     a root state, a dominance key, the accumulated value, an optimistic
//     bound on the best reachable value, a terminal test and a successor
//     generator.
//   - Solve explores states in decreasing bound order (A*-like, with the
//     bound as f = g + h), keeps the best terminal seen (the incumbent),
//     and returns it together with search statistics.
//
// Pruning
//
//   - Bound: a state whose bound cannot beat the incumbent is never expanded.
//     Because bounds are admissible (never below the true best descendant),
//     the default driver stops as soon as the frontier maximum falls to the
//     incumbent: the first terminal popped is optimal.
//   - Dominance: before a state is enqueued its key is looked up in a
//     BestSeen table; a state whose key already reached an equal or better
//     value is discarded. Dominance runs before enqueueing, never after.
//
// Options
//
//   - DefaultOptions(): background Context, dominance on, bound pruning on,
//     early stop, no pop limit, no history.
//   - WithContext(ctx):         cancellation, checked every 4096 pops.
//   - WithDominance(on):        toggle BestSeen filtering (testing aid).
//   - WithBoundPruning(on):     toggle bound pruning (exhaustive when off).
//   - WithDrain():              keep popping and discarding to exhaustion
//     instead of stopping once the frontier maximum ≤ incumbent.
//   - WithPopLimit(n):          stop after n pops with ErrPopLimit and the
//     incumbent found so far.
//   - WithHistory():            record every incumbent improvement.
//
// Errors
//
//   - ErrNilSpace          if the space is nil.
//   - ErrOptionViolation   if an Option received a meaningless value.
//   - ErrPopLimit          pop budget exhausted (Result still filled).
//   - ctx.Err()            on cancellation (Result still filled).
//
// Concurrency
//
//	A Solve call owns its frontier and BestSeen table and runs on the
//	calling goroutine. Concurrent Solve calls over a shared immutable
//	Space are safe as long as the Space methods are.
package search
