// Package valve schedules node activations on a network for one or two
// cooperating agents under a shared time horizon, maximizing the total
// time-weighted credit.
//
// What
//
//   - Every agent starts on the same node. Each time step an agent either
//     moves along one edge or activates the node it stands on.
//   - Activating node v with R steps left credits (R-1)*rate(v) at once:
//     the node contributes its rate for every remaining step.
//   - A node is activated at most once, by one agent.
//
// How
//
//   - NewProblem validates the input and precomputes the all-pairs hop
//     table (package distance) and the rate-descending activation order.
//   - Solve adapts the problem to the generic driver in package search:
//     states are small values (positions, a bitset of activated nodes,
//     clocks), the dominance key drops the accumulated value, and Bound
//     assumes every remaining node is one step away.
//
// Models
//
//   - Hop (default): one expansion per time step; the joint action is the
//     Cartesian product of the agents' moves and activations.
//   - Travel: one expansion per decision point; a free agent picks its
//     next target and the distance table accounts for the walk.
//
// Both models return the same optimum.
//
// Options
//
//   - WithModel(m):            Hop or Travel.
//   - WithTrace():             fill Result.Steps with the winning schedule.
//   - WithSymmetryReduction(): agents are interchangeable in the key.
//   - WithDominance, WithBoundPruning, WithDrain, WithPopLimit,
//     WithHistory: forwarded to the search driver.
//
// Errors
//
//   - ErrNilNetwork, ErrBadHorizon, ErrBadAgents, ErrUnknownStart from
//     NewProblem; ErrNilProblem, ErrOptionViolation from Solve.
//   - search.ErrPopLimit and ctx.Err() pass through with the incumbent.
package valve
