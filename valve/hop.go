// File: hop.go
// Role: Hop model branch generator. Every agent acts once per step.
//
// Per agent, the legal actions at remaining time R are:
//   - Activate the current node if it is closed, has a positive rate and
//     R > 1 (credit (R-1)*rate).
//   - Move to a neighbor other than the node just vacated. Returning to
//     it at once only wastes two steps; this is a pruning rule, not a
//     property of the problem.
//   - Moves towards nothing are pruned: a move must leave some closed
//     node reachable with positive credit.
//   - An agent without any of the above idles.
//
// The joint action is the Cartesian product over agents, minus the
// combinations where two agents activate the same node; an agent whose
// every action was claimed that way idles instead. When every agent idles
// and none of them was held back only by the backtrack rule, nothing can
// change any more and the child jumps straight to R = 0.

package valve

type hopSpace struct{ base }

type hopAction struct {
	kind Action
	node int
	gain int
}

// Root returns the initial state.
func (h hopSpace) Root() State { return h.p.root() }

// Expand emits one child per joint action.
func (h hopSpace) Expand(s State, emit func(State)) {
	var (
		acts  [MaxAgents][]hopAction
		stuck = true
	)
	for a := 0; a < h.p.agents; a++ {
		var free bool
		acts[a], free = h.actions(s, a)
		stuck = stuck && !free
	}

	var pick [MaxAgents]hopAction
	var join func(a int)
	join = func(a int) {
		if a == h.p.agents {
			emit(h.apply(s, pick, stuck))
			return
		}
		used := false
		for _, act := range acts[a] {
			if act.kind == Activate && claimed(pick[:a], act.node) {
				continue
			}
			used = true
			pick[a] = act
			join(a + 1)
		}
		if !used {
			// the only action was taken by an earlier agent
			pick[a] = hopAction{kind: Idle, node: s.Pos[a]}
			join(a + 1)
		}
	}
	join(0)
}

// actions lists agent a's legal actions in s: activation first, then moves
// in neighbor order, or a lone Idle. free reports whether the agent has an
// action once the backtrack rule is lifted.
func (h hopSpace) actions(s State, a int) (acts []hopAction, free bool) {
	p := h.p
	pos := s.Pos[a]
	if rate := p.net.Rate(pos); rate > 0 && s.Remaining > 1 && !s.Open.Has(pos) {
		acts = append(acts, hopAction{kind: Activate, node: pos, gain: (s.Remaining - 1) * rate})
	}
	blocked := false
	for _, nb := range p.net.Neighbors(pos) {
		if !p.worthVisiting(nb, s.Remaining-1, s.Open) {
			continue
		}
		if nb == s.Prev[a] {
			blocked = true
			continue
		}
		acts = append(acts, hopAction{kind: Move, node: nb})
	}
	if len(acts) > 0 {
		return acts, true
	}

	return []hopAction{{kind: Idle, node: pos}}, blocked
}

// apply builds the child of s for one joint action.
func (h hopSpace) apply(s State, pick [MaxAgents]hopAction, stuck bool) State {
	child := s
	child.Remaining = s.Remaining - 1
	minute := h.p.horizon - s.Remaining + 1
	idle := true
	for a := 0; a < h.p.agents; a++ {
		act := pick[a]
		switch act.kind {
		case Activate:
			child.Open = child.Open.With(act.node)
			child.Value += act.gain
			child.Prev[a] = s.Pos[a]
			idle = false
		case Move:
			child.Prev[a] = s.Pos[a]
			child.Pos[a] = act.node
			idle = false
		default:
			child.Prev[a] = noPrev
		}
	}
	if idle && stuck {
		child.Remaining = 0
	}
	for a := 0; a < h.p.agents; a++ {
		child.Ready[a] = child.Remaining
	}

	if h.trace && !(idle && stuck) {
		for a := 0; a < h.p.agents; a++ {
			act := pick[a]
			child.trail = child.trail.push(Step{
				Minute: minute,
				Agent:  a,
				Kind:   act.kind,
				Node:   h.p.net.ID(act.node),
				Gain:   act.gain,
			})
		}
	}

	return child
}

// claimed reports whether an earlier agent in pick activates node.
func claimed(pick []hopAction, node int) bool {
	for _, act := range pick {
		if act.kind == Activate && act.node == node {
			return true
		}
	}

	return false
}
