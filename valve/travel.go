// File: travel.go
// Role: Travel model branch generator. Decisions happen only when an agent
//       becomes free; the distance table collapses the walk in between.
//
// An agent is free when its Ready equals the state's Remaining R. Each free
// agent either claims a target v (closed, positive rate, reachable in d
// hops with R-d-1 > 0), arriving and activating it at R-d-1 with credit
// (R-d-1)*rate, or retires for good. Two agents never claim the same
// target. The child's R is the latest Ready among the agents; once every
// agent has retired the child is terminal.

package valve

type travelSpace struct{ base }

type travelAction struct {
	retire bool
	target int
	finish int
}

// Root returns the initial state.
func (t travelSpace) Root() State { return t.p.root() }

// Expand emits one child per joint decision of the free agents.
func (t travelSpace) Expand(s State, emit func(State)) {
	var acts [MaxAgents][]travelAction
	for a := 0; a < t.p.agents; a++ {
		if s.Ready[a] == s.Remaining {
			acts[a] = t.actions(s, a)
		}
	}

	var pick [MaxAgents]travelAction
	var join func(a int)
	join = func(a int) {
		if a == t.p.agents {
			emit(t.apply(s, pick))
			return
		}
		if acts[a] == nil {
			// busy agent: keeps its current commitment
			pick[a] = travelAction{target: -1}
			join(a + 1)
			return
		}
		for _, act := range acts[a] {
			if !act.retire && targeted(pick[:a], act.target) {
				continue
			}
			pick[a] = act
			join(a + 1)
		}
	}
	join(0)
}

// actions lists the targets of free agent a, highest rate first, followed
// by retirement.
func (t travelSpace) actions(s State, a int) []travelAction {
	p := t.p
	var acts []travelAction
	for _, v := range p.byRate {
		if s.Open.Has(v) {
			continue
		}
		d, ok := p.dist.Between(s.Pos[a], v)
		if !ok {
			continue
		}
		if finish := s.Remaining - d - 1; finish > 0 {
			acts = append(acts, travelAction{target: v, finish: finish})
		}
	}

	return append(acts, travelAction{retire: true, target: -1})
}

// apply builds the child of s for one joint decision.
func (t travelSpace) apply(s State, pick [MaxAgents]travelAction) State {
	p := t.p
	child := s
	minute := p.horizon - s.Remaining + 1
	for a := 0; a < p.agents; a++ {
		act := pick[a]
		switch {
		case act.retire:
			child.Ready[a] = 0
			child.Pos[a] = 0
			if t.trace {
				child.trail = child.trail.push(Step{Minute: minute, Agent: a, Kind: Retire, Node: p.net.ID(s.Pos[a])})
			}
		case act.target >= 0:
			gain := act.finish * p.net.Rate(act.target)
			child.Open = child.Open.With(act.target)
			child.Value += gain
			child.Pos[a] = act.target
			child.Ready[a] = act.finish
			if t.trace {
				child.trail = t.walk(child.trail, a, s.Pos[a], act.target, minute, gain)
			}
		}
	}

	child.Remaining = 0
	for a := 0; a < p.agents; a++ {
		if child.Ready[a] > child.Remaining {
			child.Remaining = child.Ready[a]
		}
	}

	return child
}

// walk records the hop-by-hop moves from → to starting at minute, then the
// activation of to.
func (t travelSpace) walk(tr *trail, agent, from, to, minute, gain int) *trail {
	p := t.p
	path := p.dist.Path(from, to)
	for i, v := range path[1:] {
		tr = tr.push(Step{Minute: minute + i, Agent: agent, Kind: Move, Node: p.net.ID(v)})
	}

	return tr.push(Step{
		Minute: minute + len(path) - 1,
		Agent:  agent,
		Kind:   Activate,
		Node:   p.net.ID(to),
		Gain:   gain,
	})
}

// targeted reports whether an earlier agent in pick claims node.
func targeted(pick []travelAction, node int) bool {
	for _, act := range pick {
		if !act.retire && act.target == node {
			return true
		}
	}

	return false
}
