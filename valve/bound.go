package valve

// Bound returns an optimistic estimate of the final value reachable from s.
//
// Every non-activated node is assumed one step away: an agent acting at
// remaining time t claims the largest rate left for (t-1)*rate and acts
// again at t-2 (one step to move, one to activate). Claims go to the agent
// with the most time left, agent 0 first on ties, so with equal clocks the
// agents alternate as they pick down the rate list.
//
// The estimate ignores topology, so it never falls below the value of any
// schedule that completes s. For Remaining <= 1 it equals s.Value.
//
// Complexity: O(A·V) for A agents and V activatable nodes.
func (p *Problem) Bound(s State) int {
	if s.Remaining <= 1 {
		return s.Value
	}

	clock := s.Ready
	total := 0
	for _, v := range p.byRate {
		if s.Open.Has(v) {
			continue
		}
		best := 0
		for a := 1; a < p.agents; a++ {
			if clock[a] > clock[best] {
				best = a
			}
		}
		if clock[best] <= 1 {
			break
		}
		total += (clock[best] - 1) * p.net.Rate(v)
		clock[best] -= 2
	}

	return s.Value + total
}
