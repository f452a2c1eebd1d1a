package valve

import "github.com/katalvlaran/valvenet/bitset"

// noPrev marks an agent that may move to any neighbor.
const noPrev = -1

// State is one node of the search tree. States are values: every
// transition copies the parent and changes the copy.
//
// Slots beyond Problem.Agents() are zero and never read.
type State struct {
	// Remaining is the number of time steps left; 0 is terminal.
	Remaining int

	// Value is the credit captured so far. An activation is credited with
	// its whole remaining lifetime at once.
	Value int

	// Pos is the node each agent stands on (hop model) or is travelling to
	// (travel model).
	Pos [MaxAgents]int

	// Prev is the node each agent just left (hop model), or noPrev.
	Prev [MaxAgents]int

	// Ready is the remaining time at which each agent next acts. In the hop
	// model it equals Remaining for every agent; in the travel model a
	// retired agent has Ready 0.
	Ready [MaxAgents]int

	// Open holds activated (or, in the travel model, claimed) nodes.
	Open bitset.Set

	trail *trail
}

// Key is the dominance projection of a State: everything that determines
// the future gains, nothing about the past.
type Key struct {
	Remaining int
	Pos       [MaxAgents]uint8
	Ready     [MaxAgents]int
	Open      bitset.Set
}

// key projects s. With symmetric set, agent slots are ordered so that
// states differing only by an agent swap share a key.
func (s State) key(symmetric bool) Key {
	k := Key{Remaining: s.Remaining, Open: s.Open}
	for a := range s.Pos {
		k.Pos[a] = uint8(s.Pos[a])
		k.Ready[a] = s.Ready[a]
	}
	if symmetric && (k.Pos[1] < k.Pos[0] || (k.Pos[1] == k.Pos[0] && k.Ready[1] < k.Ready[0])) {
		k.Pos[0], k.Pos[1] = k.Pos[1], k.Pos[0]
		k.Ready[0], k.Ready[1] = k.Ready[1], k.Ready[0]
	}

	return k
}
