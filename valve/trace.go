package valve

import (
	"fmt"
	"sort"
)

// Action is what one agent does during one step of a schedule.
type Action uint8

// Actions recorded in a trace.
const (
	Activate Action = iota // open the current node
	Move                   // step to a neighbor
	Idle                   // stay put, nothing left worth doing
	Retire                 // stop acting for the rest of the horizon
)

// String returns the lower-case action name.
func (a Action) String() string {
	switch a {
	case Activate:
		return "activate"
	case Move:
		return "move"
	case Idle:
		return "idle"
	case Retire:
		return "retire"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// Step is one entry of a schedule.
//
// Minute counts from 1. For Activate, Gain is (horizon-Minute)*rate; the
// node stays open for the rest of the horizon. For Move, Node is the
// destination.
type Step struct {
	Minute int
	Agent  int
	Kind   Action
	Node   string
	Gain   int
}

// String renders s as "minute 3: agent 0 activate DD (+560)".
func (s Step) String() string {
	if s.Kind == Activate {
		return fmt.Sprintf("minute %d: agent %d %s %s (+%d)", s.Minute, s.Agent, s.Kind, s.Node, s.Gain)
	}

	return fmt.Sprintf("minute %d: agent %d %s %s", s.Minute, s.Agent, s.Kind, s.Node)
}

// trail is a persistent, parent-linked list of steps. Children share
// their ancestors' entries.
type trail struct {
	parent *trail
	step   Step
}

// push returns a trail extended by st; t itself is unchanged.
func (t *trail) push(st Step) *trail {
	return &trail{parent: t, step: st}
}

// steps returns the recorded steps ordered by minute, then agent.
func (t *trail) steps() []Step {
	var out []Step
	for n := t; n != nil; n = n.parent {
		out = append(out, n.step)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Minute != out[j].Minute {
			return out[i].Minute < out[j].Minute
		}
		return out[i].Agent < out[j].Agent
	})

	return out
}
