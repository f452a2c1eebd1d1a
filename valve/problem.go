// SPDX-License-Identifier: MIT
//
// File: problem.go
// Role: Immutable problem instance: network, horizon, agents, start node,
//       distance oracle and the rate-descending activation order.

package valve

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/valvenet/bitset"
	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/network"
)

// Problem defaults.
const (
	DefaultHorizon = 30
	DefaultAgents  = 1
	DefaultStart   = "AA"

	// MaxAgents is the number of agent slots a State carries.
	MaxAgents = 2
)

// Problem is one scheduling instance. It is immutable once built and safe
// to share between concurrent Solve calls.
type Problem struct {
	net     *network.Network
	dist    *distance.Table
	horizon int
	agents  int
	start   int

	// activatable nodes, highest rate first (ties by index)
	byRate []int
}

// ProblemOption configures NewProblem.
type ProblemOption func(*problemConfig)

type problemConfig struct {
	horizon  int
	agents   int
	start    string
	startSet bool
}

// WithHorizon sets the number of time steps (minutes). Zero is allowed
// and yields value 0; negative values are rejected by NewProblem.
func WithHorizon(n int) ProblemOption {
	return func(c *problemConfig) { c.horizon = n }
}

// WithAgents sets the number of cooperating agents, 1..MaxAgents.
func WithAgents(k int) ProblemOption {
	return func(c *problemConfig) { c.agents = k }
}

// WithStart sets the node every agent starts on.
func WithStart(id string) ProblemOption {
	return func(c *problemConfig) {
		c.start = id
		c.startSet = true
	}
}

// NewProblem validates the parameters and precomputes the distance table.
//
// Start node resolution:
//   - WithStart(id): id must exist, else ErrUnknownStart.
//   - default: DefaultStart when the network has it, else node 0.
//
// Errors:
//   - ErrNilNetwork, ErrBadHorizon, ErrBadAgents, ErrUnknownStart.
//   - Wrapped distance errors (not expected for a valid network).
//
// Complexity: O(V·(V+E)) for the distance table.
func NewProblem(net *network.Network, opts ...ProblemOption) (*Problem, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	cfg := problemConfig{horizon: DefaultHorizon, agents: DefaultAgents, start: DefaultStart}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.horizon < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadHorizon, cfg.horizon)
	}
	if cfg.agents < 1 || cfg.agents > MaxAgents {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrBadAgents, cfg.agents, MaxAgents)
	}

	start, ok := net.Index(cfg.start)
	if !ok {
		if cfg.startSet {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStart, cfg.start)
		}
		start = 0
	}

	dist, err := distance.Build(net.Adjacency())
	if err != nil {
		return nil, fmt.Errorf("valve: distance table: %w", err)
	}

	byRate := net.Activatable().Members()
	sort.SliceStable(byRate, func(i, j int) bool {
		return net.Rate(byRate[i]) > net.Rate(byRate[j])
	})

	return &Problem{
		net:     net,
		dist:    dist,
		horizon: cfg.horizon,
		agents:  cfg.agents,
		start:   start,
		byRate:  byRate,
	}, nil
}

// Network returns the underlying network.
func (p *Problem) Network() *network.Network { return p.net }

// Distances returns the all-pairs hop table.
func (p *Problem) Distances() *distance.Table { return p.dist }

// Horizon returns the number of time steps.
func (p *Problem) Horizon() int { return p.horizon }

// Agents returns the number of agents.
func (p *Problem) Agents() int { return p.agents }

// Start returns the index of the start node.
func (p *Problem) Start() int { return p.start }

// StartID returns the identifier of the start node.
func (p *Problem) StartID() string { return p.net.ID(p.start) }

// root is the initial state shared by both models: every agent on the
// start node, ready to act, nothing activated.
func (p *Problem) root() State {
	s := State{Remaining: p.horizon}
	for a := 0; a < p.agents; a++ {
		s.Pos[a] = p.start
		s.Prev[a] = noPrev
		s.Ready[a] = p.horizon
	}

	return s
}

// worthVisiting reports whether an agent standing on from with left steps
// to go can still reach and activate some node with positive credit.
func (p *Problem) worthVisiting(from, left int, open bitset.Set) bool {
	for _, v := range p.byRate {
		if open.Has(v) {
			continue
		}
		if d, ok := p.dist.Between(from, v); ok && d < left-1 {
			return true
		}
	}

	return false
}
