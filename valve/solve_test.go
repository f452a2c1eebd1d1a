package valve_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/valvenet/network"
	"github.com/katalvlaran/valvenet/search"
	"github.com/katalvlaran/valvenet/valve"
)

// SolveSuite runs the end-to-end scenarios on the example network.
type SolveSuite struct {
	suite.Suite
	net *network.Network
}

func (s *SolveSuite) SetupSuite() {
	s.net = load(s.T(), "example.txt")
}

func (s *SolveSuite) problem(horizon, agents int) *valve.Problem {
	p, err := valve.NewProblem(s.net, valve.WithHorizon(horizon), valve.WithAgents(agents))
	s.Require().NoError(err)

	return p
}

var models = []valve.Model{valve.Hop, valve.Travel}

func (s *SolveSuite) TestSingleAgent() {
	p := s.problem(30, 1)
	for _, m := range models {
		res, err := valve.Solve(context.Background(), p, valve.WithModel(m))
		s.Require().NoError(err, m)
		s.Equal(1651, res.Value, m)
		s.Positive(res.Stats.Expanded, m)
	}
}

func (s *SolveSuite) TestTwoAgents() {
	p := s.problem(26, 2)
	for _, m := range models {
		res, err := valve.Solve(context.Background(), p, valve.WithModel(m))
		s.Require().NoError(err, m)
		s.Equal(1707, res.Value, m)

		sym, err := valve.Solve(context.Background(), p, valve.WithModel(m), valve.WithSymmetryReduction())
		s.Require().NoError(err, m)
		s.Equal(1707, sym.Value, m)
	}
}

func (s *SolveSuite) TestPruningPoliciesAgree() {
	cases := []struct {
		name    string
		horizon int
		agents  int
		model   valve.Model
		want    int
	}{
		{"hop/1", 30, 1, valve.Hop, 1651},
		{"travel/1", 30, 1, valve.Travel, 1651},
		{"travel/2", 26, 2, valve.Travel, 1707},
	}
	for _, tc := range cases {
		p := s.problem(tc.horizon, tc.agents)
		for _, opts := range [][]valve.Option{
			{valve.WithDominance(false)},
			{valve.WithDrain()},
			{valve.WithDominance(false), valve.WithDrain()},
		} {
			res, err := valve.Solve(context.Background(), p, append(opts, valve.WithModel(tc.model))...)
			s.Require().NoError(err, tc.name)
			s.Equal(tc.want, res.Value, tc.name)
		}
	}
}

func (s *SolveSuite) TestIdempotent() {
	p := s.problem(26, 2)
	first, err := valve.Solve(context.Background(), p, valve.WithTrace())
	s.Require().NoError(err)
	for i := 0; i < 3; i++ {
		again, err := valve.Solve(context.Background(), p, valve.WithTrace())
		s.Require().NoError(err)
		s.Equal(first.Value, again.Value)
		s.Equal(first.Stats, again.Stats, "exploration order is deterministic")
		s.Equal(first.Steps, again.Steps)
	}
}

func (s *SolveSuite) TestHorizonZero() {
	p := s.problem(0, 2)
	for _, m := range models {
		res, err := valve.Solve(context.Background(), p, valve.WithModel(m), valve.WithTrace())
		s.Require().NoError(err)
		s.Zero(res.Value)
		s.Empty(res.Steps)
		s.Equal(1, res.Stats.Popped)
	}
}

func (s *SolveSuite) TestHistoryAndPopLimit() {
	p := s.problem(30, 1)
	full, err := valve.Solve(context.Background(), p, valve.WithHistory(), valve.WithBoundPruning(false))
	s.Require().NoError(err)
	s.Require().NotEmpty(full.History)
	s.Equal(1651, full.History[len(full.History)-1].Value)
	for i := 1; i < len(full.History); i++ {
		s.Greater(full.History[i].Value, full.History[i-1].Value)
	}

	for _, limit := range []int{1, 10, 100, 1000} {
		part, err := valve.Solve(context.Background(), p, valve.WithPopLimit(limit))
		if err != nil {
			s.ErrorIs(err, search.ErrPopLimit)
			s.Equal(limit, part.Stats.Popped)
		}
		s.LessOrEqual(part.Value, 1651, "limit=%d", limit)
	}
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

func TestSolve_SurplusAgents(t *testing.T) {
	// a single activatable node: the second agent has nothing to do
	net, err := network.New([]network.Node{
		{ID: "AA", Rate: 0, Neighbors: []string{"BB"}},
		{ID: "BB", Rate: 10, Neighbors: []string{"AA"}},
	})
	require.NoError(t, err)

	one, err := valve.NewProblem(net, valve.WithHorizon(6))
	require.NoError(t, err)
	two, err := valve.NewProblem(net, valve.WithHorizon(6), valve.WithAgents(2))
	require.NoError(t, err)

	for _, m := range models {
		r1, err := valve.Solve(context.Background(), one, valve.WithModel(m))
		require.NoError(t, err)
		r2, err := valve.Solve(context.Background(), two, valve.WithModel(m))
		require.NoError(t, err)

		assert.Equal(t, 40, r1.Value, m) // move, then activate with 4 steps left
		assert.Equal(t, r1.Value, r2.Value, m)
		assert.LessOrEqual(t, r2.Value, 5*10, "trivial bound (horizon-1)*rate")
	}
}

func TestSolve_SharedStartNode(t *testing.T) {
	// both agents start on the only valve; one activates, the other waits
	net, err := network.New([]network.Node{{ID: "AA", Rate: 3}})
	require.NoError(t, err)
	p, err := valve.NewProblem(net, valve.WithHorizon(4), valve.WithAgents(2))
	require.NoError(t, err)

	for _, m := range models {
		res, err := valve.Solve(context.Background(), p, valve.WithModel(m), valve.WithTrace())
		require.NoError(t, err)
		assert.Equal(t, 9, res.Value, m)
	}
}

func TestSolve_Errors(t *testing.T) {
	_, err := valve.Solve(context.Background(), nil)
	assert.ErrorIs(t, err, valve.ErrNilProblem)

	p, err := valve.NewProblem(load(t, "example.txt"))
	require.NoError(t, err)

	_, err = valve.Solve(context.Background(), p, valve.WithPopLimit(-1))
	assert.ErrorIs(t, err, valve.ErrOptionViolation)

	_, err = valve.Solve(context.Background(), p, valve.WithModel(valve.Model(7)))
	assert.ErrorIs(t, err, valve.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := valve.Solve(ctx, p)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Stats.Popped)
}

func TestParseModel(t *testing.T) {
	for _, m := range models {
		got, err := valve.ParseModel(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := valve.ParseModel("teleport")
	assert.ErrorIs(t, err, valve.ErrOptionViolation)
	assert.Equal(t, "model(9)", valve.Model(9).String())
}
