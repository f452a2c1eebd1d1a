package network_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/bitset"
	"github.com/katalvlaran/valvenet/network"
)

func loadExample(t *testing.T) *network.Network {
	t.Helper()
	f, err := os.Open("testdata/example.txt")
	require.NoError(t, err)
	defer f.Close()
	net, err := network.Parse(f)
	require.NoError(t, err)

	return net
}

func TestParse_Example(t *testing.T) {
	net := loadExample(t)
	require.Equal(t, 10, net.Len())
	assert.Equal(t, []string{"AA", "BB", "CC", "DD", "EE", "FF", "GG", "HH", "II", "JJ"}, net.IDs())

	aa, ok := net.Index("AA")
	require.True(t, ok)
	assert.Equal(t, 0, aa)
	assert.Equal(t, []string{"DD", "II", "BB"}, net.Node(aa).Neighbors, "neighbor order is kept")
	assert.Equal(t, []int{3, 8, 1}, net.Neighbors(aa))

	hh, _ := net.Index("HH")
	assert.Equal(t, 22, net.Rate(hh))
	assert.Equal(t, []string{"GG"}, net.Node(hh).Neighbors, "singular 'tunnel leads to valve'")

	assert.Equal(t, bitset.Of(1, 2, 3, 4, 7, 9), net.Activatable())

	_, ok = net.Index("ZZ")
	assert.False(t, ok)
}

func TestParse_GenericForm(t *testing.T) {
	f, err := os.Open("testdata/generic.txt")
	require.NoError(t, err)
	defer f.Close()

	net, err := network.Parse(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "left", "right", "far"}, net.IDs())
	assert.Equal(t, [][]int{{1, 2}, {0}, {0, 3}, {2}}, net.Adjacency())
	assert.Equal(t, 11, net.Rate(3))
}

func TestParse_Errors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  error
		line  int
		node  string
	}{
		{"empty", "\n# nothing\n", network.ErrEmptyNetwork, 0, ""},
		{"syntax", "Valve AA has flow rate=0; tunnels lead to valves BB\nbogus line\n", network.ErrSyntax, 2, ""},
		{"duplicate", "node A has value 1; connects to A\nnode A has value 2; connects to A\n", network.ErrDuplicateNode, 2, "A"},
		{"negative", "node A has value -3; connects to\n", network.ErrNegativeRate, 1, "A"},
		{"dangling", "node A has value 1; connects to B\nnode C has value 0; connects to A, Y, X\n", network.ErrDanglingNeighbor, 1, "A"},
		{"empty neighbor", "node A has value 1; connects to A, , A\n", network.ErrEmptyID, 1, "A"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := network.ParseString(tc.input)
			require.ErrorIs(t, err, tc.want)
			var cfg *network.ConfigError
			require.True(t, errors.As(err, &cfg))
			assert.Equal(t, tc.line, cfg.Line)
			assert.Equal(t, tc.node, cfg.Node)
		})
	}
}

func TestParse_DanglingListsMissingSorted(t *testing.T) {
	_, err := network.ParseString("node C has value 0; connects to Y, X\n")
	require.ErrorIs(t, err, network.ErrDanglingNeighbor)
	assert.Contains(t, err.Error(), "[X Y]")
	assert.Contains(t, err.Error(), "line 1")
}

func TestNew_Validation(t *testing.T) {
	_, err := network.New([]network.Node{{ID: "", Rate: 1}})
	assert.ErrorIs(t, err, network.ErrEmptyID)

	many := make([]network.Node, network.MaxNodes+1)
	for i := range many {
		many[i] = network.Node{ID: fmt.Sprintf("n%d", i)}
	}
	_, err = network.New(many)
	assert.ErrorIs(t, err, network.ErrTooManyNodes)

	net, err := network.New(many[:network.MaxNodes])
	require.NoError(t, err)
	assert.Equal(t, network.MaxNodes, net.Len())
}

func TestNew_RepeatedNeighborCollapses(t *testing.T) {
	net, err := network.New([]network.Node{
		{ID: "A", Rate: 1, Neighbors: []string{"B", "B", "A"}},
		{ID: "B", Rate: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, net.Neighbors(0))
}

func TestNetwork_CopiesAreIndependent(t *testing.T) {
	net := loadExample(t)
	nd := net.Node(0)
	nd.Neighbors[0] = "XX"
	adj := net.Adjacency()
	adj[0][0] = 99

	assert.Equal(t, "DD", net.Node(0).Neighbors[0])
	assert.Equal(t, 3, net.Neighbors(0)[0])
}

func TestFormat_RoundTrip(t *testing.T) {
	net := loadExample(t)
	var buf bytes.Buffer
	require.NoError(t, network.Format(&buf, net))
	assert.True(t, strings.HasPrefix(buf.String(), "Valve AA has flow rate=0; tunnels lead to valves DD, II, BB\n"))
	assert.Contains(t, buf.String(), "Valve HH has flow rate=22; tunnel leads to valve GG\n")

	again, err := network.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, net.Nodes(), again.Nodes())

	rebuilt, err := network.New(net.Nodes())
	require.NoError(t, err)
	assert.Equal(t, net.Adjacency(), rebuilt.Adjacency())
}
