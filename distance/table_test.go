package distance_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/valvenet/bfs"
	"github.com/katalvlaran/valvenet/distance"
)

// randomAdjacency returns a directed adjacency of n vertices where each
// ordered pair is linked with probability p.
func randomAdjacency(rng *rand.Rand, n int, p float64) [][]int {
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		adj[i] = []int{}
		for j := 0; j < n; j++ {
			if i != j && rng.Float64() < p {
				adj[i] = append(adj[i], j)
			}
		}
	}

	return adj
}

func TestBuild_NilAndMalformed(t *testing.T) {
	_, err := distance.Build(nil)
	assert.ErrorIs(t, err, distance.ErrNilAdjacency)
	_, err = distance.FloydWarshall(nil)
	assert.ErrorIs(t, err, distance.ErrNilAdjacency)

	_, err = distance.Build([][]int{{3}})
	assert.ErrorIs(t, err, bfs.ErrNeighborOutOfRange)
	_, err = distance.FloydWarshall([][]int{{3}})
	assert.ErrorIs(t, err, bfs.ErrNeighborOutOfRange)
}

func TestBuild_SmallCycle(t *testing.T) {
	// 0–1–2–3–0 plus an isolated 4
	adj := [][]int{{1, 3}, {0, 2}, {1, 3}, {2, 0}, {}}
	tab, err := distance.Build(adj)
	require.NoError(t, err)
	require.Equal(t, 5, tab.N())

	d, ok := tab.Between(0, 2)
	assert.True(t, ok)
	assert.Equal(t, 2, d)

	d, ok = tab.Between(3, 3)
	assert.True(t, ok)
	assert.Zero(t, d)

	_, ok = tab.Between(0, 4)
	assert.False(t, ok, "unreachable pairs report absence, not an error")
	assert.False(t, tab.Reachable(4, 0))
	assert.Nil(t, tab.Path(0, 4))

	_, ok = tab.Between(-1, 9)
	assert.False(t, ok)

	assert.Equal(t, []int{0, 1, 2}, tab.Path(0, 2))
	assert.Equal(t, []int{2}, tab.Path(2, 2))
}

// TestBuild_MatchesFloydWarshall cross-checks both constructions on random
// directed graphs and validates every reconstructed path.
func TestBuild_MatchesFloydWarshall(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	for round := 0; round < 40; round++ {
		n := 1 + rng.Intn(12)
		adj := randomAdjacency(rng, n, 0.25)

		sweep, err := distance.Build(adj)
		require.NoError(t, err)
		dense, err := distance.FloydWarshall(adj)
		require.NoError(t, err)
		require.True(t, sweep.Equal(dense), "round %d: tables differ", round)

		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				d, ok := sweep.Between(a, b)
				if !ok {
					continue
				}
				for _, tab := range []*distance.Table{sweep, dense} {
					path := tab.Path(a, b)
					require.Len(t, path, d+1)
					require.Equal(t, a, path[0])
					require.Equal(t, b, path[len(path)-1])
					for i := 0; i+1 < len(path); i++ {
						require.True(t, slices.Contains(adj[path[i]], path[i+1]),
							"path %v uses a missing edge", path)
					}
				}
			}
		}
	}
}

func TestTable_EqualDetectsDifference(t *testing.T) {
	a, err := distance.Build([][]int{{1}, {}})
	require.NoError(t, err)
	b, err := distance.Build([][]int{{1}, {0}})
	require.NoError(t, err)
	c, err := distance.Build([][]int{{}})
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.Equal(a))
}
