package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/valvenet/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Undirected, loop-free, lenient by default; individual tests may override
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"), "empty graph should not have A")
	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(s.g.AddVertex("A"))
	require.True(s.g.HasVertex("A"))

	// Idempotence: adding again keeps count and index
	require.NoError(s.g.AddVertex("A"))
	require.Equal(1, s.g.VertexCount())
	v, err := s.g.Vertex("A")
	require.NoError(err)
	require.Equal(0, v.Index)
}

func (s *GraphSuite) TestDenseIndicesFollowInsertion() {
	require := require.New(s.T())
	for _, id := range []string{"Z", "M", "A"} {
		require.NoError(s.g.AddVertex(id))
	}
	require.Equal([]string{"Z", "M", "A"}, s.g.Vertices())
	for i, id := range s.g.Vertices() {
		v, err := s.g.Vertex(id)
		require.NoError(err)
		require.Equal(i, v.Index)
	}

	_, err := s.g.Vertex("missing")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestAddEdgeUndirectedMirrors() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B"))
	require.True(s.g.HasVertex("A") && s.g.HasVertex("B"), "AddEdge should auto-add vertices")
	require.True(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "A"), "expected mirror edge in undirected graph")
	require.Equal(1, s.g.EdgeCount())

	// Re-adding in either direction is a multi-edge
	require.ErrorIs(s.g.AddEdge("A", "B"), core.ErrMultiEdgeNotAllowed)
	require.ErrorIs(s.g.AddEdge("B", "A"), core.ErrMultiEdgeNotAllowed)
}

func (s *GraphSuite) TestDirectedEdgesAreOneWay() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithDirected(true))
	require.True(g.Directed())
	require.NoError(g.AddEdge("X", "Y"))
	require.True(g.HasEdge("X", "Y"))
	require.False(g.HasEdge("Y", "X"))
	require.NoError(g.AddEdge("Y", "X"), "reverse edge is distinct in directed mode")
	require.Equal(2, g.EdgeCount())
}

func (s *GraphSuite) TestLoops() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddEdge("A", "A"), core.ErrLoopNotAllowed)

	g := core.NewGraph(core.WithLoops())
	require.NoError(g.AddEdge("A", "A"))
	deg, err := g.Degree("A")
	require.NoError(err)
	require.Equal(1, deg, "a self-loop counts once")
}

func (s *GraphSuite) TestStrictVertices() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithStrictVertices(), core.WithDirected(true))
	require.True(g.Strict())
	require.NoError(g.AddVertex("A"))

	err := g.AddEdge("A", "B")
	require.ErrorIs(err, core.ErrVertexNotFound)
	require.Contains(err.Error(), `"B"`)
	require.False(g.HasVertex("B"), "strict mode must not create endpoints")

	require.NoError(g.AddVertex("B"))
	require.NoError(g.AddEdge("A", "B"))
}

func (s *GraphSuite) TestNeighborOrderAndIndexAdjacency() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{"AA", "BB", "CC", "DD"} {
		require.NoError(g.AddVertex(id))
	}
	require.NoError(g.AddEdge("AA", "DD"))
	require.NoError(g.AddEdge("AA", "BB"))
	require.NoError(g.AddEdge("BB", "CC"))

	nbrs, err := g.NeighborIDs("AA")
	require.NoError(err)
	require.Equal([]string{"DD", "BB"}, nbrs, "insertion order, not lexical")

	_, err = g.NeighborIDs("")
	require.ErrorIs(err, core.ErrEmptyVertexID)
	_, err = g.NeighborIDs("ZZ")
	require.ErrorIs(err, core.ErrVertexNotFound)

	require.Equal([][]int{{3, 1}, {2}, {}, {}}, g.IndexAdjacency())
}

func (s *GraphSuite) TestConcurrentReaders() {
	require := require.New(s.T())
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		require.NoError(s.g.AddEdge(e[0], e[1]))
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.g.IndexAdjacency()
			_ = s.g.Vertices()
			_, _ = s.g.NeighborIDs("B")
		}()
	}
	wg.Wait()
	require.Equal(4, s.g.VertexCount())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
