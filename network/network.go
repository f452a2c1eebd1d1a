package network

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/valvenet/bitset"
	"github.com/katalvlaran/valvenet/core"
)

// MaxNodes is the largest network an activation set can describe.
const MaxNodes = bitset.Width

// Node is one activatable location.
//
// Neighbors lists the IDs reachable in one hop, in the order the search
// will try them.
type Node struct {
	ID        string
	Rate      int
	Neighbors []string
}

// Network is an immutable arena of nodes addressed by dense index
// 0..Len()-1, in the order they were declared. It is safe for concurrent use.
type Network struct {
	nodes []Node
	index map[string]int
	adj   [][]int
}

// New validates nodes and freezes them into a Network.
//
// Steps:
//  1. Reject empty input and more than MaxNodes nodes.
//  2. Register every ID in a strict directed core.Graph (declaration order
//     becomes the dense index), rejecting empty, duplicate and negative entries.
//  3. Link neighbors; the first undefined reference is reported.
//
// Errors are *ConfigError wrapping one of the package sentinels. lines,
// when non-nil, maps node position to its 1-based source line.
func New(nodes []Node) (*Network, error) {
	return build(nodes, nil)
}

func build(nodes []Node, lines []int) (*Network, error) {
	lineOf := func(i int) int {
		if lines == nil {
			return 0
		}
		return lines[i]
	}

	// 1) Size limits
	if len(nodes) == 0 {
		return nil, &ConfigError{Err: ErrEmptyNetwork}
	}
	if len(nodes) > MaxNodes {
		return nil, &ConfigError{
			Line: lineOf(MaxNodes),
			Err:  fmt.Errorf("%w: %d > %d", ErrTooManyNodes, len(nodes), MaxNodes),
		}
	}

	// 2) Vertices
	g := core.NewGraph(core.WithDirected(true), core.WithStrictVertices(), core.WithLoops())
	for i, nd := range nodes {
		switch {
		case nd.ID == "":
			return nil, &ConfigError{Line: lineOf(i), Err: ErrEmptyID}
		case nd.Rate < 0:
			return nil, &ConfigError{Line: lineOf(i), Node: nd.ID, Err: fmt.Errorf("%w: %d", ErrNegativeRate, nd.Rate)}
		case g.HasVertex(nd.ID):
			return nil, &ConfigError{Line: lineOf(i), Node: nd.ID, Err: ErrDuplicateNode}
		}
		if err := g.AddVertex(nd.ID); err != nil {
			return nil, &ConfigError{Line: lineOf(i), Node: nd.ID, Err: err}
		}
	}

	// 3) Edges
	for i, nd := range nodes {
		dangling := make(map[string]struct{})
		for _, nb := range nd.Neighbors {
			if nb == "" {
				return nil, &ConfigError{Line: lineOf(i), Node: nd.ID, Err: ErrEmptyID}
			}
			err := g.AddEdge(nd.ID, nb)
			switch {
			case err == nil, errors.Is(err, core.ErrMultiEdgeNotAllowed):
				// repeated neighbor entries collapse into one edge
			case errors.Is(err, core.ErrVertexNotFound):
				dangling[nb] = struct{}{}
			default:
				return nil, &ConfigError{Line: lineOf(i), Node: nd.ID, Err: err}
			}
		}
		if len(dangling) > 0 {
			missing := maps.Keys(dangling)
			slices.Sort(missing)
			return nil, &ConfigError{
				Line: lineOf(i),
				Node: nd.ID,
				Err:  fmt.Errorf("%w: %v", ErrDanglingNeighbor, missing),
			}
		}
	}

	// Freeze
	net := &Network{
		nodes: make([]Node, len(nodes)),
		index: make(map[string]int, len(nodes)),
		adj:   g.IndexAdjacency(),
	}
	for i, nd := range nodes {
		nbrs, _ := g.NeighborIDs(nd.ID)
		net.nodes[i] = Node{ID: nd.ID, Rate: nd.Rate, Neighbors: nbrs}
		net.index[nd.ID] = i
	}

	return net, nil
}

// Len returns the number of nodes.
func (n *Network) Len() int { return len(n.nodes) }

// Index returns the dense index of id.
func (n *Network) Index(id string) (int, bool) {
	i, ok := n.index[id]

	return i, ok
}

// Node returns a copy of the node at index i. Panics if i is out of range.
func (n *Network) Node(i int) Node {
	nd := n.nodes[i]
	nd.Neighbors = slices.Clone(nd.Neighbors)

	return nd
}

// ID returns the identifier of node i.
func (n *Network) ID(i int) string { return n.nodes[i].ID }

// Rate returns the rate of node i.
func (n *Network) Rate(i int) int { return n.nodes[i].Rate }

// Neighbors returns the neighbor indices of node i in declaration order.
// The slice is shared; callers must not modify it.
func (n *Network) Neighbors(i int) []int { return n.adj[i] }

// Adjacency returns a copy of the full index adjacency list.
func (n *Network) Adjacency() [][]int {
	out := make([][]int, len(n.adj))
	for i, row := range n.adj {
		out[i] = slices.Clone(row)
	}

	return out
}

// IDs returns every node ID in index order.
func (n *Network) IDs() []string {
	ids := make([]string, len(n.nodes))
	for i, nd := range n.nodes {
		ids[i] = nd.ID
	}

	return ids
}

// Nodes returns copies of every node in index order; New(n.Nodes())
// rebuilds an equal network.
func (n *Network) Nodes() []Node {
	out := make([]Node, len(n.nodes))
	for i := range n.nodes {
		out[i] = n.Node(i)
	}

	return out
}

// Activatable returns the set of nodes with a positive rate.
func (n *Network) Activatable() bitset.Set {
	var s bitset.Set
	for i, nd := range n.nodes {
		if nd.Rate > 0 {
			s = s.With(i)
		}
	}

	return s
}
