// File: methods_adjacent.go
// Role: Neighborhood queries and the index-adjacency snapshot used by
// arena-based consumers (bfs, distance, network).
//
// Determinism:
//   - NeighborIDs and IndexAdjacency preserve edge insertion order.

package core

import "fmt"

// NeighborIDs returns the IDs adjacent to id, in edge insertion order.
//
// Implementation:
//   - Stage 1: Validate id.
//   - Stage 2: Copy the adjacency bucket under the read lock.
//
// Returns:
//   - []string: freshly allocated; safe to retain and mutate.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// IndexAdjacency returns adjacency translated to dense vertex indices:
// result[i] lists the Index of every neighbor of the vertex whose Index is
// i, in edge insertion order.
//
// Implementation:
//   - Stage 1: Under the read lock, walk vertices by Index.
//   - Stage 2: Translate every neighbor ID through the vertex catalog.
//
// Determinism:
//   - Fully deterministic for a fixed sequence of mutations.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph) IndexAdjacency() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := make([][]int, len(g.order))
	for i, id := range g.order {
		nbrs := g.adjacency[id]
		row := make([]int, len(nbrs))
		for j, nb := range nbrs {
			row[j] = g.vertices[nb].Index
		}
		adj[i] = row
	}

	return adj
}
