// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeCount.
// Determinism:
//   - Adjacency buckets keep edge insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// AddEdge links from→to (and to→from when the graph is undirected).
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Resolve endpoints: create them, or in strict mode fail with
//     ErrVertexNotFound naming the missing endpoint.
//  3. Reject a second edge between the same ordered endpoints.
//  4. Append to adjacency[from]; mirror into adjacency[to] if undirected.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrVertexNotFound (strict mode),
//     ErrMultiEdgeNotAllowed.
//
// Complexity: O(deg(from)) for the duplicate check.
func (g *Graph) AddEdge(from, to string) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops { // loop constraint (flag is immutable)
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Resolve endpoints
	if g.strict {
		if _, ok := g.vertices[from]; !ok {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, from)
		}
		if _, ok := g.vertices[to]; !ok {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, to)
		}
	} else {
		g.addVertexLocked(from)
		g.addVertexLocked(to)
	}

	// 3) Multi-edge check
	if slices.Contains(g.adjacency[from], to) {
		return fmt.Errorf("%w: %q→%q", ErrMultiEdgeNotAllowed, from, to)
	}

	// 4) Link and mirror
	g.adjacency[from] = append(g.adjacency[from], to)
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], from)
	}
	g.edges++

	return nil
}

// HasEdge reports whether an edge from→to exists (either direction counts
// for undirected graphs, because both buckets are populated).
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Contains(g.adjacency[from], to)
}

// EdgeCount returns the number of AddEdge calls that succeeded.
// A mirrored undirected edge counts once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
