// Package bfs provides breadth-first sweeps over a dense index adjacency
// list, returning unweighted shortest-path distances, parent links, and
// visit order. It is the per-source primitive behind the distance oracle.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a source.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: Depth[v] = distance (edges) from the source, or Unreached (-1)
//   - Parent: Parent[v] = predecessor in the BFS tree, or Unreached
//   - Supports functional hooks at two stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - One sweep per source yields the all-pairs hop table in O(V·(V+E)).
//
// Determinism
//
//	Neighbors are enqueued in adjacency-row order, so the visit sequence and
//	the parent tree are fully reproducible for a given adjacency.
//
// Complexity (V = len(adj), E = Σ len(adj[v]))
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, Depth, Parent)
//
// Usage
//
//	res, err := bfs.Sweep(adj, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 7 }),
//	)
//	if err != nil {
//	    // ErrAdjacencyNil, ErrSourceOutOfRange, ErrOptionViolation,
//	    // ErrNeighborOutOfRange, ctx.Err(), or a wrapped hook error
//	}
//	path, err := res.PathTo(5)
//
// Errors
//
//   - ErrAdjacencyNil        if the adjacency list is nil.
//   - ErrSourceOutOfRange    if src is not a valid index.
//   - ErrOptionViolation     if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighborOutOfRange  if a row names an index outside the list.
//   - ErrNoPath              from Result.PathTo for unreached vertices.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
