// Package distance is the all-pairs hop oracle used by the valve scheduler.
//
// What
//
//   - Build runs one bfs.Sweep per source over an index adjacency list and
//     freezes the results into a Table: hop counts plus a predecessor tree
//     per source for path reconstruction.
//   - FloydWarshall computes the same Table by dense k→i→j closure; it is
//     kept as an independent cross-check of Build.
//
// Contract
//
//   - Between(a, b) reports (hops, true) for reachable pairs and (0, false)
//     otherwise. Callers treat absence as infinite distance; it is never an
//     error.
//   - Between(a, a) is (0, true).
//   - A Table is immutable after construction and safe for concurrent reads.
//
// Complexity (V vertices, E edges)
//
//   - Build:         Time O(V·(V+E)), Space O(V²)
//   - FloydWarshall: Time O(V³),     Space O(V²)
//   - Between/Reachable O(1); Path O(hops).
package distance
