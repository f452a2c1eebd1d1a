// Package core provides a small, thread-safe, unweighted in-memory Graph
// used as the validating builder behind valve networks.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops)
//   - Strict vertex mode (WithStrictVertices): AddEdge refuses to create
//     endpoints on the fly and reports ErrVertexNotFound instead, which is
//     how dangling references in an input description are detected.
//   - Dense vertex indices: every vertex receives Index = insertion order,
//     so a frozen graph maps directly onto an arena addressed by int.
//   - Insertion-ordered adjacency: NeighborIDs and IndexAdjacency return
//     neighbors in the order their edges were added, which keeps search
//     branching reproducible and faithful to the input.
//   - A single sync.RWMutex guarding every catalog.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1), idempotent
//	HasVertex(id string) bool           // O(1)
//	Vertex(id string) (*Vertex, error)  // O(1)
//	Vertices() []string                 // O(V), insertion order
//	VertexCount() int                   // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string) error      // O(deg(from))
//	HasEdge(from, to string) bool       // O(deg(from))
//	EdgeCount() int                     // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(deg), insertion order
//	Degree(id string) (int, error)           // O(1)
//	IndexAdjacency() [][]int                 // O(V+E) snapshot by Vertex.Index
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex (queries, strict AddEdge)
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – a second edge between the same endpoints
package core
