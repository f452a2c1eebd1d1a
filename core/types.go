// Package core defines the Graph and Vertex types and the sentinel errors
// shared by its methods.
//
// This file declares Vertex, Graph, GraphOption, sentinel errors and the
// NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies the Vertex within its Graph; Index is its dense
// position in insertion order (0, 1, 2, ...). Neither changes after insertion.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Index is the zero-based insertion position of this Vertex.
	Index int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of all edges
// (true = directed, false = undirected mirrors every edge).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithStrictVertices makes AddEdge fail with ErrVertexNotFound when an
// endpoint has not been added with AddVertex beforehand.
func WithStrictVertices() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// Graph is the core in-memory graph data structure.
//
// mu protects every field below it; the configuration flags are immutable
// after NewGraph returns.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // edges are one-way
	allowLoops bool // allow self-loops
	strict     bool // AddEdge never creates vertices

	// Storage
	vertices map[string]*Vertex // vertex ID → Vertex
	order    []string           // vertex IDs by Index
	edges    int                // logical edge count (a mirrored edge counts once)

	// adjacency[from] = neighbor IDs in edge insertion order
	adjacency map[string][]string
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected, forbids loops and auto-creates
// endpoints in AddEdge.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string][]string),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Strict reports whether AddEdge requires pre-existing endpoints.
func (g *Graph) Strict() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.strict
}
