// SPDX-License-Identifier: MIT
// Package: valvenet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildNetwork(bopts, cons...). Creates g, resolves cfg,
//     runs cons in order, assigns rates, freezes a network.Network.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical networks.
//
// AI-Hints (practical):
//   - Compose constructors to assemble richer fixtures (e.g. Star + Path share IDs).
//   - Use WithSeed(...) to freeze RandomSparse and any random RateFn.
//   - WithZeroStart() mimics inputs whose entry node is worthless.

package builder

import (
	"fmt"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/network"
)

// Constructor applies a deterministic topology mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an undirected core.Graph, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g, err := buildTopology(cfg, cons)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// BuildNetwork runs the constructors like BuildGraph, then assigns one rate
// per vertex in index order using cfg.rateFn and freezes a network.
//
// Rate policy:
//   - Vertex 0 gets rate 0 when WithZeroStart is set.
//   - Every other vertex gets cfg.rateFn(cfg.rng), in index order.
//
// Errors:
//   - Constructor errors (wrapped, errors.Is against builder sentinels).
//   - ErrNeedRandSource when the RateFn requires an RNG and none is set.
//   - *network.ConfigError from network.New (e.g. more than 64 vertices).
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*network.Network, error) {
	cfg := newBuilderConfig(bopts...)
	g, err := buildTopology(cfg, cons)
	if err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}
	if cfg.rateNeedsRNG && cfg.rng == nil {
		return nil, fmt.Errorf("BuildNetwork: random rates: %w", ErrNeedRandSource)
	}

	ids := g.Vertices()
	nodes := make([]network.Node, len(ids))
	for i, id := range ids {
		nbrs, _ := g.NeighborIDs(id)
		rate := 0
		if i > 0 || !cfg.zeroStart {
			rate = cfg.rateFn(cfg.rng)
		}
		nodes[i] = network.Node{ID: id, Rate: rate, Neighbors: nbrs}
	}
	net, err := network.New(nodes)
	if err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	return net, nil
}

func buildTopology(cfg builderConfig, cons []Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	for i, fn := range cons {
		// Defensive: reject a nil constructor to avoid a panic later.
		if fn == nil {
			return nil, fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, err
		}
	}
	if g.VertexCount() == 0 {
		return nil, fmt.Errorf("no vertices: %w", ErrConstructFailed)
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
// Complexity: O(n) vertices + O(n) edges.
//func Cycle(n int) Constructor

// Path builds a simple path P_n (n ≥ 2).
// Complexity: O(n) vertices + O(n-1) edges.
//func Path(n int) Constructor

// Star builds a star with center idFn(0) and n-1 leaves (n ≥ 2).
// Complexity: O(n) vertices + O(n-1) edges.
//func Star(n int) Constructor

// Complete builds the complete simple graph K_n (n ≥ 1).
// Complexity: O(n) vertices + O(n²) edges.
//func Complete(n int) Constructor

// Grid builds an R×C 4-neighborhood grid, vertex r*C+c (row-major).
// Complexity: O(R*C) vertices + O(R*C) edges.
//func Grid(rows, cols int) Constructor

// RandomSparse builds an Erdős–Rényi-like sparse graph.
// Requires cfg.rng != nil for 0 < p < 1.
// Complexity: O(n²) pair checks. Deterministic for fixed seed and options.
//func RandomSparse(n int, p float64) Constructor
