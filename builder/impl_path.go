// SPDX-License-Identifier: MIT
// Package: valvenet/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1)–i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import "github.com/katalvlaran/valvenet/core"

// File-local constants for method tagging and parameter minima.
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		if err := addVertices(methodPath, g, n, cfg.idFn); err != nil {
			return err
		}
		// Emit path edges 0–1–2–…–(n-1) in stable order.
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, cfg.idFn, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
