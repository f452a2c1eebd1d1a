// SPDX-License-Identifier: MIT
// Package: valvenet/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits edges for unordered pairs {i,j}, i<j, in lexicographic (i,j) order.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.

package builder

import "github.com/katalvlaran/valvenet/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n, where every node is one
// hop from every other.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		if err := addVertices(methodComplete, g, n, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg.idFn, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
