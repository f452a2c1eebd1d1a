// SPDX-License-Identifier: MIT
// Package: valvenet/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertex 0 is the hub; leaves 1..n-1 attach to it in ascending order.
//
// Complexity:
//   • Time: O(n) vertices + O(n-1) edges.

package builder

import "github.com/katalvlaran/valvenet/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub cfg.idFn(0).
// With WithZeroStart the hub is a worthless junction, so every activation
// costs a return trip through it.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		if err := addVertices(methodStar, g, n, cfg.idFn); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := addEdge(methodStar, g, cfg.idFn, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
