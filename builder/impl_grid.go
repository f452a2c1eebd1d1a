// SPDX-License-Identifier: MIT
// Package: valvenet/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1, rows*cols ≥ 2 (else ErrTooFewVertices).
//   • Vertex index r*cols+c (row-major), ID cfg.idFn(index).
//   • For each cell in row-major order: right edge, then down edge.
//
// Complexity:
//   • Time: O(R*C) vertices + O(2*R*C) edges.

package builder

import "github.com/katalvlaran/valvenet/core"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds an R×C 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodGrid, rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, cols, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, rows*cols, minPathNodes); err != nil {
			return err
		}
		if err := addVertices(methodGrid, g, rows*cols, cfg.idFn); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := r*cols + c
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg.idFn, cell, cell+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg.idFn, cell, cell+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
