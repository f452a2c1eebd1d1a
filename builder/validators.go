// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/valvenet/core"
)

// Probability domain for RandomSparse and SparseRateFn.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// validateMin ensures that got ≥ min, wrapping ErrTooFewVertices otherwise.
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// addVertices inserts idFn(0..n-1) in ascending index order.
func addVertices(method string, g *core.Graph, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		id := idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge links idFn(i)–idFn(j) and wraps any core error. An edge already
// present (overlapping constructors) is left as is.
func addEdge(method string, g *core.Graph, idFn IDFn, i, j int) error {
	u, v := idFn(i), idFn(j)
	if err := g.AddEdge(u, v); err != nil && !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}
