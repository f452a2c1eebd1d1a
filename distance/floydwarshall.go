package distance

import (
	"fmt"

	"github.com/katalvlaran/valvenet/bfs"
)

// FloydWarshall computes the same Table as Build by dense closure.
//
// Contract:
//   - Every edge costs one hop; repeated row entries and self-loops are harmless.
//
// Determinism:
//   - Loop order is fixed (k → i → j) and relaxation is strict, so ties
//     keep the first predecessor found.
//
// Complexity: Time O(V³), Space O(V²).
func FloydWarshall(adj [][]int) (*Table, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	n := len(adj)
	t := newTable(n)

	// Seed: diagonal 0, direct edges 1.
	for i := 0; i < n; i++ {
		t.hops[i*n+i] = 0
		for _, j := range adj[i] {
			if j < 0 || j >= n {
				return nil, fmt.Errorf("distance: %w: %d→%d", bfs.ErrNeighborOutOfRange, i, j)
			}
			if i != j && t.hops[i*n+j] == unreachable {
				t.hops[i*n+j] = 1
				t.pred[i*n+j] = i
			}
		}
	}

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			baseI = i * n
			ik = t.hops[baseI+k]
			if ik == unreachable {
				continue
			}
			for j = 0; j < n; j++ {
				kj = t.hops[baseK+j]
				if kj == unreachable {
					continue
				}
				cand = ik + kj
				if cur := t.hops[baseI+j]; cur == unreachable || cand < cur {
					t.hops[baseI+j] = cand
					t.pred[baseI+j] = t.pred[baseK+j]
				}
			}
		}
	}

	return t, nil
}
