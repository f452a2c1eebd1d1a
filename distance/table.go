package distance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/valvenet/bfs"
)

// unreachable marks a missing pair in the flat hop buffer.
const unreachable = -1

// ErrNilAdjacency is returned when Build or FloydWarshall receive nil.
var ErrNilAdjacency = errors.New("distance: adjacency is nil")

// Table is a frozen all-pairs hop table over n dense vertex indices.
//
// hops and pred are row-major n×n buffers: hops[a*n+b] is the hop count
// a→b (or unreachable) and pred[a*n+b] is b's predecessor on one shortest
// a→b path (or unreachable for b == a and for missing pairs).
type Table struct {
	n    int
	hops []int
	pred []int
}

func newTable(n int) *Table {
	t := &Table{n: n, hops: make([]int, n*n), pred: make([]int, n*n)}
	for i := range t.hops {
		t.hops[i] = unreachable
		t.pred[i] = unreachable
	}

	return t
}

// Build computes the table with one breadth-first sweep per source.
//
// Errors:
//   - ErrNilAdjacency for nil input.
//   - bfs.ErrNeighborOutOfRange (wrapped) for a malformed adjacency row.
func Build(adj [][]int) (*Table, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	n := len(adj)
	t := newTable(n)
	for src := 0; src < n; src++ {
		res, err := bfs.Sweep(adj, src)
		if err != nil {
			return nil, fmt.Errorf("distance: sweep from %d: %w", src, err)
		}
		base := src * n
		copy(t.hops[base:base+n], res.Depth)
		copy(t.pred[base:base+n], res.Parent)
	}

	return t, nil
}

// N returns the number of vertices covered by the table.
func (t *Table) N() int { return t.n }

// Between returns the hop count a→b and whether b is reachable from a.
// Out-of-range indices report (0, false).
func (t *Table) Between(a, b int) (int, bool) {
	if a < 0 || b < 0 || a >= t.n || b >= t.n {
		return 0, false
	}
	d := t.hops[a*t.n+b]
	if d == unreachable {
		return 0, false
	}

	return d, true
}

// Reachable reports whether b can be reached from a.
func (t *Table) Reachable(a, b int) bool {
	_, ok := t.Between(a, b)

	return ok
}

// Path returns one shortest hop sequence a→b, both endpoints included,
// or nil when b is unreachable from a.
func (t *Table) Path(a, b int) []int {
	d, ok := t.Between(a, b)
	if !ok {
		return nil
	}
	path := make([]int, d+1)
	row := a * t.n
	for i, cur := d, b; i >= 0; i-- {
		path[i] = cur
		cur = t.pred[row+cur]
	}

	return path
}

// Equal reports whether two tables agree on every hop count.
// Predecessors may differ between equally short paths and are ignored.
func (t *Table) Equal(o *Table) bool {
	if t.n != o.n {
		return false
	}
	for i, d := range t.hops {
		if o.hops[i] != d {
			return false
		}
	}

	return true
}
