// File: frontier.go
// Role: Max-priority queue of search states on top of container/heap.
// Determinism:
//   - Equal priorities pop in insertion order (FIFO by sequence number).

package search

import "container/heap"

// Frontier is a max-priority queue of states.
//
// The zero value is ready to use. A Frontier is not safe for concurrent use.
type Frontier[S any, V Score] struct {
	items entries[S, V]
	seq   uint64
}

// entry pairs a state with its priority and insertion sequence.
type entry[S any, V Score] struct {
	state    S
	priority V
	seq      uint64
}

// Push adds s with the given priority.
// Complexity: O(log n).
func (f *Frontier[S, V]) Push(s S, priority V) {
	heap.Push(&f.items, entry[S, V]{state: s, priority: priority, seq: f.seq})
	f.seq++
}

// Pop removes and returns the state with the highest priority.
// Panics on an empty frontier.
// Complexity: O(log n).
func (f *Frontier[S, V]) Pop() (S, V) {
	e := heap.Pop(&f.items).(entry[S, V])

	return e.state, e.priority
}

// Peek returns the highest priority without removing it.
// ok is false on an empty frontier.
func (f *Frontier[S, V]) Peek() (priority V, ok bool) {
	if len(f.items) == 0 {
		return priority, false
	}

	return f.items[0].priority, true
}

// Len returns the number of queued states.
func (f *Frontier[S, V]) Len() int { return len(f.items) }

// entries implements heap.Interface: higher priority first, then lower seq.
type entries[S any, V Score] []entry[S, V]

// Len returns the number of items in the heap.
func (h entries[S, V]) Len() int { return len(h) }

// Less orders by priority descending, FIFO among equals.
func (h entries[S, V]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h entries[S, V]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an entry[S, V].
func (h *entries[S, V]) Push(x any) { *h = append(*h, x.(entry[S, V])) }

// Pop is called by heap.Pop and removes the last element.
func (h *entries[S, V]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	var zero entry[S, V]
	old[n-1] = zero // release the state for GC
	*h = old[:n-1]

	return e
}
