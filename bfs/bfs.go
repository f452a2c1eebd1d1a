// Package bfs provides breadth-first sweeps over an index adjacency list,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// A sweep explores vertices in increasing distance from a source vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"
)

// walker encapsulates mutable sweep state.
type walker struct {
	adj   [][]int
	opts  Options
	ctx   context.Context
	queue []int
	res   *Result
}

// Sweep runs breadth-first search over adj starting from src,
// applying any number of functional Options.
// Returns ErrAdjacencyNil or ErrSourceOutOfRange for invalid input,
// ErrOptionViolation for bad options, ErrNeighborOutOfRange for a malformed
// adjacency row, ctx.Err() on cancellation, or any wrapped OnVisit error.
func Sweep(adj [][]int, src int, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrAdjacencyNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(adj)
	if src < 0 || src >= n {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrSourceOutOfRange, src, n)
	}

	// Prepare walker
	w := &walker{
		adj:   adj,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Source: src,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	// Seed queue with the source (no parent)
	w.enqueue(src, 0, Unreached)

	return w.res, w.loop()
}

// enqueue marks v reached at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		// cancellation check (once per vertex)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[head]
		if err := w.visit(v); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(v); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(v int) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor of v in adjacency order.
func (w *walker) enqueueNeighbors(v int) error {
	nextDepth := w.res.Depth[v] + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range w.adj[v] {
		if nbr < 0 || nbr >= len(w.adj) {
			return fmt.Errorf("%w: %d→%d", ErrNeighborOutOfRange, v, nbr)
		}
		if !w.opts.FilterNeighbor(v, nbr) {
			continue
		}
		// first time seen?
		if w.res.Depth[nbr] == Unreached {
			w.enqueue(nbr, nextDepth, v)
		}
	}

	return nil
}
