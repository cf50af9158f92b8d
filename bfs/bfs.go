// Package bfs provides breadth-first search over an implicit graph given by
// a neighbor function, returning unweighted distances, parent links, and
// visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	neighbors func(N) []N
	opts      Options[N]
	ctx       context.Context
	queue     []queueItem[N]
	res       *Result[N]
}

// BFS runs breadth-first search from start, asking neighbors for the
// outgoing edges of every dequeued node and applying any number of
// functional Options.
// Returns ErrNilNeighbors for a nil neighbor function, ErrOptionViolation
// for bad options, the context error on cancellation, or any user-supplied
// hook error. The partial Result is returned alongside a traversal error.
func BFS[N comparable](start N, neighbors func(N) []N, opts ...Option[N]) (*Result[N], error) {
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[N]{
		neighbors: neighbors,
		opts:      o,
		ctx:       o.Ctx,
		res: &Result[N]{
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks node reached at depth d, calls OnEnqueue,
// and adds it to the queue.
func (w *walker[N]) enqueue(node N, d int) {
	w.res.Depth[node] = d
	w.opts.OnEnqueue(node, d)
	w.queue = append(w.queue, queueItem[N]{node: node, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N]) dequeue() queueItem[N] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor of item.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.neighbors(item.node) {
		if !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		// first time seen?
		if _, seen := w.res.Depth[nbr]; !seen {
			w.res.Parent[nbr] = item.node
			w.enqueue(nbr, nextDepth)
		}
	}
}
