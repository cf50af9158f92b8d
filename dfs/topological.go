package dfs

import (
	"fmt"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[N comparable] struct {
	next  func(N) []N
	opts  topoOptions
	state map[N]int // White, Gray or Black
	stack []N       // current path, for reporting cycles
	order []N       // post-order
}

// TopologicalSort orders every node reachable from roots so that each node
// comes before all the nodes next says it points to. Roots are explored in
// the given order and so are the results of next, which makes the output
// deterministic.
//
// If a cycle is reachable, the returned error wraps ErrCycleDetected and
// lists the cycle. You may pass WithCancelContext(ctx) to enable
// cancellation.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
func TopologicalSort[N comparable](roots []N, next func(N) []N, options ...TopoOption) ([]N, error) {
	if next == nil {
		return nil, ErrNilNeighbors
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	sorter := &topoSorter[N]{
		next:  next,
		opts:  opts,
		state: make(map[N]int),
	}
	for _, r := range roots {
		if sorter.state[r] == White {
			if err := sorter.visit(r); err != nil {
				return nil, err
			}
		}
	}
	// reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}
	if sorter.order == nil {
		sorter.order = []N{}
	}

	return sorter.order, nil
}

func (t *topoSorter[N]) visit(id N) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: %v", ErrCycleDetected, t.cycleTo(id))
	case Black:
		return nil
	}

	t.state[id] = Gray
	t.stack = append(t.stack, id)
	for _, n := range t.next(id) {
		if err := t.visit(n); err != nil {
			return err
		}
	}
	t.stack = t.stack[:len(t.stack)-1]
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}

// cycleTo returns the stack from id's first occurrence, closed with id.
func (t *topoSorter[N]) cycleTo(id N) []N {
	for i, n := range t.stack {
		if n == id {
			return append(append([]N(nil), t.stack[i:]...), id)
		}
	}

	return []N{id}
}
