package dfs

import (
	"context"
	"errors"
)

const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack.
	Black        // Black: the node and everything it points to are done.
)

var (
	// ErrNilNeighbors is returned when the neighbor function is nil.
	ErrNilNeighbors = errors.New("dfs: neighbor function is nil")

	// ErrCycleDetected indicates that TopologicalSort ran into a cycle.
	// The returned error wraps it and names the nodes on the cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
