package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/advent/sequence"
)

// Errors reported by BFS and Result.
var (
	// ErrNilNeighbors is returned when no neighbor function is supplied.
	ErrNilNeighbors = errors.New("bfs: neighbor function is nil")

	// ErrOptionViolation wraps the first bad Option passed to BFS.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a node the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option tweaks a flood fill. A bad Option does not panic: BFS returns
// ErrOptionViolation before touching the start node.
type Option[N comparable] func(*Options[N])

// Options is the resolved configuration of one BFS call.
type Options[N comparable] struct {
	// Ctx is checked once per dequeued node.
	Ctx context.Context

	// OnEnqueue sees every node the first time it is discovered.
	OnEnqueue func(node N, depth int)

	// OnDequeue sees a node just before OnVisit.
	OnDequeue func(node N, depth int)

	// OnVisit may stop the fill by returning an error, which BFS wraps.
	OnVisit func(node N, depth int) error

	// MaxDepth bounds how far from the start nodes are expanded; 0 means
	// no bound.
	MaxDepth int

	// FilterNeighbor drops the step curr -> neighbor when it returns false.
	FilterNeighbor func(curr, neighbor N) bool

	err error
}

// DefaultOptions is an unbounded fill with no hooks and no filter.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:            context.Background(),
		OnEnqueue:      func(N, int) {},
		OnDequeue:      func(N, int) {},
		OnVisit:        func(N, int) error { return nil },
		FilterNeighbor: func(_, _ N) bool { return true },
	}
}

// WithContext makes BFS stop with ctx.Err() once ctx is done. nil is
// ignored.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue sets Options.OnEnqueue.
func WithOnEnqueue[N comparable](fn func(node N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue sets Options.OnDequeue.
func WithOnDequeue[N comparable](fn func(node N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit sets Options.OnVisit.
func WithOnVisit[N comparable](fn func(node N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth keeps the fill within d steps of the start. Nodes at depth d
// are visited but not expanded. d == 0 removes the bound; a negative d is an
// ErrOptionViolation.
func WithMaxDepth[N comparable](d int) Option[N] {
	return func(o *Options[N]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth %d < 0", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor sets Options.FilterNeighbor.
func WithFilterNeighbor[N comparable](fn func(curr, neighbor N) bool) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is what a flood fill reached. Depth holds the step count of every
// reached node; Parent links each one but the start back toward it.
type Result[N comparable] struct {
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}

// Reached reports whether the search got to n.
func (r *Result[N]) Reached(n N) bool {
	_, ok := r.Depth[n]

	return ok
}

// Visited yields the reached nodes in visit order.
func (r *Result[N]) Visited() *sequence.Sequence[N] {
	return sequence.FromSlice(r.Order)
}

// PathTo walks Parent back from dest and returns the route start..dest.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	path := []N{dest}
	for prev, ok := r.Parent[dest]; ok; prev, ok = r.Parent[prev] {
		path = append(path, prev)
	}
	slices.Reverse(path)

	return path, nil
}
