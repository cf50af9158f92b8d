package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/advent/sequence"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNoSource indicates that no source node was given.
	ErrNoSource = errors.New("dijkstra: no source node")

	// ErrNilNeighbors indicates that the neighbor function is nil.
	ErrNilNeighbors = errors.New("dijkstra: neighbor function is nil")

	// ErrNegativeWeight indicates that a neighbor function produced a negative edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that the requested node was never reached.
	ErrNoPath = errors.New("dijkstra: no path to node")
)

// Unreachable is the distance reported for nodes that were never reached.
const Unreachable int64 = math.MaxInt64

// Edge is one outgoing, weighted edge of an implicit graph.
type Edge[N comparable] struct {
	To     N
	Weight int64
}

// Options configures a Dijkstra run.
//
// Sources     – nodes at distance 0. At least one is required.
// Target      – if set, the search stops once this node is settled.
// MaxDistance – nodes farther than this are not explored. Default: no cap.
type Options[N comparable] struct {
	Sources     []N
	Target      *N
	MaxDistance int64
}

// Option represents a functional option for configuring Dijkstra.
type Option[N comparable] func(*Options[N])

// Source adds a start node; call it more than once for a multi-source search.
func Source[N comparable](nodes ...N) Option[N] {
	return func(o *Options[N]) {
		o.Sources = append(o.Sources, nodes...)
	}
}

// WithTarget stops the search as soon as target's distance is final.
func WithTarget[N comparable](target N) Option[N] {
	return func(o *Options[N]) {
		o.Target = &target
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance for negative values.
func WithMaxDistance[N comparable](limit int64) Option[N] {
	if limit < 0 {
		panic(ErrBadMaxDistance)
	}
	return func(o *Options[N]) {
		o.MaxDistance = limit
	}
}

// DefaultOptions returns Options with no sources, no target and no distance cap.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{MaxDistance: math.MaxInt64}
}

// Result holds the settled distances of one run and the predecessor of
// every node reached from another node.
type Result[N comparable] struct {
	Dist    map[N]int64
	Prev    map[N]N
	settled []N
}

// Distance returns the shortest distance to n, or Unreachable and false.
func (r *Result[N]) Distance(n N) (int64, bool) {
	d, ok := r.Dist[n]
	if !ok {
		return Unreachable, false
	}

	return d, true
}

// Settled yields every node whose distance is final, nearest first.
func (r *Result[N]) Settled() *sequence.Sequence[N] {
	return sequence.FromSlice(r.settled)
}

// PathTo returns the nodes from the nearest source to dest, both inclusive.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, ErrNoPath
	}
	path := []N{dest}
	for cur := dest; ; {
		p, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
