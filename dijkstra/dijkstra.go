package dijkstra

import (
	"container/heap"
	"fmt"
)

// Dijkstra computes shortest distances from the source nodes over the
// implicit graph described by neighbors. Nodes are discovered lazily, so
// the graph may be infinite as long as a Target or MaxDistance bounds the
// search.
//
// Returns:
//
//   - Result.Dist: the final distance of every settled node. With a Target,
//     nodes still queued when the target settles are left out.
//   - Result.Prev: the predecessor of every settled non-source node.
//   - err: ErrNoSource, ErrNilNeighbors, or ErrNegativeWeight wrapped with
//     the offending edge.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[N comparable](neighbors func(N) []Edge[N], opts ...Option[N]) (*Result[N], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.Sources) == 0 {
		return nil, ErrNoSource
	}
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}

	// 2) Seed every source at distance 0
	r := &runner[N]{
		neighbors: neighbors,
		options:   cfg,
		best:      make(map[N]int64),
		res: &Result[N]{
			Dist: make(map[N]int64),
			Prev: make(map[N]N),
		},
	}
	r.init()

	// 3) Run the main loop
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N comparable] struct {
	neighbors func(N) []Edge[N]
	options   Options[N]
	best      map[N]int64 // tentative distances, settled or not
	prev      map[N]N     // tentative predecessors
	res       *Result[N]
	pq        nodePQ[N]
	seq       int
}

func (r *runner[N]) init() {
	r.prev = make(map[N]N)
	heap.Init(&r.pq)
	for _, s := range r.options.Sources {
		if _, dup := r.best[s]; dup {
			continue
		}
		r.best[s] = 0
		r.push(s, 0)
	}
}

// push queues n; seq keeps equal distances in insertion order.
func (r *runner[N]) push(n N, d int64) {
	heap.Push(&r.pq, &nodeItem[N]{id: n, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly settles the nearest queued node and relaxes its edges.
// It stops when the queue empties, the Target settles, or the nearest
// distance exceeds MaxDistance.
func (r *runner[N]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[N])
		u, d := item.id, item.dist

		// stale entry
		if _, done := r.res.Dist[u]; done || d > r.best[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}

		r.res.Dist[u] = d
		r.res.settled = append(r.res.settled, u)
		if p, ok := r.prev[u]; ok {
			r.res.Prev[u] = p
		}
		if r.options.Target != nil && u == *r.options.Target {
			break
		}

		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of u.
func (r *runner[N]) relax(u N, du int64) error {
	for _, e := range r.neighbors(u) {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
		}
		if _, done := r.res.Dist[e.To]; done {
			continue
		}
		nd := du + e.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		// strict improvement only, so ties keep the first predecessor
		if old, seen := r.best[e.To]; seen && nd >= old {
			continue
		}
		r.best[e.To] = nd
		r.prev[e.To] = u
		r.push(e.To, nd)
	}

	return nil
}

// nodeItem is a queued node and its tentative distance.
type nodeItem[N comparable] struct {
	id   N
	dist int64
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by seq.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ[N comparable] []*nodeItem[N]

func (pq nodePQ[N]) Len() int { return len(pq) }

func (pq nodePQ[N]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[N]) Push(x any) { *pq = append(*pq, x.(*nodeItem[N])) }

func (pq *nodePQ[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
