// Package dijkstra finds shortest paths over implicit weighted graphs.
//
// The graph is never built up front: a neighbor function returns the
// outgoing edges of a node when it is settled, so grids, puzzle states and
// other generated graphs can be searched directly. Weights must be
// non-negative.
//
// Key features:
//
//   - Multi-source search: pass Source more than once (or with several
//     nodes) to measure the distance to the nearest of them.
//   - WithTarget stops as soon as one node's distance is final.
//   - WithMaxDistance bounds the search radius.
//   - Result.PathTo rebuilds a shortest path from the predecessor map.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(next, dijkstra.Source(start), dijkstra.WithTarget(goal))
//	if err != nil {
//	    return err
//	}
//	d, ok := res.Distance(goal)
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package dijkstra
