// Package bfs provides breadth-first search over an implicit graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - The graph is never materialized: a neighbor function returns the
//     outgoing edges of a node when it is dequeued, so grids, state spaces
//     and voxel fields work as well as explicit adjacency lists.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are enqueued in the order the neighbor function returns them,
//	so a deterministic neighbor function gives a reproducible visit order.
//
// Complexity (V = reached nodes, E = edges examined)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (for queue, Depth map, Parent map)
//
// Usage
//
//	// Flood fill a 2-D grid from the origin:
//	result, err := bfs.BFS(origin, func(p Point) []Point { return open(p) })
//	if err != nil {
//	    // ErrNilNeighbors, ErrOptionViolation, ctx error, or hook errors
//	}
//
//	// With functional options (the node type is spelled out once):
//	result, err := bfs.BFS(
//	    "start", next,
//	    bfs.WithContext[string](ctx),
//	    bfs.WithMaxDepth[string](3),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrNilNeighbors     if the neighbor function is nil.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath           from Result.PathTo for unreached nodes.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
