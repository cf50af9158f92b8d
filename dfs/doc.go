// Package dfs implements depth-first topological sorting of implicit
// directed graphs.
//
// What:
//
//   - TopologicalSort: orders the nodes reachable from a set of roots so
//     that every node precedes the nodes it points to, returning an error
//     wrapping ErrCycleDetected (with the offending cycle) otherwise.
//
// Why:
//
//   - Evaluate dependency graphs such as expression trees or build steps:
//     walk the order backwards and every dependency is ready when needed.
//   - Detect cycles before evaluating, instead of recursing forever.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers.
//   - TopoOption: functional options (WithCancelContext).
//
// Complexity: O(V + E) time, O(V) memory.
package dfs
