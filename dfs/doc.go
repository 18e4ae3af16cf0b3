// Package dfs implements depth-first search on core.Graph: single-source
// trees, full forests and connected components.
//
// Key features:
//   - Run(g, start, opts...): traverse from a root, or every tree of the
//     forest with WithFullTraversal.
//   - Hooks: OnVisit (pre-order) and OnExit (post-order); an error aborts.
//   - Cancellation via context.Context, checked once per discovered vertex.
//   - Components(ctx, g): vertex sets of the connected components.
//
// The walk keeps an explicit stack, so graphs with millions of vertices in
// a single path do not exhaust the goroutine stack. Neighbors are explored
// in adjacency (insertion) order, which makes Order reproducible.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if start is outside [0, NodeCount()).
//   - ctx.Err()               if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
