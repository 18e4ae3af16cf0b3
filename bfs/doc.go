// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, shortest-path counts, predecessor lists
// and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start, -1 when unreached
//   - Sigma: vertex → number of distinct shortest paths from start
//   - Preds: vertex → shortest-path predecessors
//   - Supports an OnVisit hook (may abort with an error).
//   - Allows filtering of individual adjacency entries via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Order, Sigma and Preds are exactly the per-source state Brandes'
//     betweenness algorithm needs; centrality.Betweenness consumes them.
//   - Activation probabilities play no role in path length.
//
// Determinism
//
//	core.Graph keeps adjacency in insertion order and BFS enqueues neighbors
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (Preds holds one entry per shortest-path edge)
//
// Usage
//
//	res, err := bfs.Run(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is outside the graph.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Context errors on cancellation, wrapped hook errors from OnVisit.
package bfs
