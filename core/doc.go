// Package core provides the probabilistic Graph store shared by every
// seedspread algorithm.
//
// The Graph G = (V,E) is undirected and carries, for every edge, the
// probability that an active endpoint activates the other one:
//
//   - Dense integer vertex IDs in [0, NodeCount()).
//   - Mirrored insertion: AddEdge(u,v,p) stores u→v and v→u with the same p,
//     so Neighbors(u) and Neighbors(v) both see the edge.
//   - Parallel edges are kept as separate adjacency entries (they count toward
//     Degree and toward shortest-path multiplicity).
//   - A self-loop is stored once.
//   - Neighbor order is insertion order, which keeps every algorithm built on
//     top of the store deterministic for a fixed input file.
//
// Lifecycle:
//
//	g, _ := core.NewGraph(n)      // mutable
//	_ = g.AddEdge(0, 1, 0.25)     // validated: ids in range, p ∈ [0,1]
//	g.Seal()                      // immutable from here on
//	_ = g.AddEdge(1, 2, 0.5)      // → ErrSealed
//
// Once sealed, a Graph is read-only; any number of goroutines may query it
// without synchronization.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)          // O(n)
//	AddEdge(u, v int, p float64) error       // O(1) amortized
//	Seal()                                   // O(1)
//	Neighbors(u int) ([]Edge, error)         // O(1), live read-only slice
//	Degree(u int) (int, error)               // O(1)
//	NodeCount() int / EdgeCount() int        // O(1)
//	Stats() GraphStats                       // O(V+E)
//
// Errors:
//
//	ErrNegativeNodeCount  - NewGraph(n) with n < 0.
//	ErrNodeOutOfRange     - vertex id outside [0, n).
//	ErrInvalidProbability - probability outside [0,1] or NaN.
//	ErrSealed             - mutation attempted after Seal.
//	ErrInvalidSeedCount   - seed budget k outside [0, n] (see CheckSeedCount).
package core
