// Package centrality provides the structural seed heuristics: degree and
// Brandes betweenness centrality, plus deterministic top-k ranking.
//
// Both scorers ignore activation probabilities. They are cheap stand-ins
// for simulation-based selection:
//
//	Degree       O(V)
//	Betweenness  O(V·E), one bfs.Run per source
//
// Ranking (Scores.TopK) is by descending score; ties go to the lower id.
//
// Errors
//
//   - ErrGraphNil if the graph pointer is nil.
//   - ErrCancelled (wrapping the context error) from Betweenness.
//   - core.ErrInvalidSeedCount from TopK when k is outside [0, V].
package centrality
