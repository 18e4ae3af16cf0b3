// Package core: Graph method implementations.
//
// Mutation (AddEdge, Seal) is serialized by g.mu. Queries read adjacency
// directly: they are safe concurrently with each other at any time, and
// concurrently with everything once the graph is sealed.

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts the undirected edge {u,v} with activation probability p.
// The edge is mirrored: u→v and v→u are both appended, except for a self-loop,
// which is stored once. Parallel edges are kept.
//
// Errors:
//   - ErrSealed if the graph was sealed.
//   - ErrNodeOutOfRange if u or v is outside [0, NodeCount()).
//   - ErrInvalidProbability if p is NaN or outside [0,1].
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, p float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSealed)
	}
	n := len(g.adjacency)
	if u < 0 || u >= n {
		return fmt.Errorf("AddEdge(%d,%d): u=%d not in [0,%d): %w", u, v, u, n, ErrNodeOutOfRange)
	}
	if v < 0 || v >= n {
		return fmt.Errorf("AddEdge(%d,%d): v=%d not in [0,%d): %w", u, v, v, n, ErrNodeOutOfRange)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("AddEdge(%d,%d): p=%g not in [0,1]: %w", u, v, p, ErrInvalidProbability)
	}

	g.adjacency[u] = append(g.adjacency[u], Edge{To: v, P: p})
	if u != v {
		g.adjacency[v] = append(g.adjacency[v], Edge{To: u, P: p})
	}
	g.edgeCount++

	return nil
}

// Seal freezes the graph. Further AddEdge calls fail with ErrSealed.
// Sealing twice is a no-op.
func (g *Graph) Seal() {
	g.mu.Lock()
	g.sealed = true
	g.mu.Unlock()
}

// Sealed reports whether Seal has been called.
func (g *Graph) Sealed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.sealed
}

// Neighbors returns the adjacency entries of u in insertion order.
// The returned slice is the live storage: treat it as read-only.
// Complexity: O(1).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if u < 0 || u >= len(g.adjacency) {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrNodeOutOfRange)
	}

	return g.adjacency[u], nil
}

// Degree returns the number of adjacency entries of u. Every mirrored edge
// contributes once to each endpoint; parallel edges count separately.
func (g *Graph) Degree(u int) (int, error) {
	if u < 0 || u >= len(g.adjacency) {
		return 0, fmt.Errorf("Degree(%d): %w", u, ErrNodeOutOfRange)
	}

	return len(g.adjacency[u]), nil
}

// NodeCount returns the number of vertices.
func (g *Graph) NodeCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of AddEdge calls that succeeded.
func (g *Graph) EdgeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.edgeCount
}

// Stats computes a GraphStats summary in a single pass over the adjacency.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	st := GraphStats{
		NodeCount: g.NodeCount(),
		EdgeCount: g.EdgeCount(),
		Sealed:    g.Sealed(),
	}
	if st.NodeCount == 0 {
		return st
	}

	st.MinDegree = math.MaxInt
	var d int
	for _, edges := range g.adjacency {
		d = len(edges)
		if d < st.MinDegree {
			st.MinDegree = d
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
		if d == 0 {
			st.IsolatedCount++
		}
	}

	return st
}
