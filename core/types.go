// Package core declares Edge, Graph, GraphStats, the sentinel errors and the
// NewGraph constructor.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNodeCount indicates NewGraph was asked for fewer than zero vertices.
	ErrNegativeNodeCount = errors.New("core: negative node count")

	// ErrNodeOutOfRange indicates a vertex id outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrInvalidProbability indicates an activation probability outside [0,1] (or NaN).
	ErrInvalidProbability = errors.New("core: probability out of range")

	// ErrSealed indicates a mutation was attempted on a sealed graph.
	ErrSealed = errors.New("core: graph is sealed")

	// ErrInvalidSeedCount indicates a seed budget k that is negative or exceeds NodeCount().
	ErrInvalidSeedCount = errors.New("core: invalid seed count")
)

// Edge is one adjacency entry: the neighbor reached and the probability
// that an active owner activates it.
type Edge struct {
	// To is the neighbor vertex id.
	To int

	// P is the activation probability in [0,1].
	P float64
}

// Graph is the undirected probabilistic graph.
//
// mu guards adjacency and sealed while the graph is being built. After Seal
// the adjacency never changes, so readers do not lock.
type Graph struct {
	mu sync.Mutex

	// Storage
	adjacency [][]Edge // adjacency[u] = edges leaving u, insertion order
	edgeCount int      // undirected edges added (a mirrored pair counts once)

	sealed bool
}

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	MinDegree     int
	MaxDegree     int
	IsolatedCount int
	Sealed        bool
}

// NewGraph creates a mutable graph with n vertices (ids 0..n-1) and no edges.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrNegativeNodeCount)
	}

	return &Graph{adjacency: make([][]Edge, n)}, nil
}

// CheckSeedCount returns ErrInvalidSeedCount unless 0 ≤ k ≤ g.NodeCount().
func CheckSeedCount(g *Graph, k int) error {
	if k < 0 || k > g.NodeCount() {
		return fmt.Errorf("k=%d with %d nodes: %w", k, g.NodeCount(), ErrInvalidSeedCount)
	}

	return nil
}
