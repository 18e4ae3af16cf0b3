// Package centrality scores vertices of a core.Graph and ranks them.
package centrality

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/seedspread/core"
)

// Sentinel errors for centrality scoring.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrCancelled is returned when the context is done mid-computation.
	// It always wraps the context error as well.
	ErrCancelled = errors.New("centrality: cancelled")
)

// Scores holds one value per vertex id.
type Scores []float64

// TopK returns the k highest-scoring vertex ids, highest first; equal
// scores are ordered by ascending id.
// Returns core.ErrInvalidSeedCount if k < 0 or k > len(s).
// Complexity: O(V log V).
func (s Scores) TopK(k int) ([]int, error) {
	if k < 0 || k > len(s) {
		return nil, fmt.Errorf("TopK: k=%d with %d nodes: %w", k, len(s), core.ErrInvalidSeedCount)
	}

	ids := make([]int, len(s))
	for i := range ids {
		ids[i] = i
	}
	// ids start ascending, so a stable sort keeps lower ids first on ties
	sort.SliceStable(ids, func(a, b int) bool {
		return s[ids[a]] > s[ids[b]]
	})

	return ids[:k:k], nil
}
