package centrality

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/seedspread/bfs"
	"github.com/katalvlaran/seedspread/core"
)

// Betweenness computes Brandes' betweenness centrality, treating every
// adjacency entry as one unweighted hop.
//
// For every source s a BFS yields σ (shortest-path counts), the
// predecessor lists and the visit order. Dependencies are then accumulated
// in reverse visit order:
//
//	δ[p] += σ[p]/σ[w] · (1 + δ[w])   for every predecessor entry p of w
//	C[w] += δ[w]                       for w ≠ s
//
// Parallel edges count as distinct shortest paths. Each unordered pair is
// counted from both endpoints (no halving); only the ranking is used.
//
// ctx is checked once per source; on cancellation the result is nil and the
// error wraps both ErrCancelled and ctx.Err().
//
// Complexity: O(V·E) time, O(V+E) memory.
func Betweenness(ctx context.Context, g *core.Graph) (Scores, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.NodeCount()
	scores := make(Scores, n)
	delta := make([]float64, n)
	for s := 0; s < n; s++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		res, err := bfs.Run(g, s, bfs.WithContext(ctx))
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
			}
			return nil, fmt.Errorf("Betweenness: source %d: %w", s, err)
		}

		for _, w := range res.Order {
			delta[w] = 0
		}
		for i := len(res.Order) - 1; i >= 0; i-- {
			w := res.Order[i]
			coeff := (1 + delta[w]) / res.Sigma[w]
			for _, p := range res.Preds[w] {
				delta[p] += res.Sigma[p] * coeff
			}
			if w != s {
				scores[w] += delta[w]
			}
		}
	}

	return scores, nil
}
