package cascade

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/seedspread/core"
)

// Simulate runs one Independent Cascade from seeds and returns every node
// that ever became active.
//
// Waves: the frontier starts as the (deduplicated) seed set. Each wave
// visits frontier nodes in ascending id order; for every adjacency entry
// whose target is not yet active (and not blocked) one sample is drawn from
// rng, and the target joins the next frontier when sample < p. A target
// already won earlier in the same wave still consumes a draw from every
// remaining frontier neighbor, so the draw sequence depends only on the
// graph, the seeds and the stream. The loop ends when a wave activates
// nothing; every wave adds at least one new node, so it terminates after at
// most NodeCount() waves.
//
// Errors:
//   - ErrGraphNil, ErrNilSource, ErrSeedOutOfRange for invalid input.
//   - ErrOptionViolation if the blocked mask has the wrong length.
//   - ErrCancelled (wrapping ctx.Err()) if ctx is done between waves.
//
// Complexity: O(V + E) per run plus frontier sorting.
func Simulate(ctx context.Context, g *core.Graph, seeds []int, rng Source, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if rng == nil {
		return Result{}, ErrNilSource
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	n := g.NodeCount()
	if o.Blocked != nil && len(o.Blocked) != n {
		return Result{}, fmt.Errorf("%w: blocked mask has %d entries, graph has %d nodes", ErrOptionViolation, len(o.Blocked), n)
	}

	active := make([]bool, n)
	frontier := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if s < 0 || s >= n {
			return Result{}, fmt.Errorf("%w: %d not in [0,%d)", ErrSeedOutOfRange, s, n)
		}
		if !active[s] {
			active[s] = true
			frontier = append(frontier, s)
		}
	}
	count := len(frontier)

	var (
		next    []int
		pending = make([]bool, n)
		waves   int
	)
	for len(frontier) > 0 {
		select {
		case <-ctx.Done():
			return Result{}, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
		default:
		}

		sort.Ints(frontier)
		next = next[:0]
		for _, u := range frontier {
			edges, err := g.Neighbors(u)
			if err != nil {
				return Result{}, err
			}
			for _, e := range edges {
				if active[e.To] || (o.Blocked != nil && o.Blocked[e.To]) {
					continue
				}
				if rng.Float64() < e.P && !pending[e.To] {
					pending[e.To] = true
					next = append(next, e.To)
				}
			}
		}
		if len(next) == 0 {
			break
		}

		waves++
		for _, v := range next {
			active[v] = true
			pending[v] = false
		}
		count += len(next)
		o.OnWave(waves, next)

		// swap buffers: the old frontier becomes scratch space
		frontier, next = next, frontier
	}

	res := Result{Activated: make([]int, 0, count), Waves: waves}
	for v, on := range active {
		if on {
			res.Activated = append(res.Activated, v)
		}
	}
	o.OnComplete(res)

	return res, nil
}
