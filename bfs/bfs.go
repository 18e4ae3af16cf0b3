// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, shortest-path counts, predecessor lists and visit order.
//
// Activation probabilities are ignored for path-length purposes: every
// adjacency entry is one hop.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/seedspread/core"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// Run executes breadth-first search on g from start, applying any number of
// functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit hook error.
func Run(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartVertexNotFound, start, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start: start,
			Order: make([]int, 0, n),
			Depth: make([]int, n),
			Sigma: make([]float64, n),
			Preds: make([][]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = -1
	}

	// Seed queue with the start vertex: one (empty) path of length 0.
	w.res.Depth[start] = 0
	w.res.Sigma[start] = 1
	w.queue = append(w.queue, queueItem{id: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.relax(item); err != nil {
			return err
		}
	}

	return nil
}

// relax scans the adjacency of item, discovering unseen neighbors and
// accumulating shortest-path counts for neighbors one level deeper.
func (w *walker) relax(item queueItem) error {
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}

	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	res := w.res
	for _, e := range edges {
		if !w.opts.FilterNeighbor(item.id, e.To, e.P) {
			continue
		}
		// first time seen?
		if res.Depth[e.To] < 0 {
			res.Depth[e.To] = nextDepth
			w.queue = append(w.queue, queueItem{id: e.To, depth: nextDepth})
		}
		// shortest path via item?
		if res.Depth[e.To] == nextDepth {
			res.Sigma[e.To] += res.Sigma[item.id]
			res.Preds[e.To] = append(res.Preds[e.To], item.id)
		}
	}

	return nil
}
