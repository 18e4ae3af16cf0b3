package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/seedspread/core"
)

// frame is one vertex on the explicit stack with its next adjacency index.
type frame struct {
	u    int
	next int
}

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
	stack []frame
}

// Run performs depth-first search on g from start, or over the whole forest
// when WithFullTraversal is set.
func Run(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.NodeCount()
	if !o.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	res := &Result{
		Order:     make([]int, 0, n),
		Depth:     make([]int, n),
		Parent:    make([]int, n),
		Component: make([]int, n),
	}
	for u := 0; u < n; u++ {
		res.Depth[u], res.Parent[u], res.Component[u] = -1, -1, -1
	}

	w := &walker{graph: g, opts: o, res: res}
	if !o.FullTraversal {
		if err := w.tree(start); err != nil {
			return nil, err
		}
		return res, nil
	}
	for u := 0; u < n; u++ {
		if res.Depth[u] >= 0 {
			continue
		}
		if err := w.tree(u); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// Components returns the vertex sets of g's connected components. Each set
// is ascending; sets are ordered by their smallest vertex.
func Components(ctx context.Context, g *core.Graph) ([][]int, error) {
	res, err := Run(g, 0, WithContext(ctx), WithFullTraversal())
	if err != nil {
		return nil, err
	}

	comps := make([][]int, res.Trees)
	for u, c := range res.Component {
		comps[c] = append(comps[c], u)
	}

	return comps, nil
}

// tree walks the DFS tree rooted at root.
func (w *walker) tree(root int) error {
	comp := w.res.Trees
	w.res.Trees++
	if err := w.discover(root, -1, 0, comp); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		edges, err := w.graph.Neighbors(top.u)
		if err != nil {
			return err
		}
		if top.next < len(edges) {
			v := edges[top.next].To
			top.next++
			if w.res.Depth[v] >= 0 {
				continue
			}
			u := top.u
			if err := w.discover(v, u, w.res.Depth[u]+1, comp); err != nil {
				return err
			}
			continue
		}

		u := top.u
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(u); err != nil {
				return fmt.Errorf("dfs: OnExit(%d): %w", u, err)
			}
		}
		w.res.Order = append(w.res.Order, u)
		w.stack = w.stack[:len(w.stack)-1]
	}

	return nil
}

// discover marks v, fires OnVisit and pushes it.
func (w *walker) discover(v, parent, depth, comp int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.Component[v] = comp
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit(%d): %w", v, err)
		}
	}
	w.stack = append(w.stack, frame{u: v})

	return nil
}
