package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Run or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex is outside the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(u int) error

	// OnExit, if non-nil, is invoked once all descendants of a vertex have
	// been explored (post-order), before it is appended to Result.Order.
	OnExit func(u int) error

	// FullTraversal restarts the walk from every unvisited vertex, in
	// ascending id order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Background context, no hooks, single-source mode.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the Context for traversal. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(u int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(u int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithFullTraversal enables forest traversal; the start argument of Run
// is then ignored.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal. Slices are
// indexed by vertex id.
type Result struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Depth is the tree depth of each vertex, -1 when unvisited.
	Depth []int

	// Parent is the vertex each one was discovered from, -1 for roots and
	// unvisited vertices.
	Parent []int

	// Component is the index of the tree that reached each vertex, -1 when
	// unvisited. Trees are numbered in the order they were started.
	Component []int

	// Trees counts the DFS trees walked (1 in single-source mode).
	Trees int
}

// Visited reports whether u was reached.
func (r *Result) Visited(u int) bool {
	return u >= 0 && u < len(r.Depth) && r.Depth[u] >= 0
}
