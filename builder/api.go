// SPDX-License-Identifier: MIT
// Package: seedspread/builder
//
// api.go - public entry point and the draft every constructor writes to.

package builder

import (
	"fmt"

	"github.com/katalvlaran/seedspread/core"
)

// Constructor appends one topology to the draft using the resolved
// builderConfig. Constructors validate parameters before touching the
// draft, return sentinel errors and never panic.
type Constructor func(d *draft, cfg builderConfig) error

// draftEdge is an undirected edge waiting to be inserted.
type draftEdge struct {
	u, v int
	p    float64
}

// draft accumulates vertex blocks and edges before the node count is known.
type draft struct {
	n     int
	edges []draftEdge
}

// block reserves k fresh vertex ids and returns the first one.
func (d *draft) block(k int) int {
	base := d.n
	d.n += k

	return base
}

// edge queues u–v with the next probability from cfg.
func (d *draft) edge(u, v int, cfg builderConfig) {
	d.edges = append(d.edges, draftEdge{u: u, v: v, p: cfg.prob()})
}

// BuildGraph resolves bopts, applies every constructor in order and
// returns the sealed graph.
//
// Errors:
//   - constructor errors, wrapped as "BuildGraph: %w";
//   - core.ErrInvalidProbability if a ProbFn yields a value outside [0,1].
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	d := &draft{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.NewGraph(d.n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	for _, e := range d.edges {
		if err := g.AddEdge(e.u, e.v, e.p); err != nil {
			return nil, fmt.Errorf("BuildGraph: AddEdge(%d,%d,%g): %w", e.u, e.v, e.p, err)
		}
	}
	g.Seal()

	return g, nil
}
