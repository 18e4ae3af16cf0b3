// Package strategy exposes every seed-selection heuristic behind one
// SeedStrategy capability and a name-keyed registry.
package strategy

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/seedspread/cascade"
	"github.com/katalvlaran/seedspread/centrality"
	"github.com/katalvlaran/seedspread/core"
	"github.com/katalvlaran/seedspread/greedy"
)

// Registered strategy names.
const (
	Greedy      = "greedy"
	CELF        = "celf"
	Marginal    = "marginal"
	Degree      = "degree"
	Betweenness = "betweenness"
)

// ErrUnknownStrategy is returned by New for a name not in Names().
var ErrUnknownStrategy = errors.New("strategy: unknown strategy")

// SeedStrategy selects k seed nodes from g.
type SeedStrategy interface {
	// Name returns the registry key.
	Name() string

	// Select returns k distinct node ids in selection order.
	Select(ctx context.Context, g *core.Graph, k int) ([]int, error)
}

// SpreadStrategy is a SeedStrategy that also tracks the nodes its seeds
// influenced while selecting them.
type SpreadStrategy interface {
	SeedStrategy
	SelectWithSpread(ctx context.Context, g *core.Graph, k int) (seeds, influenced []int, err error)
}

// Deps carries what strategies may need. Estimator is required by the
// simulation-driven strategies only.
type Deps struct {
	Estimator *cascade.Estimator
	Logger    *zap.Logger

	// Selector receives extra options for greedy, celf and marginal.
	Selector []greedy.Option
}

type entry struct {
	label string
	build func(Deps) (SeedStrategy, error)
}

var registry = map[string]entry{
	Greedy: {"Greedy", func(d Deps) (SeedStrategy, error) {
		s, err := greedy.NewGreedy(d.Estimator, d.selectorOptions()...)
		if err != nil {
			return nil, err
		}
		return named{Greedy, s}, nil
	}},
	CELF: {"CELF", func(d Deps) (SeedStrategy, error) {
		s, err := greedy.NewCELF(d.Estimator, d.selectorOptions()...)
		if err != nil {
			return nil, err
		}
		return named{CELF, s}, nil
	}},
	Marginal: {"Marginal Gain", func(d Deps) (SeedStrategy, error) {
		s, err := greedy.NewMarginalGain(d.Estimator, d.selectorOptions()...)
		if err != nil {
			return nil, err
		}
		return marginal{s}, nil
	}},
	Degree: {"Degree Centrality", func(d Deps) (SeedStrategy, error) {
		return ranked{name: Degree, log: d.logger(), score: func(_ context.Context, g *core.Graph) (centrality.Scores, error) {
			return centrality.Degree(g)
		}}, nil
	}},
	Betweenness: {"Betweenness Centrality", func(d Deps) (SeedStrategy, error) {
		return ranked{name: Betweenness, log: d.logger(), score: centrality.Betweenness}, nil
	}},
}

// New builds the strategy registered under name.
func New(name string, deps Deps) (SeedStrategy, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownStrategy, name, Names())
	}
	s, err := e.build(deps)
	if err != nil {
		return nil, fmt.Errorf("strategy %s: %w", name, err)
	}

	return s, nil
}

// Names returns the registered names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Label returns the human-readable title of a registered strategy, or name
// itself if it is unknown.
func Label(name string) string {
	if e, ok := registry[name]; ok {
		return e.label
	}

	return name
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}

	return d.Logger
}

func (d Deps) selectorOptions() []greedy.Option {
	return append([]greedy.Option{greedy.WithLogger(d.logger())}, d.Selector...)
}

type selector interface {
	Select(ctx context.Context, g *core.Graph, k int) ([]int, error)
}

// named attaches a registry key to a greedy selector.
type named struct {
	name string
	selector
}

func (n named) Name() string { return n.name }

type marginal struct {
	*greedy.MarginalGain
}

func (marginal) Name() string { return Marginal }

// ranked selects the top-k vertices of a centrality score.
type ranked struct {
	name  string
	log   *zap.Logger
	score func(context.Context, *core.Graph) (centrality.Scores, error)
}

func (r ranked) Name() string { return r.name }

func (r ranked) Select(ctx context.Context, g *core.Graph, k int) ([]int, error) {
	if g == nil {
		return nil, centrality.ErrGraphNil
	}
	if err := core.CheckSeedCount(g, k); err != nil {
		return nil, fmt.Errorf("%s: %w", r.name, err)
	}
	scores, err := r.score(ctx, g)
	if err != nil {
		return nil, err
	}
	seeds, err := scores.TopK(k)
	if err != nil {
		return nil, err
	}
	r.log.Debug("centrality ranked",
		zap.String("selector", r.name),
		zap.Int("nodes", len(scores)),
		zap.Ints("seeds", seeds),
	)

	return seeds, nil
}
