// Package runner orchestrates one influence-maximization run: it selects
// seeds with a named strategy and measures the population they influence.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/seedspread/cascade"
	"github.com/katalvlaran/seedspread/core"
	"github.com/katalvlaran/seedspread/greedy"
	"github.com/katalvlaran/seedspread/metrics"
	"github.com/katalvlaran/seedspread/strategy"
)

// Sentinel errors for orchestration.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("runner: graph is nil")

	// ErrNilSource is returned when no random source is supplied.
	ErrNilSource = errors.New("runner: random source is nil")
)

// Request names the strategy and the seed budget.
type Request struct {
	Strategy string
	K        int
}

// Report is the outcome of a run.
type Report struct {
	RunID           uuid.UUID     `json:"run_id"`
	Strategy        string        `json:"strategy"`
	K               int           `json:"k"`
	Seeds           []int         `json:"seeds"`
	Influenced      []int         `json:"influenced"`
	InfluencedCount int           `json:"influenced_count"`
	Elapsed         time.Duration `json:"elapsed_ns"`
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the structured logger. Defaults to zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics records selection timing, candidate estimates and the final
// cascade in c.
func WithMetrics(c *metrics.Collector) Option {
	return func(r *Runner) {
		r.metrics = c
	}
}

// Runner resolves strategies and produces Reports. It owns src, the stream
// used for the final cascade, and is not safe for concurrent use.
type Runner struct {
	src     cascade.Source
	deps    strategy.Deps
	log     *zap.Logger
	metrics *metrics.Collector
}

// New returns a Runner. deps is handed to every strategy it builds.
func New(src cascade.Source, deps strategy.Deps, opts ...Option) (*Runner, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	r := &Runner{src: src, deps: deps, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	if r.deps.Logger == nil {
		r.deps.Logger = r.log
	}

	return r, nil
}

// Run selects req.K seeds with req.Strategy, then reports the nodes they
// influence in one fresh cascade. A strategy that tracks its own influenced
// set while selecting (marginal) reports that set instead.
//
// Errors: ErrGraphNil, core.ErrInvalidSeedCount, strategy.ErrUnknownStrategy,
// or whatever selection and simulation return (cancellation included).
func (r *Runner) Run(ctx context.Context, g *core.Graph, req Request) (Report, error) {
	if g == nil {
		return Report{}, ErrGraphNil
	}
	if err := core.CheckSeedCount(g, req.K); err != nil {
		return Report{}, fmt.Errorf("Run: %w", err)
	}

	s, err := strategy.New(req.Strategy, r.strategyDeps(req.Strategy))
	if err != nil {
		return Report{}, err
	}

	rep := Report{RunID: uuid.New(), Strategy: s.Name(), K: req.K}
	log := r.log.With(zap.String("run_id", rep.RunID.String()), zap.String("strategy", rep.Strategy))
	log.Info("selecting seeds", zap.Int("k", req.K), zap.Int("nodes", g.NodeCount()))

	start := time.Now()
	var influenced []int
	if ss, ok := s.(strategy.SpreadStrategy); ok {
		rep.Seeds, influenced, err = ss.SelectWithSpread(ctx, g, req.K)
	} else {
		rep.Seeds, err = s.Select(ctx, g, req.K)
	}
	rep.Elapsed = time.Since(start)
	if err != nil {
		log.Warn("selection failed", zap.Error(err), zap.Duration("elapsed", rep.Elapsed))
		return Report{}, err
	}
	if r.metrics != nil {
		r.metrics.ObserveSelection(rep.Strategy, rep.Elapsed)
	}

	if influenced == nil {
		var opts []cascade.Option
		if r.metrics != nil {
			opts = append(opts, cascade.WithOnComplete(r.metrics.ObserveCascade))
		}
		res, err := cascade.Simulate(ctx, g, rep.Seeds, r.src, opts...)
		if err != nil {
			return Report{}, fmt.Errorf("Run: final cascade: %w", err)
		}
		influenced = res.Activated
	}
	rep.Influenced = influenced
	rep.InfluencedCount = len(influenced)

	log.Info("run complete",
		zap.Ints("seeds", rep.Seeds),
		zap.Int("influenced", rep.InfluencedCount),
		zap.Duration("elapsed", rep.Elapsed),
	)

	return rep, nil
}

func (r *Runner) strategyDeps(name string) strategy.Deps {
	deps := r.deps
	if r.metrics != nil {
		deps.Selector = append(append([]greedy.Option(nil), deps.Selector...),
			greedy.WithOnEvaluate(func(int, float64) { r.metrics.CandidateEvaluated(name) }))
	}

	return deps
}
