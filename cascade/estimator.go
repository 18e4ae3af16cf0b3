package cascade

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seedspread/core"
)

// EstimatorOption configures an Estimator.
type EstimatorOption func(*Estimator)

// Estimator repeats Simulate from a fixed seed set and reduces the trials
// according to its Aggregate policy.
//
// Randomness policy:
//   - Workers ≤ 1: every trial draws from the shared Source, one after the
//     other, so repeated calls continue a single stream.
//   - Workers > 1: each Estimate call draws one Int63 from the shared Source
//     as a parent seed and gives trial t the stream DeriveSource(parent, t).
//     Results depend on the parent seed only, never on scheduling or on the
//     worker count.
//
// An Estimator is not safe for concurrent use: it owns its Source.
type Estimator struct {
	src     Source
	trials  int
	policy  Aggregate
	workers int
	simOpts []Option

	// internal error recorded during option parsing
	err error
}

// WithTrials sets the number of cascades per estimate (≥ 1).
func WithTrials(n int) EstimatorOption {
	return func(e *Estimator) {
		if n < 1 {
			e.err = fmt.Errorf("%w: got %d", ErrInvalidTrials, n)
			return
		}
		e.trials = n
	}
}

// WithAggregate sets the reduction policy.
func WithAggregate(a Aggregate) EstimatorOption {
	return func(e *Estimator) {
		if a < AggregateMean || a > AggregateLast {
			e.err = fmt.Errorf("%w: unknown aggregate %d", ErrOptionViolation, int(a))
			return
		}
		e.policy = a
	}
}

// WithWorkers sets the number of goroutines running trials (≤ 1 means sequential).
func WithWorkers(n int) EstimatorOption {
	return func(e *Estimator) {
		e.workers = n
	}
}

// WithSimulateOptions appends Options applied to every trial.
func WithSimulateOptions(opts ...Option) EstimatorOption {
	return func(e *Estimator) {
		e.simOpts = append(e.simOpts, opts...)
	}
}

// NewEstimator builds an Estimator over src. Defaults: one trial,
// AggregateMean, sequential.
func NewEstimator(src Source, opts ...EstimatorOption) (*Estimator, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	e := &Estimator{src: src, trials: 1, policy: AggregateMean, workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	if e.err != nil {
		return nil, e.err
	}

	return e, nil
}

// Trials returns the configured trial count.
func (e *Estimator) Trials() int { return e.trials }

// Policy returns the configured aggregation policy.
func (e *Estimator) Policy() Aggregate { return e.policy }

// Source returns the shared random stream.
func (e *Estimator) Source() Source { return e.src }

// Estimate runs the configured number of trials from seeds. extra options
// apply to this call only, after the estimator-wide ones.
func (e *Estimator) Estimate(ctx context.Context, g *core.Graph, seeds []int, extra ...Option) (Estimate, error) {
	opts := e.simOpts
	if len(extra) > 0 {
		opts = append(append(make([]Option, 0, len(opts)+len(extra)), opts...), extra...)
	}

	var (
		results []Result
		err     error
	)
	if e.workers > 1 && e.trials > 1 {
		results, err = e.parallel(ctx, g, seeds, opts)
	} else {
		results, err = e.sequential(ctx, g, seeds, opts)
	}
	if err != nil {
		return Estimate{}, err
	}

	return reduce(results, e.policy, g.NodeCount()), nil
}

func (e *Estimator) sequential(ctx context.Context, g *core.Graph, seeds []int, opts []Option) ([]Result, error) {
	results := make([]Result, e.trials)
	for t := range results {
		r, err := Simulate(ctx, g, seeds, e.src, opts...)
		if err != nil {
			return nil, err
		}
		results[t] = r
	}

	return results, nil
}

func (e *Estimator) parallel(ctx context.Context, g *core.Graph, seeds []int, opts []Option) ([]Result, error) {
	parent := e.src.Int63()
	results := make([]Result, e.trials)

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(e.workers)
	for t := range results {
		t := t
		eg.Go(func() error {
			r, err := Simulate(gctx, g, seeds, DeriveSource(parent, uint64(t)), opts...)
			if err != nil {
				return err
			}
			results[t] = r // each goroutine owns one slot
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// reduce folds trial results in trial order.
func reduce(results []Result, policy Aggregate, n int) Estimate {
	est := Estimate{Policy: policy, Trials: len(results)}
	if len(results) == 0 {
		return est
	}

	inUnion := make([]bool, n)
	total := 0
	for _, r := range results {
		total += r.Size()
		for _, v := range r.Activated {
			inUnion[v] = true
		}
	}
	for v, on := range inUnion {
		if on {
			est.Union = append(est.Union, v)
		}
	}
	est.Mean = float64(total) / float64(len(results))
	est.Last = results[len(results)-1].Activated

	return est
}
