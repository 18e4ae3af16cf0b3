// Package greedy provides options, hooks and error definitions for the
// simulation-driven seed selectors.
package greedy

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/seedspread/cascade"
	"github.com/katalvlaran/seedspread/core"
)

// Sentinel errors for seed selection.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("greedy: graph is nil")

	// ErrNilEstimator is returned when a selector is built without an Estimator.
	ErrNilEstimator = errors.New("greedy: estimator is nil")

	// ErrCancelled is returned when the context is done before k seeds are
	// chosen. It wraps cascade.ErrCancelled and the context error as well.
	ErrCancelled = errors.New("greedy: cancelled")
)

// Option configures a selector via functional arguments.
type Option func(*Options)

// Options holds the logger and hooks shared by every selector.
type Options struct {
	// Logger receives one debug entry per pick. Defaults to zap.NewNop().
	Logger *zap.Logger

	// OnEvaluate is called after each spread estimate of a candidate.
	OnEvaluate func(node int, value float64)

	// OnPick is called when a seed is fixed: step is 0-based, gain is the
	// value that won the round (spread for Greedy, marginal gain for CELF
	// and MarginalGain).
	OnPick func(step, node int, gain float64)
}

// DefaultOptions returns Options with a no-op logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:     zap.NewNop(),
		OnEvaluate: func(int, float64) {},
		OnPick:     func(int, int, float64) {},
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnEvaluate registers a per-candidate callback.
func WithOnEvaluate(fn func(node int, value float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEvaluate = fn
		}
	}
}

// WithOnPick registers a per-seed callback.
func WithOnPick(fn func(step, node int, gain float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPick = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// checkInput validates the arguments every Select shares.
func checkInput(method string, g *core.Graph, k int) error {
	if g == nil {
		return ErrGraphNil
	}
	if err := core.CheckSeedCount(g, k); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// estimateErr maps an Estimator failure to the selector's error space.
func estimateErr(method string, node int, err error) error {
	if errors.Is(err, cascade.ErrCancelled) {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	return fmt.Errorf("%s: candidate %d: %w", method, node, err)
}
