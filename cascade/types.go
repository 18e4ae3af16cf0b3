// Package cascade provides options, result types and error definitions for
// Independent Cascade simulation over a core.Graph.
package cascade

import (
	"errors"
	"fmt"
)

// Sentinel errors for cascade simulation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("cascade: graph is nil")

	// ErrNilSource is returned when no random source is supplied.
	ErrNilSource = errors.New("cascade: random source is nil")

	// ErrSeedOutOfRange is returned when a seed id is outside the graph.
	ErrSeedOutOfRange = errors.New("cascade: seed out of range")

	// ErrInvalidTrials is returned when an estimator is configured with fewer than one trial.
	ErrInvalidTrials = errors.New("cascade: trials must be positive")

	// ErrCancelled is returned when the context is done before the cascade
	// terminates. It always wraps the context error as well.
	ErrCancelled = errors.New("cascade: cancelled")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cascade: invalid option supplied")
)

// Source is the random stream a cascade draws from. *math/rand.Rand
// satisfies it; tests may supply scripted streams.
//
// A Source is owned by one goroutine at a time.
type Source interface {
	// Float64 returns a sample in [0,1).
	Float64() float64

	// Int63 returns a non-negative 63-bit integer; used to derive per-trial streams.
	Int63() int64
}

// Result is the outcome of one cascade run.
type Result struct {
	// Activated lists every node ever active, ascending.
	Activated []int

	// Waves is the number of propagation waves that activated at least one node.
	Waves int
}

// Size returns len(Activated).
func (r Result) Size() int {
	return len(r.Activated)
}

// Option configures a single Simulate call.
type Option func(*Options)

// Options holds per-run parameters and hooks.
type Options struct {
	// Blocked marks nodes that can never be activated by propagation.
	// Seeds are active regardless. nil means nothing is blocked.
	Blocked []bool

	// OnWave is called after each wave with its index (1-based) and the nodes it activated.
	// The slice is reused between waves; copy it to retain.
	OnWave func(wave int, activated []int)

	// OnComplete is called once per finished cascade. With a parallel
	// Estimator it is called from several goroutines.
	OnComplete func(Result)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with nothing blocked and no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnWave:     func(int, []int) {},
		OnComplete: func(Result) {},
	}
}

// WithBlocked marks nodes that propagation may not activate.
// The mask length must equal the graph's node count; Simulate checks it.
func WithBlocked(mask []bool) Option {
	return func(o *Options) {
		o.Blocked = mask
	}
}

// WithOnWave registers a per-wave callback.
func WithOnWave(fn func(wave int, activated []int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnWave = fn
		}
	}
}

// WithOnComplete registers a per-cascade callback.
func WithOnComplete(fn func(Result)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnComplete = fn
		}
	}
}

// Aggregate selects how an Estimator reduces several trials to one number.
type Aggregate int

const (
	// AggregateMean reports the arithmetic mean of activated-set sizes.
	AggregateMean Aggregate = iota

	// AggregateUnion reports the size of the union of all activated sets.
	AggregateUnion

	// AggregateLast reports the size of the final trial only.
	AggregateLast
)

// String returns the flag spelling of a.
func (a Aggregate) String() string {
	switch a {
	case AggregateMean:
		return "mean"
	case AggregateUnion:
		return "union"
	case AggregateLast:
		return "last"
	default:
		return fmt.Sprintf("Aggregate(%d)", int(a))
	}
}

// ParseAggregate maps "mean" / "union" / "last" to an Aggregate.
func ParseAggregate(s string) (Aggregate, error) {
	switch s {
	case "mean", "":
		return AggregateMean, nil
	case "union":
		return AggregateUnion, nil
	case "last":
		return AggregateLast, nil
	default:
		return 0, fmt.Errorf("%w: unknown aggregate %q", ErrOptionViolation, s)
	}
}

// Estimate is the reduction of several cascades started from one seed set.
type Estimate struct {
	// Policy is the aggregation used by Value.
	Policy Aggregate

	// Trials is the number of cascades run.
	Trials int

	// Mean is the average activated-set size.
	Mean float64

	// Union lists every node activated in at least one trial, ascending.
	Union []int

	// Last is the activated set of the final trial, ascending.
	Last []int
}

// Value returns the number selected by Policy.
func (e Estimate) Value() float64 {
	switch e.Policy {
	case AggregateUnion:
		return float64(len(e.Union))
	case AggregateLast:
		return float64(len(e.Last))
	default:
		return e.Mean
	}
}
