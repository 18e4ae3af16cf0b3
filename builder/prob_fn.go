// Package builder provides the activation-probability distributions used
// when emitting edges.
package builder

import (
	"fmt"
	"math/rand"
)

// Probability bounds and the default activation probability.
const (
	MinProbability     = 0.0
	MaxProbability     = 1.0
	DefaultProbability = 0.1
)

// ProbFn produces an activation probability given an optional *rand.Rand.
// It must be deterministic for a given RNG state.
type ProbFn func(rng *rand.Rand) float64

// DefaultProbFn always returns DefaultProbability.
func DefaultProbFn(_ *rand.Rand) float64 {
	return DefaultProbability
}

// ConstantProbFn returns a ProbFn that always yields p.
// Panics if p is outside [0,1].
func ConstantProbFn(p float64) ProbFn {
	if !(p >= MinProbability && p <= MaxProbability) {
		panic(fmt.Sprintf("ConstantProbFn: p must be in [0,1], got %g", p))
	}

	return func(_ *rand.Rand) float64 {
		return p
	}
}

// UniformProbFn samples uniformly in [lo, hi).
// Panics unless 0 ≤ lo ≤ hi ≤ 1. With a nil rng it yields lo.
func UniformProbFn(lo, hi float64) ProbFn {
	if !(lo >= MinProbability && lo <= hi && hi <= MaxProbability) {
		panic(fmt.Sprintf("UniformProbFn: require 0 ≤ lo ≤ hi ≤ 1, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || lo == hi {
			return lo
		}
		return lo + rng.Float64()*(hi-lo)
	}
}

// trivalency is the classic probability menu for IC benchmarks.
var trivalency = [...]float64{0.1, 0.01, 0.001}

// TrivalencyProbFn picks one of 0.1, 0.01, 0.001 uniformly at random.
// With a nil rng it yields 0.1.
func TrivalencyProbFn(rng *rand.Rand) float64 {
	if rng == nil {
		return trivalency[0]
	}

	return trivalency[rng.Intn(len(trivalency))]
}
