// SPDX-License-Identifier: MIT
// Package: seedspread/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs;
// constructors themselves never panic.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a build by mutating the builderConfig before
// any constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors and ProbFns.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithProbFn overrides the per-edge activation probability generator.
// Panics on nil.
func WithProbFn(fn ProbFn) BuilderOption {
	if fn == nil {
		panic("builder: WithProbFn(nil)")
	}
	return func(c *builderConfig) {
		c.probFn = fn
	}
}

// WithProbability gives every edge the activation probability p.
// Panics if p is outside [0,1].
func WithProbability(p float64) BuilderOption {
	if !(p >= MinProbability && p <= MaxProbability) {
		panic(fmt.Sprintf("builder: WithProbability(%g) not in [0,1]", p))
	}
	return WithProbFn(ConstantProbFn(p))
}
