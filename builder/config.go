// SPDX-License-Identifier: MIT
// Package: seedspread/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng    = nil                 (pure unless seeded)
//   - probFn = DefaultProbFn       (constant DefaultProbability)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Activation probability generator, called once per emitted edge.
	probFn ProbFn
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{probFn: DefaultProbFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// prob draws the activation probability of the next edge.
func (c builderConfig) prob() float64 {
	return c.probFn(c.rng)
}
