// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for seedspread/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep sentinel-error checks explicit (errors.Is, never string matching).

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/seedspread/core"
)

// Common probabilities used across core tests (avoid magic numbers in test bodies).
const (
	ProbZero = 0.0
	ProbLow  = 0.1
	ProbHalf = 0.5
	ProbOne  = 1.0
)

// MustGraph builds an n-vertex graph from (u,v,p) triples and fails the test
// on any construction error. The graph is left unsealed.
func MustGraph(t *testing.T, n int, edges ...[3]float64) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(n)
	MustNoError(t, err, "NewGraph")
	for _, e := range edges {
		MustNoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]), "AddEdge")
	}

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}
