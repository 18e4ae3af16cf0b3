package cascade_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seedspread/core"
)

// scripted is a Source replaying fixed samples; once exhausted it returns
// 0.99 so every edge with p < 0.99 fails.
type scripted struct {
	draws []float64
	used  int
}

func (s *scripted) Float64() float64 {
	if s.used >= len(s.draws) {
		s.used++
		return 0.99
	}
	x := s.draws[s.used]
	s.used++
	return x
}

func (s *scripted) Int63() int64 { return 7 }

// graphOf builds and seals an n-vertex graph from (u,v,p) triples.
func graphOf(t testing.TB, n int, edges ...[3]float64) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}
	g.Seal()

	return g
}

// pathOf builds the path 0-1-…-(n-1) with every probability set to p.
func pathOf(t testing.TB, n int, p float64) *core.Graph {
	t.Helper()

	edges := make([][3]float64, 0, n)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [3]float64{float64(i), float64(i + 1), p})
	}

	return graphOf(t, n, edges...)
}
