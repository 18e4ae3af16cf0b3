package greedy_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/seedspread/cascade"
	"github.com/katalvlaran/seedspread/core"
	"github.com/katalvlaran/seedspread/greedy"
)

// selector is the shape shared by all three selectors.
type selector interface {
	Select(ctx context.Context, g *core.Graph, k int) ([]int, error)
}

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

// starAndPath is a 4-node star centered at 0 plus the path 4-5-6; every edge fires.
func starAndPath(t testing.TB) *core.Graph {
	return graphOf(t, 7,
		[3]float64{0, 1, 1}, [3]float64{0, 2, 1}, [3]float64{0, 3, 1},
		[3]float64{4, 5, 1}, [3]float64{5, 6, 1},
	)
}

func estimator(t testing.TB, seed int64, opts ...cascade.EstimatorOption) *cascade.Estimator {
	t.Helper()

	e, err := cascade.NewEstimator(cascade.NewSource(seed), opts...)
	require.NoError(t, err)

	return e
}

func selectors(t testing.TB, seed int64, opts ...greedy.Option) map[string]selector {
	t.Helper()

	gr, err := greedy.NewGreedy(estimator(t, seed), opts...)
	require.NoError(t, err)
	cf, err := greedy.NewCELF(estimator(t, seed), opts...)
	require.NoError(t, err)
	mg, err := greedy.NewMarginalGain(estimator(t, seed, cascade.WithTrials(3)), opts...)
	require.NoError(t, err)

	return map[string]selector{"greedy": gr, "celf": cf, "marginal": mg}
}

func TestSelectors_DeterministicGraph(t *testing.T) {
	g := starAndPath(t)
	for name, s := range selectors(t, 1) {
		t.Run(name, func(t *testing.T) {
			seeds, err := s.Select(context.Background(), g, 2)
			require.NoError(t, err)
			assert.Equal(t, []int{0, 4}, seeds)
		})
	}
}

func TestSelectors_TiesGoToLowerID(t *testing.T) {
	g := graphOf(t, 5, [3]float64{0, 1, 0}, [3]float64{3, 4, 0})
	for name, s := range selectors(t, 1) {
		t.Run(name, func(t *testing.T) {
			seeds, err := s.Select(context.Background(), g, 3)
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 2}, seeds)
		})
	}
}

func TestSelectors_SeedCount(t *testing.T) {
	g := starAndPath(t)
	for name, s := range selectors(t, 1) {
		t.Run(name, func(t *testing.T) {
			seeds, err := s.Select(context.Background(), g, 0)
			require.NoError(t, err)
			assert.Empty(t, seeds)

			_, err = s.Select(context.Background(), g, -1)
			assert.ErrorIs(t, err, core.ErrInvalidSeedCount)

			_, err = s.Select(context.Background(), g, 8)
			assert.ErrorIs(t, err, core.ErrInvalidSeedCount)

			_, err = s.Select(context.Background(), nil, 1)
			assert.ErrorIs(t, err, greedy.ErrGraphNil)

			seeds, err = s.Select(context.Background(), g, 7)
			require.NoError(t, err)
			assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6}, seeds)
		})
	}
}

func TestSelectors_NoDuplicatesOnNoisyGraph(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	edges := make([][3]float64, 0, 40)
	for i := 0; i < 40; i++ {
		edges = append(edges, [3]float64{float64(rnd.Intn(15)), float64(rnd.Intn(15)), rnd.Float64()})
	}
	g := graphOf(t, 15, edges...)

	for name, s := range selectors(t, 9) {
		t.Run(name, func(t *testing.T) {
			seeds, err := s.Select(context.Background(), g, 6)
			require.NoError(t, err)
			require.Len(t, seeds, 6)

			seen := map[int]bool{}
			for _, v := range seeds {
				assert.False(t, seen[v], "node %d selected twice", v)
				seen[v] = true
			}
		})
	}
}

func TestSelectors_Cancelled(t *testing.T) {
	g := starAndPath(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, s := range selectors(t, 1) {
		t.Run(name, func(t *testing.T) {
			seeds, err := s.Select(ctx, g, 2)
			assert.Nil(t, seeds)
			assert.ErrorIs(t, err, greedy.ErrCancelled)
			assert.ErrorIs(t, err, cascade.ErrCancelled)
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestNewSelectors_NilEstimator(t *testing.T) {
	_, err := greedy.NewGreedy(nil)
	assert.ErrorIs(t, err, greedy.ErrNilEstimator)
	_, err = greedy.NewCELF(nil)
	assert.ErrorIs(t, err, greedy.ErrNilEstimator)
	_, err = greedy.NewMarginalGain(nil)
	assert.ErrorIs(t, err, greedy.ErrNilEstimator)
}

// With edges in {0,1} spread is plain coverage, which is submodular, so the
// lazy selector must reproduce the naive one exactly.
func TestCELF_AgreesWithGreedy(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		edges := make([][3]float64, 0, 30)
		for i := 0; i < 30; i++ {
			edges = append(edges, [3]float64{float64(rnd.Intn(25)), float64(rnd.Intn(25)), float64(rnd.Intn(2))})
		}
		g := graphOf(t, 25, edges...)

		gr, err := greedy.NewGreedy(estimator(t, 1))
		require.NoError(t, err)
		cf, err := greedy.NewCELF(estimator(t, 1))
		require.NoError(t, err)

		want, err := gr.Select(context.Background(), g, 5)
		require.NoError(t, err)
		got, err := cf.Select(context.Background(), g, 5)
		require.NoError(t, err)
		assert.Equal(t, want, got, "graph seed %d", seed)
	}
}

func TestCELF_EvaluatesLess(t *testing.T) {
	g := starAndPath(t)

	count := func(build func(...greedy.Option) (selector, error)) int {
		evaluated := 0
		s, err := build(greedy.WithOnEvaluate(func(int, float64) { evaluated++ }))
		require.NoError(t, err)
		_, err = s.Select(context.Background(), g, 3)
		require.NoError(t, err)
		return evaluated
	}

	naive := count(func(o ...greedy.Option) (selector, error) { return greedy.NewGreedy(estimator(t, 1), o...) })
	lazy := count(func(o ...greedy.Option) (selector, error) { return greedy.NewCELF(estimator(t, 1), o...) })
	assert.Equal(t, 7+6+5, naive)
	assert.Less(t, lazy, naive)
}

func TestMarginalGain_SelectWithSpread(t *testing.T) {
	g := starAndPath(t)
	mg, err := greedy.NewMarginalGain(estimator(t, 1, cascade.WithTrials(4)))
	require.NoError(t, err)

	seeds, spread, err := mg.SelectWithSpread(context.Background(), g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, seeds)
	assert.Equal(t, []int{0, 1, 2, 3}, spread)

	seeds, spread, err = mg.SelectWithSpread(context.Background(), g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, seeds)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, spread)
}

// Once 0's component is influenced a leaf adds nothing, while an isolated
// node adds itself.
// Node 3 is isolated; its gain of 1 is itself, which beats the covered nodes 1 and 2.
func TestMarginalGain_SkipsCoveredNodes(t *testing.T) {
	g := graphOf(t, 4, [3]float64{0, 1, 1}, [3]float64{0, 2, 1})
	mg, err := greedy.NewMarginalGain(estimator(t, 1))
	require.NoError(t, err)

	var gains []float64
	mg2, err := greedy.NewMarginalGain(estimator(t, 1), greedy.WithOnPick(func(_, _ int, gain float64) {
		gains = append(gains, gain)
	}))
	require.NoError(t, err)

	seeds, err := mg.Select(context.Background(), g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, seeds)

	_, _, err = mg2.SelectWithSpread(context.Background(), g, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1}, gains)
}

func TestSelectors_LogPicks(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	g := starAndPath(t)

	for name, s := range selectors(t, 1, greedy.WithLogger(zap.New(obs))) {
		t.Run(name, func(t *testing.T) {
			before := logs.Len()
			_, err := s.Select(context.Background(), g, 2)
			require.NoError(t, err)

			entries := logs.All()[before:]
			require.Len(t, entries, 2)
			assert.Equal(t, "seed picked", entries[0].Message)
			assert.Equal(t, name, entries[0].ContextMap()["selector"])
		})
	}
}
