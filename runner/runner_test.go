package runner_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/seedspread/cascade"
	"github.com/katalvlaran/seedspread/core"
	"github.com/katalvlaran/seedspread/metrics"
	"github.com/katalvlaran/seedspread/runner"
	"github.com/katalvlaran/seedspread/strategy"
)

// twoComponents is the certain path 0-1-2 plus the pair 3-4 that never fires.
func twoComponents(t *testing.T) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(3, 4, 0))
	g.Seal()

	return g
}

func newRunner(t *testing.T, opts ...runner.Option) *runner.Runner {
	t.Helper()

	src := cascade.NewSource(1)
	est, err := cascade.NewEstimator(src)
	require.NoError(t, err)
	r, err := runner.New(src, strategy.Deps{Estimator: est}, opts...)
	require.NoError(t, err)

	return r
}

func TestRun_Strategies(t *testing.T) {
	g := twoComponents(t)
	cases := map[string]struct {
		seeds      []int
		influenced []int
	}{
		strategy.Degree:      {[]int{1}, []int{0, 1, 2}},
		strategy.Betweenness: {[]int{1}, []int{0, 1, 2}},
		strategy.Greedy:      {[]int{0}, []int{0, 1, 2}},
		strategy.CELF:        {[]int{0}, []int{0, 1, 2}},
		strategy.Marginal:    {[]int{0}, []int{0, 1, 2}},
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			rep, err := newRunner(t).Run(context.Background(), g, runner.Request{Strategy: name, K: 1})
			require.NoError(t, err)

			assert.Equal(t, name, rep.Strategy)
			assert.Equal(t, 1, rep.K)
			assert.Equal(t, want.seeds, rep.Seeds)
			assert.Equal(t, want.influenced, rep.Influenced)
			assert.Equal(t, len(want.influenced), rep.InfluencedCount)
			assert.NotEqual(t, uuid.Nil, rep.RunID)
		})
	}
}

func TestRun_TwoSeeds(t *testing.T) {
	rep, err := newRunner(t).Run(context.Background(), twoComponents(t), runner.Request{Strategy: strategy.Greedy, K: 2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, rep.Seeds)
	assert.Equal(t, []int{0, 1, 2, 3}, rep.Influenced)
}

func TestRun_Errors(t *testing.T) {
	r := newRunner(t)
	g := twoComponents(t)

	_, err := r.Run(context.Background(), nil, runner.Request{Strategy: strategy.Degree, K: 1})
	assert.ErrorIs(t, err, runner.ErrGraphNil)

	_, err = r.Run(context.Background(), g, runner.Request{Strategy: strategy.Degree, K: 6})
	assert.ErrorIs(t, err, core.ErrInvalidSeedCount)

	_, err = r.Run(context.Background(), g, runner.Request{Strategy: "random", K: 1})
	assert.ErrorIs(t, err, strategy.ErrUnknownStrategy)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := r.Run(ctx, g, runner.Request{Strategy: strategy.Greedy, K: 1})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, rep.Seeds)

	_, err = runner.New(nil, strategy.Deps{})
	assert.ErrorIs(t, err, runner.ErrNilSource)
}

func TestRun_ZeroSeeds(t *testing.T) {
	rep, err := newRunner(t).Run(context.Background(), twoComponents(t), runner.Request{Strategy: strategy.Degree, K: 0})
	require.NoError(t, err)
	assert.Empty(t, rep.Seeds)
	assert.Empty(t, rep.Influenced)
	assert.Zero(t, rep.InfluencedCount)
}

func TestRun_MetricsAndLogs(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	c := metrics.NewCollector("seedspread")
	r := newRunner(t, runner.WithLogger(zap.New(obs)), runner.WithMetrics(c))

	rep, err := r.Run(context.Background(), twoComponents(t), runner.Request{Strategy: strategy.Greedy, K: 1})
	require.NoError(t, err)

	// five candidates estimated once each, one final cascade
	assert.Equal(t, 5.0, testutil.ToFloat64(c.Candidates.WithLabelValues(strategy.Greedy)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Cascades))
	assert.Equal(t, 1, testutil.CollectAndCount(c.Selection))

	done := logs.FilterMessage("run complete").All()
	require.Len(t, done, 1)
	assert.Equal(t, rep.RunID.String(), done[0].ContextMap()["run_id"])
}
