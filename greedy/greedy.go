package greedy

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/seedspread/cascade"
	"github.com/katalvlaran/seedspread/core"
)

// Greedy is the naive (non-lazy) greedy selector: every round re-estimates
// the spread of current ∪ {v} for every unchosen v from scratch.
type Greedy struct {
	est  *cascade.Estimator
	opts Options
}

// NewGreedy returns a Greedy driven by est.
func NewGreedy(est *cascade.Estimator, opts ...Option) (*Greedy, error) {
	if est == nil {
		return nil, ErrNilEstimator
	}

	return &Greedy{est: est, opts: buildOptions(opts)}, nil
}

// Select picks k seeds. In each round the candidate with the strictly
// largest estimated spread wins; candidates are scanned by ascending id, so
// the lowest id wins ties.
//
// Returns core.ErrInvalidSeedCount if k is outside [0, NodeCount()], and
// ErrCancelled with a nil seed set if ctx is done (checked per candidate).
//
// Complexity: O(k · V · cost(Estimate)).
func (s *Greedy) Select(ctx context.Context, g *core.Graph, k int) ([]int, error) {
	if err := checkInput("Greedy.Select", g, k); err != nil {
		return nil, err
	}

	n := g.NodeCount()
	chosen := make([]bool, n)
	seeds := make([]int, 0, k)
	trial := make([]int, 0, k)
	for step := 0; step < k; step++ {
		best, bestValue := -1, -1.0
		for v := 0; v < n; v++ {
			if chosen[v] {
				continue
			}
			trial = append(append(trial[:0], seeds...), v)
			est, err := s.est.Estimate(ctx, g, trial)
			if err != nil {
				return nil, estimateErr("Greedy.Select", v, err)
			}
			value := est.Value()
			s.opts.OnEvaluate(v, value)
			if value > bestValue {
				best, bestValue = v, value
			}
		}

		chosen[best] = true
		seeds = append(seeds, best)
		s.opts.OnPick(step, best, bestValue)
		s.opts.Logger.Debug("seed picked",
			zap.String("selector", "greedy"),
			zap.Int("step", step),
			zap.Int("node", best),
			zap.Float64("spread", bestValue),
		)
	}

	return seeds, nil
}
