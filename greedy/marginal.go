package greedy

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/seedspread/cascade"
	"github.com/katalvlaran/seedspread/core"
)

// MarginalGain selects seeds by Monte-Carlo marginal coverage. It keeps the
// set of nodes already influenced by the chosen seeds; a candidate's gain is
// the number of nodes outside that set reached in at least one of the
// estimator's trials, with influenced nodes blocked from propagation. The
// winner's reach is merged into the influenced set.
//
// Only Estimate.Union is consulted, whatever the estimator's policy.
type MarginalGain struct {
	est  *cascade.Estimator
	opts Options
}

// NewMarginalGain returns a MarginalGain selector driven by est.
func NewMarginalGain(est *cascade.Estimator, opts ...Option) (*MarginalGain, error) {
	if est == nil {
		return nil, ErrNilEstimator
	}

	return &MarginalGain{est: est, opts: buildOptions(opts)}, nil
}

// Select picks k seeds; see SelectWithSpread.
func (s *MarginalGain) Select(ctx context.Context, g *core.Graph, k int) ([]int, error) {
	seeds, _, err := s.SelectWithSpread(ctx, g, k)

	return seeds, err
}

// SelectWithSpread picks k seeds and also returns the accumulated
// influenced set (ascending, seeds included). Ties go to the lowest id.
// Errors match Greedy.Select; on error both slices are nil.
//
// Complexity: O(k · V · cost(Estimate)).
func (s *MarginalGain) SelectWithSpread(ctx context.Context, g *core.Graph, k int) ([]int, []int, error) {
	if err := checkInput("MarginalGain.SelectWithSpread", g, k); err != nil {
		return nil, nil, err
	}

	n := g.NodeCount()
	chosen := make([]bool, n)
	influenced := make([]bool, n)
	blocked := cascade.WithBlocked(influenced)
	seeds := make([]int, 0, k)
	for step := 0; step < k; step++ {
		best, bestGain := -1, -1
		var bestReach []int
		for v := 0; v < n; v++ {
			if chosen[v] {
				continue
			}
			est, err := s.est.Estimate(ctx, g, []int{v}, blocked)
			if err != nil {
				return nil, nil, estimateErr("MarginalGain.SelectWithSpread", v, err)
			}
			gain := 0
			for _, u := range est.Union {
				if !influenced[u] {
					gain++
				}
			}
			s.opts.OnEvaluate(v, float64(gain))
			if gain > bestGain {
				best, bestGain, bestReach = v, gain, est.Union
			}
		}

		chosen[best] = true
		seeds = append(seeds, best)
		for _, u := range bestReach {
			influenced[u] = true
		}
		s.opts.OnPick(step, best, float64(bestGain))
		s.opts.Logger.Debug("seed picked",
			zap.String("selector", "marginal"),
			zap.Int("step", step),
			zap.Int("node", best),
			zap.Int("gain", bestGain),
		)
	}

	spread := make([]int, 0, n)
	for v, on := range influenced {
		if on {
			spread = append(spread, v)
		}
	}

	return seeds, spread, nil
}
