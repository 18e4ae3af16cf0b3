package greedy

import (
	"container/heap"
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/seedspread/cascade"
	"github.com/katalvlaran/seedspread/core"
)

// CELF is the lazy-forward greedy selector. Marginal gains from earlier
// rounds are upper bounds on current ones (submodularity of expected
// spread), so only the head of a max-heap is re-estimated; it is taken
// as soon as its gain is fresh for the current round.
//
// With exact estimates CELF picks the same seeds as Greedy. With noisy
// Monte-Carlo estimates the two may diverge.
type CELF struct {
	est  *cascade.Estimator
	opts Options
}

// NewCELF returns a CELF selector driven by est.
func NewCELF(est *cascade.Estimator, opts ...Option) (*CELF, error) {
	if est == nil {
		return nil, ErrNilEstimator
	}

	return &CELF{est: est, opts: buildOptions(opts)}, nil
}

// Select picks k seeds. Errors match Greedy.Select.
//
// Complexity: O(V · cost(Estimate)) for the first round; later rounds
// usually re-estimate only a handful of candidates.
func (s *CELF) Select(ctx context.Context, g *core.Graph, k int) ([]int, error) {
	if err := checkInput("CELF.Select", g, k); err != nil {
		return nil, err
	}
	if k == 0 {
		return []int{}, nil
	}

	n := g.NodeCount()
	seeds := make([]int, 0, k)
	trial := make([]int, 0, k)

	// round 0: gain of {v} against the empty set
	pq := make(gainPQ, 0, n)
	for v := 0; v < n; v++ {
		est, err := s.est.Estimate(ctx, g, []int{v})
		if err != nil {
			return nil, estimateErr("CELF.Select", v, err)
		}
		s.opts.OnEvaluate(v, est.Value())
		pq = append(pq, &gainItem{node: v, gain: est.Value()})
	}
	heap.Init(&pq)

	spread := 0.0
	for len(seeds) < k {
		top := pq[0]
		if top.round == len(seeds) {
			heap.Pop(&pq)
			seeds = append(seeds, top.node)
			spread += top.gain
			s.opts.OnPick(len(seeds)-1, top.node, top.gain)
			s.opts.Logger.Debug("seed picked",
				zap.String("selector", "celf"),
				zap.Int("step", len(seeds)-1),
				zap.Int("node", top.node),
				zap.Float64("gain", top.gain),
				zap.Float64("spread", spread),
			)
			continue
		}

		// stale: refresh against the current seed set and sift
		trial = append(append(trial[:0], seeds...), top.node)
		est, err := s.est.Estimate(ctx, g, trial)
		if err != nil {
			return nil, estimateErr("CELF.Select", top.node, err)
		}
		s.opts.OnEvaluate(top.node, est.Value())
		top.gain = est.Value() - spread
		top.round = len(seeds)
		heap.Fix(&pq, 0)
	}

	return seeds, nil
}

// gainItem is a candidate with the marginal gain last computed for it in
// round (the seed count at that time).
type gainItem struct {
	node  int
	gain  float64
	round int
}

// gainPQ is a max-heap of *gainItem by gain; equal gains put the lower node first.
type gainPQ []*gainItem

func (pq gainPQ) Len() int { return len(pq) }

func (pq gainPQ) Less(i, j int) bool {
	if pq[i].gain != pq[j].gain {
		return pq[i].gain > pq[j].gain
	}
	return pq[i].node < pq[j].node
}

func (pq gainPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *gainItem.
func (pq *gainPQ) Push(x interface{}) { *pq = append(*pq, x.(*gainItem)) }

// Pop is called by heap.Pop.
func (pq *gainPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
