// Package greedy implements simulation-driven seed selection for influence
// maximization.
//
// Selectors
//
//   - Greedy: naive greedy. Each of the k rounds estimates the spread of
//     current ∪ {v} for every unchosen v and keeps the strict maximum (the
//     lowest id wins ties). O(k · V) estimates.
//   - CELF: lazy-forward greedy. Cached marginal gains sit in a max-heap;
//     only the head is re-estimated until it is fresh for the current round.
//   - MarginalGain: Monte-Carlo marginal coverage. Nodes influenced by the
//     chosen seeds are blocked, and a candidate scores the nodes it newly
//     reaches across the estimator's trials. SelectWithSpread also returns
//     the accumulated influenced set.
//
// Every selector takes a *cascade.Estimator, which fixes the trial count,
// the aggregation policy, the worker count and the random stream.
//
// Usage
//
//	est, _ := cascade.NewEstimator(cascade.NewSource(seed), cascade.WithTrials(100))
//	sel, _ := greedy.NewCELF(est, greedy.WithLogger(logger))
//	seeds, err := sel.Select(ctx, g, k)
//
// Errors
//
//   - ErrGraphNil, ErrNilEstimator for invalid input.
//   - core.ErrInvalidSeedCount when k is outside [0, V].
//   - ErrCancelled (wrapping cascade.ErrCancelled and the context error);
//     the seed set is nil, never partial.
package greedy
