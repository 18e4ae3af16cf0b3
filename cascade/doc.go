// Package cascade implements the Independent Cascade (IC) diffusion model
// over a core.Graph.
//
// What
//
//   - Simulate: one cascade from a seed set, in discrete waves.
//   - Estimator: repeats Simulate and reduces the trials with an Aggregate
//     policy (Mean, Union or Last).
//   - NewSource / DeriveSource: deterministic random streams.
//
// Wave rule
//
//	activated = frontier = seeds
//	while frontier ≠ ∅:
//	    for u in frontier (ascending id):
//	        for (v, p) in Neighbors(u):
//	            if v not activated and not blocked:
//	                draw x ∈ [0,1); if x < p: v joins next
//	    activated ∪= next; frontier = next
//
// A node active in an earlier wave is never attempted again. A node that is
// still inactive is attempted by every frontier neighbor in the same wave,
// not only by the first one that wins.
//
// Blocking
//
//	WithBlocked(mask) removes nodes from propagation. The marginal-gain
//	selector uses it to count only nodes not yet influenced by the seeds
//	already chosen.
//
// Randomness
//
//	Every draw comes from a Source (*math/rand.Rand satisfies it). Sequential
//	estimation consumes one shared stream; parallel estimation derives one
//	stream per trial from a single parent draw, so a fixed global seed yields
//	the same Estimate for any worker count.
//
// Errors
//
//   - ErrGraphNil, ErrNilSource, ErrSeedOutOfRange for invalid input.
//   - ErrInvalidTrials, ErrOptionViolation for bad configuration.
//   - ErrCancelled (wrapping context.Canceled / DeadlineExceeded).
package cascade
