// Package builder generates synthetic probabilistic graphs for tests,
// examples and benchmarks.
//
// A build is a list of Constructors applied to one draft graph. Every
// constructor appends its own block of fresh vertex ids, so composing
// constructors yields their disjoint union in call order:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithProbFn(builder.UniformProbFn(0.01, 0.1))},
//	    builder.Star(5),          // ids 0..4, center 0
//	    builder.Path(3),          // ids 5..7
//	    builder.RandomSparse(100, 0.05),
//	)
//
// The result is a sealed core.Graph.
//
// Topologies:
//
//	Path(n)            n ≥ 2   n-1 edges
//	Cycle(n)           n ≥ 3   n edges
//	Star(n)            n ≥ 2   center is the first id
//	Wheel(n)           n ≥ 4   center plus a cycle of n-1
//	Complete(n)        n ≥ 1   n(n-1)/2 edges
//	Grid(rows, cols)   ≥ 1×1   id = base + r*cols + c
//	RandomSparse(n, p)         each pair i<j independently with probability p
//	RandomRegular(n, d)        simple d-regular graph by stub matching
//
// Activation probabilities come from the configured ProbFn, drawn once per
// edge in emission order (DefaultProbability unless overridden).
//
// Determinism: equal options, equal seed and equal constructor order give
// identical graphs.
//
// Option constructors panic on meaningless arguments; constructors return
// sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) and never panic.
package builder
