// Package seedspread is an in-memory toolkit for influence maximization on
// probabilistic graphs: pick k seed nodes so that a cascade started from
// them reaches as many nodes as possible.
//
// What is in the box?
//
//   - Core store: an undirected graph whose edges carry activation probabilities
//   - Loader: header and triples text formats, plus a writer for both
//   - Builder: deterministic and random topologies for experiments
//   - Cascade: Independent Cascade simulation and Monte-Carlo estimation
//   - Traversals: BFS (shortest-path counts) and DFS (components)
//   - Centrality: degree and Brandes betweenness rankings
//   - Greedy: naive greedy, CELF lazy greedy and marginal-gain selection
//
// Everything is organized in subpackages:
//
//	core/       - Graph, Edge, validation and the seal lifecycle
//	loader/     - text formats in and out
//	builder/    - graph constructors and probability functions
//	cascade/    - Simulate, Estimator, random sources
//	bfs/, dfs/  - traversals
//	centrality/ - Degree, Betweenness, TopK
//	greedy/     - Greedy, CELF, MarginalGain
//	strategy/   - name → selector registry
//	runner/     - one end-to-end run producing a Report
//	config/, logging/, metrics/ - YAML config, zap logger, Prometheus collector
//	cmd/seedspread - the command-line front end
//
// Quick example:
//
//	g, _ := loader.LoadFile("graph.txt")
//	est, _ := cascade.NewEstimator(cascade.NewSource(1), cascade.WithTrials(100))
//	sel, _ := greedy.NewCELF(est)
//	seeds, _ := sel.Select(ctx, g, 5)
//
// Library randomness always flows from an explicit cascade.Source, so a
// fixed seed reproduces a run. The seedspread command seeds from the clock
// unless -seed (or seed: in the config file) is set.
package seedspread
