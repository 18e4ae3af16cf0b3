// Command seedspread selects k seed nodes that maximize expected influence
// under the Independent Cascade model and reports the nodes they reach.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/seedspread/builder"
	"github.com/katalvlaran/seedspread/cascade"
	"github.com/katalvlaran/seedspread/core"
	"github.com/katalvlaran/seedspread/dfs"
	"github.com/katalvlaran/seedspread/loader"
	"github.com/katalvlaran/seedspread/logging"
	"github.com/katalvlaran/seedspread/metrics"
	"github.com/katalvlaran/seedspread/runner"
	"github.com/katalvlaran/seedspread/strategy"
)

func main() {
	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitRuntime)
	}
}

// run is the testable body of main.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	inv, exit, err := parse(args, stderr)
	if err != nil || exit {
		return err
	}
	cfg := inv.cfg

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, stderr)
	if err != nil {
		return usageError(err)
	}
	defer func() { _ = logger.Sync() }()

	format, err := loader.ParseFormat(cfg.Format)
	if err != nil {
		return usageError(err)
	}
	seed := clockSeed(cfg.Seed)

	if inv.generate != "" {
		return generate(stdout, inv, format, seed, logger)
	}

	in := bufio.NewReader(stdin)
	if cfg.Graph == "" {
		if cfg.Graph, err = prompt(in, stdout, "Enter the graph file name: "); err != nil {
			return usageError(err)
		}
	}
	if !inv.kSet {
		answer, err := prompt(in, stdout, "Enter the number of seed nodes to select: ")
		if err != nil {
			return usageError(err)
		}
		if cfg.K, err = strconv.Atoi(answer); err != nil || cfg.K < 0 {
			return usageError(fmt.Errorf("invalid seed count %q", answer))
		}
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	g, err := loader.LoadFile(cfg.Graph, loader.WithFormat(format))
	if err != nil {
		return &ExitError{Code: exitRuntime, Message: err.Error()}
	}
	comps, err := dfs.Components(ctx, g)
	if err != nil {
		return &ExitError{Code: exitRuntime, Message: err.Error()}
	}
	largest := 0
	for _, c := range comps {
		largest = max(largest, len(c))
	}
	st := g.Stats()
	logger.Info("graph loaded",
		zap.String("path", cfg.Graph),
		zap.Int("nodes", st.NodeCount),
		zap.Int("edges", st.EdgeCount),
		zap.Int("min_degree", st.MinDegree),
		zap.Int("max_degree", st.MaxDegree),
		zap.Int("isolated", st.IsolatedCount),
		zap.Int("components", len(comps)),
		zap.Int("largest_component", largest),
	)

	collector := metrics.NewCollector("seedspread")
	agg, err := cascade.ParseAggregate(cfg.Aggregate)
	if err != nil {
		return usageError(err)
	}
	src := cascade.NewSource(seed)
	est, err := cascade.NewEstimator(src,
		cascade.WithTrials(cfg.Trials),
		cascade.WithAggregate(agg),
		cascade.WithWorkers(cfg.Workers),
		cascade.WithSimulateOptions(cascade.WithOnComplete(collector.ObserveCascade)),
	)
	if err != nil {
		return usageError(err)
	}
	logger.Debug("estimator ready",
		zap.Int64("seed", seed),
		zap.Int("trials", est.Trials()),
		zap.Stringer("aggregate", est.Policy()),
		zap.Int("workers", cfg.Workers),
	)

	r, err := runner.New(src,
		strategy.Deps{Estimator: est, Logger: logger},
		runner.WithLogger(logger),
		runner.WithMetrics(collector),
	)
	if err != nil {
		return &ExitError{Code: exitRuntime, Message: err.Error()}
	}

	rep, err := r.Run(ctx, g, runner.Request{Strategy: cfg.Strategy, K: cfg.K})
	if err != nil {
		code := exitRuntime
		if errors.Is(err, core.ErrInvalidSeedCount) || errors.Is(err, strategy.ErrUnknownStrategy) {
			code = exitUsage
		}
		return &ExitError{Code: code, Message: err.Error()}
	}

	if cfg.Output == "json" {
		err = writeJSON(stdout, rep)
	} else {
		err = writeText(stdout, rep)
	}
	if err != nil {
		return &ExitError{Code: exitRuntime, Message: err.Error()}
	}

	if cfg.Metrics {
		if err := collector.WriteText(stderr); err != nil {
			return &ExitError{Code: exitRuntime, Message: err.Error()}
		}
	}

	return nil
}

// generate writes a synthetic graph in the configured layout.
func generate(w io.Writer, inv invocation, format loader.Format, seed int64, logger *zap.Logger) error {
	cons, err := generator(inv.generate)
	if err != nil {
		return usageError(err)
	}
	prob, err := edgeProbability(inv.edgeProb)
	if err != nil {
		return usageError(err)
	}

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed), prob}, cons)
	if err != nil {
		return usageError(err)
	}
	logger.Info("graph generated",
		zap.String("generator", inv.generate),
		zap.Int64("seed", seed),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	if err := loader.Write(w, g, format); err != nil {
		return &ExitError{Code: exitRuntime, Message: err.Error()}
	}

	return nil
}

// prompt asks one question and returns the first whitespace-delimited token
// of the answer.
func prompt(in *bufio.Reader, out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("no answer to %q: %w", strings.TrimSpace(question), err)
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty answer to %q", strings.TrimSpace(question))
	}

	return fields[0], nil
}

func writeText(w io.Writer, rep runner.Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Selected Seed Nodes (%s): %s\n", strategy.Label(rep.Strategy), joinInts(rep.Seeds))
	fmt.Fprintf(bw, "Total Nodes Influenced: %d\n", rep.InfluencedCount)
	fmt.Fprintf(bw, "Influenced Nodes: %s\n", joinInts(rep.Influenced))

	return bw.Flush()
}

func writeJSON(w io.Writer, rep runner.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}
