package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/seedspread/config"
	"github.com/katalvlaran/seedspread/strategy"
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes.
const (
	exitRuntime = 1
	exitUsage   = 2
)

func usageError(err error) error {
	return &ExitError{Code: exitUsage, Message: err.Error()}
}

// invocation is the parsed command line.
type invocation struct {
	cfg config.Config

	// kSet records whether k came from a flag or the config file.
	kSet bool

	// generate, when non-empty, switches to graph generation mode.
	generate string
	edgeProb string
}

// parse resolves defaults < config file < explicitly set flags. It returns
// exit=true when the program should stop cleanly (help requested).
func parse(args []string, output io.Writer) (inv invocation, exit bool, err error) {
	fs := flag.NewFlagSet("seedspread", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
seedspread - influence maximization under the Independent Cascade model.

Usage:
  seedspread [options]
  seedspread -generate KIND:PARAMS [-edge-prob P] [-seed N] > graph.txt

Strategies: `+strings.Join(strategy.Names(), ", ")+`

Generators: path:N cycle:N star:N wheel:N complete:N grid:RxC random:N:P regular:N:D

Options:
`)
		fs.PrintDefaults()
	}

	def := config.Default()
	var (
		configPath = fs.String("config", "", "YAML configuration file; flags override its values.")
		graph      = fs.String("graph", "", "Graph file to load.")
		k          = fs.Int("k", 0, "Number of seed nodes to select.")
		strat      = fs.String("strategy", def.Strategy, "Seed selection strategy.")
		trials     = fs.Int("trials", def.Trials, "Monte-Carlo cascades per spread estimate.")
		aggregate  = fs.String("aggregate", def.Aggregate, "Trial reduction: 'mean', 'union' or 'last'.")
		workers    = fs.Int("workers", def.Workers, "Goroutines running trials in parallel.")
		seed       = fs.Int64("seed", def.Seed, "Random seed; 0 seeds from the clock.")
		format     = fs.String("format", def.Format, "Graph file layout: 'header' or 'triples'.")
		outFormat  = fs.String("output", def.Output, "Result format: 'text' or 'json'.")
		timeout    = fs.Duration("timeout", def.Timeout, "Abort the run after this long; 0 disables.")
		logLevel   = fs.String("log-level", def.Log.Level, "Logging level: 'debug', 'info', 'warn', 'error'.")
		logFormat  = fs.String("log-format", def.Log.Format, "Log format: 'console' or 'json'.")
		dumpMetric = fs.Bool("metrics", def.Metrics, "Print Prometheus metrics to stderr at exit.")
		generate   = fs.String("generate", "", "Write a synthetic graph to stdout instead of running.")
		edgeProb   = fs.String("edge-prob", "0.1", "Generated edge probability: a number, 'uniform' or 'trivalency'.")
	)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return invocation{}, true, nil
		}
		return invocation{}, false, usageError(err)
	}
	if fs.NArg() > 0 {
		return invocation{}, false, usageError(fmt.Errorf("unexpected argument %q", fs.Arg(0)))
	}

	cfg := def
	if *configPath != "" {
		if cfg, err = config.LoadFile(*configPath, cfg); err != nil {
			return invocation{}, false, usageError(err)
		}
	}
	inv.kSet = cfg.K != 0

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "graph":
			cfg.Graph = *graph
		case "k":
			cfg.K = *k
			inv.kSet = true
		case "strategy":
			cfg.Strategy = *strat
		case "trials":
			cfg.Trials = *trials
		case "aggregate":
			cfg.Aggregate = *aggregate
		case "workers":
			cfg.Workers = *workers
		case "seed":
			cfg.Seed = *seed
		case "format":
			cfg.Format = *format
		case "output":
			cfg.Output = *outFormat
		case "timeout":
			cfg.Timeout = *timeout
		case "log-level":
			cfg.Log.Level = strings.ToLower(*logLevel)
		case "log-format":
			cfg.Log.Format = strings.ToLower(*logFormat)
		case "metrics":
			cfg.Metrics = *dumpMetric
		}
	})
	if err := cfg.Validate(); err != nil {
		return invocation{}, false, usageError(err)
	}

	inv.cfg = cfg
	inv.generate = *generate
	inv.edgeProb = *edgeProb

	return inv, false, nil
}

// clockSeed picks the seed used when none is configured.
func clockSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}

	return time.Now().UnixNano()
}
