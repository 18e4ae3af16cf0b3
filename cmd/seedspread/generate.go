package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/seedspread/builder"
)

// errBadGenerator reports a malformed -generate or -edge-prob value.
var errBadGenerator = errors.New("invalid generator")

// generator parses "KIND:PARAMS" into a builder constructor.
//
//	path:N  cycle:N  star:N  wheel:N  complete:N
//	grid:RxC  random:N:P  regular:N:D
func generator(desc string) (builder.Constructor, error) {
	kind, params, _ := strings.Cut(desc, ":")
	kind = strings.ToLower(kind)
	fields := strings.Split(params, ":")

	ints := func(want int) ([]int, error) {
		if len(fields) != want {
			return nil, fmt.Errorf("%w %q: want %d parameter(s)", errBadGenerator, desc, want)
		}
		out := make([]int, want)
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %v", errBadGenerator, desc, err)
			}
			out[i] = v
		}
		return out, nil
	}

	switch kind {
	case "path", "cycle", "star", "wheel", "complete":
		n, err := ints(1)
		if err != nil {
			return nil, err
		}
		switch kind {
		case "path":
			return builder.Path(n[0]), nil
		case "cycle":
			return builder.Cycle(n[0]), nil
		case "star":
			return builder.Star(n[0]), nil
		case "wheel":
			return builder.Wheel(n[0]), nil
		default:
			return builder.Complete(n[0]), nil
		}
	case "grid":
		r, c, ok := strings.Cut(params, "x")
		if !ok {
			return nil, fmt.Errorf("%w %q: want grid:RxC", errBadGenerator, desc)
		}
		fields = []string{r, c}
		rc, err := ints(2)
		if err != nil {
			return nil, err
		}
		return builder.Grid(rc[0], rc[1]), nil
	case "random":
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w %q: want random:N:P", errBadGenerator, desc)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", errBadGenerator, desc, err)
		}
		p, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", errBadGenerator, desc, err)
		}
		return builder.RandomSparse(n, p), nil
	case "regular":
		nd, err := ints(2)
		if err != nil {
			return nil, err
		}
		return builder.RandomRegular(nd[0], nd[1]), nil
	default:
		return nil, fmt.Errorf("%w %q: unknown kind %q", errBadGenerator, desc, kind)
	}
}

// edgeProbability maps the -edge-prob value to a builder option.
func edgeProbability(s string) (builder.BuilderOption, error) {
	switch strings.ToLower(s) {
	case "uniform":
		return builder.WithProbFn(builder.UniformProbFn(builder.MinProbability, builder.MaxProbability)), nil
	case "trivalency":
		return builder.WithProbFn(builder.TrivalencyProbFn), nil
	}
	p, err := strconv.ParseFloat(s, 64)
	if err != nil || !(p >= builder.MinProbability && p <= builder.MaxProbability) {
		return nil, fmt.Errorf("%w: edge probability %q", errBadGenerator, s)
	}

	return builder.WithProbability(p), nil
}
