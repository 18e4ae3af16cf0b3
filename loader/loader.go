// Package loader reads whitespace-delimited probabilistic edge lists into a
// sealed core.Graph, validating every token on the way.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/seedspread/core"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// maxEdgeHint caps the capacity preallocated from a declared edge count;
// larger inputs grow by append as records actually arrive.
const maxEdgeHint = 1 << 16

// record is one parsed "<u> <v> <p>" triple with the line it started on.
type record struct {
	u, v int
	p    float64
	line int
}

// LoadFile opens path and delegates to Load.
// Returns ErrGraphIO if the file cannot be opened.
func LoadFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w: %w", path, ErrGraphIO, err)
	}
	defer f.Close()

	g, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}

	return g, nil
}

// Load parses r according to the configured Format and returns a sealed graph.
//
// Errors:
//   - ErrOptionViolation for bad options.
//   - ErrGraphIO if reading r fails.
//   - ErrGraphFormat for malformed or inconsistent input.
//   - core.ErrInvalidProbability (wrapped with the line number) for p outside [0,1].
func Load(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	t := newTokenizer(r)
	var (
		n    int
		recs []record
		err  error
	)
	switch o.Format {
	case FormatTriples:
		n, recs, err = readTriples(t, o.MaxNodes)
	default:
		n, recs, err = readHeader(t, o.MaxNodes)
	}
	if err != nil {
		return nil, err
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGraphFormat, err)
	}
	for _, rec := range recs {
		if err = g.AddEdge(rec.u, rec.v, rec.p); err != nil {
			if errors.Is(err, core.ErrNodeOutOfRange) {
				return nil, fmt.Errorf("line %d: %w: %v", rec.line, ErrGraphFormat, err)
			}
			return nil, fmt.Errorf("line %d: %w", rec.line, err)
		}
	}
	g.Seal()

	return g, nil
}

// readHeader parses "<n> <m>" and exactly m records; trailing tokens are an error.
func readHeader(t *tokenizer, maxNodes int) (int, []record, error) {
	n, err := t.nextInt("numNodes")
	if err != nil {
		return 0, nil, err
	}
	m, err := t.nextInt("numEdges")
	if err != nil {
		return 0, nil, err
	}
	if n < 0 || m < 0 {
		return 0, nil, fmt.Errorf("line %d: %w: negative header counts (%d, %d)", t.line, ErrGraphFormat, n, m)
	}
	if n > maxNodes {
		return 0, nil, fmt.Errorf("line %d: %w: numNodes=%d exceeds limit %d", t.line, ErrGraphFormat, n, maxNodes)
	}

	recs := make([]record, 0, min(m, maxEdgeHint))
	for i := 0; i < m; i++ {
		rec, ok, err := t.nextRecord()
		if err != nil {
			return 0, nil, err
		}
		if !ok {
			return 0, nil, fmt.Errorf("%w: header declares %d edges, found %d", ErrGraphFormat, m, i)
		}
		recs = append(recs, rec)
	}

	tok, err := t.next()
	if err != nil {
		return 0, nil, err
	}
	if tok != "" {
		return 0, nil, fmt.Errorf("line %d: %w: header declares %d edges, found more (%q)", t.line, ErrGraphFormat, m, tok)
	}

	return n, recs, nil
}

// readTriples parses records until EOF and infers n = max id + 1.
func readTriples(t *tokenizer, maxNodes int) (int, []record, error) {
	var (
		recs []record
		n    int
	)
	for {
		rec, ok, err := t.nextRecord()
		if err != nil {
			return 0, nil, err
		}
		if !ok {
			break
		}
		if rec.u < 0 || rec.v < 0 {
			return 0, nil, fmt.Errorf("line %d: %w: negative node id", rec.line, ErrGraphFormat)
		}
		n = max(n, rec.u+1, rec.v+1)
		if n > maxNodes {
			return 0, nil, fmt.Errorf("line %d: %w: node id %d exceeds limit %d", rec.line, ErrGraphFormat, n-1, maxNodes)
		}
		recs = append(recs, rec)
	}

	return n, recs, nil
}

// tokenizer yields whitespace-separated tokens while tracking line numbers.
type tokenizer struct {
	sc     *bufio.Scanner
	fields []string
	line   int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &tokenizer{sc: sc}
}

// next returns the next token, or "" at EOF.
func (t *tokenizer) next() (string, error) {
	for len(t.fields) == 0 {
		if !t.sc.Scan() {
			if err := t.sc.Err(); err != nil {
				return "", fmt.Errorf("line %d: %w: %w", t.line+1, ErrGraphIO, err)
			}
			return "", nil
		}
		t.line++
		t.fields = strings.Fields(t.sc.Text())
	}
	tok := t.fields[0]
	t.fields = t.fields[1:]

	return tok, nil
}

func (t *tokenizer) nextInt(what string) (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	if tok == "" {
		return 0, fmt.Errorf("%w: missing %s", ErrGraphFormat, what)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w: %s %q is not an integer", t.line, ErrGraphFormat, what, tok)
	}

	return v, nil
}

// nextRecord reads one triple. ok is false on a clean EOF before the first
// token; EOF inside a triple is a format error.
func (t *tokenizer) nextRecord() (rec record, ok bool, err error) {
	tok, err := t.next()
	if err != nil || tok == "" {
		return record{}, false, err
	}
	rec.line = t.line
	if rec.u, err = strconv.Atoi(tok); err != nil {
		return record{}, false, fmt.Errorf("line %d: %w: node id %q is not an integer", t.line, ErrGraphFormat, tok)
	}
	if rec.v, err = t.nextInt("target node id"); err != nil {
		return record{}, false, err
	}

	tok, err = t.next()
	if err != nil {
		return record{}, false, err
	}
	if tok == "" {
		return record{}, false, fmt.Errorf("%w: missing probability", ErrGraphFormat)
	}
	if rec.p, err = strconv.ParseFloat(tok, 64); err != nil {
		return record{}, false, fmt.Errorf("line %d: %w: probability %q is not a number", t.line, ErrGraphFormat, tok)
	}

	return rec, true, nil
}
