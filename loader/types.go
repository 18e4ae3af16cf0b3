// Package loader provides options and error definitions for reading
// probabilistic edge lists into a sealed core.Graph.
package loader

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph loading.
var (
	// ErrGraphIO is returned when the source cannot be opened or read.
	ErrGraphIO = errors.New("loader: graph source unreadable")

	// ErrGraphFormat is returned for malformed input: missing header, bad
	// numeric tokens, truncated records or an edge count that does not match
	// the header.
	ErrGraphFormat = errors.New("loader: malformed graph")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loader: invalid option supplied")
)

// Format selects the input schema.
type Format int

const (
	// FormatHeader expects "<numNodes> <numEdges>" followed by exactly
	// numEdges "<u> <v> <p>" records.
	FormatHeader Format = iota

	// FormatTriples expects an unbounded stream of "<u> <v> <p>" records with
	// no header; the node count is the largest id seen plus one.
	FormatTriples
)

// String returns the flag spelling of f.
func (f Format) String() string {
	switch f {
	case FormatHeader:
		return "header"
	case FormatTriples:
		return "triples"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "header" / "triples" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "header", "":
		return FormatHeader, nil
	case "triples":
		return FormatTriples, nil
	default:
		return 0, fmt.Errorf("%w: unknown format %q", ErrOptionViolation, s)
	}
}

// DefaultMaxNodes caps the declared or inferred node count so a corrupt
// header cannot trigger a huge allocation.
const DefaultMaxNodes = 1 << 24

// Option configures Load via functional arguments.
type Option func(*Options)

// Options holds the resolved loader parameters.
type Options struct {
	// Format is the input schema.
	Format Format

	// MaxNodes bounds the node count (> 0).
	MaxNodes int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns FormatHeader with DefaultMaxNodes.
func DefaultOptions() Options {
	return Options{
		Format:   FormatHeader,
		MaxNodes: DefaultMaxNodes,
	}
}

// WithFormat selects the input schema.
func WithFormat(f Format) Option {
	return func(o *Options) {
		if f != FormatHeader && f != FormatTriples {
			o.err = fmt.Errorf("%w: unknown format %d", ErrOptionViolation, int(f))
			return
		}
		o.Format = f
	}
}

// WithMaxNodes overrides DefaultMaxNodes.
//
//	n > 0:  limit node count to n
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxNodes must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxNodes = n
	}
}
