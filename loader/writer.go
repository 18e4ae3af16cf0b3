package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/seedspread/core"
)

// Write serializes g so that Load with the same Format reads it back.
// Each undirected edge is written once, from its lower endpoint, in
// adjacency order. FormatTriples drops trailing isolated vertices, since
// that layout infers the node count from the largest id.
//
// Returns ErrGraphIO if w fails.
func Write(w io.Writer, g *core.Graph, f Format) error {
	bw := bufio.NewWriter(w)
	if f == FormatHeader {
		fmt.Fprintf(bw, "%d %d\n", g.NodeCount(), g.EdgeCount())
	}

	line := make([]byte, 0, 64)
	for u := 0; u < g.NodeCount(); u++ {
		edges, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("Write: %w", err)
		}
		for _, e := range edges {
			if e.To < u {
				continue
			}
			line = strconv.AppendInt(line[:0], int64(u), 10)
			line = append(line, ' ')
			line = strconv.AppendInt(line, int64(e.To), 10)
			line = append(line, ' ')
			line = strconv.AppendFloat(line, e.P, 'g', -1, 64)
			line = append(line, '\n')
			if _, err := bw.Write(line); err != nil {
				return fmt.Errorf("Write: %w: %w", ErrGraphIO, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w: %w", ErrGraphIO, err)
	}

	return nil
}
