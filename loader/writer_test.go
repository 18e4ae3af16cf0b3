package loader_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seedspread/builder"
	"github.com/katalvlaran/seedspread/core"
	"github.com/katalvlaran/seedspread/loader"
)

func TestWrite_Header(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 0, 0.5))
	require.NoError(t, g.AddEdge(1, 2, 0.25))
	require.NoError(t, g.AddEdge(2, 2, 1))
	g.Seal()

	var buf bytes.Buffer
	require.NoError(t, loader.Write(&buf, g, loader.FormatHeader))
	assert.Equal(t, "4 3\n0 1 0.5\n1 2 0.25\n2 2 1\n", buf.String())
}

func TestWrite_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(5),
		builder.WithProbFn(builder.UniformProbFn(0, 1)),
	}, builder.RandomSparse(30, 0.2), builder.Wheel(6))
	require.NoError(t, err)

	for _, f := range []loader.Format{loader.FormatHeader, loader.FormatTriples} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, loader.Write(&buf, g, f))

			back, err := loader.Load(strings.NewReader(buf.String()), loader.WithFormat(f))
			require.NoError(t, err)
			assert.Equal(t, g.EdgeCount(), back.EdgeCount())
			assert.Equal(t, g.NodeCount(), back.NodeCount())

			for u := 0; u < g.NodeCount(); u++ {
				want, _ := g.Neighbors(u)
				got, _ := back.Neighbors(u)
				assert.ElementsMatch(t, want, got, "node %d", u)
			}
		})
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_IOError(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)

	err = loader.Write(failWriter{}, g, loader.FormatHeader)
	assert.ErrorIs(t, err, loader.ErrGraphIO)
}
