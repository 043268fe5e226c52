package dimacs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tww-heuristics/dimacs"
)

func TestParse_Path4(t *testing.T) {
	input := "c a comment\np tww 4 3\n1 2\n2 3\n3 4\n"
	g, err := dimacs.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 4, g.N)
	require.Len(t, g.Edges, 3)
}

func TestParse_DropsDuplicateAndReverseDuplicate(t *testing.T) {
	input := "p tww 3 3\n1 2\n2 1\n1 2\n"
	g, err := dimacs.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, g.Edges, 1)
}

func TestParse_MissingProblemLine(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("1 2\n"))
	require.ErrorIs(t, err, dimacs.ErrMissingProblemLine)
}

func TestParse_MalformedProblemLine(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p tww 4\n"))
	require.ErrorIs(t, err, dimacs.ErrMalformedProblemLine)
}

func TestParse_VertexOutOfRange(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p tww 3 1\n1 4\n"))
	require.ErrorIs(t, err, dimacs.ErrVertexOutOfRange)
}

func TestParse_SelfLoopRejected(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p tww 3 1\n1 1\n"))
	require.ErrorIs(t, err, dimacs.ErrVertexOutOfRange)
}

func TestBuild_NoComplementBelowHalfDensity(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader("p tww 4 3\n1 2\n2 3\n3 4\n"))
	require.NoError(t, err)

	res := dimacs.Build(g)
	require.False(t, res.Complemented)
	require.Equal(t, 4, res.Trigraph.NumActive())
	d, err := res.Trigraph.BlackDegree(1) // vertex 2 (index 1), degree 2 in P4
	require.NoError(t, err)
	require.Equal(t, 2, d)
}

func TestBuild_ComplementsAboveHalfDensity(t *testing.T) {
	// K4: density 1.0 > 0.5, complement is the empty graph.
	g, err := dimacs.Parse(strings.NewReader("p tww 4 6\n1 2\n1 3\n1 4\n2 3\n2 4\n3 4\n"))
	require.NoError(t, err)

	res := dimacs.Build(g)
	require.True(t, res.Complemented)
	for v := 0; v < 4; v++ {
		d, err := res.Trigraph.BlackDegree(v)
		require.NoError(t, err)
		require.Equal(t, 0, d)
	}
}
