package twins_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tww-heuristics/trigraph"
	"github.com/katalvlaran/tww-heuristics/twins"
)

// star6 builds a star with center 0 and 6 leaves 1..6: every leaf pair is
// a true-twin pair (identical open neighborhood {0}).
func star6(t *testing.T) *trigraph.Trigraph {
	t.Helper()
	tg := trigraph.New(7, nil)
	for leaf := 1; leaf <= 6; leaf++ {
		require.NoError(t, tg.AddEdgeInitial(0, leaf))
	}
	tg.RecomputeDegreeBuckets()
	return tg
}

func TestFindTrueTwins_StarLeavesFormOneClass(t *testing.T) {
	tg := star6(t)
	classes := twins.FindTrueTwins(tg)
	require.Len(t, classes, 1)
	require.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, classes[0].Members)
}

func TestEliminate_StarCollapsesToOneLeaf(t *testing.T) {
	tg := star6(t)
	steps := twins.Eliminate(tg)
	require.Len(t, steps, 5)
	require.Equal(t, 2, tg.NumActive()) // center 0 + one surviving leaf
	require.Equal(t, 0, tg.Width())     // true-twin merges never add red edges
}

func TestFindFalseTwins_TriangleAllPairwiseTwins(t *testing.T) {
	tg := trigraph.New(3, nil)
	require.NoError(t, tg.AddEdgeInitial(0, 1))
	require.NoError(t, tg.AddEdgeInitial(0, 2))
	require.NoError(t, tg.AddEdgeInitial(1, 2))
	tg.RecomputeDegreeBuckets()

	classes := twins.FindFalseTwins(tg)
	require.Len(t, classes, 1)
	require.ElementsMatch(t, []int{0, 1, 2}, classes[0].Members)
}

func TestEliminate_TriangleCollapsesWithZeroWidth(t *testing.T) {
	tg := trigraph.New(3, nil)
	require.NoError(t, tg.AddEdgeInitial(0, 1))
	require.NoError(t, tg.AddEdgeInitial(0, 2))
	require.NoError(t, tg.AddEdgeInitial(1, 2))
	tg.RecomputeDegreeBuckets()

	steps := twins.Eliminate(tg)
	require.NotEmpty(t, steps)
	require.Equal(t, 1, tg.NumActive())
	require.Equal(t, 0, tg.Width())
}

func TestFindTrueTwins_NoTwinsInPath(t *testing.T) {
	tg := trigraph.New(4, nil)
	require.NoError(t, tg.AddEdgeInitial(0, 1))
	require.NoError(t, tg.AddEdgeInitial(1, 2))
	require.NoError(t, tg.AddEdgeInitial(2, 3))
	tg.RecomputeDegreeBuckets()

	require.Empty(t, twins.FindTrueTwins(tg))
	require.Empty(t, twins.FindFalseTwins(tg))
}
