package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tww-heuristics/heuristic"
	"github.com/katalvlaran/tww-heuristics/trigraph"
)

func newPath4(t *testing.T) *trigraph.Trigraph {
	t.Helper()
	tg := trigraph.New(4, nil, trigraph.WithSeed(12345))
	require.NoError(t, tg.AddEdgeInitial(0, 1))
	require.NoError(t, tg.AddEdgeInitial(1, 2))
	require.NoError(t, tg.AddEdgeInitial(2, 3))
	tg.RecomputeDegreeBuckets()
	return tg
}

func TestRun_DegreePair_EmitsNMinusOneSteps(t *testing.T) {
	tg := newPath4(t)
	seq, err := heuristic.Run(tg, heuristic.DegreePair)
	require.NoError(t, err)
	require.Len(t, seq.Steps, 3)
	require.Equal(t, 1, tg.NumActive())
	require.LessOrEqual(t, seq.Width, 1)
}

func TestRun_RedWalk_EmitsNMinusOneSteps(t *testing.T) {
	tg := newPath4(t)
	seq, err := heuristic.Run(tg, heuristic.RedWalk)
	require.NoError(t, err)
	require.Len(t, seq.Steps, 3)
	require.Equal(t, 1, tg.NumActive())
}

func TestRun_C5_WidthExactlyTwo(t *testing.T) {
	tg := trigraph.New(5, nil, trigraph.WithSeed(12345))
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}
	for _, e := range edges {
		require.NoError(t, tg.AddEdgeInitial(e[0], e[1]))
	}
	tg.RecomputeDegreeBuckets()

	seq, err := heuristic.Run(tg, heuristic.DegreePair)
	require.NoError(t, err)
	require.Len(t, seq.Steps, 4)
	require.Equal(t, 2, seq.Width)
}

func TestRun_SingleVertex_NoMerges(t *testing.T) {
	tg := trigraph.New(1, nil)
	seq, err := heuristic.Run(tg, heuristic.DegreePair)
	require.NoError(t, err)
	require.Empty(t, seq.Steps)
	require.Equal(t, 0, seq.Width)
}

func TestSelectStrategy(t *testing.T) {
	require.Equal(t, heuristic.RedWalk, heuristic.SelectStrategy(10))
	require.Equal(t, heuristic.RedWalk, heuristic.SelectStrategy(25))
	require.Equal(t, heuristic.DegreePair, heuristic.SelectStrategy(25.01))
}

func TestRun_DeadlineStopsEarly(t *testing.T) {
	tg := newPath4(t)
	seq, err := heuristic.Run(tg, heuristic.DegreePair, heuristic.WithDeadline(-1))
	require.NoError(t, err)
	// a negative budget counts as already elapsed on the very first
	// check: no merges should have been performed.
	require.True(t, seq.DeadlineHit)
	require.Empty(t, seq.Steps)
}
