package trigraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tww-heuristics/trigraph"
)

func TestInvariants_NoSelfLoopNoMixedColor(t *testing.T) {
	tg := trigraph.New(5, nil)
	require.NoError(t, tg.AddEdgeInitial(0, 1))
	require.NoError(t, tg.AddEdgeInitial(1, 2))
	require.NoError(t, tg.AddEdgeInitial(2, 3))
	require.NoError(t, tg.AddEdgeInitial(3, 4))
	tg.RecomputeDegreeBuckets()

	require.ErrorIs(t, tg.AddEdge(0, 0, trigraph.Black), trigraph.ErrSameVertex)
	require.ErrorIs(t, tg.AddEdge(0, 1, trigraph.Red), trigraph.ErrMixedColorEdge)

	// idempotent re-add of identical-color edge
	require.NoError(t, tg.AddEdge(0, 1, trigraph.Black))
}

func TestInvariants_SymmetricAdjacency(t *testing.T) {
	tg := trigraph.New(3, nil)
	require.NoError(t, tg.AddEdgeInitial(0, 1))
	tg.RecomputeDegreeBuckets()
	require.NoError(t, tg.AddEdge(1, 2, trigraph.Red))

	c, ok := tg.HasEdge(2, 1)
	require.True(t, ok)
	require.Equal(t, trigraph.Red, c)
	c, ok = tg.HasEdge(1, 2)
	require.True(t, ok)
	require.Equal(t, trigraph.Red, c)
}

func TestInvariants_WidthMonotone(t *testing.T) {
	tg := trigraph.New(6, nil)
	require.NoError(t, tg.AddEdgeInitial(0, 1))
	require.NoError(t, tg.AddEdgeInitial(0, 2))
	require.NoError(t, tg.AddEdgeInitial(0, 3))
	require.NoError(t, tg.AddEdgeInitial(1, 4))
	require.NoError(t, tg.AddEdgeInitial(1, 5))
	tg.RecomputeDegreeBuckets()

	last := 0
	for tg.NumActive() > 1 {
		active := tg.ActiveVertices()
		require.NoError(t, tg.Merge(active[0], active[1]))
		require.GreaterOrEqual(t, tg.Width(), last)
		last = tg.Width()
	}
}

// bruteScore recomputes Score via an explicit symmetric-difference
// computation over both vertices' full neighborhoods, independent of
// Score's bucket/cache machinery.
func bruteScore(t *testing.T, tg *trigraph.Trigraph, u, v int) int {
	t.Helper()
	neighborhood := func(x int) map[int]struct{} {
		set := make(map[int]struct{})
		for _, w := range tg.ActiveVertices() {
			if w == x {
				continue
			}
			if _, ok := tg.HasEdge(x, w); ok {
				set[w] = struct{}{}
			}
		}
		return set
	}
	nu, nv := neighborhood(u), neighborhood(v)
	count := 0
	for w := range nu {
		if w == u || w == v {
			continue
		}
		if _, ok := nv[w]; !ok {
			count++
		}
	}
	for w := range nv {
		if w == u || w == v {
			continue
		}
		if _, ok := nu[w]; !ok {
			count++
		}
	}
	return count
}

func TestScore_MatchesBruteForce(t *testing.T) {
	tg := trigraph.New(6, nil)
	require.NoError(t, tg.AddEdgeInitial(0, 1))
	require.NoError(t, tg.AddEdgeInitial(0, 2))
	require.NoError(t, tg.AddEdgeInitial(1, 3))
	require.NoError(t, tg.AddEdgeInitial(2, 3))
	require.NoError(t, tg.AddEdgeInitial(3, 4))
	require.NoError(t, tg.AddEdgeInitial(4, 5))
	tg.RecomputeDegreeBuckets()
	require.NoError(t, tg.AddEdge(1, 5, trigraph.Red))

	for u := 0; u < 6; u++ {
		for v := u + 1; v < 6; v++ {
			got, err := tg.Score(u, v)
			require.NoError(t, err)
			want := bruteScore(t, tg, u, v)
			require.Equal(t, want, got, "score(%d,%d)", u, v)
		}
	}
}

func TestTopK_OrderedNonDecreasing(t *testing.T) {
	tg := trigraph.New(5, nil)
	require.NoError(t, tg.AddEdgeInitial(0, 1))
	require.NoError(t, tg.AddEdgeInitial(0, 2))
	require.NoError(t, tg.AddEdgeInitial(0, 3))
	require.NoError(t, tg.AddEdgeInitial(0, 4))
	tg.RecomputeDegreeBuckets()

	top := tg.TopKLowestTotalDegree(5)
	require.Len(t, top, 5)
	prevDeg := -1
	for _, v := range top {
		d, err := tg.BlackDegree(v)
		require.NoError(t, err)
		require.GreaterOrEqual(t, d, prevDeg)
		prevDeg = d
	}
}

func TestRandomWalkNeighborhood_ExcludesSelf(t *testing.T) {
	tg := trigraph.New(4, nil, trigraph.WithSeed(12345))
	require.NoError(t, tg.AddEdgeInitial(0, 1))
	require.NoError(t, tg.AddEdgeInitial(0, 2))
	require.NoError(t, tg.AddEdgeInitial(0, 3))
	tg.RecomputeDegreeBuckets()

	out, err := tg.RandomWalkNeighborhood(0, 10)
	require.NoError(t, err)
	for _, w := range out {
		require.NotEqual(t, 0, w)
	}
}
