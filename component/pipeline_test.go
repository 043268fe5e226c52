package component_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tww-heuristics/component"
	"github.com/katalvlaran/tww-heuristics/trigraph"
)

// twoTriangles builds K3 {0,1,2} disjoint union K3 {3,4,5}.
func twoTriangles(t *testing.T) *trigraph.Trigraph {
	t.Helper()
	tg := trigraph.New(6, nil)
	edges := [][2]int{{0, 1}, {0, 2}, {1, 2}, {3, 4}, {3, 5}, {4, 5}}
	for _, e := range edges {
		require.NoError(t, tg.AddEdgeInitial(e[0], e[1]))
	}
	tg.RecomputeDegreeBuckets()
	return tg
}

func TestSplit_TwoTriangles(t *testing.T) {
	tg := twoTriangles(t)
	groups := component.Split(tg)
	require.Len(t, groups, 2)
	for _, g := range groups {
		require.Len(t, g, 3)
	}
}

func TestRun_TwoTriangles_StitchesSurvivors(t *testing.T) {
	tg := twoTriangles(t)
	cfg := component.DefaultConfig()

	result := component.Run(tg, cfg)
	require.Len(t, result.Components, 2)
	require.Equal(t, 0, result.Width) // cographs: each K3 collapses with zero red edges

	totalSteps := len(result.Stitch)
	for _, c := range result.Components {
		totalSteps += len(c.Steps) + len(c.TwinSteps)
	}
	require.Equal(t, 5, totalSteps) // n-1 = 5 for 6 vertices total

	require.Len(t, result.Stitch, 1)
}

func TestRun_SingleComponent_NoComponentSplitting(t *testing.T) {
	tg := twoTriangles(t)
	cfg := component.DefaultConfig()
	cfg.UseConnectedComponents = false

	result := component.Run(tg, cfg)
	require.Len(t, result.Components, 1)
	require.Empty(t, result.Stitch)
}

func TestRun_WithTwinElimination(t *testing.T) {
	tg := trigraph.New(7, nil)
	for leaf := 1; leaf <= 6; leaf++ {
		require.NoError(t, tg.AddEdgeInitial(0, leaf))
	}
	tg.RecomputeDegreeBuckets()

	cfg := component.DefaultConfig()
	cfg.EliminateTwins = true

	result := component.Run(tg, cfg)
	require.Len(t, result.Components, 1)
	require.Equal(t, 0, result.Width)
	require.NotEmpty(t, result.Components[0].TwinSteps)
}
