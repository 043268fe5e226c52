// SPDX-License-Identifier: MIT
// File: build.go
// Role: Build — turn a parsed Graph into a *trigraph.Trigraph, switching
// to the complement when density exceeds 0.5.
package dimacs

import "github.com/katalvlaran/tww-heuristics/trigraph"

// BuildResult reports which edge set was actually used, for the
// informational "c ..." lines cmd/tww emits.
type BuildResult struct {
	Trigraph     *trigraph.Trigraph
	Complemented bool
	Density      float64
}

// Build constructs a Trigraph from g, using the complement graph instead
// of g's own edges when g.Density() > 0.5. Dense vertex indices are g's
// labels minus one; ExternalID recovers the original 1-based label.
//
// Complexity: O(N^2) when complementing (it must consider every
// candidate pair), O(N + M) otherwise.
func Build(g Graph, opts ...trigraph.Option) BuildResult {
	density := g.Density()
	complement := density > 0.5

	ids := make([]int, g.N)
	for i := range ids {
		ids[i] = i + 1
	}
	tg := trigraph.New(g.N, ids, opts...)

	if !complement {
		for _, e := range g.Edges {
			_ = tg.AddEdgeInitial(e[0]-1, e[1]-1)
		}
	} else {
		present := make(map[[2]int]bool, len(g.Edges))
		for _, e := range g.Edges {
			present[[2]int{e[0] - 1, e[1] - 1}] = true
		}
		for i := 0; i < g.N; i++ {
			for j := i + 1; j < g.N; j++ {
				if !present[[2]int{i, j}] {
					_ = tg.AddEdgeInitial(i, j)
				}
			}
		}
	}
	tg.RecomputeDegreeBuckets()

	return BuildResult{Trigraph: tg, Complemented: complement, Density: density}
}
