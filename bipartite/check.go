// SPDX-License-Identifier: MIT
// File: check.go
// Role: Check — two-coloring BFS over a trigraph's black subgraph.
package bipartite

import "github.com/katalvlaran/tww-heuristics/trigraph"

// Result reports whether tg's black subgraph is bipartite and, if so,
// the two-coloring found (vertex -> 0 or 1).
type Result struct {
	IsBipartite bool
	Color       map[int]int
}

// Check runs a BFS two-coloring over every active vertex of tg (handling
// disconnected graphs by restarting from each uncolored vertex), using
// only black edges — red edges introduced by earlier contractions are
// not part of the "original graph" bipartiteness question.
//
// Complexity: O(V + E).
func Check(tg *trigraph.Trigraph) Result {
	color := make(map[int]int)
	bipartite := true

	for _, start := range tg.ActiveVertices() {
		if _, done := color[start]; done {
			continue
		}
		color[start] = 0
		queue := []int{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]

			neighbors, err := tg.BlackNeighbors(v)
			if err != nil {
				continue
			}
			for _, w := range neighbors {
				if c, ok := color[w]; ok {
					if c == color[v] {
						bipartite = false
					}
					continue
				}
				color[w] = 1 - color[v]
				queue = append(queue, w)
			}
		}
	}

	return Result{IsBipartite: bipartite, Color: color}
}
