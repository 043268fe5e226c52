// SPDX-License-Identifier: MIT
// File: split.go
// Role: Split — connected components of a trigraph's black subgraph.
package component

import "github.com/katalvlaran/tww-heuristics/trigraph"

// Split returns the connected components of full's black subgraph, each
// as a slice of full's (dense-index) vertices. Red edges are ignored: at
// the point Split runs (before any contraction), the trigraph carries
// only black edges, but the restriction to BlackNeighbors keeps that
// contract explicit even if Split were ever called on an already-merged
// trigraph.
//
// Complexity: O(V + E) via union-find with path compression.
func Split(full *trigraph.Trigraph) [][]int {
	ds := newDisjointSet()
	active := full.ActiveVertices()
	for _, v := range active {
		ds.makeSet(v)
	}
	for _, v := range active {
		neighbors, err := full.BlackNeighbors(v)
		if err != nil {
			continue
		}
		for _, w := range neighbors {
			ds.union(v, w)
		}
	}
	return ds.components()
}
