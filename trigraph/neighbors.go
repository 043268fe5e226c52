// SPDX-License-Identifier: MIT
// File: neighbors.go
// Role: Neighbors / BlackNeighbors — sorted snapshots of N(v) and
// black(v), for callers outside the package (Neighbors: package twins'
// partition refinement; BlackNeighbors: package component's
// connected-component split and package bipartite's two-coloring).
package trigraph

import "sort"

// Neighbors returns a freshly allocated, sorted snapshot of black(v) ∪
// red(v). Safe for the caller to retain and mutate.
//
// Complexity: O(deg(v) log deg(v)).
func (t *Trigraph) Neighbors(v int) ([]int, error) {
	vs, ok := t.vertices[v]
	if !ok {
		return nil, ErrVertexNotActive
	}
	out := make([]int, 0, len(vs.black)+len(vs.red))
	for w := range vs.black {
		out = append(out, w)
	}
	for w := range vs.red {
		out = append(out, w)
	}
	sort.Ints(out)
	return out, nil
}

// BlackNeighbors returns a sorted snapshot of black(v) only.
func (t *Trigraph) BlackNeighbors(v int) ([]int, error) {
	vs, ok := t.vertices[v]
	if !ok {
		return nil, ErrVertexNotActive
	}
	out := make([]int, 0, len(vs.black))
	for w := range vs.black {
		out = append(out, w)
	}
	sort.Ints(out)
	return out, nil
}
