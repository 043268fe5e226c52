// SPDX-License-Identifier: MIT
// File: score.go
// Role: Score(u, v) — symmetric-difference size of closed neighborhoods,
// ignoring u and v themselves.
package trigraph

// Score returns |(N(u) ∆ N(v)) \ {u, v}| where N(x) = black(x) ∪ red(x):
// the number of neighbors w ∉ {u, v} adjacent to exactly one of u, v.
// This upper-bounds the red edges Merge(u, v) would induce at the
// surviving vertex.
//
// Complexity: O(deg(u) + deg(v)).
func (t *Trigraph) Score(u, v int) (int, error) {
	if u == v {
		return 0, ErrSameVertex
	}
	uvs, ok := t.vertices[u]
	if !ok {
		return 0, ErrVertexNotActive
	}
	vvs, ok := t.vertices[v]
	if !ok {
		return 0, ErrVertexNotActive
	}

	score := 0
	for w := range uvs.black {
		if w == v {
			continue
		}
		if !neighborOf(vvs, w) {
			score++
		}
	}
	for w := range uvs.red {
		if w == v {
			continue
		}
		if !neighborOf(vvs, w) {
			score++
		}
	}
	for w := range vvs.black {
		if w == u {
			continue
		}
		if !neighborOf(uvs, w) {
			score++
		}
	}
	for w := range vvs.red {
		if w == u {
			continue
		}
		if !neighborOf(uvs, w) {
			score++
		}
	}
	return score, nil
}

func neighborOf(vs *vertexState, w int) bool {
	if _, ok := vs.black[w]; ok {
		return true
	}
	if _, ok := vs.red[w]; ok {
		return true
	}
	return false
}
