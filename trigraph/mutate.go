// SPDX-License-Identifier: MIT
// File: mutate.go
// Role: the single encapsulated mutation path for edges and vertices.
// Every adjacency change flows through AddEdge/RemoveEdge/RemoveVertex so
// bucket indices never drift — see doc.go.
package trigraph

// AddEdgeInitial adds a black edge during graph construction only; it
// does not touch the degree buckets (those are filled in bulk by
// RecomputeDegreeBuckets once loading finishes). Idempotent: a duplicate
// initial edge is a no-op.
//
// Complexity: O(1).
func (t *Trigraph) AddEdgeInitial(u, v int) error {
	if u == v {
		return ErrSameVertex
	}
	uvs, ok := t.vertices[u]
	if !ok {
		return ErrVertexNotActive
	}
	vvs, ok := t.vertices[v]
	if !ok {
		return ErrVertexNotActive
	}
	uvs.black[v] = struct{}{}
	vvs.black[u] = struct{}{}
	return nil
}

// RecomputeDegreeBuckets rebuilds degBuckets from scratch from the
// current adjacency sets. Call once after all AddEdgeInitial calls for a
// freshly constructed Trigraph; not needed afterwards, since AddEdge /
// RemoveEdge / Merge maintain deg buckets incrementally.
//
// Complexity: O(V) plus O(B) to discard the old bucket array, B = old
// max degree.
func (t *Trigraph) RecomputeDegreeBuckets() {
	t.degBuckets = t.degBuckets[:0]
	for v, vs := range t.vertices {
		t.placeInDegBucket(v, vs.totalDegree())
	}
}

// AddEdge adds (u, v) in the given color. Idempotent if the identical
// edge already exists in that color. If the edge already exists in the
// *other* color this is a programmer error: the caller must RemoveEdge
// first. On success, updates both adjacencies and both endpoints'
// degree buckets; red additions may raise Width.
//
// Complexity: O(1) amortized.
func (t *Trigraph) AddEdge(u, v int, color Color) error {
	if u == v {
		return ErrSameVertex
	}
	uvs, ok := t.vertices[u]
	if !ok {
		return ErrVertexNotActive
	}
	vvs, ok := t.vertices[v]
	if !ok {
		return ErrVertexNotActive
	}

	same, other := adjacencyFor(uvs, color), adjacencyFor(uvs, otherColor(color))
	if _, ok := same[v]; ok {
		return nil // idempotent: identical edge already present
	}
	if _, ok := other[v]; ok {
		return ErrMixedColorEdge
	}

	adjacencyFor(uvs, color)[v] = struct{}{}
	adjacencyFor(vvs, color)[u] = struct{}{}

	t.updateTotalDegree(u)
	t.updateTotalDegree(v)
	if color == Red {
		t.updateRedDegree(u)
		t.updateRedDegree(v)
	}
	return nil
}

// RemoveEdge removes (u, v) in whichever color it exists, black checked
// first, updating buckets symmetrically. No-op if no edge exists between
// u and v (or if either endpoint is inactive).
//
// Complexity: O(1) amortized.
func (t *Trigraph) RemoveEdge(u, v int) {
	uvs, ok := t.vertices[u]
	if !ok {
		return
	}
	vvs, ok := t.vertices[v]
	if !ok {
		return
	}

	if _, ok := uvs.black[v]; ok {
		delete(uvs.black, v)
		delete(vvs.black, u)
		t.updateTotalDegree(u)
		t.updateTotalDegree(v)
		return
	}
	if _, ok := uvs.red[v]; ok {
		delete(uvs.red, v)
		delete(vvs.red, u)
		t.updateTotalDegree(u)
		t.updateTotalDegree(v)
		t.updateRedDegree(u)
		t.updateRedDegree(v)
	}
}

// RemoveVertex removes v from every adjacency list it participates in,
// erases it from both buckets (recorded from its own back-pointers, not
// re-derived after v's adjacency has already been torn down), and marks
// v inactive.
//
// Complexity: O(deg(v)).
func (t *Trigraph) RemoveVertex(v int) error {
	vs, ok := t.vertices[v]
	if !ok {
		return ErrVertexNotActive
	}

	wasMaxRed := vs.redDegree() == t.maxRedDegreeSeen

	for w := range vs.black {
		wvs := t.vertices[w]
		delete(wvs.black, v)
		t.updateTotalDegree(w)
	}
	for w := range vs.red {
		wvs := t.vertices[w]
		delete(wvs.red, v)
		t.updateTotalDegree(w)
		t.updateRedDegree(w)
	}

	// Erase v from whichever buckets it currently sits in, recorded
	// before any further mutation — not re-derived from a post-mutation
	// degree of zero.
	t.eraseFromRedBucket(v)
	t.eraseFromDegBucket(v)

	delete(t.vertices, v)
	delete(t.ids, v)

	if wasMaxRed {
		t.rescanMaxRedDegree()
	}
	return nil
}

func adjacencyFor(vs *vertexState, c Color) map[int]struct{} {
	if c == Red {
		return vs.red
	}
	return vs.black
}

func otherColor(c Color) Color {
	if c == Red {
		return Black
	}
	return Red
}
