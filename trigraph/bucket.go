// SPDX-License-Identifier: MIT
// File: bucket.go
// Role: growable degree-bucket indices (by red-degree and by total-degree)
// with O(1) amortized insert/erase via per-vertex back-pointers.
//
// Every adjacency mutation must route through updateRedDegree/
// updateTotalDegree (mutate.go) so buckets never drift from the live
// adjacency sets.
package trigraph

// bucketSlots holds the vertex indices currently at one degree value, in
// insertion order except where swap-remove has relocated the last
// element into a hole (see erase). Twin-width's non-goals exclude
// deterministic output across vertex orderings, so this relaxation of
// strict insertion order is acceptable; ties within a bucket are still
// broken consistently within a single TopK call.
type bucketSlots struct {
	items []int
}

// placeInRedBucket inserts v into redBuckets[d], growing the bucket
// array if needed, and records v's back-pointer.
func (t *Trigraph) placeInRedBucket(v, d int) {
	for len(t.redBuckets) <= d {
		t.redBuckets = append(t.redBuckets, bucketSlots{})
	}
	b := &t.redBuckets[d]
	vs := t.vertices[v]
	vs.redBucketIdx = d
	vs.redBucketPos = len(b.items)
	b.items = append(b.items, v)
}

// placeInDegBucket inserts v into degBuckets[d].
func (t *Trigraph) placeInDegBucket(v, d int) {
	for len(t.degBuckets) <= d {
		t.degBuckets = append(t.degBuckets, bucketSlots{})
	}
	b := &t.degBuckets[d]
	vs := t.vertices[v]
	vs.degBucketIdx = d
	vs.degBucketPos = len(b.items)
	b.items = append(b.items, v)
}

// eraseFromRedBucket removes v from the red bucket recorded in its own
// back-pointer, never from whatever bucket a caller might assume it
// still sits in — a vertex's degree can have moved it since it was
// last placed.
func (t *Trigraph) eraseFromRedBucket(v int) {
	vs := t.vertices[v]
	d := vs.redBucketIdx
	eraseFromBucket(&t.redBuckets[d], vs.redBucketPos, t, false)
}

// eraseFromDegBucket removes v from the degree bucket recorded in its own
// back-pointer.
func (t *Trigraph) eraseFromDegBucket(v int) {
	vs := t.vertices[v]
	d := vs.degBucketIdx
	eraseFromBucket(&t.degBuckets[d], vs.degBucketPos, t, true)
}

// eraseFromBucket removes the element at pos via swap-with-last, fixing
// up the back-pointer of whichever vertex moved into pos. isDeg selects
// which back-pointer field (red vs deg) to patch.
func eraseFromBucket(b *bucketSlots, pos int, t *Trigraph, isDeg bool) {
	last := len(b.items) - 1
	moved := b.items[last]
	b.items[pos] = moved
	b.items = b.items[:last]
	if pos != last {
		vs := t.vertices[moved]
		if isDeg {
			vs.degBucketPos = pos
		} else {
			vs.redBucketPos = pos
		}
	}
}

// moveRedBucket relocates v from its current red bucket to d, the new
// red-degree value.
func (t *Trigraph) moveRedBucket(v, d int) {
	t.eraseFromRedBucket(v)
	t.placeInRedBucket(v, d)
}

// moveDegBucket relocates v from its current degree bucket to d.
func (t *Trigraph) moveDegBucket(v, d int) {
	t.eraseFromDegBucket(v)
	t.placeInDegBucket(v, d)
}

// updateRedDegree moves v to the bucket for its current red-degree,
// pushes width forward when it grows the running maximum, and recomputes
// maxRedDegreeSeen from scratch only when asked (see rescanMaxRedDegree,
// called solely by RemoveVertex/Merge on vertex removal).
func (t *Trigraph) updateRedDegree(v int) {
	vs := t.vertices[v]
	d := vs.redDegree()
	t.moveRedBucket(v, d)
	if d > t.maxRedDegreeSeen {
		t.maxRedDegreeSeen = d
	}
	if d > t.width {
		t.width = d
	}
}

// updateTotalDegree moves v to the bucket for its current total-degree.
func (t *Trigraph) updateTotalDegree(v int) {
	vs := t.vertices[v]
	t.moveDegBucket(v, vs.totalDegree())
}

// rescanMaxRedDegree recomputes maxRedDegreeSeen by scanning redBuckets
// top-down for the highest non-empty index. Only needed after a vertex
// carrying the current maximum is removed; cheap relative to a merge's
// other work and keeps maxRedDegreeSeen honest without being the primary
// update path (which is updateRedDegree's O(1) push).
func (t *Trigraph) rescanMaxRedDegree() {
	for d := len(t.redBuckets) - 1; d >= 0; d-- {
		if len(t.redBuckets[d].items) > 0 {
			t.maxRedDegreeSeen = d
			return
		}
	}
	t.maxRedDegreeSeen = 0
}
