// SPDX-License-Identifier: MIT
// File: merge.go
// Role: the central contraction operation — Merge(source, twin).
//
// Step order matters: black-neighbor reclassification (steps 3-4) must
// run before twin is removed (step 5), and must read black(source)/
// black(twin) as they stood *before* either step mutated them — see
// the snapshot below.
package trigraph

// Merge contracts twin into source: twin is removed, and source ends up
// carrying the union of both vertices' neighborhoods, with edges to
// neighbors common to both staying black and all other edges becoming
// red (or staying red if they already were). Preconditions: source and
// twin are both active and distinct.
//
// Steps:
//  1. Remove the direct (source, twin) edge, if any.
//  2. Absorb twin's red edges into source (skip w == source).
//  3. Recolor source's black-only neighbors (not shared with twin) red.
//  4. Attach twin's black-only neighbors (not shared with source) to
//     source as red.
//  5. Remove twin.
//  6. Width is kept current incrementally by step 2-4's AddEdge calls;
//     no separate rescan is needed here.
//
// Complexity: O(deg(source) + deg(twin)).
func (t *Trigraph) Merge(source, twin int) error {
	if source == twin {
		return ErrSameVertex
	}
	if !t.Active(source) {
		return ErrVertexNotActive
	}
	if !t.Active(twin) {
		return ErrVertexNotActive
	}

	// Step 1: drop the direct edge between them, whichever color.
	t.RemoveEdge(source, twin)

	twinState := t.vertices[twin]
	sourceState := t.vertices[source]

	// Snapshot twin's red neighbors before any mutation touches twin.
	twinRed := make([]int, 0, len(twinState.red))
	for w := range twinState.red {
		twinRed = append(twinRed, w)
	}

	// Step 2: absorb twin's red edges into source.
	for _, w := range twinRed {
		if w == source {
			continue
		}
		if _, isRed := sourceState.red[w]; isRed {
			continue // already red at source
		}
		if _, isBlack := sourceState.black[w]; isBlack {
			// A black edge at source becomes red because twin reaches w
			// in red; fall through to the reclassification in step 3/4
			// by removing the black edge here so it isn't double-handled.
			t.RemoveEdge(source, w)
		}
		_ = t.AddEdge(source, w, Red)
	}

	// Snapshot black(source) and black(twin) before mutating either,
	// since steps 3 and 4 both read these sets relative to each other.
	blackSource := make(map[int]struct{}, len(sourceState.black))
	for w := range sourceState.black {
		blackSource[w] = struct{}{}
	}
	blackTwin := make(map[int]struct{}, len(twinState.black))
	for w := range twinState.black {
		blackTwin[w] = struct{}{}
	}

	// Step 3: S = black(source) \ black(twin); recolor those red.
	for w := range blackSource {
		if w == twin {
			continue
		}
		if _, shared := blackTwin[w]; shared {
			continue // common black neighbor stays black at source
		}
		t.RemoveEdge(source, w)
		_ = t.AddEdge(source, w, Red)
	}

	// Step 4: T = black(twin) \ black(source); attach those to source as
	// red (no-op if source already reaches w in red via step 2/3).
	for w := range blackTwin {
		if w == source {
			continue
		}
		if _, shared := blackSource[w]; shared {
			continue // handled by step 3 as a common black neighbor
		}
		_ = t.AddEdge(source, w, Red)
	}

	// Step 5: remove twin (drops its remaining adjacencies and bucket
	// positions; RemoveVertex also rescans maxRedDegreeSeen if needed).
	return t.RemoveVertex(twin)
}
