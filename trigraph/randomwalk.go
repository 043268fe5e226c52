// SPDX-License-Identifier: MIT
// File: randomwalk.go
// Role: RandomNeighbor / RandomWalkNeighborhood — the red-walk strategy's
// candidate-generation primitive.
//
// Randomness: each Trigraph owns one *rand.Rand, seeded with
// defaultSeed (12345) unless overridden via WithSeed/WithRand (see
// types.go), so repeated runs against the same Trigraph produce
// repeatable random walks.
package trigraph

import "sort"

// RandomNeighbor uniformly picks one element of black(v) ∪ red(v).
// Precondition: v has at least one neighbor; callers must check degree
// first.
//
// The candidate is drawn by index from a sorted snapshot of the
// combined neighbor set, not by counting down a live map iteration:
// Go's map iteration order is randomized per-iteration independent of
// any seed, so indexing directly into `range vs.black` would make the
// result depend on runtime map internals instead of t.rng. Sorting
// first makes the draw a pure function of t.rng's seed.
//
// Complexity: O(deg(v) log deg(v)) to build and sort the combined list.
func (t *Trigraph) RandomNeighbor(v int) (int, error) {
	vs, ok := t.vertices[v]
	if !ok {
		return 0, ErrVertexNotActive
	}
	total := len(vs.black) + len(vs.red)
	if total == 0 {
		return 0, ErrNoNeighbors
	}

	combined := make([]int, 0, total)
	for w := range vs.black {
		combined = append(combined, w)
	}
	for w := range vs.red {
		combined = append(combined, w)
	}
	sort.Ints(combined)

	pick := t.rng.Intn(total)
	return combined[pick], nil
}

// RandomWalkNeighborhood builds a set of up to m vertices reachable from
// v by m independent trials: each trial samples a walk length d in
// {1, 2} uniformly, takes w = RandomNeighbor(v), and if d == 2 and w has
// at least one neighbor, replaces w with RandomNeighbor(w). v itself is
// never included in the result.
//
// Complexity: O(m) trials, each O(deg) to pick a random neighbor.
func (t *Trigraph) RandomWalkNeighborhood(v int, m int) ([]int, error) {
	if !t.Active(v) {
		return nil, ErrVertexNotActive
	}
	if _, err := t.RandomNeighbor(v); err != nil {
		// v has no neighbors at all: empty neighborhood, not an error for
		// the caller's purposes — the driver simply skips this candidate.
		return nil, nil
	}

	seen := make(map[int]struct{}, m)
	for i := 0; i < m; i++ {
		d := 1 + t.rng.Intn(2)
		w, err := t.RandomNeighbor(v)
		if err != nil {
			continue
		}
		if d == 2 {
			if w2, err := t.RandomNeighbor(w); err == nil {
				w = w2
			}
		}
		if w == v {
			continue
		}
		seen[w] = struct{}{}
	}

	out := make([]int, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	return out, nil
}
