// SPDX-License-Identifier: MIT
// File: types.go
// Role: Trigraph struct, Color, Option, and the New constructor.
package trigraph

import "math/rand"

// Color is the color of a trigraph edge.
type Color int

const (
	// Black edges are present in the original input graph.
	Black Color = iota
	// Red edges were introduced (or re-colored) by a contraction.
	Red
)

// String implements fmt.Stringer for Color.
func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// defaultSeed is the fixed PRNG seed used unless the caller overrides it
// with WithSeed/WithRand, giving reproducible random walks out of the
// box.
const defaultSeed int64 = 12345

// vertexState tracks one active vertex's adjacency and bucket position.
type vertexState struct {
	black map[int]struct{}
	red   map[int]struct{}

	redBucketIdx int // index into Trigraph.redBuckets this vertex currently sits in
	redBucketPos int // position within that bucket's slice (back-pointer)
	degBucketIdx int
	degBucketPos int
}

func newVertexState() *vertexState {
	return &vertexState{
		black: make(map[int]struct{}),
		red:   make(map[int]struct{}),
	}
}

func (vs *vertexState) redDegree() int { return len(vs.red) }
func (vs *vertexState) totalDegree() int { return len(vs.black) + len(vs.red) }

// Trigraph is the mutable red/black graph underlying contraction-sequence
// computation: active vertices, black/red adjacency, and degree-bucket
// indices kept in sync with every mutation. Zero value is not usable;
// construct with New.
type Trigraph struct {
	vertices map[int]*vertexState // active vertex index -> state
	ids      map[int]int          // dense index -> external 1-based label
	nextIdx  int                  // next fresh dense index to hand out

	redBuckets []bucketSlots // redBuckets[d] = vertices with red-degree d (order: see bucketSlots)
	degBuckets []bucketSlots // degBuckets[d] = vertices with total-degree d (order: see bucketSlots)

	maxRedDegreeSeen int // cached running max of |red(v)| across all active v
	width            int // monotone running max red-degree ever observed

	rng *rand.Rand
}

// Option configures a Trigraph at construction time.
type Option func(*Trigraph)

// WithSeed seeds the Trigraph's PRNG deterministically. Use this for
// reproducible random-walk neighborhoods across runs.
func WithSeed(seed int64) Option {
	return func(t *Trigraph) { t.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit PRNG, overriding the default fixed-seed
// source. Panics on nil, matching the builder package's option-validation
// convention: option constructors validate eagerly so misuse is caught at
// wiring time, not deep inside a random walk.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("trigraph: WithRand(nil)")
	}
	return func(t *Trigraph) { t.rng = r }
}

// New constructs an empty Trigraph with n active vertices indexed [0, n),
// all starting in red-bucket 0 and deg-bucket 0. ids, if non-nil, must
// have length n and maps dense index -> external 1-based label; otherwise
// identity labeling (i -> i+1) is assumed.
//
// Complexity: O(n).
func New(n int, ids []int, opts ...Option) *Trigraph {
	t := &Trigraph{
		vertices: make(map[int]*vertexState, n),
		ids:      make(map[int]int, n),
		nextIdx:  n,
		rng:      rand.New(rand.NewSource(defaultSeed)),
	}
	for _, opt := range opts {
		opt(t)
	}

	for i := 0; i < n; i++ {
		t.vertices[i] = newVertexState()
		if ids != nil {
			t.ids[i] = ids[i]
		} else {
			t.ids[i] = i + 1
		}
		t.placeInRedBucket(i, 0)
		t.placeInDegBucket(i, 0)
	}

	return t
}

// NumActive returns the number of currently active vertices.
func (t *Trigraph) NumActive() int { return len(t.vertices) }

// Active reports whether v is a currently active vertex index.
func (t *Trigraph) Active(v int) bool {
	_, ok := t.vertices[v]
	return ok
}

// ExternalID returns the original 1-based label recorded for dense index v.
func (t *Trigraph) ExternalID(v int) (int, bool) {
	id, ok := t.ids[v]
	return id, ok
}

// ActiveVertices returns a snapshot slice of currently active indices, in
// unspecified order. Intended for tests and diagnostics, not hot paths.
func (t *Trigraph) ActiveVertices() []int {
	out := make([]int, 0, len(t.vertices))
	for v := range t.vertices {
		out = append(out, v)
	}
	return out
}

// Width returns W, the running maximum red-degree ever observed on this
// Trigraph. Monotone non-decreasing across the Trigraph's lifetime.
func (t *Trigraph) Width() int { return t.width }

// BlackDegree returns |black(v)|.
func (t *Trigraph) BlackDegree(v int) (int, error) {
	vs, ok := t.vertices[v]
	if !ok {
		return 0, ErrVertexNotActive
	}
	return len(vs.black), nil
}

// RedDegree returns |red(v)|.
func (t *Trigraph) RedDegree(v int) (int, error) {
	vs, ok := t.vertices[v]
	if !ok {
		return 0, ErrVertexNotActive
	}
	return vs.redDegree(), nil
}

// HasEdge reports whether (u, v) exists and, if so, its color.
func (t *Trigraph) HasEdge(u, v int) (Color, bool) {
	vs, ok := t.vertices[u]
	if !ok {
		return Black, false
	}
	if _, ok := vs.black[v]; ok {
		return Black, true
	}
	if _, ok := vs.red[v]; ok {
		return Red, true
	}
	return Black, false
}
