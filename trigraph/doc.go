// Package trigraph implements the red/black trigraph used to compute a
// contraction sequence for twin-width: an undirected simple graph whose
// edges are partitioned into black (original) and red (introduced by a
// contraction) colors, plus the degree-bucket indices that let the
// heuristic driver (package heuristic) select low-degree candidates in
// sub-linear time.
//
// What
//
//   - Vertices are dense integer indices in [0, n); a retired index is
//     never reused within a Trigraph's lifetime.
//   - Edges are colored Black or Red, never both, stored as mirrored
//     adjacency sets per vertex.
//   - Two bucket indices — by red-degree and by total-degree — are kept
//     in lockstep with every adjacency mutation, so TopKLowestRedDegree
//     and TopKLowestTotalDegree never scan the vertex set.
//   - Merge(source, twin) contracts twin into source, recoloring edges
//     per the twin-width contraction rule, and retires twin.
//   - Width() reports the maximum red-degree observed over the
//     Trigraph's lifetime (monotone, never decreases).
//
// Why
//
//   - The heuristic driver's cost model assumes O(1)-ish access to "the
//     k lowest-degree active vertices" and O(deg) merges; both depend on
//     the bucket indices being updated exactly once per adjacency change,
//     from a single encapsulated mutation path (see mutate.go).
//
// Determinism
//
//	Bucket iteration order is insertion order within each bucket (not
//	vertex index order), except that erasing a vertex moves the bucket's
//	last entry into the freed slot; callers must not rely on stability
//	across unrelated operations — see TopKLowestRedDegree and
//	TopKLowestTotalDegree.
//
// Concurrency
//
//	A Trigraph is not safe for concurrent use. It is owned exclusively by
//	a single per-component iteration of component.Run (see package component) and
//	driven synchronously by package heuristic.
package trigraph
