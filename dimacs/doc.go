// Package dimacs reads a DIMACS-like "p/edges" input stream and builds
// the initial *trigraph.Trigraph, switching to the complement graph
// when edge density exceeds 0.5.
//
// What
//
//   - Parse: comment lines ('c ...'), one 'p tww N M' problem line, then
//     M 'u v' edge lines with 1-based labels. Duplicate and
//     reverse-duplicate edges are dropped on insertion (AddEdgeInitial
//     is idempotent).
//   - Complement: if density = 2M / (N(N-1)) > 0.5, builds the
//     complement graph instead — valid because twin-width is invariant
//     under graph complementation.
//
// Why
//
//   - This is glue, not the interesting engineering; it exists only so
//     the binary in cmd/tww has a complete, real pipeline to drive the
//     trigraph + heuristic engine with.
package dimacs
