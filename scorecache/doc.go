// Package scorecache memoizes trigraph.Score results between canonical
// vertex pairs, scoped to a single heuristic driver invocation.
//
// What
//
//   - Keyed by (min(u,v), max(u,v)); Get/Put operate on the canonical pair.
//   - Reset clears the entire cache; the driver calls it every
//     SCORE_RESET_THRESHOLD iterations (default 1, which in practice
//     disables memoization across iterations).
//
// Why
//
//   - The cache is an optimization, not a correctness requirement: every
//     lookup miss recomputes via trigraph.Score directly. Raising the
//     reset threshold trades staleness risk (a cached score surviving a
//     merge that changed one of the two vertices) for fewer
//     recomputations; the driver decides that trade-off, not this
//     package.
package scorecache
