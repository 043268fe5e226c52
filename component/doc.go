// Package component splits a trigraph into connected components over its
// black subgraph, drives each independently with package heuristic, and
// stitches the per-component survivors into one global contraction
// sequence.
//
// What
//
//   - Split: union-find over black edges, grounded on the classic
//     path-compression + union-by-rank disjoint-set (see
//     disjoint_set.go; the same algorithm gonum/graph's topo package
//     uses for its own connectedComponents helper).
//   - Pipeline: for each component, builds an independent
//     *trigraph.Trigraph retaining original labels, optionally runs the
//     twins preamble, measures DegreeDeviation to pick a Strategy
//     (heuristic.SelectStrategy), runs the driver, and records the
//     component's peak width and surviving vertex.
//   - Stitch: emits one merge pair (primary, other) for every
//     non-primary survivor, where primary is the first component
//     discovered. Each driver's Sequence.Survivor is tracked explicitly
//     as a typed field, never re-derived by re-parsing output, so an
//     empty component can't desynchronize the stitch step.
//
// Why
//
//   - Running one heuristic driver over a disconnected input wastes
//     candidate-selection effort on cross-component pairs that can never
//     merge usefully; splitting first lets each component's driver see
//     only vertices it could plausibly contract against.
package component
