// Package twins implements an optional twin-elimination preamble:
// partition refinement that finds true-twin classes (identical open
// neighborhoods) and false-twin classes (identical closed
// neighborhoods), then collapses each non-singleton class via repeated
// merges before the heuristic driver runs.
//
// What
//
//   - Eliminate partitions active vertices by "split by N(v)" (true
//     twins) and "split by N(v) ∪ {v}" (false twins) refinement, then
//     merges each resulting class of size > 1 into one representative.
//   - Every merge performed this way contributes zero to Width, since
//     twins share identical neighborhoods by construction — no red edges
//     are ever introduced by a twin merge (see merge_test.go for the
//     proof by construction).
//
// Why
//
//   - Pre-collapsing twins shrinks the graph the heuristic driver has to
//     search over, at O(n * p) cost (p = partition count), and is only
//     worth it on graphs where twins are plausibly abundant — callers
//     gate this behind the EliminateTwins config toggle.
package twins
