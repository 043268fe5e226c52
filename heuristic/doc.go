// Package heuristic drives a trigraph.Trigraph to a single vertex via one
// of two contraction strategies, emitting one Step per merge.
//
// What
//
//   - Strategy: the candidate-selection policy (RedWalk or DegreePair).
//   - Run: loops Merge until one vertex remains, producing a Sequence of
//     Steps and the component's peak width.
//   - RedWalk: top-20 lowest red-degree vertices, each paired against a
//     10-sample random-walk neighborhood.
//   - DegreePair: top-20 lowest total-degree vertices, all-pairs among
//     them.
//
// Why
//
//   - Both strategies share the same score-minimization tie-break and
//     cache-reset plumbing (package scorecache); only candidate
//     generation differs, so Run takes a Strategy value rather than
//     duplicating the loop.
//
// Determinism
//
//	A fixed trigraph.WithSeed fixes the PRNG draws of RedWalk's random
//	walks, and DegreePair uses no randomness. The order of vertices
//	inside the degree buckets and of RandomWalkNeighborhood's result
//	follows Go map iteration, which varies between runs; since ties
//	between equal-score pairs go to the first one seen, neither strategy
//	is guaranteed to produce the same sequence on repeated runs over the
//	same input, nor across different orderings of construction.
//
// Options
//
//   - WithCandidatePoolSize(k): override the top-k pool size (default 20).
//   - WithWalkSamples(m): override the random-walk trial count (default 10).
//   - WithScoreResetThreshold(n): override SCORE_RESET_THRESHOLD (default 1).
//   - WithDeadline(d): cooperative wall-clock budget; Run returns the
//     best sequence produced so far if d elapses mid-loop.
package heuristic
