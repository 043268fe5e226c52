// SPDX-License-Identifier: MIT
// File: eliminate.go
// Role: Eliminate — collapse every non-singleton twin class via repeated
// merges, run once as a preamble before the heuristic driver.
package twins

import "github.com/katalvlaran/tww-heuristics/trigraph"

// Step records one twin-collapsing merge, mirroring heuristic.Step so
// callers can splice twin preamble merges and driver merges into one
// output sequence.
type Step struct {
	Source int
	Twin   int
}

// Eliminate runs FindTrueTwins and FindFalseTwins to a fixed point: after
// each round of merges the neighborhood signatures of the surviving
// vertices can change, so classes are recomputed until neither detector
// finds a non-singleton class. Within a class, every member is merged
// into the class's highest-index vertex, matching the heuristic
// package's "larger index survives" convention.
//
// Complexity: O(r * n * d log d) where r is the number of refinement
// rounds until fixed point (typically small).
func Eliminate(tg *trigraph.Trigraph) []Step {
	var steps []Step
	for {
		classes := FindTrueTwins(tg)
		classes = append(classes, FindFalseTwins(tg)...)
		if len(classes) == 0 {
			return steps
		}

		progressed := false
		seen := make(map[int]bool)
		for _, class := range classes {
			members := dedupeActive(tg, class.Members, seen)
			if len(members) < 2 {
				continue
			}
			source := maxOf(members)
			for _, v := range members {
				if v == source {
					continue
				}
				if !tg.Active(v) || !tg.Active(source) {
					continue
				}
				if err := tg.Merge(source, v); err == nil {
					steps = append(steps, Step{Source: source, Twin: v})
					progressed = true
				}
			}
		}
		if !progressed {
			return steps
		}
	}
}

// dedupeActive filters members to currently-active vertices not already
// claimed by an earlier class in this round (a vertex can appear in both
// a true-twin and a false-twin class; only one collapse per round).
func dedupeActive(tg *trigraph.Trigraph, members []int, seen map[int]bool) []int {
	out := make([]int, 0, len(members))
	for _, v := range members {
		if seen[v] || !tg.Active(v) {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func maxOf(vs []int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
