// SPDX-License-Identifier: MIT
// File: subgraph.go
// Role: buildSubTrigraph — materialize one component as an independent
// *trigraph.Trigraph, retaining original labels via its ids table.
package component

import "github.com/katalvlaran/tww-heuristics/trigraph"

// buildSubTrigraph constructs a fresh Trigraph over members (full's dense
// indices), reusing trigraph.New's ids parameter to record each local
// vertex's original full-trigraph index — not yet the external 1-based
// label, which the caller resolves at the very end via full.ExternalID.
// Only black edges between members are copied in; red edges cannot exist
// yet at Split time (see split.go).
//
// Complexity: O(k + sum of degrees among members).
func buildSubTrigraph(full *trigraph.Trigraph, members []int, opts ...trigraph.Option) *trigraph.Trigraph {
	origToLocal := make(map[int]int, len(members))
	for i, orig := range members {
		origToLocal[orig] = i
	}

	sub := trigraph.New(len(members), members, opts...)

	seen := make(map[[2]int]bool)
	for _, orig := range members {
		local := origToLocal[orig]
		neighbors, err := full.BlackNeighbors(orig)
		if err != nil {
			continue
		}
		for _, w := range neighbors {
			wLocal, ok := origToLocal[w]
			if !ok {
				continue // neighbor not in this component (shouldn't happen post-split)
			}
			key := edgeKey(local, wLocal)
			if seen[key] {
				continue
			}
			seen[key] = true
			_ = sub.AddEdgeInitial(local, wLocal)
		}
	}
	sub.RecomputeDegreeBuckets()
	return sub
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}
