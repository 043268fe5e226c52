// SPDX-License-Identifier: MIT
// File: partition.go
// Role: FindTrueTwins / FindFalseTwins — neighborhood-signature grouping.
package twins

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/tww-heuristics/trigraph"
)

// Class is a set of vertices sharing a neighborhood signature; only
// classes with len(Members) > 1 are reported by FindTrueTwins/FindFalseTwins.
type Class struct {
	Members []int
}

// FindTrueTwins groups active vertices by identical open neighborhood
// N(v) = black(v) ∪ red(v). Two true twins are never adjacent to each
// other (an edge between them would appear in exactly one of their
// neighborhoods).
//
// Complexity: O(n * d log d) to sort each neighbor list plus O(n) to
// group by signature.
func FindTrueTwins(tg *trigraph.Trigraph) []Class {
	return groupBySignature(tg, false)
}

// FindFalseTwins groups active vertices by identical closed neighborhood
// N(v) ∪ {v}. Two false twins are always adjacent to each other.
//
// Complexity: same as FindTrueTwins.
func FindFalseTwins(tg *trigraph.Trigraph) []Class {
	return groupBySignature(tg, true)
}

func groupBySignature(tg *trigraph.Trigraph, closed bool) []Class {
	active := tg.ActiveVertices()
	byKey := make(map[string][]int, len(active))

	for _, v := range active {
		nbrs, err := tg.Neighbors(v)
		if err != nil {
			continue
		}
		if closed {
			nbrs = append(nbrs, v)
			sort.Ints(nbrs)
		}
		byKey[signature(nbrs)] = append(byKey[signature(nbrs)], v)
	}

	var classes []Class
	for _, members := range byKey {
		if len(members) > 1 {
			classes = append(classes, Class{Members: members})
		}
	}
	return classes
}

func signature(sorted []int) string {
	var b strings.Builder
	for i, v := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
