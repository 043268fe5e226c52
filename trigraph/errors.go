// SPDX-License-Identifier: MIT
// Package: trigraph
//
// errors.go — sentinel errors for the trigraph package.
//
// Error policy: only package-level sentinels are exported; callers branch
// with errors.Is. Sentinels are never formatted with caller-specific
// detail at definition site — wrap with %w at the call site instead.
package trigraph

import "errors"

// ErrVertexNotActive indicates an operation referenced a vertex that is
// either unknown or has already been contracted away.
var ErrVertexNotActive = errors.New("trigraph: vertex not active")

// ErrSameVertex indicates an operation required two distinct vertices
// (Merge, Score, AddEdge) but received the same index twice.
var ErrSameVertex = errors.New("trigraph: source and twin are the same vertex")

// ErrNoNeighbors indicates RandomNeighbor was called on a vertex with no
// neighbors (empty open neighborhood); the caller must check degree first.
var ErrNoNeighbors = errors.New("trigraph: vertex has no neighbors")

// ErrMixedColorEdge indicates AddEdge was asked to add an edge in a color
// that conflicts with an already-present edge of the other color between
// the same endpoints. This is a programmer error: the caller must
// RemoveEdge first.
var ErrMixedColorEdge = errors.New("trigraph: edge already exists in the other color")
