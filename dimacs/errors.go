// SPDX-License-Identifier: MIT
// File: errors.go — sentinel errors for malformed DIMACS-like input.
package dimacs

import "errors"

// ErrMissingProblemLine indicates the input stream ended (or an edge
// line appeared) before a 'p tww N M' line was seen.
var ErrMissingProblemLine = errors.New("dimacs: missing 'p tww N M' problem line")

// ErrMalformedProblemLine indicates the 'p' line did not match
// 'p tww N M' with a positive integer N and a non-negative integer M.
var ErrMalformedProblemLine = errors.New("dimacs: malformed problem line")

// ErrMalformedEdgeLine indicates an edge line was not two integers.
var ErrMalformedEdgeLine = errors.New("dimacs: malformed edge line")

// ErrVertexOutOfRange indicates an edge line referenced a label outside
// [1, N] or used the same label twice (u == v).
var ErrVertexOutOfRange = errors.New("dimacs: vertex label out of range")
