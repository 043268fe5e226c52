// SPDX-License-Identifier: MIT
// File: types.go
// Role: Strategy, Step, Sequence, Option, and errors for package heuristic.
package heuristic

import (
	"errors"
	"time"
)

// ErrNilTrigraph indicates Run was called with a nil *trigraph.Trigraph.
var ErrNilTrigraph = errors.New("heuristic: trigraph is nil")

// Strategy selects which candidate-generation policy Run uses.
type Strategy int

const (
	// RedWalk pairs the lowest-red-degree vertices against a random-walk
	// neighborhood.
	RedWalk Strategy = iota
	// DegreePair pairs all lowest-total-degree vertices against each
	// other.
	DegreePair
)

// String implements fmt.Stringer for Strategy.
func (s Strategy) String() string {
	if s == RedWalk {
		return "red-walk"
	}
	return "degree-pair"
}

// SelectStrategy picks a strategy from a graph's degree deviation:
// uniform-degree graphs (low deviation) get RedWalk's exploratory
// pairing; skewed-degree graphs get DegreePair's systematic low-degree
// pairing.
func SelectStrategy(degreeDeviation float64) Strategy {
	if degreeDeviation <= 25.0 {
		return RedWalk
	}
	return DegreePair
}

// Step is one decided contraction: Source absorbs Twin. IDs are the
// trigraph's dense indices, not external labels — callers translate via
// trigraph.ExternalID before emitting output.
type Step struct {
	Source int
	Twin   int
	Score  int
}

// Sequence is the ordered output of one Run: the contractions decided,
// in decision order, plus the component's peak width and whether the
// configured deadline cut the run short before a single vertex remained.
type Sequence struct {
	Steps       []Step
	Width       int
	DeadlineHit bool
	Survivor    int // the one vertex left active when Run returned
}

// config collects the tunables set via Option; see doc.go "Options".
type config struct {
	candidatePoolSize   int
	walkSamples         int
	scoreResetThreshold int
	deadline            time.Duration
}

func defaultConfig() config {
	return config{
		candidatePoolSize:   20,
		walkSamples:         10,
		scoreResetThreshold: 1,
	}
}

// Option configures a Run invocation.
type Option func(*config)

// WithCandidatePoolSize overrides the top-k pool size (default 20).
func WithCandidatePoolSize(k int) Option {
	return func(c *config) { c.candidatePoolSize = k }
}

// WithWalkSamples overrides the RedWalk random-walk trial count m
// (default 10).
func WithWalkSamples(m int) Option {
	return func(c *config) { c.walkSamples = m }
}

// WithScoreResetThreshold overrides SCORE_RESET_THRESHOLD (default 1):
// the cache is cleared every n iterations.
func WithScoreResetThreshold(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.scoreResetThreshold = n
	}
}

// WithDeadline sets a cooperative wall-clock budget. Run checks it at the
// top of each iteration and returns the best sequence produced so far,
// with DeadlineHit set, if it has elapsed. Zero (the default) means no
// deadline. A negative duration is treated as already-expired, so Run
// stops before its first merge; this is mainly useful for tests.
func WithDeadline(d time.Duration) Option {
	return func(c *config) { c.deadline = d }
}
