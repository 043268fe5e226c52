// SPDX-License-Identifier: MIT
// File: driver.go
// Role: Run — the shared contraction loop for both strategies.
package heuristic

import (
	"time"

	"github.com/katalvlaran/tww-heuristics/scorecache"
	"github.com/katalvlaran/tww-heuristics/trigraph"
)

// Run drives tg to a single vertex using strategy, emitting one Step per
// merge until NumActive() == 1 or the configured deadline elapses.
//
// Complexity per iteration: RedWalk is O(poolSize * walkSamples * avgDeg);
// DegreePair is O(poolSize^2 * avgDeg).
func Run(tg *trigraph.Trigraph, strategy Strategy, opts ...Option) (Sequence, error) {
	if tg == nil {
		return Sequence{}, ErrNilTrigraph
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cache := scorecache.New()
	var deadline time.Time
	switch {
	case cfg.deadline > 0:
		deadline = time.Now().Add(cfg.deadline)
	case cfg.deadline < 0:
		// Negative duration means "already expired" — used by callers
		// (and tests) that need Run to stop before any merge; the deadline
		// lies in the past, so the first check already reports it elapsed.
		deadline = time.Now().Add(cfg.deadline)
	}

	var seq Sequence
	iteration := 0
	for tg.NumActive() > 1 {
		if !deadline.IsZero() && time.Now().After(deadline) {
			seq.DeadlineHit = true
			break
		}

		var candidate candidatePair
		var found bool
		switch strategy {
		case RedWalk:
			candidate, found = bestRedWalkPair(tg, cache, cfg)
		default:
			candidate, found = bestDegreePairPair(tg, cache, cfg)
		}
		if !found {
			// No pair could be formed (e.g. the last two vertices are
			// not adjacent to any scored candidate set); fall back to
			// merging any two active vertices so the driver still makes
			// progress toward a single survivor.
			active := tg.ActiveVertices()
			if len(active) < 2 {
				break
			}
			candidate = canonicalCandidate(active[0], active[1], 0)
		}

		if err := tg.Merge(candidate.source, candidate.twin); err != nil {
			return seq, err
		}
		seq.Steps = append(seq.Steps, Step{Source: candidate.source, Twin: candidate.twin, Score: candidate.score})

		iteration++
		if iteration%cfg.scoreResetThreshold == 0 {
			cache.Reset()
		}
	}

	seq.Width = tg.Width()
	if active := tg.ActiveVertices(); len(active) == 1 {
		seq.Survivor = active[0]
	}
	return seq, nil
}

// candidatePair is an internal scored candidate: source is the larger
// index of the pair (the surviving vertex), twin the smaller.
type candidatePair struct {
	source, twin, score int
}

// canonicalCandidate builds a candidatePair with the larger index as
// source, matching the "keep the surviving vertex's id max" contract.
func canonicalCandidate(a, b, score int) candidatePair {
	if a < b {
		a, b = b, a
	}
	return candidatePair{source: a, twin: b, score: score}
}

func scoreOf(tg *trigraph.Trigraph, cache *scorecache.Cache, v1, v2 int) (int, error) {
	if s, ok := cache.Get(v1, v2); ok {
		return s, nil
	}
	s, err := tg.Score(v1, v2)
	if err != nil {
		return 0, err
	}
	cache.Put(v1, v2, s)
	return s, nil
}

// bestDegreePairPair pairs the top-k lowest-total-degree vertices
// all-against-all; minimum score wins, ties by first-seen order.
func bestDegreePairPair(tg *trigraph.Trigraph, cache *scorecache.Cache, cfg config) (candidatePair, bool) {
	pool := tg.TopKLowestTotalDegree(cfg.candidatePoolSize)
	best := candidatePair{}
	haveBest := false

	for i := 0; i < len(pool); i++ {
		for j := i + 1; j < len(pool); j++ {
			a, b := pool[i], pool[j]
			cand := canonicalCandidate(a, b, 0)
			score, err := scoreOf(tg, cache, cand.source, cand.twin)
			if err != nil {
				continue
			}
			cand.score = score
			if !haveBest || cand.score < best.score {
				best = cand
				haveBest = true
			}
		}
	}
	return best, haveBest
}

// bestRedWalkPair pairs the top-k lowest-red-degree vertices against
// their own random-walk neighborhoods; minimum score wins.
func bestRedWalkPair(tg *trigraph.Trigraph, cache *scorecache.Cache, cfg config) (candidatePair, bool) {
	pool := tg.TopKLowestRedDegree(cfg.candidatePoolSize)
	best := candidatePair{}
	haveBest := false

	for _, v1 := range pool {
		neighborhood, err := tg.RandomWalkNeighborhood(v1, cfg.walkSamples)
		if err != nil || len(neighborhood) == 0 {
			continue
		}
		for _, v2 := range neighborhood {
			if v2 == v1 {
				continue
			}
			cand := canonicalCandidate(v1, v2, 0)
			score, err := scoreOf(tg, cache, cand.source, cand.twin)
			if err != nil {
				continue
			}
			cand.score = score
			if !haveBest || cand.score < best.score {
				best = cand
				haveBest = true
			}
		}
	}
	return best, haveBest
}
