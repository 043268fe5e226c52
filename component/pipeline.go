// SPDX-License-Identifier: MIT
// File: pipeline.go
// Role: Config, GlobalStep, ComponentReport, Result, and Run — the
// connected-component pipeline that splits a trigraph, runs the
// heuristic driver on each piece, and stitches the survivors back
// together.
package component

import (
	"time"

	"github.com/katalvlaran/tww-heuristics/heuristic"
	"github.com/katalvlaran/tww-heuristics/trigraph"
	"github.com/katalvlaran/tww-heuristics/twins"
)

// Config collects the pipeline's compile-time toggles and tunables.
type Config struct {
	// UseConnectedComponents, when false, treats the whole input as one
	// component (default true).
	UseConnectedComponents bool
	// EliminateTwins, when true, runs the twins preamble on each
	// component before the heuristic driver (default false).
	EliminateTwins bool
	// ScoreResetThreshold is SCORE_RESET_THRESHOLD (default 1).
	ScoreResetThreshold int
	// CandidatePoolSize overrides the driver's top-k pool size (default 20).
	CandidatePoolSize int
	// WalkSamples overrides the red-walk trial count m (default 10).
	WalkSamples int
	// Deadline is a cooperative wall-clock budget applied per component.
	// Zero means no deadline.
	Deadline time.Duration
	// Seed seeds each component's independent PRNG. Every component
	// starts its own stream from this seed, so a component's PRNG draws
	// do not depend on how many other components the graph splits into.
	// The sequence itself is not guaranteed to repeat between runs (see
	// package heuristic, "Determinism").
	Seed int64

	// OnComponent, if non-nil, is called once per component with its
	// DegreeDeviation and chosen Strategy, letting the caller log
	// informational lines without this package importing a logger.
	OnComponent func(index int, deviation float64, strategy heuristic.Strategy)
}

// DefaultConfig returns the default toggles: connected-component
// splitting on, twin elimination off, SCORE_RESET_THRESHOLD 1.
func DefaultConfig() Config {
	return Config{
		UseConnectedComponents: true,
		ScoreResetThreshold:    1,
		CandidatePoolSize:      20,
		WalkSamples:            10,
		Seed:                   12345,
	}
}

// GlobalStep is one contraction expressed in the original full
// trigraph's dense-index space (not yet translated to external labels).
type GlobalStep struct {
	Source int
	Twin   int
}

// ComponentReport summarizes one component's run.
type ComponentReport struct {
	Members   []int // full's dense indices belonging to this component
	Deviation float64
	Strategy  heuristic.Strategy
	TwinSteps []GlobalStep
	Steps     []GlobalStep
	Width     int
	Survivor  int // full's dense index of the one vertex left active
}

// Result is the pipeline's full output: one report per component plus
// the stitch pairs that join all component survivors, and the overall
// peak width.
type Result struct {
	Components []ComponentReport
	Stitch     []GlobalStep
	Width      int
}

// Run executes the pipeline over full:
//  1. Split (or not) into components.
//  2. Per component: optional twins preamble, strategy selection from
//     the pre-elimination DegreeDeviation, driver run.
//  3. Stitch every component's survivor to the first component's
//     survivor.
//  4. Peak width = max over all component widths.
func Run(full *trigraph.Trigraph, cfg Config) Result {
	var groups [][]int
	if cfg.UseConnectedComponents {
		groups = Split(full)
	} else {
		groups = [][]int{full.ActiveVertices()}
	}

	result := Result{Components: make([]ComponentReport, 0, len(groups))}
	survivors := make([]int, 0, len(groups))

	for i, members := range groups {
		report := runOneComponent(full, members, cfg, i)
		result.Components = append(result.Components, report)
		survivors = append(survivors, report.Survivor)
		if report.Width > result.Width {
			result.Width = report.Width
		}
	}

	if len(survivors) > 0 {
		primary := survivors[0]
		for _, other := range survivors[1:] {
			result.Stitch = append(result.Stitch, GlobalStep{Source: primary, Twin: other})
		}
	}
	return result
}

func runOneComponent(full *trigraph.Trigraph, members []int, cfg Config, index int) ComponentReport {
	sub := buildSubTrigraph(full, members, trigraph.WithSeed(cfg.Seed))
	report := ComponentReport{Members: members}

	// Degree deviation is measured on the component's initial trigraph,
	// before any twin elimination, so strategy selection reflects the
	// graph's actual shape rather than the post-elimination remainder.
	report.Deviation = sub.DegreeDeviation()
	report.Strategy = heuristic.SelectStrategy(report.Deviation)
	if cfg.OnComponent != nil {
		cfg.OnComponent(index, report.Deviation, report.Strategy)
	}

	localToOrig := members

	if cfg.EliminateTwins {
		for _, step := range twins.Eliminate(sub) {
			report.TwinSteps = append(report.TwinSteps, GlobalStep{
				Source: localToOrig[step.Source],
				Twin:   localToOrig[step.Twin],
			})
		}
	}

	opts := []heuristic.Option{}
	if cfg.CandidatePoolSize > 0 {
		opts = append(opts, heuristic.WithCandidatePoolSize(cfg.CandidatePoolSize))
	}
	if cfg.WalkSamples > 0 {
		opts = append(opts, heuristic.WithWalkSamples(cfg.WalkSamples))
	}
	if cfg.ScoreResetThreshold > 0 {
		opts = append(opts, heuristic.WithScoreResetThreshold(cfg.ScoreResetThreshold))
	}
	if cfg.Deadline > 0 {
		opts = append(opts, heuristic.WithDeadline(cfg.Deadline))
	}

	seq, err := heuristic.Run(sub, report.Strategy, opts...)
	if err != nil {
		// heuristic.Run only errors on a nil trigraph or an invariant
		// violation inside Merge, neither reachable from a freshly built
		// sub-trigraph; treat as an empty contribution rather than
		// panicking the whole pipeline.
		report.Width = sub.Width()
		if len(members) > 0 {
			report.Survivor = members[0]
		}
		return report
	}

	for _, step := range seq.Steps {
		report.Steps = append(report.Steps, GlobalStep{
			Source: localToOrig[step.Source],
			Twin:   localToOrig[step.Twin],
		})
	}
	report.Width = seq.Width
	report.Survivor = localToOrig[seq.Survivor]
	return report
}
