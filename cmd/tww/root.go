// SPDX-License-Identifier: MIT
// File: root.go — the tww cobra command: flags, wiring, and output
// formatting for the contraction-sequence pipeline.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tww-heuristics/component"
	"github.com/katalvlaran/tww-heuristics/dimacs"
	"github.com/katalvlaran/tww-heuristics/heuristic"
)

const version = "0.1.0"

type flags struct {
	noComponents  bool
	eliminateTwin bool
	scoreReset    int
	poolSize      int
	walkSamples   int
	seed          int64
	timeLimit     time.Duration
	verbose       bool
}

// newRootCmd builds the tww command, reading the DIMACS-like graph from
// stdin and writing the contraction sequence to stdout. Following
// raymyers-ralph-cc-go's cmd/ralph-cc pattern: explicit writers for
// testability, SilenceUsage/SilenceErrors so run() controls the exit
// code, and a RunE closure over parsed flags.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "tww",
		Short: "Compute a heuristic twin-width contraction sequence",
		Long: `tww reads an undirected graph in a DIMACS-like format on stdin
("p tww N M" followed by M "u v" edge lines) and writes a contraction
sequence to stdout that witnesses a heuristic upper bound on the graph's
twin-width.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(stdin, stdout, stderr, f)
		},
	}

	cmd.Flags().BoolVar(&f.noComponents, "no-components", false,
		"treat the input as one component instead of splitting on connectivity")
	cmd.Flags().BoolVar(&f.eliminateTwin, "eliminate-twins", false,
		"run the true/false twin elimination preamble on each component")
	cmd.Flags().IntVar(&f.scoreReset, "score-reset-threshold", 1,
		"clear the pair-score cache every n iterations")
	cmd.Flags().IntVar(&f.poolSize, "pool-size", 20,
		"candidate pool size k for both strategies")
	cmd.Flags().IntVar(&f.walkSamples, "walk-samples", 10,
		"red-walk random-walk trial count m")
	cmd.Flags().Int64Var(&f.seed, "seed", 12345,
		"PRNG seed, applied independently to every component")
	cmd.Flags().DurationVar(&f.timeLimit, "time-limit", 0,
		"cooperative wall-clock budget per component (0 = unbounded)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false,
		"log per-component diagnostics (strategy, deviation, timing) to stderr")

	return cmd
}

func runPipeline(stdin io.Reader, stdout, stderr io.Writer, f flags) error {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	parseStart := time.Now()
	g, err := dimacs.Parse(stdin)
	if err != nil {
		return fmt.Errorf("tww: %w", err)
	}
	logger.Info("parsed input", "vertices", g.N, "edges", len(g.Edges),
		"elapsed", time.Since(parseStart))

	buildStart := time.Now()
	built := dimacs.Build(g)
	logger.Info("built trigraph", "complemented", built.Complemented,
		"density", built.Density, "elapsed", time.Since(buildStart))

	cfg := component.DefaultConfig()
	cfg.UseConnectedComponents = !f.noComponents
	cfg.EliminateTwins = f.eliminateTwin
	cfg.ScoreResetThreshold = f.scoreReset
	cfg.CandidatePoolSize = f.poolSize
	cfg.WalkSamples = f.walkSamples
	cfg.Seed = f.seed
	cfg.Deadline = f.timeLimit
	cfg.OnComponent = func(index int, deviation float64, strategy heuristic.Strategy) {
		logger.Info("component strategy selected", "component", index,
			"deviation", deviation, "strategy", strategy.String())
	}

	runStart := time.Now()
	result := component.Run(built.Trigraph, cfg)
	logger.Info("pipeline complete", "components", len(result.Components),
		"width", result.Width, "elapsed", time.Since(runStart))

	writeResult(stdout, built, result)
	return nil
}

func writeResult(stdout io.Writer, built dimacs.BuildResult, result component.Result) {
	emit := func(src, twin int) {
		a, _ := built.Trigraph.ExternalID(src)
		b, _ := built.Trigraph.ExternalID(twin)
		fmt.Fprintf(stdout, "%d %d\n", a, b)
	}

	for i, rep := range result.Components {
		fmt.Fprintf(stdout, "c component %d: %d vertices, strategy %s, deviation %.2f\n",
			i, len(rep.Members), rep.Strategy, rep.Deviation)
		for _, s := range rep.TwinSteps {
			emit(s.Source, s.Twin)
		}
		for _, s := range rep.Steps {
			emit(s.Source, s.Twin)
		}
	}
	for _, s := range result.Stitch {
		emit(s.Source, s.Twin)
	}

	fmt.Fprintf(stdout, "c twin-width: %d\n", result.Width)
}
