package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hongjigr-sebon/tmposegame/internal/core"
	"github.com/hongjigr-sebon/tmposegame/internal/gesture"
	"github.com/hongjigr-sebon/tmposegame/internal/i18n"
	"github.com/hongjigr-sebon/tmposegame/internal/platform/headless"
	"github.com/hongjigr-sebon/tmposegame/internal/registry"
	"github.com/hongjigr-sebon/tmposegame/internal/sim"
	"github.com/hongjigr-sebon/tmposegame/internal/telemetry"
)

var (
	flagSimDuration time.Duration
	flagSimRecord   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <game>",
	Short: "Run a session headless from a label file",
	Long: `Run one session without a terminal on a virtual clock.

Each line of --labels is one classifier frame, delivered one per game
frame at --fps after stabilization. Without --labels the player never
moves. The session ends on a terminal condition or after --duration.
Use "-" to read labels from standard input.

Examples:
  arcade simulate catcher --seed 7
  arcade simulate runner --labels poses.jsonl --duration 30s
  cat poses.txt | arcade simulate catcher --labels - --record`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simulateCmd.Flags().StringVar(&flagLabels, "labels", "", "File with classifier output, or - for stdin")
	simulateCmd.Flags().Float64Var(&flagThreshold, "threshold", gesture.DefaultThreshold, "Minimum confidence for a label to count")
	simulateCmd.Flags().IntVar(&flagWindow, "window", gesture.DefaultWindow, "Frames a label must dominate to become stable")
	simulateCmd.Flags().DurationVar(&flagSimDuration, "duration", headless.DefaultDuration, "Stop the session after this much game time")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the session to the scores database")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'arcade list' to see available games", gameID)
	}

	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Seed:       flagSeed,
	})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	labels, err := readLabels(cmd.InOrStdin(), flagLabels)
	if err != nil {
		return err
	}

	tracer := telemetry.NewSessionTracer(nil)
	opts := headless.Options{
		FPS:      flagFPS,
		Duration: flagSimDuration,
		Labels:   labels,
		Sink:     tracer,
		Logger:   logger.With("game", gameID),
		OnEnd:    tracer.End,
	}
	if flagSimRecord {
		if store := openStore(); store != nil {
			defer store.Close()
			record := store.Recorder(logger)
			opts.OnEnd = func(s sim.Summary) {
				tracer.End(s)
				record(s)
			}
		}
	}

	tracer.Begin(cmd.Context(), gameID, 1)
	res, err := headless.Run(cmd.Context(), game, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	lines := i18n.FormatSummary(i18n.Printer(flagLang), res.Summary)
	headline := color.New(color.FgRed, color.Bold)
	if res.Summary.Won() {
		headline = color.New(color.FgGreen, color.Bold)
	}
	headline.Fprintln(out, lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintln(out, line)
	}

	fmt.Fprintln(out)
	color.New(color.FgCyan).Fprintf(out, "%d frames, %d labels\n", res.Frames, countLabels(labels))
	kinds := make([]core.FeedbackKind, 0, len(res.Events))
	for k := range res.Events {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(out, "  %-14s %d\n", k, res.Events[k])
	}
	return nil
}

// readLabels loads and stabilizes a label file. Empty path means no input.
func readLabels(stdin io.Reader, path string) ([]string, error) {
	var r io.Reader
	switch path {
	case "":
		return nil, nil
	case "-":
		r = stdin
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open labels: %w", err)
		}
		defer f.Close()
		r = f
	}
	return gesture.Collect(r, gesture.NewStabilizer(flagThreshold, flagWindow))
}

func countLabels(labels []string) int {
	n := 0
	for _, l := range labels {
		if l != "" {
			n++
		}
	}
	return n
}
