package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hongjigr-sebon/tmposegame/internal/gesture"
	"github.com/hongjigr-sebon/tmposegame/internal/platform/tui"
	"github.com/hongjigr-sebon/tmposegame/internal/registry"
	"github.com/hongjigr-sebon/tmposegame/internal/telemetry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLabels     string
	flagThreshold  float64
	flagWindow     int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Enter        - Start a session
  Space/Up/W   - Rise (runner, hold)
  1/2/3, A/D   - Pick lane (catcher)
  S            - Stop the session
  R            - Restart after game over
  B/Esc        - Back
  Q/Ctrl+C     - Quit

Pose labels:
  --labels reads classifier output, one frame per line. A line is either a
  plain label ("left", "jump", "왼쪽") or JSON such as
  {"label":"right","confidence":0.93} or {"predictions":[{"class":"left","probability":0.9}]}.
  A label is used once it wins a majority of the last --window frames
  above --threshold. A named pipe lets a live classifier drive the game.

Difficulty options:
  easy   - Slower start, gentler curve
  normal - Default settings
  hard   - Faster start, shorter timer
  fixed  - No progression

Examples:
  arcade play catcher
  arcade play runner --difficulty easy
  arcade play catcher --labels /tmp/poses.fifo
  arcade play runner --config ./my-runner.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLabels, "labels", "", "File or named pipe with classifier output")
	playCmd.Flags().Float64Var(&flagThreshold, "threshold", gesture.DefaultThreshold, "Minimum confidence for a label to count")
	playCmd.Flags().IntVar(&flagWindow, "window", gesture.DefaultWindow, "Frames a label must dominate to become stable")
}

func runPlay(cmd *cobra.Command, args []string) error {
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

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	labels, closeLabels, err := openLabels(ctx, flagLabels)
	if err != nil {
		return err
	}
	defer closeLabels()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Tracer: telemetry.NewSessionTracer(nil),
		Labels: labels,
		Locale: flagLang,
		Logger: logger.With("game", gameID),
		Bell:   os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLabels starts streaming stabilized labels from path. An empty path
// means keyboard only and yields a nil channel.
func openLabels(ctx context.Context, path string) (<-chan string, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open labels: %w", err)
	}
	logger.Debug("streaming pose labels", "path", path, "threshold", flagThreshold, "window", flagWindow)
	ch := gesture.Stream(ctx, f, gesture.NewStabilizer(flagThreshold, flagWindow), logger)
	return ch, func() { f.Close() }, nil
}
