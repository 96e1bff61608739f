package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hongjigr-sebon/tmposegame/internal/gesture"
	"github.com/hongjigr-sebon/tmposegame/internal/platform/tui"
	"github.com/hongjigr-sebon/tmposegame/internal/registry"
	"github.com/hongjigr-sebon/tmposegame/internal/telemetry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press B in a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  D            - Cycle difficulty
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --labels /tmp/poses.fifo`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagLabels, "labels", "", "File or named pipe with classifier output")
	menuCmd.Flags().Float64Var(&flagThreshold, "threshold", gesture.DefaultThreshold, "Minimum confidence for a label to count")
	menuCmd.Flags().IntVar(&flagWindow, "window", gesture.DefaultWindow, "Frames a label must dominate to become stable")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	labels, closeLabels, err := openLabels(cmd.Context(), flagLabels)
	if err != nil {
		return err
	}
	defer closeLabels()

	tracer := telemetry.NewSessionTracer(nil)
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}

		game, err := registry.Create(gameID, registry.Options{
			ConfigPath: flagConfig,
			Difficulty: string(menuResult.Difficulty),
			Seed:       cfg.Seed,
		})
		if err != nil {
			logger.Error("creating game", "game", gameID, "err", err)
			continue
		}

		back, err := tui.Run(game, cfg, tui.Options{
			Store:  store,
			Tracer: tracer,
			Labels: labels,
			Locale: flagLang,
			Logger: logger.With("game", gameID),
			Bell:   os.Stderr,
		})
		if err != nil {
			logger.Error("running game", "game", gameID, "err", err)
		}
		if !back {
			return nil
		}
	}
}
