// arcade is a gesture-driven arcade for the terminal. Games can be played
// with the keyboard or fed stabilized pose labels from an external classifier.
//
// Usage:
//
//	arcade list                  - List available games
//	arcade play <game>           - Play a game
//	arcade menu                  - Start menu to pick games interactively
//	arcade serve                 - Start SSH server for remote play
//	arcade scores [game]         - Show high scores and statistics
//	arcade simulate <game>       - Run a session headless from a label file
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level> - debug, info, warn or error
//	--lang <tag>        - Summary language, en or ko
//
// Every global flag also has an ARCADE_* environment variable.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hongjigr-sebon/tmposegame/internal/config"
	"github.com/hongjigr-sebon/tmposegame/internal/core"
	"github.com/hongjigr-sebon/tmposegame/internal/storage"
	"github.com/hongjigr-sebon/tmposegame/internal/telemetry"

	// Import games to register them
	_ "github.com/hongjigr-sebon/tmposegame/internal/games/catcher"
	_ "github.com/hongjigr-sebon/tmposegame/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     uint64
	flagDBPath   string
	flagLogLevel string
	flagLang     string

	env               config.Platform
	logger            = log.NewWithOptions(os.Stderr, log.Options{Prefix: "arcade"})
	shutdownTelemetry = func(context.Context) error { return nil }
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Pose Arcade - gesture-driven games in your terminal",
	Long: `Pose Arcade runs two small games driven by body-pose labels from an
external classifier, or by the keyboard.

  runner   - hold a pose (or Space) to rise over cacti and collect coins
  catcher  - move between three lanes to catch falling items for 60 seconds

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  serve     - Start SSH server for remote play
  scores    - View high scores and statistics
  simulate  - Replay a label file without a terminal

Examples:
  arcade list
  arcade play catcher
  arcade play runner --labels /tmp/poses.fifo
  arcade menu
  arcade serve --ssh :2222
  arcade simulate catcher --labels session.jsonl --seed 7`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "en", "Summary language: en, ko")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup reads the environment, fills in flags the user did not set, and
// starts logging and tracing.
func setup(cmd *cobra.Command, _ []string) error {
	p, err := config.LoadEnv()
	if err != nil {
		return err
	}
	env = p

	flags := cmd.Flags()
	if !flags.Changed("fps") {
		flagFPS = env.TickRate
	}
	if !flags.Changed("db") {
		flagDBPath = env.DBPath
	}
	if !flags.Changed("log-level") {
		flagLogLevel = env.LogLevel
	}
	if !flags.Changed("lang") {
		flagLang = env.Lang
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	shutdown, err := telemetry.Setup(cmd.Context(), "arcade", env.OTelEndpoint, env.OTelEnabled)
	if err != nil {
		logger.Warn("tracing disabled", "err", err)
		return nil
	}
	shutdownTelemetry = shutdown
	return nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	if err := shutdownTelemetry(context.Background()); err != nil {
		logger.Warn("flush traces", "err", err)
	}
	return nil
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
