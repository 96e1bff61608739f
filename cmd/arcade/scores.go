package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hongjigr-sebon/tmposegame/internal/registry"
	"github.com/hongjigr-sebon/tmposegame/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top scores and statistics for the specified game.
Without a game, a statistics overview of every game is shown.

Examples:
  arcade scores
  arcade scores catcher
  arcade scores runner --recent
  arcade scores runner --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent sessions instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded session of the game")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printOverview(store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'arcade list' to see available games", gameID)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		color.Yellow("Cleared all sessions of %s.", registry.Title(gameID))
		return nil
	}

	var records []storage.SessionRecord
	heading := "High Scores"
	if flagScoresRecent {
		heading = "Recent Sessions"
		records, err = store.RecentSessions(gameID, flagScoresLimit)
	} else {
		records, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	color.Yellow("%s - %s", heading, registry.Title(gameID))
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		color.Green("Play 'arcade play %s' to set the first high score!", gameID)
		return nil
	}

	color.Cyan("  %-4s  %-10s  %-9s  %-8s  %s", "Rank", "Score", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-9s  %-8s  %s\n", "----", "-----", "------", "----", "----")
	for i, r := range records {
		line := fmt.Sprintf("  %-4d  %-10d  %-9s  %-8s  %s",
			i+1, r.Score, r.Reason, r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
		resultColor(r.Reason).Println(line)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	printStats(stats)
	return nil
}

func printOverview(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		color.Yellow("%s", registry.Title(id))
		printStats(all[id])
		fmt.Println()
	}
	return nil
}

func printStats(s *storage.GameStats) {
	fmt.Printf("  Games: %d  Best: %d  Average: %.0f  Best level: %d  Losses: %d\n",
		s.GamesCount, s.HighScore, s.AvgScore, s.BestLevel, s.Losses)
	if !s.LastPlayed.IsZero() {
		fmt.Printf("  Last played: %s\n", s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

// resultColor highlights losses so they stand out in long listings.
func resultColor(reason string) *color.Color {
	switch reason {
	case "hazard", "warnings":
		return color.New(color.FgRed)
	case "timeout":
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}
