package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hongjigr-sebon/tmposegame/internal/sim"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func summary(game string, score int, reason sim.EndReason) sim.Summary {
	return sim.Summary{GameID: game, Score: score, Reason: reason, Level: 1, Remaining: -1}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveSession(summary("runner", score, sim.ReasonWarnings)); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}
	if _, err := store.SaveSession(summary("catcher", 500, sim.ReasonTimeout)); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	scores, err := store.TopScores("runner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %+v", scores)
	}
	if scores[0].Reason != "warnings" {
		t.Errorf("Reason = %q, want warnings", scores[0].Reason)
	}

	catcher, err := store.TopScores("catcher", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(catcher) != 1 {
		t.Errorf("Expected 1 catcher score, got %d", len(catcher))
	}
}

func TestStoreSessionFields(t *testing.T) {
	store := openTestStore(t)

	sum := sim.Summary{
		GameID:    "catcher",
		Reason:    sim.ReasonHazard,
		Score:     61000,
		Level:     2,
		Progress:  2,
		Warnings:  1,
		Remaining: 17,
		Duration:  43 * time.Second,
	}
	if _, err := store.SaveSession(sum); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	recent, err := store.RecentSessions("catcher", 5)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(recent))
	}
	r := recent[0]
	if r.Reason != "hazard" || r.Score != 61000 || r.Level != 2 || r.Warnings != 1 ||
		r.Remaining != 17 || r.Duration != 43*time.Second {
		t.Errorf("record = %+v", r)
	}
}

func TestStoreRejectsMissingGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveSession(sim.Summary{Score: 10}); err == nil {
		t.Error("SaveSession() should reject a summary without a game id")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSession(summary("test", (i+1)*100, sim.ReasonManual))
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreRecentSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(summary("runner", 1, sim.ReasonManual))
	store.SaveSession(summary("catcher", 2, sim.ReasonManual))
	store.SaveSession(summary("runner", 3, sim.ReasonManual))

	all, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(all))
	}
	// Same-second inserts fall back to insertion order.
	if all[0].Score != 3 || all[2].Score != 1 {
		t.Errorf("Sessions not newest first: %+v", all)
	}

	runner, _ := store.RecentSessions("runner", 1)
	if len(runner) != 1 || runner[0].Score != 3 {
		t.Errorf("RecentSessions(runner, 1) = %+v", runner)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveSession(summary("runner", 100, sim.ReasonWarnings))
	store.SaveSession(summary("runner", 300, sim.ReasonWarnings))
	store.SaveSession(summary("runner", 200, sim.ReasonWarnings))

	high, err = store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(summary("runner", 100, sim.ReasonManual))
	store.SaveSession(summary("runner", 200, sim.ReasonManual))
	store.SaveSession(summary("catcher", 300, sim.ReasonManual))

	if err := store.ClearScores("runner"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	runner, _ := store.TopScores("runner", 10)
	if len(runner) != 0 {
		t.Errorf("Expected 0 runner scores after clear, got %d", len(runner))
	}
	catcher, _ := store.TopScores("catcher", 10)
	if len(catcher) != 1 {
		t.Errorf("Catcher scores should not be affected by clearing runner")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("runner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveSession(summary("runner", 100, sim.ReasonWarnings))
	store.SaveSession(summary("runner", 300, sim.ReasonManual))
	store.SaveSession(summary("catcher", 5000, sim.ReasonHazard))

	stats, err := store.GetGameStats("runner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("runner stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.Losses != 1 {
		t.Errorf("Losses = %d, want 1", stats.Losses)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["catcher"].Losses != 1 || all["catcher"].HighScore != 5000 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestStoreRecorder(t *testing.T) {
	store := openTestStore(t)
	record := store.Recorder(log.New(io.Discard))

	record(summary("runner", 42, sim.ReasonWarnings))
	record(sim.Summary{}) // logged, not saved

	high, _ := store.HighScore("runner")
	if high != 42 {
		t.Errorf("HighScore() = %d, want 42", high)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
