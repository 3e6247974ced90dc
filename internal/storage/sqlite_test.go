package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("Database file was not created")
	}
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("stairdash", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("stairdash", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("stairdash", (i+1)*100)
	}

	scores, err := store.TopScores("stairdash", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("stairdash")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("stairdash", 100)
	store.SaveScore("stairdash", 300)
	store.SaveScore("stairdash", 200)

	high, err = store.HighScore("stairdash")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("stairdash", 100)
	store.SaveScore("other", 999)

	if err := store.ClearScores("stairdash"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("stairdash", 10)
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}

	// Other games are untouched
	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("ClearScores should only affect the given game")
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun(RunRecord{
		GameID:        "stairdash",
		Score:         42,
		BestStreak:    7,
		DurationTicks: 5400,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.SaveRun(RunRecord{GameID: "stairdash", Score: 10, BestStreak: 12, DurationTicks: 900})

	runs, err := store.RecentRuns("stairdash", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	best, err := store.BestStreak("stairdash")
	if err != nil {
		t.Fatalf("BestStreak() failed: %v", err)
	}
	if best != 12 {
		t.Errorf("Expected best streak 12, got %d", best)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	// Empty stats are all zero
	stats, err := store.GetGameStats("stairdash")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("stairdash", 10)
	store.SaveScore("stairdash", 30)

	stats, err = store.GetGameStats("stairdash")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("Expected high score 30, got %d", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected avg 20, got %f", stats.AvgScore)
	}
}
