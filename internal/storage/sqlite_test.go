package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveScore("defender", "local", 42); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("defender")
	if err != nil || high != 42 {
		t.Errorf("HighScore() = %d, %v; want 42", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("defender", "alice", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", "", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("defender", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
		if scores[i].Player != "alice" {
			t.Errorf("scores[%d].Player = %q", i, scores[i].Player)
		}
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 1 || other[0].Player != "local" {
		t.Errorf("Empty player should default to local, got %+v", other)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("test", "local", (i+1)*100)
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

	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("Default limit should return all 5, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("defender")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("defender", "local", 100)
	store.SaveScore("defender", "local", 300)
	store.SaveScore("defender", "local", 200)

	high, err = store.HighScore("defender")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("defender", "local", 100)
	store.SaveSession(Session{GameID: "defender", Player: "local", Score: 100})
	store.SaveScore("other", "local", 300)

	if err := store.ClearScores("defender"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("defender", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	sessions, _ := store.RecentSessions("defender", 10)
	if len(sessions) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(sessions))
	}
	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Error("Other games should not be affected")
	}
}

func TestStoreSessions(t *testing.T) {
	store := openTestStore(t)

	runs := []Session{
		{GameID: "defender", Player: "local", Score: 3, ShotsFired: 10, HitsTaken: 1, Ticks: 400, Duration: 10 * time.Second},
		{GameID: "defender", Player: "bob", Score: 7, ShotsFired: 10, HitsTaken: 4, Ticks: 800, Duration: 20 * time.Second},
	}
	for _, r := range runs {
		if _, err := store.SaveSession(r); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions("defender", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(recent))
	}
	if recent[0].Player != "bob" {
		t.Errorf("Newest session should be first, got %q", recent[0].Player)
	}
	if recent[0].Duration != 20*time.Second || recent[0].Ticks != 800 {
		t.Errorf("Session round trip lost data: %+v", recent[0])
	}

	stats, err := store.GetGameStats("defender")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 7 || stats.TotalScore != 10 {
		t.Errorf("Stats = %+v", stats)
	}
	if stats.HitsTaken != 5 {
		t.Errorf("HitsTaken = %d, want 5", stats.HitsTaken)
	}
	if got := stats.Accuracy(); got != 0.5 {
		t.Errorf("Accuracy() = %v, want 0.5", got)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("defender")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() || stats.Accuracy() != 0 {
		t.Errorf("Empty stats = %+v", stats)
	}
}

func TestParseTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	if got := parseTime(now); !got.Equal(now) {
		t.Errorf("parseTime(time.Time) = %v", got)
	}
	if got := parseTime("2024-05-01 12:30:00"); !got.Equal(now) {
		t.Errorf("parseTime(string) = %v", got)
	}
	if got := parseTime(42); !got.IsZero() {
		t.Errorf("parseTime(int) = %v, want zero", got)
	}
}
