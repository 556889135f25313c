package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/scoreboard"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("ABC", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Name != "ABC" {
		t.Errorf("Name = %q, expected %q", scores[0].Name, "ABC")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("AAA", (i+1)*100)
	}

	scores, err := store.TopScores(3)
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

func TestStoreTiesNewestFirst(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("OLD", 50)
	store.SaveScore("NEW", 50)

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "NEW" {
		t.Errorf("Load() = %v, expected NEW first", entries)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveScore("A", 100)
	store.SaveScore("B", 300)
	store.SaveScore("C", 200)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreBoardBest(t *testing.T) {
	store := openTestStore(t)
	board := scoreboard.NewBoard(store, 3)

	for _, e := range []scoreboard.Entry{{Name: "AAA", Score: 120}, {Name: "BBB", Score: 450}} {
		if err := board.Submit(e.Name, e.Score); err != nil {
			t.Fatalf("Submit() failed: %v", err)
		}
	}

	best, err := board.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 450 {
		t.Errorf("Best() = %d, expected 450", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("A", 100)
	store.SaveScore("B", 200)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreAsScoreboardBackend(t *testing.T) {
	store := openTestStore(t)
	board := scoreboard.NewBoard(store, scoreboard.MaxEntries)

	for i := 0; i < 12; i++ {
		if err := board.Submit("PLR", i*10); err != nil {
			t.Fatalf("Submit() failed: %v", err)
		}
	}

	entries, err := board.Entries()
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(entries) != scoreboard.MaxEntries {
		t.Fatalf("Entries() returned %d rows, expected %d", len(entries), scoreboard.MaxEntries)
	}
	if entries[0].Score != 110 || entries[9].Score != 20 {
		t.Errorf("Entries() = %v, expected 110 down to 20", entries)
	}

	ok, err := board.Qualifies(20)
	if err != nil {
		t.Fatalf("Qualifies() failed: %v", err)
	}
	if !ok {
		t.Error("Qualifies(20) = false, expected true for a tie with the lowest entry")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
