package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkazakov/tui-shootout/internal/registry"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// playMatch records a full match: successes[i] is the outcome of round i+1.
func playMatch(t *testing.T, store *Store, successes []bool) int64 {
	t.Helper()
	id, err := store.StartMatch()
	if err != nil {
		t.Fatalf("StartMatch() failed: %v", err)
	}
	for i, ok := range successes {
		r := registry.RoundReport{Round: i + 1, Success: ok, ShotType: "wrist"}
		if ok {
			r.SaveType = "body"
		}
		if err := store.RecordRound(id, r); err != nil {
			t.Fatalf("RecordRound() failed: %v", err)
		}
	}
	if err := store.FinishMatch(id); err != nil {
		t.Fatalf("FinishMatch() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
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

func TestStoreRecordRoundUpdatesTotals(t *testing.T) {
	store := openTestStore(t)

	id := playMatch(t, store, []bool{true, false, true, true, false})

	matches, err := store.TopMatches(10)
	if err != nil {
		t.Fatalf("TopMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	if matches[0].ID != id || matches[0].Saves != 3 || matches[0].Goals != 2 {
		t.Errorf("Match totals = %+v, expected 3 saves and 2 goals", matches[0])
	}

	rounds, err := store.MatchRounds(id)
	if err != nil {
		t.Fatalf("MatchRounds() failed: %v", err)
	}
	if len(rounds) != 5 {
		t.Fatalf("Expected 5 rounds, got %d", len(rounds))
	}
	for i, r := range rounds {
		if r.Round != i+1 {
			t.Errorf("Round %d stored as %d", i+1, r.Round)
		}
	}
	if !rounds[0].Success || rounds[0].SaveType != "body" {
		t.Errorf("First round = %+v, expected body save", rounds[0])
	}
	if rounds[1].Success || rounds[1].SaveType != "" {
		t.Errorf("Second round = %+v, expected goal with empty save type", rounds[1])
	}
}

func TestStoreTopMatchesOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	playMatch(t, store, []bool{true, false})              // 1 save
	playMatch(t, store, []bool{true, true, true})         // 3 saves
	playMatch(t, store, []bool{true, true})               // 2 saves
	playMatch(t, store, []bool{false, false})             // 0 saves
	playMatch(t, store, []bool{true, true, true, true})   // 4 saves

	matches, err := store.TopMatches(3)
	if err != nil {
		t.Fatalf("TopMatches() failed: %v", err)
	}

	if len(matches) != 3 {
		t.Fatalf("Expected 3 matches with limit, got %d", len(matches))
	}
	if matches[0].Saves != 4 || matches[1].Saves != 3 || matches[2].Saves != 2 {
		t.Errorf("Matches not in expected order: %v", matches)
	}
}

func TestStoreUnfinishedMatchExcluded(t *testing.T) {
	store := openTestStore(t)

	id, err := store.StartMatch()
	if err != nil {
		t.Fatalf("StartMatch() failed: %v", err)
	}
	err = store.RecordRound(id, registry.RoundReport{Round: 1, Success: true, ShotType: "wrist", SaveType: "glove"})
	if err != nil {
		t.Fatalf("RecordRound() failed: %v", err)
	}

	matches, err := store.TopMatches(10)
	if err != nil {
		t.Fatalf("TopMatches() failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Abandoned match should not rank, got %d matches", len(matches))
	}

	high, err := store.BestSaves()
	if err != nil {
		t.Fatalf("BestSaves() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("BestSaves() = %d for unfinished-only data, expected 0", high)
	}
}

func TestStoreBestSaves(t *testing.T) {
	store := openTestStore(t)

	// No matches yet
	high, err := store.BestSaves()
	if err != nil {
		t.Fatalf("BestSaves() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	playMatch(t, store, []bool{true, true})
	playMatch(t, store, []bool{true, true, true, true, true})
	playMatch(t, store, []bool{true})

	high, err = store.BestSaves()
	if err != nil {
		t.Fatalf("BestSaves() failed: %v", err)
	}
	if high != 5 {
		t.Errorf("Expected best of 5 saves, got %d", high)
	}
}

func TestStoreSaveTypeBreakdown(t *testing.T) {
	store := openTestStore(t)

	id, err := store.StartMatch()
	if err != nil {
		t.Fatalf("StartMatch() failed: %v", err)
	}
	reports := []registry.RoundReport{
		{Round: 1, Success: true, ShotType: "wrist", SaveType: "glove"},
		{Round: 2, Success: true, ShotType: "wrist", SaveType: "body"},
		{Round: 3, Success: true, ShotType: "slapshot", SaveType: "glove"},
		{Round: 4, Success: false, ShotType: "wrist"},
		{Round: 5, Success: true, ShotType: "wrist", SaveType: "glove"},
	}
	for _, r := range reports {
		if err := store.RecordRound(id, r); err != nil {
			t.Fatalf("RecordRound() failed: %v", err)
		}
	}

	stats, err := store.SaveTypeBreakdown()
	if err != nil {
		t.Fatalf("SaveTypeBreakdown() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected 2 save types, got %d: %v", len(stats), stats)
	}
	if stats[0].SaveType != "glove" || stats[0].Count != 3 {
		t.Errorf("Top save type = %+v, expected 3 glove saves", stats[0])
	}
	if stats[1].SaveType != "body" || stats[1].Count != 1 {
		t.Errorf("Second save type = %+v, expected 1 body save", stats[1])
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := openTestStore(t)

	id := playMatch(t, store, []bool{true, false})

	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	matches, _ := store.TopMatches(10)
	if len(matches) != 0 {
		t.Errorf("Expected 0 matches after clear, got %d", len(matches))
	}
	rounds, _ := store.MatchRounds(id)
	if len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}
}
