package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkazakov/tui-shootout/internal/registry"
	"github.com/mkazakov/tui-shootout/internal/storage"
)

// openScoreStore records n finished one-round matches, each a glove save.
func openScoreStore(t *testing.T, n int) *storage.Store {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for i := 0; i < n; i++ {
		id, err := store.StartMatch()
		if err != nil {
			t.Fatalf("StartMatch() failed: %v", err)
		}
		report := registry.RoundReport{Round: 1, Success: true, ShotType: "wrist", SaveType: "glove"}
		if err := store.RecordRound(id, report); err != nil {
			t.Fatalf("RecordRound() failed: %v", err)
		}
		if err := store.FinishMatch(id); err != nil {
			t.Fatalf("FinishMatch() failed: %v", err)
		}
	}
	return store
}

func TestScoreboardLoadsMatches(t *testing.T) {
	store := openScoreStore(t, 3)
	m := NewScoreboardModel(store, 100, 30)

	if len(m.matches) != 3 {
		t.Fatalf("Loaded %d matches, expected 3", len(m.matches))
	}
	if len(m.table.Rows()) != 3 {
		t.Errorf("Table has %d rows, expected 3", len(m.table.Rows()))
	}

	view := m.View()
	if !strings.Contains(view, "SHOOTOUT RESULTS") {
		t.Error("View missing the title")
	}
	// Width 100 fits the save-type panel
	if !strings.Contains(view, "glove") {
		t.Error("View missing the save-type breakdown")
	}
}

func TestScoreboardEmptyStore(t *testing.T) {
	store := openScoreStore(t, 0)
	m := NewScoreboardModel(store, 100, 30)

	if len(m.table.Rows()) != 0 {
		t.Errorf("Table has %d rows, expected none", len(m.table.Rows()))
	}
	if !strings.Contains(m.View(), "No matches recorded yet") {
		t.Error("View missing the empty-state message")
	}
}

func TestScoreboardNilStoreSafe(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)

	if len(m.matches) != 0 || len(m.saveStats) != 0 {
		t.Error("Nil store should load nothing")
	}
	if m.View() == "" {
		t.Error("View should still render")
	}
}

func TestScoreboardQuitAndBackKeys(t *testing.T) {
	store := openScoreStore(t, 1)

	m := NewScoreboardModel(store, 100, 30)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !updated.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q command should be tea.Quit")
	}

	m = NewScoreboardModel(store, 100, 30)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if !updated.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestScoreboardResizeTogglesPanel(t *testing.T) {
	store := openScoreStore(t, 1)
	m := NewScoreboardModel(store, 100, 30)

	if !m.showPanel {
		t.Fatal("Panel should show at width 100")
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	narrow := updated.(ScoreboardModel)
	if narrow.showPanel {
		t.Error("Panel should hide below the width cutoff")
	}
	if len(narrow.table.Rows()) != 1 {
		t.Errorf("Resize lost the table rows: got %d", len(narrow.table.Rows()))
	}
}
