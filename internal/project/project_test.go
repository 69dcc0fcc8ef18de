package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/TileFit/internal/model"
)

func samplePuzzle(t *testing.T, name string) model.Puzzle {
	t.Helper()
	board, err := model.NewBoard(2, 2, nil, nil)
	if err != nil {
		t.Fatalf("NewBoard() error: %v", err)
	}
	piece, err := model.NewPiece("O", model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}})
	if err != nil {
		t.Fatalf("NewPiece() error: %v", err)
	}
	return model.NewPuzzle(name, board, nil, []model.Piece{piece})
}

func TestSaveLoadPuzzle(t *testing.T) {
	dir := t.TempDir()
	p := samplePuzzle(t, "round trip")

	path, err := SavePuzzle(dir, p)
	if err != nil {
		t.Fatalf("SavePuzzle() error: %v", err)
	}
	if filepath.Base(path) != p.ID+".json" {
		t.Errorf("saved as %s, want %s.json", filepath.Base(path), p.ID)
	}

	loaded, err := LoadPuzzle(path)
	if err != nil {
		t.Fatalf("LoadPuzzle() error: %v", err)
	}
	if loaded.ID != p.ID || loaded.Name != p.Name || loaded.Rows != 2 || loaded.Cols != 2 {
		t.Errorf("loaded puzzle = %+v", loaded)
	}
	if len(loaded.Pieces) != 1 || loaded.Pieces[0].Name != "O" {
		t.Errorf("loaded pieces = %v", loaded.Pieces)
	}

	board, err := loaded.Board()
	if err != nil {
		t.Fatalf("Board() error: %v", err)
	}
	if board.CoverCount() != 4 {
		t.Errorf("CoverCount() = %d, want 4", board.CoverCount())
	}
}

func TestSavePuzzleRequiresID(t *testing.T) {
	if _, err := SavePuzzle(t.TempDir(), model.Puzzle{Name: "no id"}); err == nil {
		t.Error("SavePuzzle() without ID succeeded")
	}
}

func TestListPuzzles(t *testing.T) {
	dir := t.TempDir()

	first := samplePuzzle(t, "first")
	first.CreatedAt = "2026-01-01T00:00:00Z"
	second := samplePuzzle(t, "second")
	second.CreatedAt = "2026-02-01T00:00:00Z"
	second.Solution = &model.Solution{Placements: []model.Placement{
		model.NewPlacement("O", []model.Cell{{Row: 0, Col: 0}}),
	}}

	for _, p := range []model.Puzzle{first, second} {
		if _, err := SavePuzzle(dir, p); err != nil {
			t.Fatalf("SavePuzzle() error: %v", err)
		}
	}
	// Non-puzzle files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	metas, err := ListPuzzles(dir)
	if err != nil {
		t.Fatalf("ListPuzzles() error: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("ListPuzzles() returned %d entries, want 2", len(metas))
	}
	if metas[0].Name != "second" || metas[1].Name != "first" {
		t.Errorf("puzzles not sorted newest first: %v", metas)
	}
	if !metas[0].Solved || metas[1].Solved {
		t.Errorf("solved flags wrong: %v", metas)
	}
}

func TestListPuzzlesMissingDir(t *testing.T) {
	metas, err := ListPuzzles(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("ListPuzzles() error: %v", err)
	}
	if len(metas) != 0 {
		t.Errorf("ListPuzzles() = %v, want empty", metas)
	}
}

func TestSaveLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	config := model.AppConfig{
		DefaultCellSize: 20.0,
		DefaultWorkers:  4,
		RecentPuzzles:   []string{"abc123.json"},
	}

	if err := SaveAppConfig(path, config); err != nil {
		t.Fatalf("SaveAppConfig() error: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig() error: %v", err)
	}
	if loaded.DefaultCellSize != 20.0 || loaded.DefaultWorkers != 4 {
		t.Errorf("loaded config = %+v", loaded)
	}
	if len(loaded.RecentPuzzles) != 1 || loaded.RecentPuzzles[0] != "abc123.json" {
		t.Errorf("RecentPuzzles = %v", loaded.RecentPuzzles)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	loaded, err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadAppConfig() error: %v", err)
	}
	want := model.DefaultAppConfig()
	if loaded.DefaultCellSize != want.DefaultCellSize || loaded.DefaultWorkers != want.DefaultWorkers {
		t.Errorf("LoadAppConfig() = %+v, want defaults %+v", loaded, want)
	}
	if loaded.RecentPuzzles == nil {
		t.Error("RecentPuzzles is nil, want empty slice")
	}
}
