package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/piwi3910/TileFit/internal/model"
)

// PuzzleMeta is a lightweight listing entry for the puzzle library.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	Solved    bool   `json:"solved"`
}

// DefaultLibraryDir returns the default directory for the puzzle library,
// ~/.tilefit/puzzles/.
func DefaultLibraryDir() string {
	return filepath.Join(DefaultConfigDir(), "puzzles")
}

// SavePuzzle writes a puzzle to dir as <id>.json, creating the directory
// if needed, and returns the file path.
func SavePuzzle(dir string, p model.Puzzle) (string, error) {
	if p.ID == "" {
		return "", fmt.Errorf("puzzle has no ID")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, p.ID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// LoadPuzzle reads a puzzle from the given JSON file.
func LoadPuzzle(path string) (model.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Puzzle{}, err
	}
	var p model.Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Puzzle{}, fmt.Errorf("failed to decode puzzle %s: %w", path, err)
	}
	return p, nil
}

// ListPuzzles returns metadata for every puzzle stored in dir, sorted by
// creation time, newest first. A missing directory yields an empty list.
func ListPuzzles(dir string) ([]PuzzleMeta, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var metas []PuzzleMeta
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		p, err := LoadPuzzle(filepath.Join(dir, entry.Name()))
		if err != nil {
			// Skip unreadable entries; the library should still list.
			continue
		}
		metas = append(metas, PuzzleMeta{
			ID:        p.ID,
			Name:      p.Name,
			CreatedAt: p.CreatedAt,
			Solved:    p.Solution != nil,
		})
	}

	sort.Slice(metas, func(i, j int) bool { return metas[i].CreatedAt > metas[j].CreatedAt })
	return metas, nil
}
