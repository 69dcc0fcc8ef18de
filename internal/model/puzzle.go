package model

import (
	"time"

	"github.com/google/uuid"
)

// Puzzle ties a board configuration, its piece atlas and an optional
// solution together for save/load.
type Puzzle struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	CreatedAt     string     `json:"created_at"`
	Rows          int        `json:"rows"`
	Cols          int        `json:"cols"`
	Forbidden     []Cell     `json:"forbidden,omitempty"`
	MustStayEmpty []Cell     `json:"must_stay_empty,omitempty"`
	Labels        [][]string `json:"labels,omitempty"`
	Pieces        []Piece    `json:"pieces"`
	Solution      *Solution  `json:"solution,omitempty"`
}

// NewPuzzle captures a board and piece set as a persistable puzzle.
func NewPuzzle(name string, board *Board, labels [][]string, pieces []Piece) Puzzle {
	return Puzzle{
		ID:            uuid.New().String()[:8],
		Name:          name,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		Rows:          board.Rows(),
		Cols:          board.Cols(),
		Forbidden:     board.ForbiddenCells(),
		MustStayEmpty: board.MustStayEmptyCells(),
		Labels:        labels,
		Pieces:        pieces,
	}
}

// Board reconstructs the board described by the puzzle.
func (p Puzzle) Board() (*Board, error) {
	return NewBoard(p.Rows, p.Cols, p.Forbidden, p.MustStayEmpty)
}
