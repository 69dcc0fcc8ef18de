package engine

import (
	"context"
	"testing"

	"github.com/piwi3910/TileFit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkExactCover asserts the structural postconditions of a tiling: one
// placement per piece, no overlaps, and the union of covered cells equal
// to the board's to-cover set.
func checkExactCover(t *testing.T, board *model.Board, pieces []model.Piece, sol *model.Solution) {
	t.Helper()
	require.NotNil(t, sol)
	require.Len(t, sol.Placements, len(pieces))

	seenPieces := make(map[string]bool)
	var covered []model.Cell
	for _, pl := range sol.Placements {
		assert.False(t, seenPieces[pl.Piece], "piece %s placed twice", pl.Piece)
		seenPieces[pl.Piece] = true
		covered = append(covered, pl.Cells...)
	}
	for _, p := range pieces {
		assert.True(t, seenPieces[p.Name], "piece %s missing from solution", p.Name)
	}
	assert.ElementsMatch(t, board.ToCover(), covered)
}

func TestSolve_SquareFillsSquareBoard(t *testing.T) {
	board := mustBoard(t, 2, 2, nil, nil)
	pieces := []model.Piece{
		mustPiece(t, "O", model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}),
	}

	sol, stats, err := New().Solve(context.Background(), board, pieces)
	require.NoError(t, err)
	checkExactCover(t, board, pieces, sol)
	assert.Equal(t, 1, stats.Nodes)
}

func TestSolve_BarFillsRow(t *testing.T) {
	board := mustBoard(t, 1, 5, nil, nil)
	pieces := []model.Piece{
		mustPiece(t, "I5", model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}}),
	}

	sol, _, err := New().Solve(context.Background(), board, pieces)
	require.NoError(t, err)
	checkExactCover(t, board, pieces, sol)
}

func TestSolve_TwoBarsFillTwoRows(t *testing.T) {
	bar := model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}}
	board := mustBoard(t, 2, 5, nil, nil)
	pieces := []model.Piece{
		mustPiece(t, "A", bar),
		mustPiece(t, "B", bar),
	}

	sol, _, err := New().Solve(context.Background(), board, pieces)
	require.NoError(t, err)
	checkExactCover(t, board, pieces, sol)
}

func TestSolve_CellCountMismatchIsUnsolvable(t *testing.T) {
	board := mustBoard(t, 2, 2, nil, nil)
	pieces := []model.Piece{
		mustPiece(t, "D", model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}}),
	}

	sol, _, err := New().Solve(context.Background(), board, pieces)
	assert.ErrorIs(t, err, ErrNoSolution)
	assert.Nil(t, sol)
}

func TestSolve_ReservedCellBlocksOnlyFit(t *testing.T) {
	board := mustBoard(t, 1, 5, nil, []model.Cell{{Row: 0, Col: 2}})
	pieces := []model.Piece{
		mustPiece(t, "I5", model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}}),
	}

	_, _, err := New().Solve(context.Background(), board, pieces)
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestSolve_MixedShapes(t *testing.T) {
	board := mustBoard(t, 2, 4, nil, nil)
	pieces := []model.Piece{
		mustPiece(t, "O", model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}),
		mustPiece(t, "S", model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}),
	}

	sol, _, err := New().Solve(context.Background(), board, pieces)
	require.NoError(t, err)
	checkExactCover(t, board, pieces, sol)
}

func TestSolve_Deterministic(t *testing.T) {
	board := mustBoard(t, 2, 5, nil, nil)
	bar := model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}}
	pieces := []model.Piece{
		mustPiece(t, "A", bar),
		mustPiece(t, "B", bar),
	}

	first, _, err := New().Solve(context.Background(), board, pieces)
	require.NoError(t, err)
	second, _, err := New().Solve(context.Background(), board, pieces)
	require.NoError(t, err)

	require.Len(t, second.Placements, len(first.Placements))
	for i := range first.Placements {
		assert.Equal(t, first.Placements[i].Piece, second.Placements[i].Piece)
		assert.Equal(t, first.Placements[i].Cells, second.Placements[i].Cells)
	}
}

func TestSolve_ParallelWorkersAgreeOnVerdict(t *testing.T) {
	board := mustBoard(t, 4, 5, nil, nil)
	bar := model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}}
	pieces := []model.Piece{
		mustPiece(t, "A", bar),
		mustPiece(t, "B", bar),
		mustPiece(t, "C", bar),
		mustPiece(t, "D", bar),
	}

	solver := &Solver{Workers: 4}
	sol, _, err := solver.Solve(context.Background(), board, pieces)
	require.NoError(t, err)
	checkExactCover(t, board, pieces, sol)

	unsolvable := mustBoard(t, 3, 5, nil, nil)
	_, _, err = solver.Solve(context.Background(), unsolvable, pieces)
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestSolve_CanceledContext(t *testing.T) {
	board := mustBoard(t, 2, 5, nil, nil)
	bar := model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}}
	pieces := []model.Piece{
		mustPiece(t, "A", bar),
		mustPiece(t, "B", bar),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := New().Solve(ctx, board, pieces)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveExactCover_DuplicatePieceNames(t *testing.T) {
	_, _, err := New().SolveExactCover(context.Background(), nil, nil, []string{"A", "A"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate piece name")
}

func TestSolveExactCover_EmptyBoardEmptyPieces(t *testing.T) {
	sol, _, err := New().SolveExactCover(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, sol.Placements)
}
