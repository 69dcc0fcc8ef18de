package engine

import "github.com/piwi3910/TileFit/internal/model"

// Placements enumerates every legal placement of a piece on the board: for
// each orientation, every translation whose bounding box fits the board and
// whose cells avoid forbidden and must-stay-empty cells. The order is
// deterministic for a fixed input (orientations by canonical key, offsets
// row-major), which matters for reproducible solving, not correctness.
func Placements(piece model.Piece, board *model.Board) []model.Placement {
	var out []model.Placement
	for _, orient := range Orientations(piece.Shape) {
		_, max := orient.BoundingBox()
		for r0 := 0; r0+max.Row < board.Rows(); r0++ {
			for c0 := 0; c0+max.Col < board.Cols(); c0++ {
				cells := orient.Translate(r0, c0)
				if anyBlocked(cells, board) {
					continue
				}
				out = append(out, model.NewPlacement(piece.Name, cells))
			}
		}
	}
	return out
}

func anyBlocked(cells []model.Cell, board *model.Board) bool {
	for _, c := range cells {
		if board.Blocked(c) {
			return true
		}
	}
	return false
}

// GenerateAll runs Placements for every piece and returns the per-piece
// lists keyed by piece name, plus the names of pieces that produced no
// placement at all. An empty list is a configuration warning for the
// caller, not an error: the search simply cannot succeed with it.
func GenerateAll(board *model.Board, pieces []model.Piece) (map[string][]model.Placement, []string) {
	byPiece := make(map[string][]model.Placement, len(pieces))
	var empty []string
	for _, p := range pieces {
		placements := Placements(p, board)
		byPiece[p.Name] = placements
		if len(placements) == 0 {
			empty = append(empty, p.Name)
		}
	}
	return byPiece, empty
}
