package model

import "fmt"

// Board is the fixed puzzle grid. Its cells are partitioned into three
// disjoint sets: forbidden cells (physically missing), must-stay-empty
// cells (excluded by puzzle rule) and the remaining to-cover cells, which
// every solution must cover exactly. A Board is immutable once built.
type Board struct {
	rows, cols    int
	forbidden     map[Cell]struct{}
	mustStayEmpty map[Cell]struct{}
	toCover       []Cell
}

// NewBoard validates the configuration and builds a board. It fails fast on
// non-positive dimensions, out-of-bounds cells, or a cell listed both as
// forbidden and must-stay-empty, so the search never needs to re-validate.
func NewBoard(rows, cols int, forbidden, mustStayEmpty []Cell) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", rows, cols)
	}
	b := &Board{
		rows:          rows,
		cols:          cols,
		forbidden:     make(map[Cell]struct{}, len(forbidden)),
		mustStayEmpty: make(map[Cell]struct{}, len(mustStayEmpty)),
	}
	for _, c := range forbidden {
		if !b.Contains(c) {
			return nil, fmt.Errorf("forbidden cell (%d,%d) is outside the %dx%d board", c.Row, c.Col, rows, cols)
		}
		b.forbidden[c] = struct{}{}
	}
	for _, c := range mustStayEmpty {
		if !b.Contains(c) {
			return nil, fmt.Errorf("must-stay-empty cell (%d,%d) is outside the %dx%d board", c.Row, c.Col, rows, cols)
		}
		if _, dup := b.forbidden[c]; dup {
			return nil, fmt.Errorf("cell (%d,%d) is both forbidden and must-stay-empty", c.Row, c.Col)
		}
		b.mustStayEmpty[c] = struct{}{}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := Cell{Row: r, Col: c}
			if !b.Blocked(cell) {
				b.toCover = append(b.toCover, cell)
			}
		}
	}
	return b, nil
}

// Rows returns the board height in cells.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width in cells.
func (b *Board) Cols() int { return b.cols }

// Contains reports whether the cell lies within board bounds.
func (b *Board) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// IsForbidden reports whether the cell physically does not exist.
func (b *Board) IsForbidden(c Cell) bool {
	_, ok := b.forbidden[c]
	return ok
}

// IsMustStayEmpty reports whether the cell must remain uncovered.
func (b *Board) IsMustStayEmpty(c Cell) bool {
	_, ok := b.mustStayEmpty[c]
	return ok
}

// Blocked reports whether no piece may occupy the cell.
func (b *Board) Blocked(c Cell) bool {
	return b.IsForbidden(c) || b.IsMustStayEmpty(c)
}

// ToCover returns the cells a solution must cover, in lexicographic order.
func (b *Board) ToCover() []Cell {
	out := make([]Cell, len(b.toCover))
	copy(out, b.toCover)
	return out
}

// CoverCount returns the number of cells a solution must cover.
func (b *Board) CoverCount() int { return len(b.toCover) }

// ForbiddenCells returns the forbidden cells in lexicographic order.
func (b *Board) ForbiddenCells() []Cell { return sortedCells(b.forbidden) }

// MustStayEmptyCells returns the must-stay-empty cells in lexicographic order.
func (b *Board) MustStayEmptyCells() []Cell { return sortedCells(b.mustStayEmpty) }

func sortedCells(set map[Cell]struct{}) []Cell {
	out := make([]Cell, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	SortCells(out)
	return out
}
