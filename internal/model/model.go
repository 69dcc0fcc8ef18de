package model

import (
	"fmt"
	"sort"
	"strings"
)

// Cell identifies one board square. Row and Col are zero-based, with rows
// growing downward and columns growing to the right (matrix index notation).
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Less orders cells lexicographically by row, then column.
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// SortCells sorts a cell slice in place into lexicographic order.
func SortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
}

// Shape is a finite set of cells forming a rigid polyomino in local
// coordinates. Two shapes are the same piece if one translates onto the
// other; Normalize produces the canonical representative.
type Shape []Cell

// Normalize shifts the shape so its minimum row and column become zero and
// returns the cells in sorted order. The receiver is not modified.
func (s Shape) Normalize() Shape {
	if len(s) == 0 {
		return nil
	}
	minR, minC := s[0].Row, s[0].Col
	for _, c := range s[1:] {
		if c.Row < minR {
			minR = c.Row
		}
		if c.Col < minC {
			minC = c.Col
		}
	}
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = Cell{Row: c.Row - minR, Col: c.Col - minC}
	}
	SortCells(out)
	return out
}

// Translate shifts all cells by dr rows and dc columns.
func (s Shape) Translate(dr, dc int) Shape {
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = Cell{Row: c.Row + dr, Col: c.Col + dc}
	}
	return out
}

// Rotate90 rotates the shape 90 degrees clockwise about the origin:
// (r, c) -> (c, -r). The result is not normalized.
func (s Shape) Rotate90() Shape {
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = Cell{Row: c.Col, Col: -c.Row}
	}
	return out
}

// Reflect mirrors the shape horizontally: (r, c) -> (r, -c).
// The result is not normalized.
func (s Shape) Reflect() Shape {
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = Cell{Row: c.Row, Col: -c.Col}
	}
	return out
}

// BoundingBox returns the minimum and maximum corners of the shape.
func (s Shape) BoundingBox() (min, max Cell) {
	if len(s) == 0 {
		return Cell{}, Cell{}
	}
	min, max = s[0], s[0]
	for _, c := range s[1:] {
		if c.Row < min.Row {
			min.Row = c.Row
		}
		if c.Col < min.Col {
			min.Col = c.Col
		}
		if c.Row > max.Row {
			max.Row = c.Row
		}
		if c.Col > max.Col {
			max.Col = c.Col
		}
	}
	return min, max
}

// Contains reports whether the shape includes the given cell.
func (s Shape) Contains(c Cell) bool {
	for _, sc := range s {
		if sc == c {
			return true
		}
	}
	return false
}

// Key returns a comparable string form of the shape, suitable for
// deduplicating orientations. Callers should normalize first so that
// translated copies of the same shape produce identical keys.
func (s Shape) Key() string {
	var b strings.Builder
	for i, c := range s {
		if i > 0 {
			b.WriteByte(';')
		}
		fmt.Fprintf(&b, "%d,%d", c.Row, c.Col)
	}
	return b.String()
}

// Piece is a named polyomino supplied once per puzzle instance. Pieces are
// distinguished by name; each must be used exactly once in a solution.
type Piece struct {
	Name  string `json:"name"`
	Shape Shape  `json:"shape"`
}

// NewPiece validates and canonicalizes a piece definition.
func NewPiece(name string, shape Shape) (Piece, error) {
	if name == "" {
		return Piece{}, fmt.Errorf("piece has no name")
	}
	if len(shape) == 0 {
		return Piece{}, fmt.Errorf("piece %q has an empty shape", name)
	}
	seen := make(map[Cell]struct{}, len(shape))
	for _, c := range shape {
		if _, dup := seen[c]; dup {
			return Piece{}, fmt.Errorf("piece %q repeats cell (%d,%d)", name, c.Row, c.Col)
		}
		seen[c] = struct{}{}
	}
	return Piece{Name: name, Shape: shape.Normalize()}, nil
}

// Placement is one concrete position of a piece on the board: the piece
// name plus the absolute board cells it occupies. Placements are generated
// once before search and are read-only afterwards.
type Placement struct {
	Piece string `json:"name"`
	Cells []Cell `json:"cells"`

	// cellSet mirrors Cells for O(1) membership tests during search.
	cellSet map[Cell]struct{}
}

// NewPlacement builds a placement with its membership set precomputed.
func NewPlacement(piece string, cells []Cell) Placement {
	set := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return Placement{Piece: piece, Cells: cells, cellSet: set}
}

// Covers reports whether the placement occupies the given cell.
func (p Placement) Covers(c Cell) bool {
	if p.cellSet != nil {
		_, ok := p.cellSet[c]
		return ok
	}
	// Placements decoded from JSON have no precomputed set.
	for _, pc := range p.Cells {
		if pc == c {
			return true
		}
	}
	return false
}

// Overlaps reports whether any cell of the placement is present in used.
func (p Placement) Overlaps(used map[Cell]struct{}) bool {
	for _, c := range p.Cells {
		if _, ok := used[c]; ok {
			return true
		}
	}
	return false
}

// Solution is one placement per piece whose cells exactly cover the
// board's to-cover set.
type Solution struct {
	Placements []Placement `json:"placements"`
}

// Owners maps each covered cell to the name of the piece covering it.
func (s *Solution) Owners() map[Cell]string {
	owners := make(map[Cell]string)
	for _, p := range s.Placements {
		for _, c := range p.Cells {
			owners[c] = p.Piece
		}
	}
	return owners
}
