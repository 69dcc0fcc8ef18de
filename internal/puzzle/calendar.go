// Package puzzle contains built-in puzzle definitions.
package puzzle

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/piwi3910/TileFit/internal/model"
)

// Definition describes a complete puzzle instance: grid size, display
// labels, forbidden cells and the piece atlas. Accessors hand out copies,
// so a Definition behaves as an immutable configuration value.
type Definition struct {
	Rows, Cols int
	Labels     [][]string
	Forbidden  []model.Cell
	Pieces     []model.Piece
}

// calendarLabels is the printed face of the calendar board. "BL" cells are
// cosmetic fillers that still get covered; the "EMPTY" corner is the one
// physically missing cell.
var calendarLabels = [6][9]string{
	{"JAN", "FEB", "MAR", "APR", "1", "2", "3", "MON", "TUE"},
	{"MAY", "4", "5", "6", "7", "8", "9", "WED", "BL"},
	{"JUN", "10", "11", "12", "13", "31", "15", "THU", "BL"},
	{"JUL", "16", "17", "18", "19", "20", "21", "FRI", "SAT"},
	{"AUG", "22", "23", "24", "25", "26", "27", "BL", "SUN"},
	{"SEP", "OCT", "NOV", "DEC", "28", "29", "30", "14", "EMPTY"},
}

// calendarAtlas is the ten-piece set shipped with the puzzle. All pieces
// are five cells, matching the 50 cells left to cover once the forbidden
// corner and the three date cells are taken out.
var calendarAtlas = []struct {
	name  string
	shape model.Shape
}{
	{"I5", model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}}},
	{"T", model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 1, Col: 1}}},
	{"U", model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}},
	{"Z", model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}},
	{"L1", model.Shape{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}},
	{"P", model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 1}}},
	{"F", model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}},
	{"W", model.Shape{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 3, Col: 1}}},
	{"L2", model.Shape{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 3, Col: 0}, {Row: 3, Col: 1}}},
	{"TL", model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 1}}},
}

// Calendar returns the calendar tiling puzzle: a 6x9 board with one
// missing corner cell, month/day/weekday labels, and the pentomino atlas.
// Each call returns fresh copies; callers may modify the result freely.
func Calendar() Definition {
	labels := make([][]string, len(calendarLabels))
	for r, row := range calendarLabels {
		labels[r] = append([]string(nil), row[:]...)
	}
	pieces := make([]model.Piece, 0, len(calendarAtlas))
	for _, a := range calendarAtlas {
		p, err := model.NewPiece(a.name, a.shape)
		if err != nil {
			// The atlas is static and validated by tests.
			panic(err)
		}
		pieces = append(pieces, p)
	}
	return Definition{
		Rows:      len(calendarLabels),
		Cols:      len(calendarLabels[0]),
		Labels:    labels,
		Forbidden: []model.Cell{{Row: 5, Col: 8}},
		Pieces:    pieces,
	}
}

// FindLabel returns the first cell carrying the given label, scanning
// row-major. Matching is case-insensitive.
func (d Definition) FindLabel(label string) (model.Cell, bool) {
	for r, row := range d.Labels {
		for c, l := range row {
			if strings.EqualFold(l, label) {
				return model.Cell{Row: r, Col: c}, true
			}
		}
	}
	return model.Cell{}, false
}

// TargetCells resolves the labels that must stay empty into board cells.
func (d Definition) TargetCells(labels ...string) ([]model.Cell, error) {
	cells := make([]model.Cell, 0, len(labels))
	for _, label := range labels {
		cell, ok := d.FindLabel(label)
		if !ok {
			return nil, fmt.Errorf("label %q not found on the board", label)
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// Board builds the puzzle board with the given must-stay-empty cells.
func (d Definition) Board(mustStayEmpty []model.Cell) (*model.Board, error) {
	return model.NewBoard(d.Rows, d.Cols, d.Forbidden, mustStayEmpty)
}

// DateLabels converts a date into the month, day, and weekday labels used
// on the calendar board, e.g. "JAN", "2", "FRI".
func DateLabels(t time.Time) (month, day, weekday string) {
	month = strings.ToUpper(t.Month().String()[:3])
	day = strconv.Itoa(t.Day())
	weekday = strings.ToUpper(t.Weekday().String()[:3])
	return month, day, weekday
}
