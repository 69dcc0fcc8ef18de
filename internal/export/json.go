package export

import (
	"encoding/json"
	"os"

	"github.com/piwi3910/TileFit/internal/model"
)

// CellInfo is the per-cell record of the JSON solution dump.
type CellInfo struct {
	Row             int    `json:"row"`
	Col             int    `json:"col"`
	Label           string `json:"label"`
	Piece           string `json:"piece,omitempty"`
	IsMustStayEmpty bool   `json:"isMustStayEmpty"`
	IsForbidden     bool   `json:"isForbidden"`
}

// Document is the structured form of a board plus its solution, intended
// for downstream visualization tooling.
type Document struct {
	Rows          int               `json:"rows"`
	Cols          int               `json:"cols"`
	BoardLabels   [][]string        `json:"boardLabels,omitempty"`
	Cells         [][]CellInfo      `json:"cells"`
	MustStayEmpty []model.Cell      `json:"mustStayEmpty"`
	Forbidden     []model.Cell      `json:"forbidden"`
	Placements    []model.Placement `json:"placements"`
}

// BuildDocument assembles the export document. A nil solution produces a
// document with no piece assignments and an empty placement list.
func BuildDocument(board *model.Board, labels [][]string, sol *model.Solution) Document {
	var owners map[model.Cell]string
	doc := Document{
		Rows:          board.Rows(),
		Cols:          board.Cols(),
		BoardLabels:   labels,
		MustStayEmpty: board.MustStayEmptyCells(),
		Forbidden:     board.ForbiddenCells(),
	}
	if sol != nil {
		owners = sol.Owners()
		doc.Placements = sol.Placements
	}

	doc.Cells = make([][]CellInfo, board.Rows())
	for r := 0; r < board.Rows(); r++ {
		row := make([]CellInfo, board.Cols())
		for c := 0; c < board.Cols(); c++ {
			cell := model.Cell{Row: r, Col: c}
			row[c] = CellInfo{
				Row:             r,
				Col:             c,
				Label:           labelAt(labels, r, c),
				Piece:           owners[cell],
				IsMustStayEmpty: board.IsMustStayEmpty(cell),
				IsForbidden:     board.IsForbidden(cell),
			}
		}
		doc.Cells[r] = row
	}
	return doc
}

// WriteJSON writes the document to path as indented JSON.
func WriteJSON(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
