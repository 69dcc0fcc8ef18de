package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the XLSX workbook.
const (
	sheetBoard      = "Board"
	sheetSolution   = "Solution"
	sheetPlacements = "Placements"
)

// WriteXLSX writes the solution document as an Excel workbook with three
// sheets: the board labels, the per-cell piece assignment, and the
// placement list.
func WriteXLSX(path string, doc Document) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetBoard); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheetSolution); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheetPlacements); err != nil {
		return err
	}

	for r, row := range doc.Cells {
		for c, info := range row {
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetBoard, axis, info.Label); err != nil {
				return err
			}
			if err := f.SetCellValue(sheetSolution, axis, solutionCellValue(info)); err != nil {
				return err
			}
		}
	}

	if err := f.SetCellValue(sheetPlacements, "A1", "Piece"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetPlacements, "B1", "Cells"); err != nil {
		return err
	}
	for i, p := range doc.Placements {
		rowAxis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetPlacements, rowAxis, p.Piece); err != nil {
			return err
		}
		cellAxis, err := excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			return err
		}
		cells := make([]string, len(p.Cells))
		for j, c := range p.Cells {
			cells[j] = fmt.Sprintf("(%d,%d)", c.Row, c.Col)
		}
		if err := f.SetCellValue(sheetPlacements, cellAxis, strings.Join(cells, " ")); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// solutionCellValue formats one cell of the Solution sheet: the covering
// piece name, '#' for forbidden cells, or empty.
func solutionCellValue(info CellInfo) string {
	switch {
	case info.IsForbidden:
		return "#"
	case info.Piece != "":
		return info.Piece
	default:
		return ""
	}
}
