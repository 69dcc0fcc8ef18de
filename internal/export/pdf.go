package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/TileFit/internal/model"
)

// pieceColor represents an RGB color for a placed piece.
type pieceColor struct {
	R, G, B int
}

// pieceColors mirrors the color scheme used by the board canvas widget.
var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
	{R: 96, G: 125, B: 139}, // blue gray
	{R: 205, G: 220, B: 57}, // lime
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// WritePDF renders the board and its solution as a one-page PDF: a scaled
// cell grid with one color per piece, hatched forbidden cells, the board
// labels inside the cells, and a piece legend underneath.
func WritePDF(path string, board *model.Board, labels [][]string, sol *model.Solution) error {
	if sol == nil || len(sol.Placements) == 0 {
		return fmt.Errorf("no solution to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Tiling solution (%dx%d board)", board.Rows(), board.Cols())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pieces: %d | Cells covered: %d | Must stay empty: %d | Forbidden: %d",
		len(sol.Placements), board.CoverCount(), len(board.MustStayEmptyCells()), len(board.ForbiddenCells()))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the grid to fit the drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight
	cellMM := math.Min(drawWidth/float64(board.Cols()), drawHeight/float64(board.Rows()))

	gridW := cellMM * float64(board.Cols())
	offsetX := marginLeft + (drawWidth-gridW)/2
	offsetY := drawAreaTop

	colorByPiece := make(map[string]pieceColor, len(sol.Placements))
	for i, p := range sol.Placements {
		colorByPiece[p.Piece] = pieceColors[i%len(pieceColors)]
	}
	owners := sol.Owners()

	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			cell := model.Cell{Row: r, Col: c}
			x := offsetX + float64(c)*cellMM
			y := offsetY + float64(r)*cellMM

			switch {
			case board.IsForbidden(cell):
				pdf.SetFillColor(120, 120, 120)
			case board.IsMustStayEmpty(cell):
				pdf.SetFillColor(255, 255, 255)
			default:
				col, ok := colorByPiece[owners[cell]]
				if !ok {
					col = pieceColor{R: 235, G: 235, B: 235}
				}
				pdf.SetFillColor(col.R, col.G, col.B)
			}
			pdf.SetDrawColor(30, 30, 30)
			pdf.SetLineWidth(0.3)
			pdf.Rect(x, y, cellMM, cellMM, "FD")

			if board.IsForbidden(cell) {
				drawHatchPattern(pdf, x, y, cellMM, cellMM)
				continue
			}

			if label := labelAt(labels, r, c); label != "" {
				pdf.SetFont("Helvetica", "", labelFontSize(cellMM))
				pdf.SetTextColor(0, 0, 0)
				labelW := pdf.GetStringWidth(label)
				if labelW < cellMM-1 {
					pdf.SetXY(x+(cellMM-labelW)/2, y+cellMM/2-2)
					pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
				}
			}
		}
	}

	drawPieceLegend(pdf, sol, offsetY+cellMM*float64(board.Rows())+5)

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by TileFit - Polyomino Tiling Solver", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// drawHatchPattern draws diagonal lines inside a rectangle to mark
// forbidden cells.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(80, 80, 80)
	pdf.SetLineWidth(0.15)

	spacing := 2.0
	maxDist := w + h

	for d := spacing; d < maxDist; d += spacing {
		x1 := x + math.Max(0, d-h)
		y1 := y + math.Min(h, d)
		x2 := x + math.Min(w, d)
		y2 := y + math.Max(0, d-w)

		pdf.Line(x1, y1, x2, y2)
	}
}

// drawPieceLegend renders a compact legend of placed pieces below the grid.
func drawPieceLegend(pdf *fpdf.Fpdf, sol *model.Solution, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Pieces placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, p := range sol.Placements {
		col := pieceColors[i%len(pieceColors)]
		label := fmt.Sprintf("%s (%d cells)", p.Piece, len(p.Cells))
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// labelFontSize returns an appropriate font size for the given cell size.
func labelFontSize(cellMM float64) float64 {
	switch {
	case cellMM > 25:
		return 9
	case cellMM > 15:
		return 7
	default:
		return 5
	}
}
