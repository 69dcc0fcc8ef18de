package export

import (
	"fmt"

	"github.com/piwi3910/TileFit/internal/model"
	"github.com/yofu/dxf"
	dxfcolor "github.com/yofu/dxf/color"
)

// pieceLayerColors cycles through the standard AutoCAD color indices so
// each piece lands on a visually distinct layer.
var pieceLayerColors = []dxfcolor.ColorNumber{
	dxfcolor.Red,
	dxfcolor.Yellow,
	dxfcolor.Green,
	dxfcolor.Cyan,
	dxfcolor.Blue,
	dxfcolor.Magenta,
	dxfcolor.White,
}

// WriteDXF writes the outline of every placed piece as DXF line entities,
// one layer per piece, with cellSize millimeters per board cell. The
// output is suitable for cutting a physical piece set. The Y axis is
// flipped so the board appears upright in CAD viewers.
func WriteDXF(path string, sol *model.Solution, boardRows int, cellSize float64) error {
	if sol == nil || len(sol.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}
	if cellSize <= 0 {
		return fmt.Errorf("invalid cell size %.2f", cellSize)
	}

	drawing := dxf.NewDrawing()

	for i, p := range sol.Placements {
		col := pieceLayerColors[i%len(pieceLayerColors)]
		if _, err := drawing.AddLayer(p.Piece, col, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("failed to add layer %q: %w", p.Piece, err)
		}
		for _, edge := range outlineEdges(p, boardRows, cellSize) {
			if _, err := drawing.Line(edge[0], edge[1], 0, edge[2], edge[3], 0); err != nil {
				return fmt.Errorf("failed to draw outline of %q: %w", p.Piece, err)
			}
		}
	}

	return drawing.SaveAs(path)
}

// outlineEdges computes the boundary segments of a placement: every cell
// edge whose neighbor cell is not part of the same placement. Each edge is
// [x1, y1, x2, y2] in millimeters.
func outlineEdges(p model.Placement, boardRows int, cellSize float64) [][4]float64 {
	var edges [][4]float64
	for _, c := range p.Cells {
		left := float64(c.Col) * cellSize
		right := float64(c.Col+1) * cellSize
		top := float64(boardRows-c.Row) * cellSize
		bottom := float64(boardRows-c.Row-1) * cellSize

		if !p.Covers(model.Cell{Row: c.Row - 1, Col: c.Col}) {
			edges = append(edges, [4]float64{left, top, right, top})
		}
		if !p.Covers(model.Cell{Row: c.Row + 1, Col: c.Col}) {
			edges = append(edges, [4]float64{left, bottom, right, bottom})
		}
		if !p.Covers(model.Cell{Row: c.Row, Col: c.Col - 1}) {
			edges = append(edges, [4]float64{left, bottom, left, top})
		}
		if !p.Covers(model.Cell{Row: c.Row, Col: c.Col + 1}) {
			edges = append(edges, [4]float64{right, bottom, right, top})
		}
	}
	return edges
}
