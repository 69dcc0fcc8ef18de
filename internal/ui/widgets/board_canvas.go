package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/TileFit/internal/model"
)

// Piece colors: cycle through these for visual distinction.
var pieceColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
	{R: 96, G: 125, B: 139, A: 200}, // blue gray
	{R: 205, G: 220, B: 57, A: 200}, // lime
}

// BoardCanvas renders a visual representation of a board and its solution.
type BoardCanvas struct {
	widget.BaseWidget
	board     *model.Board
	labels    [][]string
	solution  *model.Solution
	maxWidth  float32
	maxHeight float32
}

func NewBoardCanvas(board *model.Board, labels [][]string, sol *model.Solution, maxW, maxH float32) *BoardCanvas {
	bc := &BoardCanvas{
		board:     board,
		labels:    labels,
		solution:  sol,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	bc.ExtendBaseWidget(bc)
	return bc
}

func (bc *BoardCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newBoardCanvasRenderer(bc)
}

type boardCanvasRenderer struct {
	bc      *BoardCanvas
	objects []fyne.CanvasObject
}

func newBoardCanvasRenderer(bc *BoardCanvas) *boardCanvasRenderer {
	r := &boardCanvasRenderer{bc: bc}
	r.rebuild()
	return r
}

func (r *boardCanvasRenderer) cellSize() float32 {
	sizeX := r.bc.maxWidth / float32(r.bc.board.Cols())
	sizeY := r.bc.maxHeight / float32(r.bc.board.Rows())
	if sizeY < sizeX {
		return sizeY
	}
	return sizeX
}

func (r *boardCanvasRenderer) rebuild() {
	r.objects = nil

	board := r.bc.board
	cell := r.cellSize()

	var owners map[model.Cell]string
	colorByPiece := make(map[string]color.NRGBA)
	if r.bc.solution != nil {
		owners = r.bc.solution.Owners()
		for i, p := range r.bc.solution.Placements {
			colorByPiece[p.Piece] = pieceColors[i%len(pieceColors)]
		}
	}

	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			c := model.Cell{Row: row, Col: col}
			x := float32(col) * cell
			y := float32(row) * cell

			var fill color.NRGBA
			switch {
			case board.IsForbidden(c):
				fill = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
			case board.IsMustStayEmpty(c):
				fill = color.NRGBA{R: 250, G: 250, B: 250, A: 255}
			default:
				var ok bool
				fill, ok = colorByPiece[owners[c]]
				if !ok {
					fill = color.NRGBA{R: 225, G: 225, B: 225, A: 255}
				}
			}

			cellRect := canvas.NewRectangle(fill)
			cellRect.Resize(fyne.NewSize(cell, cell))
			cellRect.Move(fyne.NewPos(x, y))
			r.objects = append(r.objects, cellRect)

			cellBorder := canvas.NewRectangle(color.Transparent)
			cellBorder.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
			cellBorder.StrokeWidth = 1
			cellBorder.Resize(fyne.NewSize(cell, cell))
			cellBorder.Move(fyne.NewPos(x, y))
			r.objects = append(r.objects, cellBorder)

			if board.IsForbidden(c) {
				continue
			}
			if label := labelAt(r.bc.labels, row, col); label != "" && cell > 24 {
				text := canvas.NewText(label, color.Black)
				text.TextSize = 10
				text.Move(fyne.NewPos(x+3, y+2))
				r.objects = append(r.objects, text)
			}
		}
	}
}

func labelAt(labels [][]string, r, c int) string {
	if r < len(labels) && c < len(labels[r]) {
		return labels[r][c]
	}
	return ""
}

func (r *boardCanvasRenderer) Layout(size fyne.Size)        {}
func (r *boardCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *boardCanvasRenderer) Destroy()                     {}
func (r *boardCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *boardCanvasRenderer) MinSize() fyne.Size {
	cell := r.cellSize()
	return fyne.NewSize(cell*float32(r.bc.board.Cols()), cell*float32(r.bc.board.Rows()))
}

// RenderSolution creates a scrollable view of the board with a legend and
// summary line underneath.
func RenderSolution(board *model.Board, labels [][]string, sol *model.Solution) fyne.CanvasObject {
	var items []fyne.CanvasObject

	header := widget.NewLabel(fmt.Sprintf("Board %dx%d, %d cells to cover", board.Rows(), board.Cols(), board.CoverCount()))
	header.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, header)

	items = append(items, NewBoardCanvas(board, labels, sol, 720, 480), widget.NewSeparator())

	if sol == nil {
		warning := widget.NewLabel("No solution found for this configuration.")
		warning.Importance = widget.DangerImportance
		items = append(items, warning)
	} else {
		for _, p := range sol.Placements {
			items = append(items, widget.NewLabel(fmt.Sprintf("  %s: %d cells", p.Piece, len(p.Cells))))
		}
		summary := widget.NewLabel(fmt.Sprintf("Total: %d pieces placed", len(sol.Placements)))
		summary.TextStyle = fyne.TextStyle{Bold: true}
		items = append(items, summary)
	}

	return container.NewVScroll(container.NewVBox(items...))
}
