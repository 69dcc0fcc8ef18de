// Package ui builds the read-only Fyne viewer for solved boards.
package ui

import (
	"fyne.io/fyne/v2"

	"github.com/piwi3910/TileFit/internal/model"
	"github.com/piwi3910/TileFit/internal/ui/widgets"
)

// NewViewerWindow creates a window displaying the board and its solution.
func NewViewerWindow(app fyne.App, title string, board *model.Board, labels [][]string, sol *model.Solution) fyne.Window {
	window := app.NewWindow(title)
	window.SetContent(widgets.RenderSolution(board, labels, sol))
	window.Resize(fyne.NewSize(800, 640))
	window.CenterOnScreen()
	return window
}
