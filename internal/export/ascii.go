// Package export renders solved boards to text, JSON, PDF, XLSX and DXF.
package export

import (
	"fmt"
	"strings"

	"github.com/piwi3910/TileFit/internal/model"
)

const minColWidth = 3

// RenderGrid returns the board as an aligned text grid. Each board row is
// printed as two lines, the cell labels and the piece fills: '#' marks a
// forbidden cell, a blank marks a must-stay-empty cell, a middle dot marks
// an uncovered cell, and covered cells show the first letter of the piece
// covering them. A nil solution renders the unsolved board.
func RenderGrid(board *model.Board, labels [][]string, sol *model.Solution) string {
	rows, cols := board.Rows(), board.Cols()

	var owners map[model.Cell]string
	if sol != nil {
		owners = sol.Owners()
	}

	widths := make([]int, cols)
	for c := 0; c < cols; c++ {
		widths[c] = minColWidth
		for r := 0; r < rows; r++ {
			if l := labelAt(labels, r, c); len(l) > widths[c] {
				widths[c] = len(l)
			}
		}
	}

	var b strings.Builder
	b.WriteString("     ")
	for c := 0; c < cols; c++ {
		if c > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(center(fmt.Sprintf("C%d", c+1), widths[c]))
	}
	b.WriteByte('\n')

	for r := 0; r < rows; r++ {
		labelLine := make([]string, cols)
		fillLine := make([]string, cols)
		for c := 0; c < cols; c++ {
			cell := model.Cell{Row: r, Col: c}
			labelLine[c] = labelAt(labels, r, c)
			fillLine[c] = fillMark(board, owners, cell)
		}
		fmt.Fprintf(&b, "R%-2d L %s\n", r+1, joinCentered(labelLine, widths))
		fmt.Fprintf(&b, "R%-2d P %s\n\n", r+1, joinCentered(fillLine, widths))
	}
	return b.String()
}

func fillMark(board *model.Board, owners map[model.Cell]string, cell model.Cell) string {
	switch {
	case board.IsForbidden(cell):
		return "#"
	case board.IsMustStayEmpty(cell):
		return " "
	}
	if name, ok := owners[cell]; ok && name != "" {
		return strings.ToUpper(name[:1])
	}
	return "·"
}

// RenderShape returns ASCII art of a single piece, e.g. for an atlas
// listing before solving.
func RenderShape(name string, shape model.Shape) string {
	n := shape.Normalize()
	_, max := n.BoundingBox()

	grid := make([][]byte, max.Row+1)
	for r := range grid {
		grid[r] = make([]byte, max.Col+1)
		for c := range grid[r] {
			grid[r][c] = '.'
		}
	}
	for _, c := range n {
		grid[c.Row][c.Col] = '#'
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d cells):\n", name, len(n))
	for _, row := range grid {
		for i, ch := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func labelAt(labels [][]string, r, c int) string {
	if r < len(labels) && c < len(labels[r]) {
		return labels[r][c]
	}
	return ""
}

func joinCentered(values []string, widths []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = center(v, widths[i])
	}
	return strings.Join(parts, " ")
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
