package export

import (
	"strings"
	"testing"

	"github.com/piwi3910/TileFit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoard(t *testing.T) *model.Board {
	t.Helper()
	b, err := model.NewBoard(2, 2, []model.Cell{{Row: 1, Col: 1}}, []model.Cell{{Row: 1, Col: 0}})
	require.NoError(t, err)
	return b
}

func TestRenderGrid(t *testing.T) {
	board := testBoard(t)
	labels := [][]string{{"A1", "A2"}, {"B1", "B2"}}
	sol := &model.Solution{Placements: []model.Placement{
		model.NewPlacement("domino", []model.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}),
	}}

	out := RenderGrid(board, labels, sol)

	assert.Contains(t, out, "C1")
	assert.Contains(t, out, "C2")
	assert.Contains(t, out, "A1")
	assert.Contains(t, out, "B2")
	// Covered cells show the piece initial, the forbidden cell a hash.
	assert.Contains(t, out, "D")
	assert.Contains(t, out, "#")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header plus two lines and a blank per board row.
	assert.Len(t, lines, 1+2*3)
}

func TestRenderGridUnsolved(t *testing.T) {
	board := testBoard(t)

	out := RenderGrid(board, nil, nil)
	assert.Contains(t, out, "·", "uncovered cells should render as middle dots")
	assert.NotContains(t, out, "D")
}

func TestRenderShape(t *testing.T) {
	shape := model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}

	out := RenderShape("L3", shape)

	assert.Contains(t, out, "L3 (3 cells):")
	assert.Contains(t, out, "# #")
	assert.Contains(t, out, ". #")
}

func TestCenter(t *testing.T) {
	assert.Equal(t, " x ", center("x", 3))
	assert.Equal(t, "ab ", center("ab", 3))
	assert.Equal(t, "abcd", center("abcd", 3))
}
