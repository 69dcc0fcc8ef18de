// TileFit Viewer - graphical display of a solved tiling puzzle.
//
// Solves the calendar puzzle for the given date (default: today) and shows
// the board in a window, one color per placed piece.
//
// Build:
//
//	go build -o tilefit-viewer ./cmd/tilefit-viewer
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/TileFit/internal/engine"
	"github.com/piwi3910/TileFit/internal/puzzle"
	"github.com/piwi3910/TileFit/internal/ui"
)

func main() {
	defMonth, defDay, defWeekday := puzzle.DateLabels(time.Now())

	var (
		month   = flag.String("month", defMonth, "month label to keep empty (JAN..DEC)")
		day     = flag.String("day", defDay, "day label to keep empty (1..31)")
		weekday = flag.String("weekday", defWeekday, "weekday label to keep empty (MON..SUN)")
		workers = flag.Int("workers", 1, "parallel fan-out over the first branch point")
	)
	flag.Parse()

	def := puzzle.Calendar()
	targets, err := def.TargetCells(*month, *day, *weekday)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	board, err := def.Board(targets)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	solver := engine.New()
	solver.Workers = *workers
	sol, _, err := solver.Solve(context.Background(), board, def.Pieces)
	if err != nil && !errors.Is(err, engine.ErrNoSolution) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	application := app.NewWithID("com.piwi3910.tilefit")
	title := fmt.Sprintf("TileFit - %s %s %s", *month, *day, *weekday)
	window := ui.NewViewerWindow(application, title, board, def.Labels, sol)
	window.ShowAndRun()
}
