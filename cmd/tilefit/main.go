// TileFit - Polyomino Tiling Solver
//
// Solves the calendar tiling puzzle (or a custom piece atlas) for a given
// date and exports the solution as text, JSON, PDF, XLSX, DXF or QR-coded
// piece labels.
//
// Build:
//
//	go build -o tilefit ./cmd/tilefit
//
// Examples:
//
//	tilefit                                # solve for today
//	tilefit -month JAN -day 2 -weekday FRI # solve for a specific date
//	tilefit -pieces atlas.csv -json out.json -pdf out.pdf
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/piwi3910/TileFit/internal/engine"
	"github.com/piwi3910/TileFit/internal/export"
	"github.com/piwi3910/TileFit/internal/importer"
	"github.com/piwi3910/TileFit/internal/model"
	"github.com/piwi3910/TileFit/internal/project"
	"github.com/piwi3910/TileFit/internal/puzzle"
)

func main() {
	defMonth, defDay, defWeekday := puzzle.DateLabels(time.Now())

	var (
		month      = flag.String("month", defMonth, "month label to keep empty (JAN..DEC)")
		day        = flag.String("day", defDay, "day label to keep empty (1..31)")
		weekday    = flag.String("weekday", defWeekday, "weekday label to keep empty (MON..SUN)")
		piecesPath = flag.String("pieces", "", "CSV file with a custom piece atlas")
		workers    = flag.Int("workers", 0, "parallel fan-out over the first branch point (0 = config default)")
		timeout    = flag.Duration("timeout", 0, "abort the search after this duration (0 = no limit)")
		cellSize   = flag.Float64("cellsize", 0, "mm per board cell in PDF/DXF exports (0 = config default)")
		atlas      = flag.Bool("atlas", false, "print the piece atlas before solving")
		save       = flag.Bool("save", false, "store the solved puzzle in the library")
		jsonPath   = flag.String("json", "", "write the solution as JSON to this path")
		pdfPath    = flag.String("pdf", "", "write the solution as PDF to this path")
		xlsxPath   = flag.String("xlsx", "", "write the solution as an Excel workbook to this path")
		dxfPath    = flag.String("dxf", "", "write the piece outlines as DXF to this path")
		labelsPath = flag.String("labels", "", "write QR-coded piece labels as PDF to this path")
	)
	flag.Parse()

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot read config: %v\n", err)
		config = model.DefaultAppConfig()
	}
	if *workers <= 0 {
		*workers = config.DefaultWorkers
	}
	if *cellSize <= 0 {
		*cellSize = config.DefaultCellSize
	}

	def := puzzle.Calendar()
	if *piecesPath != "" {
		result := importer.ImportCSV(*piecesPath)
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
		}
		if len(result.Pieces) == 0 {
			fmt.Fprintln(os.Stderr, "no usable pieces imported")
			os.Exit(1)
		}
		def.Pieces = result.Pieces
	}

	if *atlas {
		fmt.Println("Piece atlas:")
		for _, p := range def.Pieces {
			fmt.Println(export.RenderShape(p.Name, p.Shape))
		}
	}

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

	byPiece, empty := engine.GenerateAll(board, def.Pieces)
	for _, name := range empty {
		fmt.Fprintf(os.Stderr, "warning: no placements for piece %s (check the board configuration)\n", name)
	}

	names := make([]string, len(def.Pieces))
	for i, p := range def.Pieces {
		names[i] = p.Name
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	solver := engine.New()
	solver.Workers = *workers

	sol, stats, err := solver.SolveExactCover(ctx, byPiece, board.ToCover(), names)
	if errors.Is(err, engine.ErrNoSolution) {
		fmt.Printf("No solution found for %s %s %s (%d nodes in %v)\n", *month, *day, *weekday, stats.Nodes, stats.Duration)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Solved %s %s %s in %v (%d nodes)\n\n", *month, *day, *weekday, stats.Duration, stats.Nodes)
	fmt.Print(export.RenderGrid(board, def.Labels, sol))

	doc := export.BuildDocument(board, def.Labels, sol)
	exports := []struct {
		path string
		run  func(string) error
	}{
		{*jsonPath, func(p string) error { return export.WriteJSON(p, doc) }},
		{*pdfPath, func(p string) error { return export.WritePDF(p, board, def.Labels, sol) }},
		{*xlsxPath, func(p string) error { return export.WriteXLSX(p, doc) }},
		{*dxfPath, func(p string) error { return export.WriteDXF(p, sol, board.Rows(), *cellSize) }},
		{*labelsPath, func(p string) error { return export.WriteLabels(p, sol) }},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.run(e.path); err != nil {
			fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", e.path)
	}

	if *save {
		name := fmt.Sprintf("%s %s %s", *month, *day, *weekday)
		p := model.NewPuzzle(name, board, def.Labels, def.Pieces)
		p.Solution = sol
		path, err := project.SavePuzzle(project.DefaultLibraryDir(), p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to save puzzle: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved puzzle %s to %s\n", p.ID, path)
	}
}
