package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/piwi3910/TileFit/internal/model"
)

// ErrNoSolution reports that the search space was exhausted without finding
// a full tiling. It is a legitimate outcome, distinct from any fault.
var ErrNoSolution = errors.New("no solution")

// Stats captures performance characteristics of a solve run.
type Stats struct {
	Nodes    int           // search nodes expanded
	Duration time.Duration // wall time of the search
}

// Solver runs the exact-cover backtracking search. Workers controls the
// fan-out over the candidate placements of the first branch point; with
// Workers == 1 the search is fully sequential and deterministic.
type Solver struct {
	Workers int
}

// New returns a sequential solver.
func New() *Solver { return &Solver{Workers: 1} }

// Solve generates all placements for the pieces and searches for a tiling
// of the board's to-cover cells. Use GenerateAll directly first if the
// zero-placement diagnostics are needed.
func (s *Solver) Solve(ctx context.Context, board *model.Board, pieces []model.Piece) (*model.Solution, Stats, error) {
	byPiece, _ := GenerateAll(board, pieces)
	names := make([]string, len(pieces))
	for i, p := range pieces {
		names[i] = p.Name
	}
	return s.SolveExactCover(ctx, byPiece, board.ToCover(), names)
}

// SolveExactCover searches for an assignment of exactly one placement per
// piece whose cells cover cellsToCover exactly, with no overlaps. On
// success the returned solution lists placements in the order they were
// chosen. Unsatisfiable inputs return ErrNoSolution; a canceled context
// returns ctx.Err().
func (s *Solver) SolveExactCover(ctx context.Context, placementsByPiece map[string][]model.Placement, cellsToCover []model.Cell, pieceNames []string) (*model.Solution, Stats, error) {
	start := time.Now()

	seen := make(map[string]struct{}, len(pieceNames))
	for _, name := range pieceNames {
		if _, dup := seen[name]; dup {
			return nil, Stats{}, fmt.Errorf("duplicate piece name %q", name)
		}
		seen[name] = struct{}{}
	}

	toCover := make([]model.Cell, len(cellsToCover))
	copy(toCover, cellsToCover)
	model.SortCells(toCover)

	st := newSearchState(placementsByPiece, toCover, pieceNames)

	var (
		ok    bool
		found []model.Placement
		nodes int
	)
	if s.Workers > 1 {
		ok, found, nodes = st.searchParallel(ctx, s.Workers)
	} else {
		ok = st.backtrack(ctx)
		found = st.stack
		nodes = st.nodes
	}

	stats := Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}
	if !ok {
		return nil, stats, ErrNoSolution
	}
	sol := &model.Solution{Placements: append([]model.Placement(nil), found...)}
	return sol, stats, nil
}

// searchState is the transient state of one search branch: covered cells,
// consumed pieces and the partial solution stack. It is owned exclusively
// by the active recursive call chain, so no locking is needed.
type searchState struct {
	// Read-only after construction, shared freely across branches.
	index      map[model.Cell][]model.Placement
	toCover    []model.Cell
	pieceCount int

	used       map[model.Cell]struct{}
	usedPieces map[string]struct{}
	stack      []model.Placement
	nodes      int
}

func newSearchState(placementsByPiece map[string][]model.Placement, toCover []model.Cell, pieceNames []string) *searchState {
	st := &searchState{
		index:      make(map[model.Cell][]model.Placement, len(toCover)),
		toCover:    toCover,
		pieceCount: len(pieceNames),
		used:       make(map[model.Cell]struct{}, len(toCover)),
		usedPieces: make(map[string]struct{}, len(pieceNames)),
	}
	target := make(map[model.Cell]struct{}, len(toCover))
	for _, c := range toCover {
		target[c] = struct{}{}
	}
	// Iterate pieces in caller order so per-cell candidate lists are
	// deterministic.
	for _, name := range pieceNames {
		for _, p := range placementsByPiece[name] {
			for _, c := range p.Cells {
				if _, ok := target[c]; ok {
					st.index[c] = append(st.index[c], p)
				}
			}
		}
	}
	return st
}

func (st *searchState) clone() *searchState {
	cp := &searchState{
		index:      st.index,
		toCover:    st.toCover,
		pieceCount: st.pieceCount,
		used:       make(map[model.Cell]struct{}, len(st.used)),
		usedPieces: make(map[string]struct{}, len(st.usedPieces)),
		stack:      append([]model.Placement(nil), st.stack...),
	}
	for c := range st.used {
		cp.used[c] = struct{}{}
	}
	for n := range st.usedPieces {
		cp.usedPieces[n] = struct{}{}
	}
	return cp
}

func (st *searchState) place(p model.Placement) {
	st.usedPieces[p.Piece] = struct{}{}
	for _, c := range p.Cells {
		st.used[c] = struct{}{}
	}
	st.stack = append(st.stack, p)
}

func (st *searchState) unplace(p model.Placement) {
	st.stack = st.stack[:len(st.stack)-1]
	for _, c := range p.Cells {
		delete(st.used, c)
	}
	delete(st.usedPieces, p.Piece)
}

func (st *searchState) viable(p model.Placement) bool {
	if _, taken := st.usedPieces[p.Piece]; taken {
		return false
	}
	return !p.Overlaps(st.used)
}

// nextCell selects the uncovered cell with the fewest viable candidate
// placements (MRV). Cells are scanned in lexicographic order, so ties
// break to the smallest cell and repeated runs pick identically. A cell
// with zero candidates is returned immediately: the branch is dead and
// must backtrack without further recursion.
func (st *searchState) nextCell() (model.Cell, bool) {
	var best model.Cell
	bestCount := -1
	for _, cell := range st.toCover {
		if _, covered := st.used[cell]; covered {
			continue
		}
		count := 0
		for _, p := range st.index[cell] {
			if st.viable(p) {
				count++
			}
		}
		if count == 0 {
			return cell, true
		}
		if bestCount < 0 || count < bestCount {
			best, bestCount = cell, count
		}
	}
	return best, bestCount >= 0
}

func (st *searchState) done() bool {
	return len(st.used) == len(st.toCover) && len(st.usedPieces) == st.pieceCount
}

func (st *searchState) backtrack(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	if st.done() {
		return true
	}
	cell, ok := st.nextCell()
	if !ok {
		// Everything is covered but pieces remain unused.
		return false
	}
	for _, p := range st.index[cell] {
		if !st.viable(p) {
			continue
		}
		st.nodes++
		st.place(p)
		if st.backtrack(ctx) {
			return true
		}
		st.unplace(p)
	}
	return false
}

// searchParallel forks the search across the candidate placements of the
// first branch point, bounded by workers, and returns the first success.
// The verdict matches the sequential search; the particular solution found
// may differ between runs.
func (st *searchState) searchParallel(ctx context.Context, workers int) (bool, []model.Placement, int) {
	if st.done() {
		return true, st.stack, 0
	}
	cell, ok := st.nextCell()
	if !ok {
		return false, nil, 0
	}
	var candidates []model.Placement
	for _, p := range st.index[cell] {
		if st.viable(p) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return false, nil, 0
	}

	type branchResult struct {
		ok    bool
		stack []model.Placement
		nodes int
	}

	branchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan branchResult, len(candidates))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for _, p := range candidates {
		wg.Add(1)
		go func(p model.Placement) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			if branchCtx.Err() != nil {
				results <- branchResult{}
				return
			}
			branch := st.clone()
			branch.nodes++
			branch.place(p)
			if branch.backtrack(branchCtx) {
				cancel()
				results <- branchResult{ok: true, stack: branch.stack, nodes: branch.nodes}
				return
			}
			results <- branchResult{nodes: branch.nodes}
		}(p)
	}
	wg.Wait()
	close(results)

	totalNodes := 0
	var winner []model.Placement
	found := false
	for r := range results {
		totalNodes += r.nodes
		if r.ok && !found {
			winner = r.stack
			found = true
		}
	}
	return found, winner, totalNodes
}
