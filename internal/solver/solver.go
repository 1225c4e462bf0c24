// Package solver enumerates every dictionary word that can be traced on a grid.
//
// The search is a backtracking depth-first walk from every active cell over
// the eight neighbouring cells, advanced in lock-step with a trie cursor so
// that branches with no dictionary continuation are cut immediately.
package solver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/trie"
)

// DefaultMinWordLength is the shortest word a player can score
const DefaultMinWordLength = 3

// cancelCheckInterval is how many DFS nodes are visited between context checks
const cancelCheckInterval = 4096

var (
	dr = [3]int{-1, 0, 1}
	dc = [3]int{-1, 0, 1}
)

// Solver finds words on grids using one dictionary
type Solver struct {
	dict          *trie.Dictionary
	minWordLength int
}

// New creates a Solver. Lengths below 1 are treated as 1.
func New(dict *trie.Dictionary, minWordLength int) *Solver {
	if minWordLength < 1 {
		minWordLength = 1
	}
	return &Solver{
		dict:          dict,
		minWordLength: minWordLength,
	}
}

// MinWordLength returns the shortest word the solver reports or accepts
func (s *Solver) MinWordLength() int {
	return s.minWordLength
}

// ValidateWord reports whether a typed word counts: long enough and in the dictionary
func (s *Solver) ValidateWord(word string) bool {
	return len(word) >= s.minWordLength && s.dict.IsWord(word)
}

// search holds the state owned by a single solve
type search struct {
	ctx      context.Context
	grid     *model.Grid
	visited  [][]bool
	path     *model.Path
	results  *model.SolutionSet
	minLen   int
	steps    int
	canceled error
}

// Solve returns every word on the grid, ordered longest first then
// alphabetically, with the first path found for each word.
func (s *Solver) Solve(ctx context.Context, grid *model.Grid) (*model.SolutionSet, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	st := &search{
		ctx:     ctx,
		grid:    grid,
		visited: make([][]bool, grid.Rows),
		path:    model.NewPath(grid.Rows * grid.Cols),
		results: model.NewSolutionSet(),
		minLen:  s.minWordLength,
	}
	for r := range st.visited {
		st.visited[r] = make([]bool, grid.Cols)
	}

	root := s.dict.Root()
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if !grid.Active[row][col] {
				continue
			}
			letter := grid.Letters[row][col]
			cursor := root.Child(letter)
			if cursor == nil {
				continue
			}
			st.path.Push(model.Tile{Row: row, Col: col, Letter: letter})
			st.walk(row, col, cursor)
			st.path.Pop()
			if st.canceled != nil {
				return nil, st.canceled
			}
		}
	}
	return st.results, nil
}

// walk extends the current path from (row, col). On return the path and the
// visited mask are exactly as they were on entry.
func (st *search) walk(row, col int, cursor *trie.Node) {
	st.steps++
	if st.steps%cancelCheckInterval == 0 {
		if err := st.ctx.Err(); err != nil {
			st.canceled = err
		}
	}
	if st.canceled != nil {
		return
	}

	st.visited[row][col] = true

	if cursor.IsEndOfWord() && st.path.Len() >= st.minLen {
		st.results.Insert(model.NewSolution(st.path))
	}

	if cursor.HasChildren() {
		for _, rowOffset := range dr {
			for _, colOffset := range dc {
				if rowOffset == 0 && colOffset == 0 {
					continue
				}
				nr, nc := row+rowOffset, col+colOffset
				if nr < 0 || nr >= st.grid.Rows || nc < 0 || nc >= st.grid.Cols {
					continue
				}
				if !st.grid.Active[nr][nc] || st.visited[nr][nc] {
					continue
				}
				letter := st.grid.Letters[nr][nc]
				next := cursor.Child(letter)
				if next == nil {
					continue
				}
				st.path.Push(model.Tile{Row: nr, Col: nc, Letter: letter})
				st.walk(nr, nc, next)
				st.path.Pop()
			}
		}
	}

	st.visited[row][col] = false
}

// SolveAll solves several grids concurrently, sharing the dictionary. Results
// are returned in the order of grids. workers <= 0 means no limit.
func (s *Solver) SolveAll(ctx context.Context, grids []*model.Grid, workers int) ([]*model.SolutionSet, error) {
	results := make([]*model.SolutionSet, len(grids))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, grid := range grids {
		g.Go(func() error {
			set, err := s.Solve(ctx, grid)
			if err != nil {
				return err
			}
			results[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
