package solver

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/trie"
)

var testWords = []string{
	"at", "ate", "eat", "tea", "tee", "seat", "sate", "east", "eats", "teas",
	"set", "sea", "see", "tree", "trees", "rest", "stare", "tears", "rate",
	"rates", "star", "tsar", "arts", "rats", "art", "rat", "tar", "ear",
	"era", "are", "ears", "eras", "reset", "steer", "terse", "treat", "state",
	"taste", "stat", "test", "tester", "street", "sitter", "sir", "its",
	"tie", "ties", "site", "rite", "tire", "tires", "stir", "rise", "sire",
}

type SolverSuite struct {
	suite.Suite
	ctx context.Context
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

func (s *SolverSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *SolverSuite) newSolver(minLen int, words ...string) *Solver {
	dict, err := trie.FromWords(words...)
	s.Require().NoError(err)
	return New(dict, minLen)
}

func (s *SolverSuite) grid(rows ...string) *model.Grid {
	g, err := model.NewGridFromRows(rows...)
	s.Require().NoError(err)
	return g
}

// Concrete scenarios

func (s *SolverSuite) TestSolveSmallSquare() {
	// In a 2x2 grid every cell touches every other cell
	solver := s.newSolver(3, "cat", "cats", "act", "ats", "scat", "tact", "ca")

	set, err := solver.Solve(s.ctx, s.grid("CA", "TS"))
	s.Require().NoError(err)

	s.Equal([]string{"CATS", "SCAT", "ACT", "ATS", "CAT"}, set.Words())
}

func (s *SolverSuite) TestSolveLineOnlyFollowsNeighbours() {
	solver := s.newSolver(3, "cat", "cats", "act", "sat", "tac")

	set, err := solver.Solve(s.ctx, s.grid("CATS"))
	s.Require().NoError(err)

	s.Equal([]string{"CATS", "CAT", "TAC"}, set.Words())
}

func (s *SolverSuite) TestSolveSkipsInactiveCells() {
	solver := s.newSolver(3, "cat", "cats", "ats")

	// (0,1) is inactive; its placeholder letter must never be used
	set, err := solver.Solve(s.ctx, s.grid("C.TS"))
	s.Require().NoError(err)

	s.Equal(0, set.Len())
}

func (s *SolverSuite) TestSolveRespectsMinWordLength() {
	solver := s.newSolver(4, "cat", "cats", "act", "scat")

	set, err := solver.Solve(s.ctx, s.grid("CA", "TS"))
	s.Require().NoError(err)

	s.Equal([]string{"CATS", "SCAT"}, set.Words())
}

func (s *SolverSuite) TestSolveKeepsFirstPath() {
	solver := s.newSolver(3, "cat")

	set, err := solver.Solve(s.ctx, s.grid("CAT", "CAT"))
	s.Require().NoError(err)
	s.Require().Equal(1, set.Len())

	sol, ok := set.Get("CAT")
	s.Require().True(ok)
	s.Equal([]model.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, sol.Positions())
}

func (s *SolverSuite) TestSolveDoesNotReuseTiles() {
	solver := s.newSolver(3, "aaa", "aaaa", "aaaaa")

	set, err := solver.Solve(s.ctx, s.grid("AA", "AA"))
	s.Require().NoError(err)

	// Only four tiles, so AAAAA cannot be traced
	s.Equal([]string{"AAAA", "AAA"}, set.Words())
}

func (s *SolverSuite) TestSolveNoActiveCells() {
	solver := s.newSolver(3, "cat")

	set, err := solver.Solve(s.ctx, s.grid("...", "..."))
	s.Require().NoError(err)
	s.Equal(0, set.Len())
}

func (s *SolverSuite) TestSolveEmptyDictionary() {
	solver := New(trie.New(), 3)

	set, err := solver.Solve(s.ctx, s.grid("CA", "TS"))
	s.Require().NoError(err)
	s.Equal(0, set.Len())
}

func (s *SolverSuite) TestSolveInvalidGrid() {
	solver := s.newSolver(3, "cat")

	_, err := solver.Solve(s.ctx, model.NewGrid(0, 3))
	s.ErrorIs(err, model.ErrInvalidGrid)

	_, err = solver.Solve(s.ctx, model.NewGrid(16, 3))
	s.ErrorIs(err, model.ErrInvalidGrid)

	// Letters never set
	_, err = solver.Solve(s.ctx, model.NewGrid(2, 2))
	s.ErrorIs(err, model.ErrInvalidGrid)
}

func (s *SolverSuite) TestSolveCanceled() {
	solver := s.newSolver(3, testWords...)
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	set, err := solver.Solve(ctx, s.grid("TEAR", "SEAT", "RATE", "STIR"))
	s.ErrorIs(err, context.Canceled)
	s.Nil(set)
}

func (s *SolverSuite) TestSolveStopsMidSearch() {
	// Every path on an all-A board is a word prefix, so the search cannot
	// finish before the deadline and must notice it inside the walk
	words := make([]string, 36)
	rows := make([]string, 6)
	for i := range words {
		words[i] = strings.Repeat("a", i+1)
	}
	for i := range rows {
		rows[i] = "AAAAAA"
	}
	solver := s.newSolver(3, words...)
	ctx, cancel := context.WithTimeout(s.ctx, 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	set, err := solver.Solve(ctx, s.grid(rows...))
	s.ErrorIs(err, context.DeadlineExceeded)
	s.Nil(set)
	s.Less(time.Since(start), 5*time.Second)
}

func (s *SolverSuite) TestSolveLeavesGridUntouched() {
	solver := s.newSolver(3, testWords...)
	grid := s.grid("TEAR", "SE.T", "RATE")
	before := grid.String()

	_, err := solver.Solve(s.ctx, grid)
	s.Require().NoError(err)
	s.Equal(before, grid.String())
}

// Properties over random boards

func (s *SolverSuite) TestRandomBoardsMatchBruteForce() {
	const letters = "EEEEAAAIIOTTTRRSSSNL"
	rng := rand.New(rand.NewPCG(7, 11))
	solver := s.newSolver(DefaultMinWordLength, testWords...)

	for i := 0; i < 40; i++ {
		rows := rng.IntN(4) + 2
		cols := rng.IntN(4) + 2
		grid := model.NewGrid(rows, cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				grid.Letters[r][c] = rune(letters[rng.IntN(len(letters))])
				grid.Active[r][c] = rng.IntN(6) != 0
			}
		}

		set, err := solver.Solve(s.ctx, grid)
		s.Require().NoError(err)

		s.assertSolutionsValid(solver, grid, set)
		s.assertOrdered(set)

		for _, w := range testWords {
			word := upper(w)
			if len(word) < DefaultMinWordLength {
				s.False(set.Contains(word), word)
				continue
			}
			s.Equal(canTrace(grid, word), set.Contains(word), "%s on\n%s", word, grid)
		}
	}
}

func (s *SolverSuite) assertSolutionsValid(solver *Solver, grid *model.Grid, set *model.SolutionSet) {
	seen := make(map[string]bool)
	for sol := range set.All() {
		s.False(seen[sol.Word], "duplicate %s", sol.Word)
		seen[sol.Word] = true

		s.True(solver.ValidateWord(sol.Word), sol.Word)
		s.Equal(len(sol.Word), sol.Length)
		s.Equal(sol.Length, len(sol.Path))

		// Replaying the path through the grid must succeed and spell the word
		path, err := grid.PathFrom(sol.Positions())
		s.Require().NoError(err, sol.Word)
		s.Equal(sol.Word, path.Word())
	}
}

func (s *SolverSuite) assertOrdered(set *model.SolutionSet) {
	var prev *model.Solution
	for sol := range set.All() {
		if prev != nil {
			s.Negative(model.CompareSolutions(*prev, sol), "%s before %s", prev.Word, sol.Word)
		}
		cur := sol
		prev = &cur
	}
}

// ValidateWord tests

func (s *SolverSuite) TestValidateWordUsesSingleThreshold() {
	solver := s.newSolver(3, "at", "ate", "late")

	s.False(solver.ValidateWord("AT"))
	s.True(solver.ValidateWord("ATE"))
	s.True(solver.ValidateWord("LATE"))
	s.False(solver.ValidateWord("ate"))
	s.False(solver.ValidateWord(""))

	solver = s.newSolver(4, "at", "ate", "late")
	s.False(solver.ValidateWord("ATE"))
	s.True(solver.ValidateWord("LATE"))
}

func (s *SolverSuite) TestNewClampsMinWordLength() {
	solver := s.newSolver(0, "a")
	s.Equal(1, solver.MinWordLength())
	s.True(solver.ValidateWord("A"))
}

// SolveAll tests

func (s *SolverSuite) TestSolveAllMatchesSequential() {
	solver := s.newSolver(3, testWords...)
	grids := []*model.Grid{
		s.grid("TEAR", "SEAT", "RATE", "STIR"),
		s.grid("STAR", "EATS", "TREE"),
		s.grid("CA", "TS"),
	}

	results, err := solver.SolveAll(s.ctx, grids, 2)
	s.Require().NoError(err)
	s.Require().Len(results, len(grids))

	for i, grid := range grids {
		expected, err := solver.Solve(s.ctx, grid)
		s.Require().NoError(err)
		s.Equal(expected.Words(), results[i].Words())
	}
}

func (s *SolverSuite) TestSolveAllFailsOnInvalidGrid() {
	solver := s.newSolver(3, testWords...)
	grids := []*model.Grid{s.grid("TEAR"), model.NewGrid(0, 0)}

	_, err := solver.SolveAll(s.ctx, grids, 0)
	s.ErrorIs(err, model.ErrInvalidGrid)
}

// canTrace is a dictionary-free reference search for a single word
func canTrace(grid *model.Grid, word string) bool {
	used := make([][]bool, grid.Rows)
	for r := range used {
		used[r] = make([]bool, grid.Cols)
	}
	var from func(r, c, i int) bool
	from = func(r, c, i int) bool {
		if r < 0 || r >= grid.Rows || c < 0 || c >= grid.Cols {
			return false
		}
		if !grid.Active[r][c] || used[r][c] || grid.Letters[r][c] != rune(word[i]) {
			return false
		}
		if i == len(word)-1 {
			return true
		}
		used[r][c] = true
		defer func() { used[r][c] = false }()
		for _, d1 := range []int{-1, 0, 1} {
			for _, d2 := range []int{-1, 0, 1} {
				if (d1 != 0 || d2 != 0) && from(r+d1, c+d2, i+1) {
					return true
				}
			}
		}
		return false
	}
	for r := 0; r < grid.Rows; r++ {
		for c := 0; c < grid.Cols; c++ {
			if from(r, c, 0) {
				return true
			}
		}
	}
	return false
}

func upper(w string) string {
	b := []byte(w)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
