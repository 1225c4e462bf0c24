package response

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/scoring"
)

func catsBoard(t *testing.T) (*model.Grid, *model.SolutionSet) {
	t.Helper()
	grid, err := model.NewGridFromRows("CA", "TS")
	require.NoError(t, err)

	set := model.NewSolutionSet()
	for _, positions := range [][]model.Position{
		{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}},
		{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}},
	} {
		path, err := grid.PathFrom(positions)
		require.NoError(t, err)
		set.Insert(model.NewSolution(path))
	}
	return grid, set
}

func TestSolutionFromScoreUsesScoredTotals(t *testing.T) {
	grid, set := catsBoard(t)
	svc := scoring.New()

	sol := SolutionFromScore("", grid, svc.ScoreSolutions(set))

	assert.Equal(t, 2, sol.Count)
	assert.Equal(t, svc.MaxPoints(set), sol.MaxPoints)
	assert.Equal(t, 500, sol.MaxPoints)
	assert.Equal(t, []string{"CA", "TS"}, sol.Board.Letters)
	require.Len(t, sol.Words, 2)
	assert.Equal(t, "CATS", sol.Words[0].Word)
	assert.Equal(t, 400, sol.Words[0].Points)
	assert.Equal(t, []model.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}, sol.Words[1].Path)
}

func TestSolutionFromScoreEmpty(t *testing.T) {
	grid, _ := catsBoard(t)

	sol := SolutionFromScore("[1]", grid, scoring.New().ScoreSolutions(nil))

	assert.Equal(t, "[1]", sol.Seed)
	assert.Equal(t, 0, sol.Count)
	assert.NotNil(t, sol.Words)
}

func TestGameFromModel(t *testing.T) {
	grid, set := catsBoard(t)
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	game := &model.Game{
		ID:        "GAME01",
		State:     model.GameStatePlaying,
		Seed:      "[1]",
		Grid:      grid,
		Found:     set,
		StartedAt: start,
		EndsAt:    start.Add(time.Minute),
	}
	svc := scoring.New()

	resp := GameFromModel(game, start.Add(15*time.Second), svc.ScoreSolutions(game.Found), nil)

	assert.Equal(t, "GAME01", resp.ID)
	assert.Equal(t, 500, resp.Score)
	assert.Len(t, resp.Found, 2)
	assert.InDelta(t, 45.0, resp.TimeRemaining, 0.001)
	assert.Nil(t, resp.FinishedAt)
	assert.Nil(t, resp.Result)
}
