package response

import (
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/seed"
	"github.com/mcoot/wordhunt/internal/services/hint"
	"github.com/mcoot/wordhunt/internal/services/scoring"
)

// Board represents a grid in API responses. Each row is a string of letters
// with '.' in place of inactive cells.
type Board struct {
	Rows    int      `json:"rows"`
	Cols    int      `json:"cols"`
	Letters []string `json:"letters"`
}

// BoardFromModel converts a model.Grid to a response Board
func BoardFromModel(g *model.Grid) Board {
	return Board{
		Rows:    g.Rows,
		Cols:    g.Cols,
		Letters: lo.Times(g.Rows, g.Row),
	}
}

// Word represents a word with the path that spells it
type Word struct {
	Word   string           `json:"word"`
	Length int              `json:"length"`
	Points int              `json:"points"`
	Path   []model.Position `json:"path"`
}

// WordFromSolution converts a model.Solution
func WordFromSolution(s model.Solution) Word {
	return Word{
		Word:   s.Word,
		Length: s.Length,
		Points: scoring.PointValue(s.Length),
		Path:   s.Positions(),
	}
}

// WordFromScored converts a model.ScoredWord
func WordFromScored(w model.ScoredWord) Word {
	word := WordFromSolution(w.Solution)
	word.Points = w.Points
	return word
}

// WordsFromScore converts scored words, keeping their order
func WordsFromScore(score model.Score) []Word {
	return lo.Map(score.Words, func(w model.ScoredWord, _ int) Word { return WordFromScored(w) })
}

// Result represents the outcome of a finished game
type Result struct {
	FoundScore    int    `json:"found_score"`
	PossibleScore int    `json:"possible_score"`
	MaxPoints     int    `json:"max_points"`
	Found         []Word `json:"found"`
	Possible      []Word `json:"possible"`
}

// ResultFromModel converts a model.GameResult
func ResultFromModel(r *model.GameResult) Result {
	return Result{
		FoundScore:    r.Found.TotalScore,
		PossibleScore: r.Possible.TotalScore,
		MaxPoints:     r.MaxPoints,
		Found:         WordsFromScore(r.Found),
		Possible:      WordsFromScore(r.Possible),
	}
}

// Game represents a game in API responses
type Game struct {
	ID            string     `json:"id"`
	State         string     `json:"state"`
	Seed          string     `json:"seed"`
	Dictionary    string     `json:"dictionary"`
	Board         Board      `json:"board"`
	Found         []Word     `json:"found"`
	Score         int        `json:"score"`
	TimeRemaining float64    `json:"time_remaining_seconds"`
	StartedAt     time.Time  `json:"started_at"`
	EndsAt        time.Time  `json:"ends_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
	Result        *Result    `json:"result,omitempty"`
}

// GameFromModel converts a model.Game with its scored found words. result is
// attached only for finished games.
func GameFromModel(g *model.Game, now time.Time, found model.Score, result *model.GameResult) Game {
	resp := Game{
		ID:            string(g.ID),
		State:         string(g.State),
		Seed:          g.Seed,
		Dictionary:    g.Dictionary,
		Board:         BoardFromModel(g.Grid),
		Found:         WordsFromScore(found),
		Score:         found.TotalScore,
		TimeRemaining: g.TimeRemaining(now).Seconds(),
		StartedAt:     g.StartedAt,
		EndsAt:        g.EndsAt,
	}
	if !g.FinishedAt.IsZero() {
		finished := g.FinishedAt
		resp.FinishedAt = &finished
	}
	if result != nil {
		r := ResultFromModel(result)
		resp.Result = &r
	}
	return resp
}

// SubmitWordResponse is the response after a word is accepted
type SubmitWordResponse struct {
	Word       Word `json:"word"`
	FoundCount int  `json:"found_count"`
	Score      int  `json:"score"`
}

// Hint points at the start of an unfound word
type Hint struct {
	Strategy  string         `json:"strategy"`
	Start     model.Position `json:"start"`
	Letter    string         `json:"letter"`
	Length    int            `json:"length"`
	Remaining int            `json:"remaining"`
}

// HintFromModel converts a hint.Hint
func HintFromModel(h *hint.Hint) Hint {
	return Hint{
		Strategy:  h.Strategy,
		Start:     h.Start,
		Letter:    string(h.Letter),
		Length:    h.Length,
		Remaining: h.Remaining,
	}
}

// Solution represents every word on one board
type Solution struct {
	Seed      string `json:"seed,omitempty"`
	Board     Board  `json:"board"`
	Count     int    `json:"count"`
	MaxPoints int    `json:"max_points"`
	Words     []Word `json:"words"`
}

// SolutionFromScore builds a Solution from every scored word on a board;
// seedText may be empty for literal boards
func SolutionFromScore(seedText string, g *model.Grid, possible model.Score) Solution {
	return Solution{
		Seed:      seedText,
		Board:     BoardFromModel(g),
		Count:     len(possible.Words),
		MaxPoints: possible.TotalScore,
		Words:     WordsFromScore(possible),
	}
}

// SolveBatchResponse is the response for a batch solve
type SolveBatchResponse struct {
	Solutions []Solution `json:"solutions"`
}

// WordCheck is the response for a dictionary lookup
type WordCheck struct {
	Word       string `json:"word"`
	Dictionary string `json:"dictionary"`
	Valid      bool   `json:"valid"`
	Points     int    `json:"points"`
}

// Dictionary describes one loaded dictionary
type Dictionary struct {
	Name      string `json:"name"`
	WordCount int    `json:"word_count"`
	Default   bool   `json:"default"`
}

// DictionaryList is the response for listing dictionaries
type DictionaryList struct {
	Default       string       `json:"default"`
	MinWordLength int          `json:"min_word_length"`
	Dictionaries  []Dictionary `json:"dictionaries"`
}

// Seed describes decoded seed text
type Seed struct {
	Seed        string `json:"seed"`
	Canonical   string `json:"canonical"`
	Value       uint32 `json:"value"`
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	TimeSeconds int    `json:"time_seconds"`
	Board       Board  `json:"board"`
}

// SeedFromModel converts a seed and the board it deals
func SeedFromModel(s seed.Seed, g *model.Grid) Seed {
	return Seed{
		Seed:        s.Short(),
		Canonical:   s.String(),
		Value:       s.Value,
		Rows:        s.Rows,
		Cols:        s.Cols,
		TimeSeconds: s.TimeSeconds,
		Board:       BoardFromModel(g),
	}
}

// Health is the response for the health check
type Health struct {
	Status       string   `json:"status"`
	Dictionaries []string `json:"dictionaries"`
}
