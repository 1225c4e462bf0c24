package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStatePlaying  GameState = "playing"  // Timer running, player submitting words
	GameStateFinished GameState = "finished" // Board solved, showing results
)

// Game is a single timed round on one generated board
type Game struct {
	ID         GameID    `json:"id"`
	State      GameState `json:"state"`
	Seed       string    `json:"seed"`       // Canonical seed text the board was generated from
	Dictionary string    `json:"dictionary"` // Name of the dictionary words are checked against
	Grid       *Grid     `json:"grid"`

	// Words the player has found, in solution order
	Found *SolutionSet `json:"found"`

	// Every word on the board; populated when the game finishes
	Possible *SolutionSet `json:"possible,omitempty"`

	// Timing
	StartedAt  time.Time `json:"started_at"`
	EndsAt     time.Time `json:"ends_at"`
	FinishedAt time.Time `json:"finished_at,omitzero"`
}

// Clone returns a deep copy that shares no mutable state with g
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	c := *g
	c.Grid = g.Grid.Clone()
	c.Found = g.Found.Clone()
	c.Possible = g.Possible.Clone()
	return &c
}

// IsComplete returns true once the game has finished
func (g *Game) IsComplete() bool {
	return g.State == GameStateFinished
}

// IsExpired returns true if the timer has run out at the given time
func (g *Game) IsExpired(now time.Time) bool {
	return !now.Before(g.EndsAt)
}

// TimeRemaining returns how long is left to play, never negative
func (g *Game) TimeRemaining(now time.Time) time.Duration {
	if g.IsComplete() || g.IsExpired(now) {
		return 0
	}
	return g.EndsAt.Sub(now)
}

// ScoredWord is a solution with its point value
type ScoredWord struct {
	Solution
	Points int
}

// Score is the scoring result for a set of solutions
type Score struct {
	Words      []ScoredWord
	TotalScore int
}

// GameResult summarises a finished game
type GameResult struct {
	GameID    GameID
	Found     Score
	Possible  Score
	MaxPoints int
}
