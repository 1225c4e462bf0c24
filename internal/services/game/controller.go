package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/wordhunt/internal/dependencies/clock"
	"github.com/mcoot/wordhunt/internal/dependencies/random"
	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/board"
	"github.com/mcoot/wordhunt/internal/services/dictionary"
	"github.com/mcoot/wordhunt/internal/services/scoring"
	"github.com/mcoot/wordhunt/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CreateOptions selects the board and dictionary for a new game. Empty
// fields fall back to a random seed and the default dictionary.
type CreateOptions struct {
	Seed       string
	Dictionary string
}

// Controller manages the play -> finished flow of timed games
type Controller struct {
	storage           storage.Storage
	boardService      *board.Service
	dictionaryService *dictionary.Service
	scoringService    *scoring.Service
	clock             clock.Clock
	random            random.Random
	logger            *slog.Logger

	// Serializes read-modify-write cycles on stored games
	mu sync.Mutex
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	dictionaryService *dictionary.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:           storage,
		boardService:      boardService,
		dictionaryService: dictionaryService,
		scoringService:    scoringService,
		clock:             clock,
		random:            random,
		logger:            logger,
	}
}

// CreateGame deals a board and starts its timer
func (c *Controller) CreateGame(ctx context.Context, opts CreateOptions) (*model.Game, error) {
	dictName := opts.Dictionary
	if dictName == "" {
		dictName = c.dictionaryService.DefaultName()
	}
	if _, err := c.dictionaryService.Dictionary(dictName); err != nil {
		return nil, err
	}

	grid, sd, err := c.boardService.CreateBoard(opts.Seed)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:         model.GameID(c.random.String(12, gameIDAlphabet)),
		State:      model.GameStatePlaying,
		Seed:       sd.Short(),
		Dictionary: dictName,
		Grid:       grid,
		Found:      model.NewSolutionSet(),
		StartedAt:  now,
		EndsAt:     now.Add(time.Duration(sd.TimeSeconds) * time.Second),
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("seed", game.Seed),
		slog.String("dictionary", dictName),
		slog.Int("active_tiles", grid.ActiveCount()),
	)

	return game, nil
}

// GetGame retrieves a game by ID. A game whose timer has run out is finished
// before it is returned.
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.IsComplete() && game.IsExpired(c.clock.Now()) {
		if err := c.finish(ctx, game); err != nil {
			return nil, err
		}
	}
	return game, nil
}

// SubmitWord checks the word traced by positions and records it as found
func (c *Controller) SubmitWord(ctx context.Context, gameID model.GameID, positions []model.Position) (*model.Solution, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsComplete() {
		return nil, model.ErrGameComplete
	}
	if game.IsExpired(c.clock.Now()) {
		if err := c.finish(ctx, game); err != nil {
			return nil, err
		}
		return nil, model.ErrGameComplete
	}

	path, err := c.boardService.TracePath(game.Grid, positions)
	if err != nil {
		return nil, err
	}

	word := path.Word()
	if path.Len() < c.dictionaryService.MinWordLength() {
		return nil, fmt.Errorf("%w: %s", model.ErrWordTooShort, word)
	}
	if !c.dictionaryService.IsValidWord(game.Dictionary, word) {
		return nil, fmt.Errorf("%w: %s", model.ErrNotAWord, word)
	}

	solution := model.NewSolution(path)
	if !game.Found.Insert(solution) {
		return nil, fmt.Errorf("%w: %s", model.ErrWordAlreadyFound, word)
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Debug("word found",
		slog.String("game_id", string(game.ID)),
		slog.String("word", word),
		slog.Int("found_count", game.Found.Len()),
	)

	return &solution, nil
}

// FinishGame ends a game early, or returns the result of an already finished one
func (c *Controller) FinishGame(ctx context.Context, gameID model.GameID) (*model.GameResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.IsComplete() {
		if err := c.finish(ctx, game); err != nil {
			return nil, err
		}
	}
	return c.scoringService.Result(game), nil
}

// DeleteGame removes a game
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return err
	}
	return c.storage.DeleteGame(ctx, gameID)
}

// finish solves the board and moves the game to its finished state
func (c *Controller) finish(ctx context.Context, game *model.Game) error {
	solver, err := c.dictionaryService.Solver(game.Dictionary)
	if err != nil {
		return err
	}

	start := time.Now()
	possible, err := solver.Solve(ctx, game.Grid)
	if err != nil {
		return err
	}

	game.Possible = possible
	game.State = model.GameStateFinished
	game.FinishedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	c.logger.Info("game finished",
		slog.String("game_id", string(game.ID)),
		slog.Int("found_count", game.Found.Len()),
		slog.Int("possible_count", possible.Len()),
		slog.Duration("solve_time", time.Since(start)),
	)
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, opts CreateOptions) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	SubmitWord(ctx context.Context, gameID model.GameID, positions []model.Position) (*model.Solution, error)
	FinishGame(ctx context.Context, gameID model.GameID) (*model.GameResult, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
}

var _ ControllerInterface = (*Controller)(nil)
