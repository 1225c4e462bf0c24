// Package hint points players at words they have not found yet.
package hint

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/dictionary"
	"github.com/mcoot/wordhunt/internal/services/game"
)

// Hint reveals where an unfound word starts and how long it is
type Hint struct {
	GameID    model.GameID
	Strategy  string
	Start     model.Position
	Letter    rune
	Length    int
	Remaining int // Unfound words, the hinted one included
}

// Service hands out hints for games in play
type Service struct {
	gameController    *game.Controller
	dictionaryService *dictionary.Service
	strategies        map[string]Strategy
	logger            *slog.Logger
}

// New creates a new hint Service
func New(
	gameController *game.Controller,
	dictionaryService *dictionary.Service,
	strategies map[string]Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{
		gameController:    gameController,
		dictionaryService: dictionaryService,
		strategies:        strategies,
		logger:            logger.With(slog.String("component", "hint-service")),
	}
}

// Hint picks an unfound word on a playing game's board with the named strategy.
// The game itself is left untouched.
func (s *Service) Hint(ctx context.Context, gameID model.GameID, strategyName string) (*Hint, error) {
	strategy, ok := s.strategies[strategyName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownStrategy, strategyName)
	}

	g, err := s.gameController.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g.IsComplete() {
		return nil, model.ErrGameComplete
	}

	solver, err := s.dictionaryService.Solver(g.Dictionary)
	if err != nil {
		return nil, err
	}
	possible, err := solver.Solve(ctx, g.Grid)
	if err != nil {
		return nil, err
	}

	var candidates []model.Solution
	for sol := range possible.All() {
		if !g.Found.Contains(sol.Word) {
			candidates = append(candidates, sol)
		}
	}
	if len(candidates) == 0 {
		return nil, model.ErrNoWordsLeft
	}

	chosen := strategy.Choose(candidates)
	first := chosen.Path[0]

	s.logger.Debug("hint given",
		slog.String("game_id", string(gameID)),
		slog.String("strategy", strategyName),
		slog.Int("remaining", len(candidates)),
	)

	return &Hint{
		GameID:    gameID,
		Strategy:  strategyName,
		Start:     first.Position(),
		Letter:    first.Letter,
		Length:    chosen.Length,
		Remaining: len(candidates),
	}, nil
}

// HasStrategy reports whether a strategy name is known
func (s *Service) HasStrategy(name string) bool {
	_, ok := s.strategies[name]
	return ok
}

// Interface for dependency injection
type ServiceInterface interface {
	Hint(ctx context.Context, gameID model.GameID, strategyName string) (*Hint, error)
	HasStrategy(name string) bool
}

var _ ServiceInterface = (*Service)(nil)
