package board

import (
	"github.com/mcoot/wordhunt/internal/dependencies/random"
	"github.com/mcoot/wordhunt/internal/generator"
	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/seed"
)

// Service provides board operations: dealing boards from seeds and tracing
// player paths across them
type Service struct {
	random random.Random
}

// New creates a new BoardService
func New(random random.Random) *Service {
	return &Service{
		random: random,
	}
}

// ResolveSeed parses seed text, or picks a random default-shaped seed when
// text is empty
func (s *Service) ResolveSeed(text string) (seed.Seed, error) {
	if text == "" {
		return seed.Default(s.random.Uint32()), nil
	}
	return seed.Parse(text)
}

// CreateBoard deals the board for the given seed text
func (s *Service) CreateBoard(text string) (*model.Grid, seed.Seed, error) {
	sd, err := s.ResolveSeed(text)
	if err != nil {
		return nil, seed.Seed{}, err
	}
	grid, err := generator.Generate(sd)
	if err != nil {
		return nil, seed.Seed{}, err
	}
	return grid, sd, nil
}

// TracePath checks that positions form a simple path of adjacent active
// tiles and returns it
func (s *Service) TracePath(grid *model.Grid, positions []model.Position) (*model.Path, error) {
	if len(positions) == 0 {
		return nil, model.ErrEmptyWord
	}
	return grid.PathFrom(positions)
}

// Interface for dependency injection
type ServiceInterface interface {
	ResolveSeed(text string) (seed.Seed, error)
	CreateBoard(text string) (*model.Grid, seed.Seed, error)
	TracePath(grid *model.Grid, positions []model.Position) (*model.Path, error)
}

var _ ServiceInterface = (*Service)(nil)
