package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordhunt/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		ID:    "game-1",
		State: model.GameStatePlaying,
		Seed:  "[42]",
		Found: model.NewSolutionSet(),
	}

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.State, retrieved.State)
	s.Equal("[42]", retrieved.Seed)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGame() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: "game-1"}))

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestGamesAreStoredByValue() {
	grid, err := model.NewGridFromRows("CA", "TS")
	s.Require().NoError(err)
	game := &model.Game{ID: "game-1", Grid: grid, Found: model.NewSolutionSet()}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	// Changes after saving stay with the caller
	game.Found.Insert(model.Solution{Word: "CAT", Length: 3})
	game.Grid.Letters[0][0] = 'X'

	first, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(0, first.Found.Len())
	s.Equal('C', first.Grid.Letters[0][0])

	// Changes to a retrieved game do not leak into the next read
	first.Found.Insert(model.Solution{Word: "ACT", Length: 3})
	first.State = model.GameStateFinished

	second, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.False(second.Found.Contains("ACT"))
	s.Equal(model.GameState(""), second.State)
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"APPLE", "BANANA", "CHERRY"}

	err := s.storage.SaveDictionaryWords(s.ctx, "fruit", words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx, "fruit")
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestGetDictionaryWordsNotFound() {
	_, err := s.storage.GetDictionaryWords(s.ctx, "missing")
	s.ErrorIs(err, model.ErrDictionaryNotFound)
}

func (s *StorageSuite) TestSaveDictionaryWordsCopiesInput() {
	words := []string{"APPLE"}
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "fruit", words))
	words[0] = "MANGO"

	retrieved, err := s.storage.GetDictionaryWords(s.ctx, "fruit")
	s.Require().NoError(err)
	s.Equal([]string{"APPLE"}, retrieved)
}

func (s *StorageSuite) TestEmptyDictionaryIsStored() {
	err := s.storage.SaveDictionaryWords(s.ctx, "empty", nil)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx, "empty")
	s.Require().NoError(err)
	s.Empty(retrieved)
}

func (s *StorageSuite) TestListDictionaries() {
	names, err := s.storage.ListDictionaries(s.ctx)
	s.Require().NoError(err)
	s.Empty(names)

	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "scrabble", []string{"CAT"}))
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, "common", []string{"DOG"}))

	names, err = s.storage.ListDictionaries(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"common", "scrabble"}, names)
}
