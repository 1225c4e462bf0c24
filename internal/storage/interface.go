package storage

import (
	"context"

	"github.com/mcoot/wordhunt/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Dictionary operations. Word lists are stored by name so that several
	// dictionaries can be served side by side.
	GetDictionaryWords(ctx context.Context, name string) ([]string, error)
	SaveDictionaryWords(ctx context.Context, name string, words []string) error
	ListDictionaries(ctx context.Context) ([]string, error)
}
