package model

import "errors"

// Common errors used across the application
var (
	// Dictionary errors
	ErrInvalidCharacter    = errors.New("invalid character")
	ErrEmptyWord           = errors.New("empty word")
	ErrDictionaryLoad      = errors.New("dictionary could not be loaded")
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
	ErrDictionaryNotFound  = errors.New("dictionary not found")

	// Seed errors
	ErrInvalidSeedFormat = errors.New("invalid seed format")

	// Grid and path errors
	ErrInvalidGrid      = errors.New("invalid grid")
	ErrInvalidPosition  = errors.New("invalid grid position")
	ErrTileInactive     = errors.New("tile is not active")
	ErrTileReused       = errors.New("tile is already on the path")
	ErrTilesNotAdjacent = errors.New("tiles are not adjacent")

	// Word submission errors
	ErrWordTooShort     = errors.New("word is too short")
	ErrNotAWord         = errors.New("not a dictionary word")
	ErrWordAlreadyFound = errors.New("word has already been found")

	// Game errors
	ErrGameNotFound = errors.New("game not found")
	ErrGameComplete = errors.New("game is already complete")

	// Hint errors
	ErrUnknownStrategy = errors.New("unknown hint strategy")
	ErrNoWordsLeft     = errors.New("every word has been found")
)
