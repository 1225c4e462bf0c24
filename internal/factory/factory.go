package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/wordhunt/internal/dependencies/clock"
	"github.com/mcoot/wordhunt/internal/dependencies/random"
	"github.com/mcoot/wordhunt/internal/services/board"
	"github.com/mcoot/wordhunt/internal/services/dictionary"
	"github.com/mcoot/wordhunt/internal/services/game"
	"github.com/mcoot/wordhunt/internal/services/hint"
	"github.com/mcoot/wordhunt/internal/services/scoring"
	"github.com/mcoot/wordhunt/internal/solver"
	"github.com/mcoot/wordhunt/internal/storage"
	"github.com/mcoot/wordhunt/internal/storage/memory"
	redisstorage "github.com/mcoot/wordhunt/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	ScoringService    *scoring.Service
	GameController    *game.Controller
	HintService       *hint.Service
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the path to a word list file (optional)
	// If empty, dictionaries previously saved to storage are loaded instead
	DictionaryPath string
	// DictionaryName names the dictionary loaded from DictionaryPath
	// If empty, defaults to dictionary.DefaultName
	DictionaryName string
	// MinWordLength is the shortest word that counts
	// If zero, defaults to solver.DefaultMinWordLength
	MinWordLength int
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired and dictionaries loaded
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory' or 'redis'", storageType)
	}

	minLen := cfg.MinWordLength
	if minLen == 0 {
		minLen = solver.DefaultMinWordLength
	}

	app := newWithDependencies(store, clock.New(), random.New(), minLen, logger)

	if cfg.DictionaryPath != "" {
		name := cfg.DictionaryName
		if name == "" {
			name = dictionary.DefaultName
		}
		if err := app.DictionaryService.LoadFromFile(ctx, name, cfg.DictionaryPath); err != nil {
			return nil, err
		}
		return app, nil
	}

	n, err := app.DictionaryService.LoadAllFromStorage(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		logger.Warn("no dictionaries available; games and solves will fail until one is loaded")
	}
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, minWordLength int, logger *slog.Logger) *App {
	// Create services
	dictService := dictionary.New(store, logger, minWordLength)
	boardService := board.New(rnd)
	scoringService := scoring.New()
	gameController := game.NewController(store, boardService, dictService, scoringService, clk, rnd, logger)
	hintService := hint.New(gameController, dictService, hint.DefaultStrategies(rnd), logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		BoardService:      boardService,
		ScoringService:    scoringService,
		GameController:    gameController,
		HintService:       hintService,
	}
}
