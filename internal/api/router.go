package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordhunt/internal/api/handler"
	"github.com/mcoot/wordhunt/internal/api/middleware"
	"github.com/mcoot/wordhunt/internal/api/response"
	"github.com/mcoot/wordhunt/internal/dependencies/clock"
	"github.com/mcoot/wordhunt/internal/services/board"
	"github.com/mcoot/wordhunt/internal/services/dictionary"
	"github.com/mcoot/wordhunt/internal/services/game"
	"github.com/mcoot/wordhunt/internal/services/hint"
	"github.com/mcoot/wordhunt/internal/services/scoring"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	Clock             clock.Clock
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	ScoringService    *scoring.Service
	GameController    *game.Controller
	HintService       *hint.Service

	// RequestTimeout bounds every request, solves included. Zero disables it.
	RequestTimeout time.Duration
	// SolveWorkers bounds parallel solves in a batch request. Zero means no limit.
	SolveWorkers int
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.ScoringService, cfg.Clock)
	hintHandler := handler.NewHintHandler(cfg.HintService)
	solveHandler := handler.NewSolveHandler(cfg.DictionaryService, cfg.BoardService, cfg.ScoringService, cfg.SolveWorkers)
	dictionaryHandler := handler.NewDictionaryHandler(cfg.DictionaryService)
	seedHandler := handler.NewSeedHandler()

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID())
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(middleware.Timeout(cfg.RequestTimeout))

	// Game routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/words", gameHandler.SubmitWord).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/finish", gameHandler.Finish).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/hint", hintHandler.Hint).Methods(http.MethodPost)

	// Stateless routes
	api.HandleFunc("/solve", solveHandler.Solve).Methods(http.MethodPost)
	api.HandleFunc("/solve/batch", solveHandler.SolveBatch).Methods(http.MethodPost)
	api.HandleFunc("/words/{word}", dictionaryHandler.CheckWord).Methods(http.MethodGet)
	api.HandleFunc("/dictionaries", dictionaryHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/seeds/decode", seedHandler.Decode).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler(cfg.DictionaryService)).Methods(http.MethodGet)

	return r
}

// healthHandler reports ok once a dictionary is loaded
func healthHandler(dictionaryService *dictionary.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !dictionaryService.IsLoaded() {
			response.JSON(w, http.StatusServiceUnavailable, response.Health{
				Status:       "no dictionary",
				Dictionaries: []string{},
			})
			return
		}
		response.JSON(w, http.StatusOK, response.Health{
			Status:       "ok",
			Dictionaries: dictionaryService.Names(),
		})
	}
}
