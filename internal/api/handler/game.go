package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordhunt/internal/api/request"
	"github.com/mcoot/wordhunt/internal/api/response"
	"github.com/mcoot/wordhunt/internal/dependencies/clock"
	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/game"
	"github.com/mcoot/wordhunt/internal/services/scoring"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
	scoringService *scoring.Service
	clock          clock.Clock
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller, scoringService *scoring.Service, clock clock.Clock) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		scoringService: scoringService,
		clock:          clock,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	g, err := h.gameController.CreateGame(r.Context(), game.CreateOptions{
		Seed:       req.Seed,
		Dictionary: req.Dictionary,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	found := h.scoringService.ScoreSolutions(g.Found)
	response.JSON(w, http.StatusCreated, response.GameFromModel(g, h.clock.Now(), found, nil))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	var result *model.GameResult
	if g.IsComplete() {
		result = h.scoringService.Result(g)
	}
	found := h.scoringService.ScoreSolutions(g.Found)
	response.JSON(w, http.StatusOK, response.GameFromModel(g, h.clock.Now(), found, result))
}

// SubmitWord handles POST /api/v1/games/{id}/words
func (h *GameHandler) SubmitWord(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.SubmitWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if len(req.Path) == 0 {
		WriteError(w, NewInvalidRequestError("path must contain at least one tile"))
		return
	}

	sol, err := h.gameController.SubmitWord(r.Context(), id, req.Path)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SubmitWordResponse{
		Word:       response.WordFromSolution(*sol),
		FoundCount: g.Found.Len(),
		Score:      h.scoringService.ScoreSolutions(g.Found).TotalScore,
	})
}

// Finish handles POST /api/v1/games/{id}/finish
func (h *GameHandler) Finish(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if _, err := h.gameController.FinishGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	h.Get(w, r)
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.gameController.DeleteGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
