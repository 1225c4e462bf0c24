package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordhunt/internal/api/request"
	"github.com/mcoot/wordhunt/internal/api/response"
	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/hint"
)

// HintHandler handles hints for games in play
type HintHandler struct {
	hintService *hint.Service
}

// NewHintHandler creates a new hint handler
func NewHintHandler(hintService *hint.Service) *HintHandler {
	return &HintHandler{
		hintService: hintService,
	}
}

// Hint handles POST /api/v1/games/{id}/hint
func (h *HintHandler) Hint(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.HintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Strategy == "" {
		req.Strategy = hint.StrategyRandom
	}

	result, err := h.hintService.Hint(r.Context(), id, req.Strategy)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HintFromModel(result))
}
