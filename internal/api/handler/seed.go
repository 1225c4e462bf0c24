package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/wordhunt/internal/api/request"
	"github.com/mcoot/wordhunt/internal/api/response"
	"github.com/mcoot/wordhunt/internal/generator"
	"github.com/mcoot/wordhunt/internal/seed"
)

// SeedHandler handles seed decoding
type SeedHandler struct{}

// NewSeedHandler creates a new seed handler
func NewSeedHandler() *SeedHandler {
	return &SeedHandler{}
}

// Decode handles POST /api/v1/seeds/decode
func (h *SeedHandler) Decode(w http.ResponseWriter, r *http.Request) {
	var req request.DecodeSeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	sd, err := seed.Parse(req.Seed)
	if err != nil {
		WriteError(w, err)
		return
	}

	grid, err := generator.Generate(sd)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SeedFromModel(sd, grid))
}
