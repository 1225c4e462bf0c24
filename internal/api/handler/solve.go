package handler

import (
	"encoding/json"
	"net/http"

	"github.com/samber/lo"

	"github.com/mcoot/wordhunt/internal/api/request"
	"github.com/mcoot/wordhunt/internal/api/response"
	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/board"
	"github.com/mcoot/wordhunt/internal/services/dictionary"
	"github.com/mcoot/wordhunt/internal/services/scoring"
)

// maxBatchBoards bounds a single batch solve request
const maxBatchBoards = 64

// SolveHandler handles stateless solving of boards
type SolveHandler struct {
	dictionaryService *dictionary.Service
	boardService      *board.Service
	scoringService    *scoring.Service
	workers           int
}

// NewSolveHandler creates a new solve handler. workers bounds the number of
// boards solved in parallel by a batch request.
func NewSolveHandler(
	dictionaryService *dictionary.Service,
	boardService *board.Service,
	scoringService *scoring.Service,
	workers int,
) *SolveHandler {
	return &SolveHandler{
		dictionaryService: dictionaryService,
		boardService:      boardService,
		scoringService:    scoringService,
		workers:           workers,
	}
}

// resolveBoard resolves a solve request to a grid and, for seeded requests, the
// canonical seed text
func (h *SolveHandler) resolveBoard(req request.SolveRequest) (*model.Grid, string, error) {
	switch {
	case len(req.Rows) > 0 && req.Seed != "":
		return nil, "", NewInvalidRequestError("rows and seed are mutually exclusive")
	case len(req.Rows) > 0:
		grid, err := model.NewGridFromRows(req.Rows...)
		return grid, "", err
	case req.Seed != "":
		grid, sd, err := h.boardService.CreateBoard(req.Seed)
		if err != nil {
			return nil, "", err
		}
		return grid, sd.Short(), nil
	default:
		return nil, "", NewInvalidRequestError("one of rows or seed is required")
	}
}

// Solve handles POST /api/v1/solve
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req request.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	grid, seedText, err := h.resolveBoard(req)
	if err != nil {
		WriteError(w, err)
		return
	}

	solver, err := h.dictionaryService.Solver(req.Dictionary)
	if err != nil {
		WriteError(w, err)
		return
	}

	set, err := solver.Solve(r.Context(), grid)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SolutionFromScore(seedText, grid, h.scoringService.ScoreSolutions(set)))
}

// SolveBatch handles POST /api/v1/solve/batch
func (h *SolveHandler) SolveBatch(w http.ResponseWriter, r *http.Request) {
	var req request.SolveBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if len(req.Boards) == 0 || len(req.Boards) > maxBatchBoards {
		WriteError(w, NewInvalidRequestError("boards must hold between 1 and 64 entries"))
		return
	}

	grids := make([]*model.Grid, len(req.Boards))
	seeds := make([]string, len(req.Boards))
	for i, b := range req.Boards {
		grid, seedText, err := h.resolveBoard(b)
		if err != nil {
			WriteError(w, err)
			return
		}
		grids[i] = grid
		seeds[i] = seedText
	}

	solver, err := h.dictionaryService.Solver(req.Dictionary)
	if err != nil {
		WriteError(w, err)
		return
	}

	sets, err := solver.SolveAll(r.Context(), grids, h.workers)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SolveBatchResponse{
		Solutions: lo.Map(sets, func(set *model.SolutionSet, i int) response.Solution {
			return response.SolutionFromScore(seeds[i], grids[i], h.scoringService.ScoreSolutions(set))
		}),
	})
}
