package request

import "github.com/mcoot/wordhunt/internal/model"

// CreateGameRequest is the request body for starting a game. Both fields are
// optional: an empty seed deals a random 4x4 board and an empty dictionary
// selects the default one.
type CreateGameRequest struct {
	Seed       string `json:"seed,omitempty"`
	Dictionary string `json:"dictionary,omitempty"`
}

// SubmitWordRequest is the request body for submitting a traced word
type SubmitWordRequest struct {
	Path []model.Position `json:"path"`
}

// HintRequest is the optional request body for asking for a hint. An empty
// strategy picks a random unfound word.
type HintRequest struct {
	Strategy string `json:"strategy,omitempty"`
}

// SolveRequest is the request body for solving a board. Exactly one of Rows
// and Seed must be set. In Rows a '.' marks an inactive cell.
type SolveRequest struct {
	Rows       []string `json:"rows,omitempty"`
	Seed       string   `json:"seed,omitempty"`
	Dictionary string   `json:"dictionary,omitempty"`
}

// SolveBatchRequest is the request body for solving several boards at once
type SolveBatchRequest struct {
	Boards     []SolveRequest `json:"boards"`
	Dictionary string         `json:"dictionary,omitempty"`
}

// DecodeSeedRequest is the request body for decoding seed text
type DecodeSeedRequest struct {
	Seed string `json:"seed"`
}
