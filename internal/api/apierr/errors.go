package apierr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordhunt/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidWord         = "INVALID_WORD"
	CodeInvalidSeed         = "INVALID_SEED"
	CodeInvalidGrid         = "INVALID_GRID"
	CodeInvalidPosition     = "INVALID_POSITION"
	CodeInvalidPath         = "INVALID_PATH"
	CodeWordTooShort        = "WORD_TOO_SHORT"
	CodeNotAWord            = "NOT_A_WORD"
	CodeWordAlreadyFound    = "WORD_ALREADY_FOUND"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeGameComplete        = "GAME_COMPLETE"
	CodeDictionaryNotFound  = "DICTIONARY_NOT_FOUND"
	CodeDictionaryNotLoaded = "DICTIONARY_NOT_LOADED"
	CodeUnknownStrategy     = "UNKNOWN_STRATEGY"
	CodeNoWordsLeft         = "NO_WORDS_LEFT"
	CodeTimeout             = "TIMEOUT"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error is reported with
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Validation errors carry their detail in the message
	switch {
	case errors.Is(err, model.ErrInvalidSeedFormat):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSeed, err.Error()}}
	case errors.Is(err, model.ErrInvalidGrid):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGrid, err.Error()}}
	case errors.Is(err, model.ErrInvalidCharacter), errors.Is(err, model.ErrEmptyWord):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidWord, err.Error()}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, err.Error()}}
	case errors.Is(err, model.ErrTileInactive),
		errors.Is(err, model.ErrTileReused),
		errors.Is(err, model.ErrTilesNotAdjacent):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPath, err.Error()}}
	case errors.Is(err, model.ErrUnknownStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownStrategy, err.Error()}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrWordTooShort):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeWordTooShort, "Word is too short"}}
	case errors.Is(err, model.ErrNotAWord):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeNotAWord, "Not a dictionary word"}}
	case errors.Is(err, model.ErrWordAlreadyFound):
		return &httpError{http.StatusConflict, APIError{CodeWordAlreadyFound, "Word has already been found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrNoWordsLeft):
		return &httpError{http.StatusConflict, APIError{CodeNoWordsLeft, "Every word has been found"}}
	case errors.Is(err, model.ErrGameComplete):
		return &httpError{http.StatusConflict, APIError{CodeGameComplete, "Game is already complete"}}
	case errors.Is(err, model.ErrDictionaryNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeDictionaryNotFound, "Dictionary not found"}}
	case errors.Is(err, model.ErrDictionaryNotLoaded), errors.Is(err, model.ErrDictionaryLoad):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeDictionaryNotLoaded, "No dictionary is loaded"}}
	case errors.Is(err, context.DeadlineExceeded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeTimeout, "Request timed out"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
