package apierr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordhunt/internal/model"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: at offset 3", model.ErrInvalidSeedFormat), http.StatusBadRequest},
		{model.ErrInvalidGrid, http.StatusBadRequest},
		{model.ErrInvalidCharacter, http.StatusBadRequest},
		{model.ErrTileReused, http.StatusBadRequest},
		{fmt.Errorf("%w: ZZZ", model.ErrNotAWord), http.StatusUnprocessableEntity},
		{model.ErrWordAlreadyFound, http.StatusConflict},
		{model.ErrGameNotFound, http.StatusNotFound},
		{model.ErrGameComplete, http.StatusConflict},
		{model.ErrDictionaryNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: %q", model.ErrUnknownStrategy, "psychic"), http.StatusBadRequest},
		{model.ErrNoWordsLeft, http.StatusConflict},
		{model.ErrDictionaryNotLoaded, http.StatusServiceUnavailable},
		{context.DeadlineExceeded, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
		{NewInvalidRequestError("bad body"), http.StatusBadRequest},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, Status(tc.err), tc.err.Error())
	}
}

func TestWriteErrorBody(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, fmt.Errorf("%w: rows out of range", model.ErrInvalidSeedFormat))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, CodeInvalidSeed, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "rows out of range")
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, errors.New("redis: connection refused"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, CodeInternalError, resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "redis")
}
