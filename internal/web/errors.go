package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jaminalder/tttai/internal/app"
	"github.com/jaminalder/tttai/internal/domain"
)

// Error codes returned in JSON error bodies.
const (
	CodeInvalidLength   = "INVALID_LENGTH"
	CodeInvalidMark     = "INVALID_MARK"
	CodeInvalidPosition = "INVALID_POSITION"
	CodeInvalidBoard    = "INVALID_BOARD"
	CodeGameNotFound    = "GAME_NOT_FOUND"
	CodeNotYourTurn     = "NOT_YOUR_TURN"
	CodeCellOccupied    = "CELL_OCCUPIED"
	CodeGameOver        = "GAME_OVER"
	CodeInternalError   = "INTERNAL_ERROR"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

// statusFor maps an error onto an HTTP status and error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidLength):
		return http.StatusBadRequest, CodeInvalidLength
	case errors.Is(err, domain.ErrInvalidMark):
		return http.StatusBadRequest, CodeInvalidMark
	case errors.Is(err, domain.ErrInvalidPosition):
		return http.StatusBadRequest, CodeInvalidPosition
	case errors.Is(err, domain.ErrInvalidBoard):
		return http.StatusBadRequest, CodeInvalidBoard
	case errors.Is(err, app.ErrNotFound):
		return http.StatusNotFound, CodeGameNotFound
	case errors.Is(err, app.ErrNotYourTurn):
		return http.StatusConflict, CodeNotYourTurn
	case errors.Is(err, domain.ErrOccupied):
		return http.StatusConflict, CodeCellOccupied
	case errors.Is(err, domain.ErrGameOver):
		return http.StatusConflict, CodeGameOver
	default:
		return http.StatusInternalServerError, CodeInternalError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: apiError{Code: code, Message: msg}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
