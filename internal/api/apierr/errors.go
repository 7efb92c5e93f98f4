package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/othello/internal/model"
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
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeInvalidPositionFormat = "INVALID_POSITION_FORMAT"
	CodeIllegalMove           = "ILLEGAL_MOVE"
	CodePassNotAllowed        = "PASS_NOT_ALLOWED"
	CodeNotYourTurn           = "NOT_YOUR_TURN"
	CodeGameNotFound          = "GAME_NOT_FOUND"
	CodeGameComplete          = "GAME_COMPLETE"
	CodeGameAbandoned         = "GAME_ABANDONED"
	CodeUnknownStrategy       = "UNKNOWN_STRATEGY"
	CodeInternalError         = "INTERNAL_ERROR"
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

// Status returns the HTTP status an error maps to
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

	// Typed rule errors carry detail worth echoing back
	var formatErr *model.FormatError
	if errors.As(err, &formatErr) {
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPositionFormat, formatErr.Error()}}
	}
	var illegalErr *model.IllegalMoveError
	if errors.As(err, &illegalErr) {
		return &httpError{http.StatusConflict, APIError{CodeIllegalMove, illegalErr.Error()}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrNotPlayerTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrPassNotAllowed):
		return &httpError{http.StatusConflict, APIError{CodePassNotAllowed, "Cannot pass while a legal move exists"}}
	case errors.Is(err, model.ErrGameComplete):
		return &httpError{http.StatusConflict, APIError{CodeGameComplete, "Game is already complete"}}
	case errors.Is(err, model.ErrGameAbandoned):
		return &httpError{http.StatusConflict, APIError{CodeGameAbandoned, "Game was abandoned"}}
	case errors.Is(err, model.ErrUnknownStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownStrategy, err.Error()}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPositionFormat, err.Error()}}
	case errors.Is(err, model.ErrIllegalMove):
		return &httpError{http.StatusConflict, APIError{CodeIllegalMove, err.Error()}}
	case errors.Is(err, model.ErrInvalidSide),
		errors.Is(err, model.ErrInvalidMove),
		errors.Is(err, model.ErrInvalidSeat):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, err.Error()}}

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
