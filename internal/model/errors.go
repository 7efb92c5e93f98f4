package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Position errors
	ErrInvalidPosition = errors.New("invalid position encoding")
	ErrInvalidSide     = errors.New("invalid side")
	ErrInvalidMove     = errors.New("invalid move notation")

	// Rules errors
	ErrIllegalMove    = errors.New("illegal move")
	ErrPassNotAllowed = errors.New("pass is not allowed while a legal move exists")

	// Game errors
	ErrGameNotFound    = errors.New("game not found")
	ErrNotPlayerTurn   = errors.New("not this side's turn")
	ErrGameComplete    = errors.New("game is already complete")
	ErrGameAbandoned   = errors.New("game has been abandoned")
	ErrUnknownStrategy = errors.New("unknown bot strategy")
	ErrInvalidSeat     = errors.New("invalid seat")
)

// FormatError reports a malformed encoded position
type FormatError struct {
	Length int
	Reason string
}

// NewFormatError creates a FormatError for an input of the given length
func NewFormatError(length int, reason string) error {
	return &FormatError{Length: length, Reason: reason}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s (got %d characters)", ErrInvalidPosition, e.Reason, e.Length)
}

// Is lets errors.Is(err, ErrInvalidPosition) match a FormatError
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidPosition
}

// IllegalMoveError reports an action that is not legal for the side to move
type IllegalMoveError struct {
	Action Action
	Side   Side
}

// NewIllegalMoveError creates an IllegalMoveError
func NewIllegalMoveError(action Action, side Side) error {
	return &IllegalMoveError{Action: action, Side: side}
}

func (e *IllegalMoveError) Error() string {
	if e.Side == NoSide {
		return fmt.Sprintf("%s: %s with no side to move", ErrIllegalMove, e.Action)
	}
	return fmt.Sprintf("%s: %s for %s", ErrIllegalMove, e.Action, e.Side)
}

// Is lets errors.Is(err, ErrIllegalMove) match an IllegalMoveError
func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}
