package request

import "github.com/mcoot/othello/internal/model"

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	// Position is an encoded start position; omitted means the standard opening
	Position string      `json:"position,omitempty"`
	Light    *model.Seat `json:"light,omitempty"`
	Dark     *model.Seat `json:"dark,omitempty"`
}

// MoveRequest is the request body for playing a move
type MoveRequest struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Side string `json:"side,omitempty"` // Defaults to the side to move
}

// PassRequest is the request body for passing
type PassRequest struct {
	Side string `json:"side,omitempty"`
}

// AnalyzeRequest is the request body for analysing an encoded position
type AnalyzeRequest struct {
	Position string `json:"position"`
}

// ApplyRequest is the request body for applying a placement to an encoded position
type ApplyRequest struct {
	Position string `json:"position"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}
