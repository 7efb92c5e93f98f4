package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress" // Moves are being played
	GameStateComplete   GameState = "complete"    // Terminal position reached
	GameStateAbandoned  GameState = "abandoned"   // Game was cancelled
)

// Score is a disc count over the board
type Score struct {
	Light int
	Dark  int
	Empty int
}

// GameResult is recorded once a game reaches a terminal position
type GameResult struct {
	Score  Score
	Winner Side // NoSide for a draw
}

// Game is a stored match between two seats
type Game struct {
	ID       GameID
	State    GameState
	Position Position

	// Who plays each side
	Light Seat
	Dark  Seat

	// Moves in the order they were played, passes included
	Moves []Move

	// Set when State is complete
	Result *GameResult

	// Timing
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SeatFor returns the seat playing the given side
func (g *Game) SeatFor(side Side) Seat {
	if side == DarkSide {
		return g.Dark
	}
	return g.Light
}

// CurrentSeat returns the seat whose turn it is
func (g *Game) CurrentSeat() Seat {
	return g.SeatFor(g.Position.SideToMove())
}

// IsFinished returns true if no more moves can be played
func (g *Game) IsFinished() bool {
	return g.State == GameStateComplete || g.State == GameStateAbandoned
}

// LastMove returns the most recent move, if any
func (g *Game) LastMove() (Move, bool) {
	if len(g.Moves) == 0 {
		return Move{}, false
	}
	return g.Moves[len(g.Moves)-1], true
}

// Clone returns a copy that shares no slices or pointers with g
func (g *Game) Clone() *Game {
	c := *g
	c.Moves = append([]Move(nil), g.Moves...)
	if g.Result != nil {
		result := *g.Result
		c.Result = &result
	}
	return &c
}
