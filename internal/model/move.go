package model

import (
	"fmt"
	"strconv"
	"strings"
)

// PassNotation is the text form of a pass
const PassNotation = "pass"

// Move is a turn taken in a game: either a placement or a pass
type Move struct {
	Side    Side   `json:"side"`
	Pass    bool   `json:"pass,omitempty"`
	Action  Action `json:"action"`
	Flipped int    `json:"flipped,omitempty"` // Discs recoloured by the placement
}

// PlaceMove creates a placement move
func PlaceMove(side Side, action Action) Move {
	return Move{Side: side, Action: action}
}

// PassMove creates a pass
func PassMove(side Side) Move {
	return Move{Side: side, Pass: true}
}

// String returns "pass" or "(row,col)"
func (m Move) String() string {
	if m.Pass {
		return PassNotation
	}
	return m.Action.String()
}

// ParseMove reads "pass", "(row,col)" or "row,col".
// The returned move has no side set.
func ParseMove(s string) (Move, error) {
	text := strings.TrimSpace(strings.ToLower(s))
	if text == PassNotation {
		return Move{Pass: true}, nil
	}

	text = strings.TrimPrefix(text, "(")
	text = strings.TrimSuffix(text, ")")
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Move{}, fmt.Errorf("%w: bad row in %q", ErrInvalidMove, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Move{}, fmt.Errorf("%w: bad column in %q", ErrInvalidMove, s)
	}

	action := Action{Row: row, Col: col}
	if !action.OnBoard() {
		return Move{}, fmt.Errorf("%w: %s is off the board", ErrInvalidMove, action)
	}
	return Move{Action: action}, nil
}
