package model

import "fmt"

// Size is the board dimension (8x8)
const Size = 8

// Cell is the content of a single board square
type Cell uint8

const (
	Empty Cell = iota
	Light
	Dark
)

// String returns a lowercase name for the cell
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Side identifies a player. The zero value means no side has been chosen yet.
type Side uint8

const (
	NoSide    Side = 0
	LightSide Side = Side(Light)
	DarkSide  Side = Side(Dark)
)

// Opponent returns the other side. NoSide has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case LightSide:
		return DarkSide
	case DarkSide:
		return LightSide
	default:
		return NoSide
	}
}

// Disc returns the cell colour owned by the side
func (s Side) Disc() Cell {
	return Cell(s)
}

// IsValid reports whether s is Light or Dark
func (s Side) IsValid() bool {
	return s == LightSide || s == DarkSide
}

func (s Side) String() string {
	switch s {
	case LightSide:
		return "light"
	case DarkSide:
		return "dark"
	default:
		return ""
	}
}

// MarshalText encodes the side as "light", "dark" or ""
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the forms produced by MarshalText
func (s *Side) UnmarshalText(text []byte) error {
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// ParseSide parses "light", "dark" or an empty string
func ParseSide(s string) (Side, error) {
	switch s {
	case "light", "white", "w", "W":
		return LightSide, nil
	case "dark", "black", "b", "B":
		return DarkSide, nil
	case "":
		return NoSide, nil
	default:
		return NoSide, fmt.Errorf("%w: %q", ErrInvalidSide, s)
	}
}

// Action is a proposed placement at a board coordinate (0-indexed)
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// OnBoard returns true if the coordinate lies within the 8x8 grid
func (a Action) OnBoard() bool {
	return a.Row >= 0 && a.Row < Size && a.Col >= 0 && a.Col < Size
}

// String formats the action as (row,col)
func (a Action) String() string {
	return fmt.Sprintf("(%d,%d)", a.Row, a.Col)
}
