package model

import (
	"strings"
	"unicode/utf8"
)

// EncodedLength is the length of an encoded position: one side character
// followed by 64 cells in row-major order.
const EncodedLength = 1 + Size*Size

// Encoding characters
const (
	encLightToMove = 'W'
	encDarkToMove  = 'B'
	encEmpty       = 'E'
	encLight       = 'O'
	encDark        = 'X'
)

// Position is an 8x8 board plus the side to move.
//
// Position is a value type: the grid is a fixed-size array, so assignment
// copies the whole board and no two positions share storage. Every rules
// operation returns a new Position rather than modifying its input.
type Position struct {
	cells  [Size][Size]Cell
	toMove Side
}

// EmptyPosition returns a board with every cell empty and no side to move
func EmptyPosition() Position {
	return Position{}
}

// InitialPosition returns the standard starting layout with Light to move
func InitialPosition() Position {
	return EmptyPosition().Initialize()
}

// NewPosition builds a position from an explicit grid
func NewPosition(cells [Size][Size]Cell, toMove Side) Position {
	return Position{cells: cells, toMove: toMove}
}

// Initialize returns p with the four centre discs placed and Light to move.
// It is intended to be called on an empty position.
func (p Position) Initialize() Position {
	mid := Size / 2
	p.cells[mid-1][mid-1] = Light
	p.cells[mid][mid] = Light
	p.cells[mid-1][mid] = Dark
	p.cells[mid][mid-1] = Dark
	p.toMove = LightSide
	return p
}

// DecodePosition parses the 65-character encoding.
//
// Character 0 is 'W' for Light to move; anything else means Dark to move.
// The remaining 64 characters are cells in row-major order: 'E' is empty,
// 'O' is Light and any other character is Dark.
func DecodePosition(s string) (Position, error) {
	if n := utf8.RuneCountInString(s); n != EncodedLength {
		return Position{}, NewFormatError(n, "position must be 65 characters")
	}

	var p Position
	i := -1
	for _, r := range s {
		if i < 0 {
			if r == encLightToMove {
				p.toMove = LightSide
			} else {
				p.toMove = DarkSide
			}
			i++
			continue
		}
		row, col := i/Size, i%Size
		switch r {
		case encEmpty:
			p.cells[row][col] = Empty
		case encLight:
			p.cells[row][col] = Light
		default:
			p.cells[row][col] = Dark
		}
		i++
	}
	return p, nil
}

// MustDecodePosition is like DecodePosition but panics on error.
// It is meant for fixtures and tests.
func MustDecodePosition(s string) Position {
	p, err := DecodePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Encode returns the 65-character encoding of p.
// Light to move is written as 'W', anything else as 'B'.
func (p Position) Encode() string {
	var sb strings.Builder
	sb.Grow(EncodedLength)
	if p.toMove == LightSide {
		sb.WriteByte(encLightToMove)
	} else {
		sb.WriteByte(encDarkToMove)
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch p.cells[row][col] {
			case Light:
				sb.WriteByte(encLight)
			case Dark:
				sb.WriteByte(encDark)
			default:
				sb.WriteByte(encEmpty)
			}
		}
	}
	return sb.String()
}

// String returns the encoded form
func (p Position) String() string {
	return p.Encode()
}

// MarshalText implements encoding.TextMarshaler using the 65-character encoding
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.Encode()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Position) UnmarshalText(text []byte) error {
	decoded, err := DecodePosition(string(text))
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

// Clone returns an independent copy of p
func (p Position) Clone() Position {
	return p
}

// SideToMove returns whose turn it is
func (p Position) SideToMove() Side {
	return p.toMove
}

// WithSideToMove returns a copy of p with the side to move replaced
func (p Position) WithSideToMove(side Side) Position {
	p.toMove = side
	return p
}

// At returns the cell at (row, col), or Empty if the coordinate is off the board
func (p Position) At(row, col int) Cell {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return Empty
	}
	return p.cells[row][col]
}

// With returns a copy of p with a single cell replaced.
// Off-board coordinates leave the copy unchanged.
func (p Position) With(row, col int, cell Cell) Position {
	if row >= 0 && row < Size && col >= 0 && col < Size {
		p.cells[row][col] = cell
	}
	return p
}

// Cells returns a copy of the grid
func (p Position) Cells() [Size][Size]Cell {
	return p.cells
}

// Count returns the number of cells holding the given value
func (p Position) Count(cell Cell) int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if p.cells[row][col] == cell {
				count++
			}
		}
	}
	return count
}

// EmptyCount returns the number of empty cells
func (p Position) EmptyCount() int {
	return p.Count(Empty)
}

// IsFull returns true if no empty cells remain
func (p Position) IsFull() bool {
	return p.EmptyCount() == 0
}
