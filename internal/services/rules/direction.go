package rules

// direction is a unit step across the board
type direction struct {
	dRow int
	dCol int
}

// directions lists the eight compass offsets scanned from a placement
var directions = [8]direction{
	{-1, 0},  // N
	{-1, 1},  // NE
	{0, 1},   // E
	{1, 1},   // SE
	{1, 0},   // S
	{1, -1},  // SW
	{0, -1},  // W
	{-1, -1}, // NW
}
