package board

import "strconv"

// Cell is the content of a single square, fixed once mines are placed
// and numbers calculated:
//
//   - CellMine marks a mine.
//   - CellEmpty means no mine and no adjacent mines.
//   - 1 to 8 is the count of adjacent mines.
type Cell int8

const (
	CellMine  Cell = -1
	CellEmpty Cell = 0
)

func (c Cell) String() string {
	switch {
	case c == CellMine:
		return "*"
	case c == CellEmpty:
		return "."
	case 1 <= c && c <= 8:
		return strconv.Itoa(int(c))
	default:
		return "!"
	}
}

// CellState is what the player sees of a square. Covered is the zero
// value. Uncovered is terminal for a square: nothing reverts it.
type CellState int8

const (
	Covered CellState = iota
	Uncovered
	Flagged
)

func (s CellState) String() string {
	switch s {
	case Covered:
		return "covered"
	case Uncovered:
		return "uncovered"
	case Flagged:
		return "flagged"
	default:
		return "invalid"
	}
}
