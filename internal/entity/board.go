package entity

import "fmt"

const BoardSize = 3

// Mark identifies a player. X always moves first.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

// Opponent returns the mark that moves after m.
func (m Mark) Opponent() Mark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// IsValid reports whether m is X or O.
func (m Mark) IsValid() bool {
	return m == PlayerX || m == PlayerO
}

// Cell is the content of one square: EmptyCell or a mark.
type Cell string

const EmptyCell Cell = ""

func CellOf(m Mark) Cell {
	return Cell(m)
}

// Mark returns the mark held by the cell, or false for an empty cell.
func (c Cell) Mark() (Mark, bool) {
	if c == EmptyCell {
		return "", false
	}
	return Mark(c), true
}

func (c Cell) IsEmpty() bool {
	return c == EmptyCell
}

// Board is a row-major 3x3 grid. It is an array, so assignment copies it.
type Board [BoardSize][BoardSize]Cell

// Count returns how many cells hold m.
func (b Board) Count(m Mark) int {
	count := 0
	for _, row := range b {
		for _, cell := range row {
			if cell == CellOf(m) {
				count++
			}
		}
	}
	return count
}

// IsFull reports whether no empty cell is left.
func (b Board) IsFull() bool {
	for _, row := range b {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}
	return true
}

// At returns the cell under action. The action must be InBounds.
func (b Board) At(action Action) Cell {
	return b[action.Row][action.Col]
}

// Action addresses one cell by row and column.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether both coordinates lie in [0, BoardSize).
func (a Action) InBounds() bool {
	return a.Row >= 0 && a.Row < BoardSize && a.Col >= 0 && a.Col < BoardSize
}

func (a Action) String() string {
	return fmt.Sprintf("(%d, %d)", a.Row, a.Col)
}

// Utility is the value of a terminal board from X's point of view.
type Utility int

const (
	OWins Utility = -1
	Draw  Utility = 0
	XWins Utility = 1
)
