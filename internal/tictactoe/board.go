package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// WinCombos lists the 3 rows, the 3 columns and both diagonals.
var WinCombos = [8][3]entity.Action{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// InitialState - returns the empty board.
func InitialState() entity.Board {
	return entity.Board{}
}

// Player - returns the mark whose turn it is. X moves first, so X is to
// move whenever both marks have been placed equally often.
func Player(board entity.Board) entity.Mark {
	if board.Count(entity.PlayerX) > board.Count(entity.PlayerO) {
		return entity.PlayerO
	}
	return entity.PlayerX
}

// Actions - returns every empty cell once, in row-major order.
func Actions(board entity.Board) []entity.Action {
	actions := make([]entity.Action, 0, entity.BoardSize*entity.BoardSize)

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if board[row][col].IsEmpty() {
				actions = append(actions, entity.Action{Row: row, Col: col})
			}
		}
	}

	return actions
}

// Result - returns a copy of board with the current mover placed at action.
// The input board is never modified.
func Result(board entity.Board, action entity.Action) (entity.Board, error) {
	if !action.InBounds() {
		return board, fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidAction, action)
	}

	if !board.At(action).IsEmpty() {
		return board, fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidAction, action)
	}

	mover := Player(board)

	next := board
	next[action.Row][action.Col] = entity.CellOf(mover)

	return next, nil
}

// Winner - returns the mark owning a full line, or false if there is none.
func Winner(board entity.Board) (entity.Mark, bool) {
	for _, mark := range [...]entity.Mark{entity.PlayerX, entity.PlayerO} {
		cell := entity.CellOf(mark)

		for _, combo := range WinCombos {
			if board.At(combo[0]) == cell && board.At(combo[1]) == cell && board.At(combo[2]) == cell {
				return mark, true
			}
		}
	}

	return "", false
}

// Terminal - reports whether the game is over.
func Terminal(board entity.Board) bool {
	if _, ok := Winner(board); ok {
		return true
	}
	return board.IsFull()
}

// Utility - scores a terminal board: +1 for X, -1 for O, 0 otherwise.
func Utility(board entity.Board) entity.Utility {
	winner, ok := Winner(board)
	if !ok {
		return entity.Draw
	}

	if winner == entity.PlayerX {
		return entity.XWins
	}
	return entity.OWins
}
