package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Minimax - returns the optimal action for the player to move, assuming
// both sides play optimally afterwards. X maximizes utility, O minimizes it.
func Minimax(board entity.Board) (entity.Action, error) {
	if Terminal(board) {
		return entity.Action{}, apperror.ErrGameFinished
	}

	var (
		action entity.Action
		err    error
	)

	if Player(board) == entity.PlayerX {
		_, action, err = maxValue(board)
	} else {
		_, action, err = minValue(board)
	}

	if err != nil {
		return entity.Action{}, fmt.Errorf("failed to search game tree: %w", err)
	}

	return action, nil
}

// maxValue - keeps the first action whose value strictly exceeds the best so far.
func maxValue(board entity.Board) (int, entity.Action, error) {
	if Terminal(board) {
		return int(Utility(board)), entity.Action{}, nil
	}

	best := math.MinInt
	var bestAction entity.Action

	for _, action := range Actions(board) {
		next, err := Result(board, action)
		if err != nil {
			return 0, entity.Action{}, err
		}

		value, _, err := minValue(next)
		if err != nil {
			return 0, entity.Action{}, err
		}

		if value > best {
			best = value
			bestAction = action
		}
	}

	return best, bestAction, nil
}

// minValue - keeps the first action whose value is strictly below the best so far.
func minValue(board entity.Board) (int, entity.Action, error) {
	if Terminal(board) {
		return int(Utility(board)), entity.Action{}, nil
	}

	best := math.MaxInt
	var bestAction entity.Action

	for _, action := range Actions(board) {
		next, err := Result(board, action)
		if err != nil {
			return 0, entity.Action{}, err
		}

		value, _, err := maxValue(next)
		if err != nil {
			return 0, entity.Action{}, err
		}

		if value < best {
			best = value
			bestAction = action
		}
	}

	return best, bestAction, nil
}
