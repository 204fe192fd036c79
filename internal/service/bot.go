package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type BotService interface {
	MakeTurn(board entity.Board) (entity.Board, entity.Action, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn - plays the minimax move for whoever is to move on board.
func (that *botService) MakeTurn(board entity.Board) (entity.Board, entity.Action, error) {
	if tictactoe.Terminal(board) {
		return board, entity.Action{}, apperror.ErrGameFinished
	}

	action, err := tictactoe.Minimax(board)
	if err != nil {
		return board, entity.Action{}, fmt.Errorf("bot failed to choose action: %w", err)
	}

	next, err := tictactoe.Result(board, action)
	if err != nil {
		return board, entity.Action{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return next, action, nil
}
