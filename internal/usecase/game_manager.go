package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type bot interface {
	MakeTurn(board entity.Board) (entity.Board, entity.Action, error)
}

// GameManager runs one session. Every accepted turn replaces the board with
// a new value; previous boards are never modified.
type GameManager struct {
	logger *slog.Logger
	bot    bot

	// nil when the bot plays both sides
	human *entity.Mark
	board entity.Board
}

func NewGameManager(logger *slog.Logger, botService bot, human *entity.Mark) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		bot:    botService,
		human:  human,
		board:  tictactoe.InitialState(),
	}
}

// Game - returns a snapshot of the current session.
func (that *GameManager) Game() *entity.Game {
	game := &entity.Game{
		Board:  that.board,
		Status: entity.StatusOngoing,
	}

	if !tictactoe.Terminal(that.board) {
		game.Turn = tictactoe.Player(that.board)
		return game
	}

	game.Status = entity.StatusFinished
	if winner, ok := tictactoe.Winner(that.board); ok {
		game.Winner = &winner
	}

	return game
}

func (that *GameManager) IsHumanTurn() bool {
	if that.human == nil || tictactoe.Terminal(that.board) {
		return false
	}
	return tictactoe.Player(that.board) == *that.human
}

// MakeTurn - applies the human player's action.
func (that *GameManager) MakeTurn(action entity.Action) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn")

	if tictactoe.Terminal(that.board) {
		return that.Game(), apperror.ErrGameFinished
	}

	if !that.IsHumanTurn() {
		return that.Game(), apperror.ErrNotYourTurn
	}

	mark := tictactoe.Player(that.board)

	next, err := tictactoe.Result(that.board, action)
	if err != nil {
		return that.Game(), fmt.Errorf("failed to make turn: %w", err)
	}

	that.board = next
	log.Info("turn made", "mark", mark, "row", action.Row, "col", action.Col)

	return that.Game(), nil
}

// BotTurn - lets the bot move for the side that is not played by the human.
func (that *GameManager) BotTurn() (*entity.Game, entity.Action, error) {
	log := that.logger.With("method", "BotTurn")

	if tictactoe.Terminal(that.board) {
		return that.Game(), entity.Action{}, apperror.ErrGameFinished
	}

	if that.IsHumanTurn() {
		return that.Game(), entity.Action{}, apperror.ErrNotYourTurn
	}

	mark := tictactoe.Player(that.board)

	next, action, err := that.bot.MakeTurn(that.board)
	if err != nil {
		return that.Game(), entity.Action{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.board = next
	log.Info("bot turn made", "mark", mark, "row", action.Row, "col", action.Col)

	return that.Game(), action, nil
}
