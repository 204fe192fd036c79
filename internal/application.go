package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

var ErrInputClosed = errors.New("input closed before the game ended")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	game, err := Play(logger, conf, os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	log.Info("Game finished", "draw", game.IsDraw())

	return nil
}

// Play - plays one game on the given input and output until it ends.
func Play(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) (*entity.Game, error) {
	log := logger.With("component", "app")

	gameManager := usecase.NewGameManager(logger, service.NewBotService(), conf.GetHumanMark())
	view := console.New(in, out, !conf.NoColor)

	game := gameManager.Game()
	view.RenderBoard(game.Board)

	if human := conf.GetHumanMark(); human != nil {
		view.AnnounceSides(*human)
	}

	for game.IsOngoing() {
		var err error

		if !gameManager.IsHumanTurn() {
			mover := game.Turn

			var action entity.Action
			game, action, err = gameManager.BotTurn()
			if err != nil {
				return game, fmt.Errorf("bot turn failed: %w", err)
			}

			view.AnnounceBotMove(mover, action)
			view.RenderBoard(game.Board)
			continue
		}

		view.Prompt(game.Turn)

		action, err := view.ReadAction()
		if errors.Is(err, io.EOF) {
			return game, ErrInputClosed
		}
		if errors.Is(err, console.ErrMalformedInput) {
			view.ReportError(err)
			continue
		}
		if err != nil {
			return game, fmt.Errorf("failed to read action: %w", err)
		}

		next, err := gameManager.MakeTurn(action)
		if errors.Is(err, apperror.ErrInvalidAction) {
			log.Debug("rejected action", "row", action.Row, "col", action.Col, "error", err)
			view.ReportError(err)
			continue
		}
		if err != nil {
			return next, fmt.Errorf("failed to make turn: %w", err)
		}

		game = next
		view.RenderBoard(game.Board)
	}

	view.AnnounceResult(game)

	return game, nil
}
