package application

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestPlay(t *testing.T) {
	t.Run("Bot against bot is a draw", func(t *testing.T) {
		// Given: a config where nobody plays from the console
		conf := &config.Config{LogLevel: "info", HumanMark: config.HumanNone, NoColor: true}
		var out bytes.Buffer

		// When: playing a game
		game, err := Play(newLogger(), conf, strings.NewReader(""), &out)
		require.NoError(t, err)

		// Then: the game is a draw and announced as such
		assert.True(t, game.IsDraw())
		assert.Contains(t, out.String(), "Game over: tie")
		assert.Equal(t, 9, strings.Count(out.String(), "Bot ("))
		assert.NotContains(t, out.String(), "You play")
	})

	t.Run("Human cannot beat the bot", func(t *testing.T) {
		// Given: a human playing X who tries every cell in row-major order
		conf := &config.Config{LogLevel: "info", HumanMark: "X", NoColor: true}
		input := "0 0\n0 1\n0 2\n1 0\n1 1\n1 2\n2 0\n2 1\n2 2\n"
		var out bytes.Buffer

		// When: playing a game
		game, err := Play(newLogger(), conf, strings.NewReader(input), &out)
		require.NoError(t, err)

		// Then: the game ends and X did not win
		require.True(t, game.IsFinished())
		if game.Winner != nil {
			assert.Equal(t, entity.PlayerO, *game.Winner)
		}
		assert.Contains(t, out.String(), "Game over:")
		assert.Contains(t, out.String(), "You play X, the bot plays O")
	})

	t.Run("Invalid input is reported and re-prompted", func(t *testing.T) {
		// Given: a human playing X who sends garbage, then an occupied cell
		conf := &config.Config{LogLevel: "info", HumanMark: "X", NoColor: true}
		input := "middle\n1 1\n1 1\n"
		var out bytes.Buffer

		// When: the input runs out mid-game
		game, err := Play(newLogger(), conf, strings.NewReader(input), &out)

		// Then: both errors were shown and the session ends with ErrInputClosed
		require.ErrorIs(t, err, ErrInputClosed)
		assert.True(t, game.IsOngoing())
		assert.Contains(t, out.String(), "expected input in the form")
		assert.Contains(t, out.String(), "invalid action: cell (1, 1) is already occupied")
		assert.Equal(t, 4, strings.Count(out.String(), "Your turn (X)"))
	})
}
