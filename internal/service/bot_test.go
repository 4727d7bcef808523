package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/tictactoe"
)

func mustParse(t *testing.T, notation string) entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(notation)
	require.NoError(t, err)
	return board
}

func TestBotService_BestMove(t *testing.T) {
	bot := NewBotService()

	t.Run("Empty board picks the first optimal cell", func(t *testing.T) {
		// When: asking for the opening move
		move, err := bot.BestMove(tictactoe.InitialPosition())

		// Then: every opening draws, so the first cell in scan order is kept
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
	})

	t.Run("Takes an immediate win", func(t *testing.T) {
		// Given: X to move with column 0 open and O threatening column 1
		board := mustParse(t, "XOX/XOO/___")
		require.Equal(t, entity.PlayerX, tictactoe.ActivePlayer(board))

		// When: asking for the best move
		move, err := bot.BestMove(board)

		// Then: X completes the column and wins
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 0}, move)

		next, err := tictactoe.ApplyMove(board, move)
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, tictactoe.WinningMark(next))
	})

	t.Run("O blocks an open row", func(t *testing.T) {
		// Given: X threatens the top row
		board := mustParse(t, "XX_/_O_/___")

		// When: O looks for its best move
		move, err := bot.BestMove(board)

		// Then: O blocks at the end of the row
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("Does not touch the caller's board", func(t *testing.T) {
		// Given: a mid-game position
		board := mustParse(t, "X_O/_X_/___")
		before := board

		// When: searching it
		_, err := bot.BestMove(board)

		// Then: the board is unchanged
		require.NoError(t, err)
		assert.Equal(t, before, board)
	})

	t.Run("Error on a won board", func(t *testing.T) {
		// Given: X has already won
		board := mustParse(t, "XXX/OO_/___")

		// When: asking for a move
		_, err := bot.BestMove(board)

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Error on a full board", func(t *testing.T) {
		_, err := bot.BestMove(mustParse(t, "XOX/XOO/OXX"))
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestBotService_Value(t *testing.T) {
	bot := NewBotService()

	t.Run("Empty board is a draw", func(t *testing.T) {
		assert.Equal(t, 0, bot.Value(tictactoe.InitialPosition()))
	})

	t.Run("Forced win for X", func(t *testing.T) {
		assert.Equal(t, 1, bot.Value(mustParse(t, "XOX/XOO/___")))
	})

	t.Run("Terminal board returns its score", func(t *testing.T) {
		assert.Equal(t, -1, bot.Value(mustParse(t, "XXO/XO_/O__")))
	})
}

func TestBotService_SelfPlayDraws(t *testing.T) {
	// Given: both sides played by the bot
	bot := NewBotService()
	board := tictactoe.InitialPosition()

	// When: playing until the game ends
	for !tictactoe.IsTerminal(board) {
		move, err := bot.BestMove(board)
		require.NoError(t, err)

		board, err = tictactoe.ApplyMove(board, move)
		require.NoError(t, err)
	}

	// Then: perfect play ends in a draw
	assert.Equal(t, 0, tictactoe.Score(board))
	assert.True(t, board.IsFull())
}

func TestBotService_NeverLoses(t *testing.T) {
	bot := NewBotService()

	// play explores every reply of the opponent while the bot answers with its best move.
	var play func(t *testing.T, board entity.Board, botMark entity.Mark)
	play = func(t *testing.T, board entity.Board, botMark entity.Mark) {
		if tictactoe.IsTerminal(board) {
			winner := tictactoe.WinningMark(board)
			require.True(t, winner == entity.EmptyCell || winner == botMark, "bot lost on %s", board)
			return
		}

		if tictactoe.ActivePlayer(board) == botMark {
			move, err := bot.BestMove(board)
			require.NoError(t, err)
			next, err := tictactoe.ApplyMove(board, move)
			require.NoError(t, err)
			play(t, next, botMark)
			return
		}

		for _, move := range tictactoe.LegalMoves(board) {
			next, err := tictactoe.ApplyMove(board, move)
			require.NoError(t, err)
			play(t, next, botMark)
		}
	}

	t.Run("As X", func(t *testing.T) {
		play(t, tictactoe.InitialPosition(), entity.PlayerX)
	})

	t.Run("As O", func(t *testing.T) {
		play(t, tictactoe.InitialPosition(), entity.PlayerO)
	})
}
