package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
)

func TestBoard_With(t *testing.T) {
	t.Run("Returns a new board and leaves the original untouched", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: a mark is placed through With
		next := board.With(Move{Row: 1, Col: 2}, PlayerX)

		// Then: only the copy carries the mark
		assert.Equal(t, PlayerX, next.Cell(Move{Row: 1, Col: 2}))
		assert.Equal(t, EmptyCell, board.Cell(Move{Row: 1, Col: 2}))
		assert.Equal(t, Board{}, board)
	})
}

func TestBoard_Counts(t *testing.T) {
	// Given: a board with three X and two O marks
	board := Board{
		{PlayerX, PlayerO, PlayerX},
		{EmptyCell, PlayerO, EmptyCell},
		{PlayerX, EmptyCell, EmptyCell},
	}

	// Then: the counters agree with the layout
	assert.Equal(t, 3, board.Count(PlayerX))
	assert.Equal(t, 2, board.Count(PlayerO))
	assert.Equal(t, 4, board.Count(EmptyCell))
	assert.Equal(t, 5, board.Filled())
	assert.False(t, board.IsFull())
}

func TestBoard_String(t *testing.T) {
	// Given: a partially filled board
	board := Board{
		{PlayerX, PlayerO, PlayerX},
		{PlayerX, PlayerO, PlayerO},
		{EmptyCell, EmptyCell, EmptyCell},
	}

	// When: rendering it
	s := board.String()

	// Then: rows are joined with slashes and empty cells are underscores
	assert.Equal(t, "XOX/XOO/___", s)
}

func TestParseBoard(t *testing.T) {
	t.Run("Parses slash separated rows", func(t *testing.T) {
		// When: parsing a board in the rendered notation
		board, err := ParseBoard("XOX/XOO/___")

		// Then: every cell is placed row by row
		require.NoError(t, err)
		expected := Board{
			{PlayerX, PlayerO, PlayerX},
			{PlayerX, PlayerO, PlayerO},
			{EmptyCell, EmptyCell, EmptyCell},
		}
		assert.Equal(t, expected, board)
	})

	t.Run("Accepts alternative empty symbols and lower case", func(t *testing.T) {
		// When: parsing a board without separators
		board, err := ParseBoard("x.-o_____")

		// Then: the marks are normalised
		require.NoError(t, err)
		assert.Equal(t, PlayerX, board[0][0])
		assert.Equal(t, PlayerO, board[1][0])
		assert.Equal(t, 7, board.Count(EmptyCell))
	})

	t.Run("Round trips through String", func(t *testing.T) {
		// Given: a rendered board
		const notation = "X_O/_X_/O__"

		// When: parsing and rendering again
		board, err := ParseBoard(notation)

		// Then: the notation is unchanged
		require.NoError(t, err)
		assert.Equal(t, notation, board.String())
	})

	t.Run("Rejects a wrong number of cells", func(t *testing.T) {
		// When: parsing a short board
		_, err := ParseBoard("XO/___")

		// Then: ErrInvalidBoard is returned
		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Rejects unknown symbols", func(t *testing.T) {
		// When: parsing a board with a foreign symbol
		_, err := ParseBoard("XO?/___/___")

		// Then: ErrInvalidBoard is returned
		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Rejects an unreachable mark balance", func(t *testing.T) {
		// When: O has moved more often than X
		_, err := ParseBoard("OO_/X__/___")

		// Then: ErrInvalidBoard is returned
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
		assert.Contains(t, err.Error(), "unreachable")
	})
}
