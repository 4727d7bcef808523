package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
)

// InitialPosition - returns the empty board.
func InitialPosition() entity.Board {
	return entity.Board{}
}

// ActivePlayer - returns the mark that moves next. X always opens, so an even
// number of filled cells means it is X's turn.
func ActivePlayer(board entity.Board) entity.Mark {
	if board.Filled()%2 == 0 {
		return entity.PlayerX
	}
	return entity.PlayerO
}

// LegalMoves - returns every empty cell in row-major order.
func LegalMoves(board entity.Board) []entity.Move {
	moves := make([]entity.Move, 0, entity.BoardSize*entity.BoardSize)
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if board[row][col] == entity.EmptyCell {
				moves = append(moves, entity.Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// ApplyMove - returns the board that results from the active player taking move.
func ApplyMove(board entity.Board, move entity.Move) (entity.Board, error) {
	if err := validateMove(board, move); err != nil {
		return board, err
	}

	return board.With(move, ActivePlayer(board)), nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, move entity.Move) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidMove, move)
	}

	if board.Cell(move) != entity.EmptyCell {
		return fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidMove, move)
	}

	return nil
}

// WinningMark - returns the mark owning a complete line, or EmptyCell when
// there is none. Lines are checked in entity.WinLines order.
func WinningMark(board entity.Board) entity.Mark {
	for _, line := range entity.WinLines {
		a, b, c := board.Cell(line[0]), board.Cell(line[1]), board.Cell(line[2])
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}
	return entity.EmptyCell
}

func IsTerminal(board entity.Board) bool {
	return board.IsFull() || WinningMark(board) != entity.EmptyCell
}

// Score - returns 1 if X has won, -1 if O has won and 0 otherwise.
func Score(board entity.Board) int {
	switch WinningMark(board) {
	case entity.PlayerX:
		return 1
	case entity.PlayerO:
		return -1
	default:
		return 0
	}
}

// Outcome - returns "X" or "O" for a won game, "-" for a tie and "" while the
// game is still going.
func Outcome(board entity.Board) string {
	if winner := WinningMark(board); winner != entity.EmptyCell {
		return string(winner)
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return ""
	}

	return entity.PlayerTie
}
