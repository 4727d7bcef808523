package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/tictactoe"
)

// Scores returned by tictactoe.Score lie in [-1, 1]; these bounds sit just outside.
const (
	lowerBound = -2
	upperBound = 2
)

type BotService interface {
	// BestMove returns the optimal move for the side to play.
	BestMove(board entity.Board) (entity.Move, error)
	// Value returns the game-theoretic score of the position under optimal play.
	Value(board entity.Board) int
}

// botService plays perfect tic-tac-toe with a plain minimax search: no
// pruning and no transposition table.
type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

func (that *botService) BestMove(board entity.Board) (entity.Move, error) {
	if tictactoe.IsTerminal(board) {
		return entity.Move{}, fmt.Errorf("%w: no move on %s", apperror.ErrGameFinished, board)
	}

	player := tictactoe.ActivePlayer(board)
	maximizing := player == entity.PlayerX

	// work is a private copy; the search sets and clears cells on it in place.
	work := board

	var (
		bestMove  entity.Move
		bestScore = upperBound
	)
	if maximizing {
		bestScore = lowerBound
	}

	for _, move := range tictactoe.LegalMoves(board) {
		work[move.Row][move.Col] = player
		score := that.search(&work, opponent(player))
		work[move.Row][move.Col] = entity.EmptyCell

		// Only a strict improvement replaces the current choice, so the first
		// optimal move in scan order wins ties.
		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestMove, bestScore = move, score
		}
	}

	return bestMove, nil
}

func (that *botService) Value(board entity.Board) int {
	work := board
	return that.search(&work, tictactoe.ActivePlayer(board))
}

// search returns the minimax value of board with player to move. The board is
// restored to its original contents before search returns.
func (that *botService) search(board *entity.Board, player entity.Mark) int {
	if tictactoe.IsTerminal(*board) {
		return tictactoe.Score(*board)
	}

	maximizing := player == entity.PlayerX
	best := upperBound
	if maximizing {
		best = lowerBound
	}

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if board[row][col] != entity.EmptyCell {
				continue
			}

			board[row][col] = player
			score := that.search(board, opponent(player))
			board[row][col] = entity.EmptyCell

			if maximizing {
				best = max(best, score)
			} else {
				best = min(best, score)
			}
		}
	}

	return best
}

func opponent(mark entity.Mark) entity.Mark {
	if mark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
