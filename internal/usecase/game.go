package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/tictactoe"
)

type GameUseCase interface {
	Analyze(board entity.Board) (*Analysis, error)
	SelfPlay(board entity.Board) ([]entity.Board, error)
}

type botService interface {
	BestMove(board entity.Board) (entity.Move, error)
	Value(board entity.Board) int
}

// Analysis describes a position: who moves, what perfect play yields and the
// move that achieves it. BestMove is nil once the game is over.
type Analysis struct {
	Board    entity.Board `json:"board"`
	Turn     entity.Mark  `json:"turn"`
	Value    int          `json:"value"`
	Outcome  string       `json:"outcome"`
	BestMove *entity.Move `json:"best_move,omitempty"`
}

type gameUseCase struct {
	logger     *slog.Logger
	botService botService
}

func NewGameUseCase(logger *slog.Logger, botService botService) GameUseCase {
	return &gameUseCase{
		logger:     logger.With("component", "game"),
		botService: botService,
	}
}

func (that *gameUseCase) Analyze(board entity.Board) (*Analysis, error) {
	analysis := &Analysis{
		Board:   board,
		Turn:    tictactoe.ActivePlayer(board),
		Value:   that.botService.Value(board),
		Outcome: tictactoe.Outcome(board),
	}

	if tictactoe.IsTerminal(board) {
		return analysis, nil
	}

	move, err := that.botService.BestMove(board)
	if err != nil {
		return nil, fmt.Errorf("failed to find best move: %w", err)
	}
	analysis.BestMove = &move

	that.logger.Debug("position analysed", "board", board.String(), "value", analysis.Value, "move", move.String())

	return analysis, nil
}

// SelfPlay - plays the best move for both sides until the game ends and
// returns every position, starting with board.
func (that *gameUseCase) SelfPlay(board entity.Board) ([]entity.Board, error) {
	positions := []entity.Board{board}

	for !tictactoe.IsTerminal(board) {
		move, err := that.botService.BestMove(board)
		if err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}

		board, err = tictactoe.ApplyMove(board, move)
		if err != nil {
			return nil, fmt.Errorf("failed to make turn: %w", err)
		}

		positions = append(positions, board)
	}

	that.logger.Debug("self play finished", "turns", len(positions)-1, "outcome", tictactoe.Outcome(board))

	return positions, nil
}
