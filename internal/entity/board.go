package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
)

// BoardSize is the side length of the grid.
const BoardSize = 3

type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie      = "-"

	EmptyCell Mark = ""
)

// WinLines lists every line of three cells in scan order: rows, then columns, then diagonals.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Move addresses a single cell of the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Board is a value type: assigning or passing it copies the grid, so a Board
// handed to another function can never be changed behind the caller's back.
type Board [BoardSize][BoardSize]Mark

func (that Board) Cell(move Move) Mark {
	return that[move.Row][move.Col]
}

// With returns a copy of the board with the cell at move set to mark.
func (that Board) With(move Move, mark Mark) Board {
	that[move.Row][move.Col] = mark
	return that
}

func (that Board) Count(mark Mark) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}
	return count
}

func (that Board) Filled() int {
	return BoardSize*BoardSize - that.Count(EmptyCell)
}

func (that Board) IsFull() bool {
	return that.Count(EmptyCell) == 0
}

// String renders the board as rows joined with "/", e.g. "XOX/XOO/___".
func (that Board) String() string {
	var sb strings.Builder
	for i, row := range that {
		if i > 0 {
			sb.WriteByte('/')
		}
		for _, cell := range row {
			if cell == EmptyCell {
				sb.WriteByte('_')
				continue
			}
			sb.WriteString(string(cell))
		}
	}
	return sb.String()
}

// ParseBoard reads the notation produced by Board.String. Empty cells may be
// written as '_', '.' or '-'; row separators are optional.
func ParseBoard(s string) (Board, error) {
	var board Board

	cells := strings.ReplaceAll(strings.TrimSpace(s), "/", "")
	if len(cells) != BoardSize*BoardSize {
		return Board{}, fmt.Errorf("%w: expected %d cells, got %q", apperror.ErrInvalidBoard, BoardSize*BoardSize, s)
	}

	for i := 0; i < len(cells); i++ {
		var mark Mark
		switch cells[i] {
		case 'X', 'x':
			mark = PlayerX
		case 'O', 'o':
			mark = PlayerO
		case '_', '.', '-':
			mark = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: unknown symbol %q", apperror.ErrInvalidBoard, cells[i])
		}
		board[i/BoardSize][i%BoardSize] = mark
	}

	// X always moves first, so it is either level with O or one mark ahead.
	if diff := board.Count(PlayerX) - board.Count(PlayerO); diff < 0 || diff > 1 {
		return Board{}, fmt.Errorf("%w: unreachable position %s", apperror.ErrInvalidBoard, board)
	}

	return board, nil
}
