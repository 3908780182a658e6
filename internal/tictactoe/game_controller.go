package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

const (
	StateOngoing = "ongoing"
	StateWon     = "won"
	StateDraw    = "draw"
)

// WinLines - rows, columns and diagonals. Order decides which line wins when several match.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Status struct {
	State  string      `json:"state"`
	Winner entity.Mark `json:"winner,omitempty"`
	Line   []int       `json:"line,omitempty"`
	Next   entity.Mark `json:"next,omitempty"`
}

// CalculateWinner - returns the first line holding three equal marks.
func CalculateWinner(board entity.Board) ([3]int, bool) {
	for _, line := range WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return line, true
		}
	}

	return [3]int{}, false
}

// IsDraw - no winning line and no empty cell left.
func IsDraw(board entity.Board) bool {
	if _, ok := CalculateWinner(board); ok {
		return false
	}

	return !board.HasEmptyCell()
}

func IsFinished(board entity.Board) bool {
	_, won := CalculateWinner(board)

	return won || !board.HasEmptyCell()
}

func CoordsOf(cell int) entity.Coords {
	return entity.Coords{
		Row: cell / 3,
		Col: cell % 3,
	}
}

// NextMark - X moves on even cursor positions.
func NextMark(move int) entity.Mark {
	if move%2 == 0 {
		return entity.MarkX
	}

	return entity.MarkO
}

// GameStatus - evaluates the board selected by the cursor.
func GameStatus(game *entity.Game) Status {
	board := game.CurrentBoard()

	if line, ok := CalculateWinner(board); ok {
		return Status{
			State:  StateWon,
			Winner: board[line[0]],
			Line:   line[:],
		}
	}

	if !board.HasEmptyCell() {
		return Status{State: StateDraw}
	}

	return Status{
		State: StateOngoing,
		Next:  NextMark(game.CurrentMove),
	}
}
