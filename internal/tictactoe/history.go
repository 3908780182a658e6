package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

// Play - places mark on the board selected by the cursor. Entries after the cursor are
// discarded before the new snapshot is appended. A rejected move leaves the game untouched.
func Play(game *entity.Game, cell int, mark entity.Mark) error {
	if err := validateMove(game, cell, mark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	next := game.CurrentBoard()
	next[cell] = mark
	coords := CoordsOf(cell)

	history := make([]entity.HistoryEntry, game.CurrentMove+1, game.CurrentMove+2)
	copy(history, game.History[:game.CurrentMove+1])

	game.History = append(history, entity.HistoryEntry{
		Board:  next,
		Coords: &coords,
	})
	game.CurrentMove = game.LastMove()

	return nil
}

// JumpTo - moves the cursor without touching the history.
func JumpTo(game *entity.Game, move int) error {
	if move < 0 || move > game.LastMove() {
		return fmt.Errorf("%w: move %d", apperror.ErrInvalidMove, move)
	}

	game.CurrentMove = move

	return nil
}

// validateMove - checks if the move is valid against the cursor's board.
func validateMove(game *entity.Game, cell int, mark entity.Mark) error {
	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !entity.IsValidMark(mark) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	board := game.CurrentBoard()

	if IsFinished(board) {
		return apperror.ErrGameFinished
	}

	if board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// MoveMark - the mark placed by the given move; move 0 is the game start.
func MoveMark(move int) entity.Mark {
	if move%2 == 1 {
		return entity.MarkX
	}

	return entity.MarkO
}

// Describe - human readable label of a history entry.
func Describe(game *entity.Game, move int) string {
	if move == 0 {
		return "Go to game start"
	}

	var where string
	if coords := game.History[move].Coords; coords != nil {
		where = fmt.Sprintf("(%d, %d)", coords.Row, coords.Col)
	}

	if move == game.LastMove() {
		return fmt.Sprintf("At move #%d: %s on %s", move, MoveMark(move), where)
	}

	return fmt.Sprintf("Go to move #%d: %s on %s", move, MoveMark(move), where)
}
