package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidMove  = errors.New("invalid move number")
	ErrInvalidMark  = errors.New("invalid mark")
	ErrInvalidType  = errors.New("invalid game type")
	ErrGameNotFound = errors.New("game not found")
)

// IsRuleViolation - reports whether err is a rejected move; the game it came with is unchanged.
func IsRuleViolation(err error) bool {
	return errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrGameFinished) ||
		errors.Is(err, ErrInvalidCell) ||
		errors.Is(err, ErrInvalidMark) ||
		errors.Is(err, ErrInvalidMove)
}
