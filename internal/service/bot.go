package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const BotMark = entity.MarkO

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(game *entity.Game) error
	ShouldMove(game *entity.Game) bool
}

type botService struct {
	intn func(n int) int
}

func NewBotService() BotService {
	return &botService{
		intn: rand.Intn, //nolint: gosec // it's ok
	}
}

// NewSeededBotService - bot with a reproducible choice of cells.
func NewSeededBotService(seed int64) BotService {
	return &botService{
		intn: rand.New(rand.NewSource(seed)).Intn, //nolint: gosec // it's ok
	}
}

// ShouldMove - true when the cursor's board is still open and it is the bot's turn.
func (that *botService) ShouldMove(game *entity.Game) bool {
	if !game.IsWithBot() {
		return false
	}

	status := tictactoe.GameStatus(game)

	return status.State == tictactoe.StateOngoing && status.Next == BotMark
}

func (that *botService) MakeTurn(game *entity.Game) error {
	board := game.CurrentBoard()

	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return ErrNoAvailableMoves
	}

	chosenCell := availableCells[that.intn(len(availableCells))]

	if err := tictactoe.Play(game, chosenCell, BotMark); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
