package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	MakeTurn(game *entity.Game) error
	ShouldMove(game *entity.Game) bool
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	bot      botService

	locks *gameLocks
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		bot:      bot,

		locks: newGameLocks(),
	}
}

func (that *GameManager) NewGame(ctx context.Context, gameType string) (*entity.Game, error) {
	if gameType == "" {
		gameType = entity.LocalType
	}

	game := entity.NewGame(uuid.NewString(), gameType)
	if !game.IsValidType() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidType, gameType)
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "type", game.Type)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// Play - places the mark of whoever moves at the cursor. A rejected move returns the
// unchanged game together with the reason. Load, play and store run under the game's lock.
func (that *GameManager) Play(ctx context.Context, id string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "Play", "gameID", id)

	unlock := that.locks.lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.Play(game, cell, tictactoe.NextMark(game.CurrentMove)); err != nil {
		if apperror.IsRuleViolation(err) {
			log.Debug("move rejected", "cell", cell, "reason", err)
			return game, err
		}

		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if that.bot.ShouldMove(game) {
		if err = that.bot.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if status := tictactoe.GameStatus(game); status.State != tictactoe.StateOngoing {
		log.Info("game finished", "state", status.State, "winner", status.Winner)
	}

	return game, nil
}

// JumpTo - moves the cursor of the stored game.
func (that *GameManager) JumpTo(ctx context.Context, id string, move int) (*entity.Game, error) {
	unlock := that.locks.lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.JumpTo(game, move); err != nil {
		return game, err
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.locks.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
