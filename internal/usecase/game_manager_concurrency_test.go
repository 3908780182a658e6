package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/repository"
	"github.com/rocketscienceinc/tictactoe-history/internal/service"
)

// slowGameRepo - widens the window between loading and storing a game.
type slowGameRepo struct {
	repository.GameRepository
	delay time.Duration
}

func (that *slowGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	time.Sleep(that.delay)
	return that.GameRepository.GetByID(ctx, id)
}

func newSlowManager(t *testing.T) *GameManager {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := &slowGameRepo{GameRepository: repository.NewMemoryGameRepository(), delay: 20 * time.Millisecond}

	return NewGameManager(logger, repo, service.NewSeededBotService(1))
}

func TestGameManager_ConcurrentMoves(t *testing.T) {
	ctx := context.Background()

	t.Run("Two overlapping moves both survive", func(t *testing.T) {
		// Given: a fresh local game
		manager := newSlowManager(t)
		game, err := manager.NewGame(ctx, entity.LocalType)
		require.NoError(t, err)

		// When: two moves on different cells arrive at the same time
		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := range errs {
			wg.Add(1)
			go func(cell int) {
				defer wg.Done()
				_, errs[cell] = manager.Play(ctx, game.ID, cell)
			}(i)
		}
		wg.Wait()

		// Then: both are accepted and both are on the stored board
		require.NoError(t, errs[0])
		require.NoError(t, errs[1])

		stored, err := manager.GetGame(ctx, game.ID)
		require.NoError(t, err)
		assert.Len(t, stored.History, 3)
		assert.Equal(t, 2, stored.CurrentMove)

		board := stored.CurrentBoard()
		assert.ElementsMatch(t, []string{entity.MarkX, entity.MarkO}, []string{board[0], board[1]})
	})

	t.Run("Every accepted move is kept", func(t *testing.T) {
		// Given: a fresh local game
		manager := newSlowManager(t)
		game, err := manager.NewGame(ctx, entity.LocalType)
		require.NoError(t, err)

		// When: a move on every cell arrives at once
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			accepted int
		)
		for cell := range entity.BoardSize {
			wg.Add(1)
			go func(cell int) {
				defer wg.Done()

				_, playErr := manager.Play(ctx, game.ID, cell)

				mu.Lock()
				defer mu.Unlock()
				if playErr == nil {
					accepted++
					return
				}
				assert.True(t, apperror.IsRuleViolation(playErr), playErr.Error())
			}(cell)
		}
		wg.Wait()

		// Then: the history holds exactly one entry per accepted move
		stored, err := manager.GetGame(ctx, game.ID)
		require.NoError(t, err)
		assert.Len(t, stored.History, 1+accepted)
		assert.Equal(t, accepted, stored.CurrentMove)
		assert.Len(t, stored.CurrentBoard().EmptyCells(), entity.BoardSize-accepted)
		assert.Empty(t, manager.locks.locks)
	})

	t.Run("Jumps and moves leave a valid game", func(t *testing.T) {
		// Given: a local game with two moves
		manager := newSlowManager(t)
		game, err := manager.NewGame(ctx, entity.LocalType)
		require.NoError(t, err)
		_, err = manager.Play(ctx, game.ID, 0)
		require.NoError(t, err)
		_, err = manager.Play(ctx, game.ID, 1)
		require.NoError(t, err)

		// When: jumps and moves overlap
		var wg sync.WaitGroup
		for i := range 4 {
			wg.Add(2)
			go func(move int) {
				defer wg.Done()
				_, jumpErr := manager.JumpTo(ctx, game.ID, move%3)
				if jumpErr != nil {
					assert.ErrorIs(t, jumpErr, apperror.ErrInvalidMove)
				}
			}(i)
			go func(cell int) {
				defer wg.Done()
				_, playErr := manager.Play(ctx, game.ID, cell)
				if playErr != nil {
					assert.True(t, apperror.IsRuleViolation(playErr), playErr.Error())
				}
			}(i + 4)
		}
		wg.Wait()

		// Then: the stored cursor points into the history and the board matches it
		stored, err := manager.GetGame(ctx, game.ID)
		require.NoError(t, err)
		assert.LessOrEqual(t, stored.CurrentMove, stored.LastMove())
		assert.Len(t, stored.CurrentBoard().EmptyCells(), entity.BoardSize-stored.CurrentMove)
	})
}

func TestGameLocks(t *testing.T) {
	t.Run("Serialises holders of the same id", func(t *testing.T) {
		// Given: a lock held for one game
		locks := newGameLocks()
		unlock := locks.lock("a")

		// When: another caller asks for the same game
		acquired := make(chan struct{})
		go func() {
			release := locks.lock("a")
			close(acquired)
			release()
		}()

		// Then: it waits until the first holder unlocks
		select {
		case <-acquired:
			t.Fatal("lock acquired while held")
		case <-time.After(20 * time.Millisecond):
		}

		unlock()
		<-acquired
	})

	t.Run("Different ids do not block", func(t *testing.T) {
		// Given: a lock held for one game
		locks := newGameLocks()
		unlockA := locks.lock("a")

		// When: another game is locked
		unlockB := locks.lock("b")

		// Then: both are held and released entries are dropped
		assert.Len(t, locks.locks, 2)
		unlockB()
		unlockA()
		assert.Empty(t, locks.locks)
	})
}
