package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playAll - plays the cells in order, alternating marks from the cursor.
func playAll(t *testing.T, game *entity.Game, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		require.NoError(t, Play(game, cell, NextMark(game.CurrentMove)))
	}
}

func TestPlay(t *testing.T) {
	t.Run("Appends snapshot and advances cursor", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123", entity.LocalType)

		// When: X plays the centre
		err := Play(game, 4, x)

		// Then: a second snapshot holds the mark and the cursor points at it
		require.NoError(t, err)
		require.Len(t, game.History, 2)
		assert.Equal(t, 1, game.CurrentMove)
		assert.Equal(t, entity.Board{e, e, e, e, x, e, e, e, e}, game.History[1].Board)
		assert.Equal(t, &entity.Coords{Row: 1, Col: 1}, game.History[1].Coords)

		// And: the start snapshot is untouched
		assert.Equal(t, entity.Board{}, game.History[0].Board)
		assert.Nil(t, game.History[0].Coords)
	})

	t.Run("Occupied cell is a no-op", func(t *testing.T) {
		// Given: a game where X holds cell 0
		game := entity.NewGame("123", entity.LocalType)
		playAll(t, game, 0)

		// When: O tries the same cell
		err := Play(game, 0, o)

		// Then: ErrCellOccupied is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.Len(t, game.History, 2)
		assert.Equal(t, 1, game.CurrentMove)
		assert.Equal(t, entity.Board{x, e, e, e, e, e, e, e, e}, game.CurrentBoard())
	})

	t.Run("Move after a win is a no-op", func(t *testing.T) {
		// Given: X completed the top row
		game := entity.NewGame("123", entity.LocalType)
		playAll(t, game, 0, 3, 1, 4, 2)
		before := game.CurrentBoard()

		// When: O tries to play on
		err := Play(game, 8, o)

		// Then: ErrGameFinished is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Len(t, game.History, 6)
		assert.Equal(t, 5, game.CurrentMove)
		assert.Equal(t, before, game.CurrentBoard())
	})

	t.Run("Invalid cell index is rejected", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123", entity.LocalType)

		// When: out of range indices are played
		errHigh := Play(game, 9, x)
		errLow := Play(game, -1, x)

		// Then: ErrInvalidCell is returned and history is unchanged
		require.ErrorIs(t, errHigh, apperror.ErrInvalidCell)
		require.ErrorIs(t, errLow, apperror.ErrInvalidCell)
		assert.Len(t, game.History, 1)
	})

	t.Run("Invalid mark is rejected", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123", entity.LocalType)

		// When: an empty mark is played
		err := Play(game, 0, entity.EmptyCell)

		// Then: ErrInvalidMark is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.Len(t, game.History, 1)
	})

	t.Run("Full board is finished", func(t *testing.T) {
		// Given: a drawn game
		game := entity.NewGame("123", entity.LocalType)
		playAll(t, game, 0, 1, 2, 4, 3, 5, 7, 6, 8)
		require.True(t, IsDraw(game.CurrentBoard()))

		// When: another move is attempted
		err := Play(game, 0, o)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Len(t, game.History, 10)
	})
}

func TestJumpTo(t *testing.T) {
	t.Run("Moves cursor without touching history", func(t *testing.T) {
		// Given: a game with three moves
		game := entity.NewGame("123", entity.LocalType)
		playAll(t, game, 0, 4, 8)
		history := append([]entity.HistoryEntry(nil), game.History...)

		// When: jumping to move 1
		err := JumpTo(game, 1)

		// Then: the cursor moved and the history is unchanged
		require.NoError(t, err)
		assert.Equal(t, 1, game.CurrentMove)
		assert.Equal(t, history, game.History)
		assert.Equal(t, o, GameStatus(game).Next)
	})

	t.Run("Out of range move is rejected", func(t *testing.T) {
		// Given: a game with one move
		game := entity.NewGame("123", entity.LocalType)
		playAll(t, game, 0)

		// When: jumping past the end and before the start
		errHigh := JumpTo(game, 2)
		errLow := JumpTo(game, -1)

		// Then: ErrInvalidMove is returned and the cursor stays put
		require.ErrorIs(t, errHigh, apperror.ErrInvalidMove)
		require.ErrorIs(t, errLow, apperror.ErrInvalidMove)
		assert.Equal(t, 1, game.CurrentMove)
	})

	t.Run("Play after jump truncates the future", func(t *testing.T) {
		for k := 0; k <= 4; k++ {
			// Given: a game with five moves
			game := entity.NewGame("123", entity.LocalType)
			playAll(t, game, 0, 1, 2, 3, 4)

			// When: jumping to move k and playing a free cell
			require.NoError(t, JumpTo(game, k))
			board := game.CurrentBoard()
			cell := board.EmptyCells()[0]
			require.NoError(t, Play(game, cell, NextMark(game.CurrentMove)))

			// Then: history has length k+2 and the cursor is at the end
			assert.Len(t, game.History, k+2, "jump to %d", k)
			assert.Equal(t, k+1, game.CurrentMove)
		}
	})

	t.Run("Branching keeps earlier snapshots", func(t *testing.T) {
		// Given: a game with moves on cells 0, 1, 2
		game := entity.NewGame("123", entity.LocalType)
		playAll(t, game, 0, 1, 2)
		first := game.History[1]

		// When: jumping to move 1 and O plays cell 8
		require.NoError(t, JumpTo(game, 1))
		require.NoError(t, Play(game, 8, o))

		// Then: the first move survives and cell 1 is free again
		require.Len(t, game.History, 3)
		assert.Equal(t, first, game.History[1])
		assert.Equal(t, entity.Board{x, e, e, e, e, e, e, e, o}, game.CurrentBoard())
	})

	t.Run("Jumping back to a winning snapshot still blocks moves", func(t *testing.T) {
		// Given: X won and the cursor is moved back to the winning snapshot
		game := entity.NewGame("123", entity.LocalType)
		playAll(t, game, 0, 3, 1, 4, 2)
		require.NoError(t, JumpTo(game, 0))
		require.NoError(t, JumpTo(game, 5))

		// When: O tries to play
		err := Play(game, 8, o)

		// Then: the move is rejected
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestDescribe(t *testing.T) {
	// Given: a game with three moves
	game := entity.NewGame("123", entity.LocalType)
	playAll(t, game, 4, 0, 8)

	// Then: labels follow the move number and position
	assert.Equal(t, "Go to game start", Describe(game, 0))
	assert.Equal(t, "Go to move #1: X on (1, 1)", Describe(game, 1))
	assert.Equal(t, "Go to move #2: O on (0, 0)", Describe(game, 2))
	assert.Equal(t, "At move #3: X on (2, 2)", Describe(game, 3))
}

func TestMoveMark(t *testing.T) {
	assert.Equal(t, x, MoveMark(1))
	assert.Equal(t, o, MoveMark(2))
	assert.Equal(t, x, MoveMark(3))
}
