package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// Then: it should be finished and not ongoing
		assert.True(t, game.IsFinished())
		assert.False(t, game.IsOngoing())
	})

	t.Run("IsDraw requires a finished game without winner", func(t *testing.T) {
		assert.True(t, (&Game{Status: StatusFinished}).IsDraw())
		assert.False(t, (&Game{Status: StatusFinished, Winner: 1}).IsDraw())
		assert.False(t, (&Game{Status: StatusOngoing}).IsDraw())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmOngoingState()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}

func TestGame_RecordMove(t *testing.T) {
	x := NewPlayer(1, MarkX)
	o := NewPlayer(2, MarkO)

	t.Run("Successful move passes the turn", func(t *testing.T) {
		// Given: a new game on a 3x3 board
		board, err := NewBoard(3)
		require.NoError(t, err)
		game := NewGame("123", board, x)

		// When: X plays 1,1
		require.NoError(t, board.Set(1, 1, x))
		require.NoError(t, game.RecordMove(board, x, Coord{Row: 1, Col: 1}, o))

		// Then: the snapshot reflects the move and it is O's turn
		expected := &Game{
			ID:     "123",
			Size:   3,
			Board:  [][]string{{"", "", ""}, {"", MarkX, ""}, {"", "", ""}},
			Turn:   2,
			Winner: NoWinner,
			Status: StatusOngoing,
			Moves:  []Move{{Player: 1, Coord: Coord{Row: 1, Col: 1}}},
		}
		require.Equal(t, expected, game)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		board, err := NewBoard(1)
		require.NoError(t, err)
		game := NewGame("1", board, o)

		require.NoError(t, board.Set(0, 0, o))
		require.NoError(t, game.RecordMove(board, o, Coord{}, x))

		assert.True(t, game.IsFinished())
		assert.Equal(t, 2, game.Winner)
		assert.Equal(t, 0, game.Turn)
	})

	t.Run("Full board without winner is a draw", func(t *testing.T) {
		// Given: a full 3x3 board with no complete line
		board, err := NewBoard(3)
		require.NoError(t, err)
		layout := [3][3]*Player{
			{x, o, x},
			{x, o, o},
			{o, x, x},
		}
		for row := range layout {
			for col, player := range layout[row] {
				require.NoError(t, board.Set(row, col, player))
			}
		}
		game := NewGame("tie", board, x)

		// When: the last move is recorded
		require.NoError(t, game.RecordMove(board, x, Coord{Row: 2, Col: 2}, o))

		// Then: the game is a draw
		assert.True(t, game.IsDraw())
	})

	t.Run("Recording after the end fails", func(t *testing.T) {
		board, err := NewBoard(3)
		require.NoError(t, err)
		game := &Game{Status: StatusFinished}

		err = game.RecordMove(board, x, Coord{}, o)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Empty(t, game.Moves)
	})
}
