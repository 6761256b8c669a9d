package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStartedGame(t *testing.T) *Game {
	t.Helper()

	game := NewGame()
	require.NoError(t, game.AddPlayer(entity.NewPlayer("alice", nil)))
	require.NoError(t, game.AddPlayer(entity.NewPlayer("bob", nil)))

	return game
}

type turn struct {
	player   string
	row, col int
}

func play(t *testing.T, game *Game, turns ...turn) {
	t.Helper()

	for _, m := range turns {
		require.NoError(t, game.Move(m.player, entity.Move{Row: m.row, Col: m.col}))
	}
}

func TestGame_AddPlayer(t *testing.T) {
	t.Run("First player gets X and waits", func(t *testing.T) {
		// Given: a new game
		game := NewGame()
		alice := entity.NewPlayer("alice", nil)

		// When: the first player joins
		err := game.AddPlayer(alice)

		// Then: the player holds X and the game has not started
		require.NoError(t, err)
		assert.Equal(t, entity.MarkerX, alice.Marker)
		assert.Equal(t, entity.PlayerWaiting, alice.State)
		assert.Empty(t, game.NextMove())
	})

	t.Run("Second player gets O and starts the game", func(t *testing.T) {
		// Given: a game with one player
		game := NewGame()
		alice := entity.NewPlayer("alice", nil)
		bob := entity.NewPlayer("bob", nil)
		require.NoError(t, game.AddPlayer(alice))

		// When: the second player joins
		err := game.AddPlayer(bob)

		// Then: both players are active and the first player moves first
		require.NoError(t, err)
		assert.Equal(t, entity.MarkerO, bob.Marker)
		assert.Equal(t, entity.PlayerActive, alice.State)
		assert.Equal(t, entity.PlayerActive, bob.State)
		assert.Equal(t, "alice", game.NextMove())
	})

	t.Run("Third player is rejected", func(t *testing.T) {
		// Given: a full game
		game := newStartedGame(t)

		// When: a third player joins
		err := game.AddPlayer(entity.NewPlayer("carol", nil))

		// Then: ErrRoomFull is returned and the seats are unchanged
		require.ErrorIs(t, err, apperror.ErrRoomFull)
		players := game.Players()
		assert.Equal(t, "alice", players[0].Name)
		assert.Equal(t, "bob", players[1].Name)
	})
}

func TestGame_Move(t *testing.T) {
	t.Run("Alice wins on the top row", func(t *testing.T) {
		// Given: alice and bob in a started game
		game := newStartedGame(t)

		// When: alice completes the top row
		play(t, game,
			turn{"alice", 0, 0},
			turn{"bob", 1, 1},
			turn{"alice", 0, 1},
			turn{"bob", 2, 2},
			turn{"alice", 0, 2},
		)

		// Then: alice is the winner and nobody moves next
		view := game.View()
		assert.True(t, view.HasWinner)
		assert.True(t, view.GameOver)
		assert.False(t, view.IsDraw)
		assert.Equal(t, "alice", view.Winner)
		assert.Empty(t, view.NextMove)
		assert.Equal(t, entity.Board{
			{"X", "X", "X"},
			{"", "O", ""},
			{"", "", "O"},
		}, view.Board)
	})

	t.Run("Column win for the second player", func(t *testing.T) {
		// Given: a started game
		game := newStartedGame(t)

		// When: bob fills the middle column
		play(t, game,
			turn{"alice", 0, 0},
			turn{"bob", 0, 1},
			turn{"alice", 2, 0},
			turn{"bob", 1, 1},
			turn{"alice", 2, 2},
			turn{"bob", 2, 1},
		)

		// Then: bob wins
		assert.True(t, game.GameOver())
		assert.Equal(t, "bob", game.View().Winner)
	})

	t.Run("Anti diagonal win", func(t *testing.T) {
		// Given: a started game
		game := newStartedGame(t)

		// When: alice fills the anti diagonal
		play(t, game,
			turn{"alice", 0, 2},
			turn{"bob", 0, 0},
			turn{"alice", 1, 1},
			turn{"bob", 0, 1},
			turn{"alice", 2, 0},
		)

		// Then: alice wins
		view := game.View()
		assert.True(t, view.HasWinner)
		assert.Equal(t, "alice", view.Winner)
	})

	t.Run("Draw after nine moves", func(t *testing.T) {
		// Given: a started game
		game := newStartedGame(t)

		// When: all nine cells are filled without a line
		play(t, game,
			turn{"alice", 0, 0},
			turn{"bob", 0, 1},
			turn{"alice", 0, 2},
			turn{"bob", 1, 1},
			turn{"alice", 1, 0},
			turn{"bob", 1, 2},
			turn{"alice", 2, 1},
			turn{"bob", 2, 0},
			turn{"alice", 2, 2},
		)

		// Then: the game is a draw
		view := game.View()
		assert.True(t, view.IsDraw)
		assert.True(t, view.GameOver)
		assert.False(t, view.HasWinner)
		assert.Empty(t, view.Winner)
		assert.Empty(t, view.NextMove)
	})

	t.Run("Out of turn move leaves the board unchanged", func(t *testing.T) {
		// Given: a started game where alice moves first
		game := newStartedGame(t)
		before := game.View()

		// When: bob tries to move
		err := game.Move("bob", entity.Move{Row: 0, Col: 0})

		// Then: the move is illegal and nothing changes
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, before, game.View())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: alice marked the centre
		game := newStartedGame(t)
		play(t, game, turn{"alice", 1, 1})
		before := game.View()

		// When: bob moves to the same cell
		err := game.Move("bob", entity.Move{Row: 1, Col: 1})

		// Then: the move is rejected and it is still bob's turn
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, game.View())
		assert.Equal(t, "bob", game.NextMove())
	})

	t.Run("Error on cell out of range", func(t *testing.T) {
		// Given: a started game
		game := newStartedGame(t)

		// When: alice moves outside the board
		err := game.Move("alice", entity.Move{Row: 3, Col: -1})

		// Then: the move is rejected
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
		assert.Equal(t, "alice", game.NextMove())
	})

	t.Run("Error when the game is not started", func(t *testing.T) {
		// Given: a game with a single player
		game := NewGame()
		require.NoError(t, game.AddPlayer(entity.NewPlayer("alice", nil)))

		// When: the player moves
		err := game.Move("alice", entity.Move{Row: 0, Col: 0})

		// Then: ErrGameIsNotStarted is returned
		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Error on unknown player", func(t *testing.T) {
		// Given: a started game
		game := newStartedGame(t)

		// When: a stranger moves
		err := game.Move("mallory", entity.Move{Row: 0, Col: 0})

		// Then: ErrPlayerNotFound is returned
		require.ErrorIs(t, err, apperror.ErrPlayerNotFound)
		assert.NotErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("Error after the game is finished", func(t *testing.T) {
		// Given: a won game
		game := newStartedGame(t)
		play(t, game,
			turn{"alice", 0, 0},
			turn{"bob", 1, 0},
			turn{"alice", 0, 1},
			turn{"bob", 1, 1},
			turn{"alice", 0, 2},
		)

		// When: bob moves again
		err := game.Move("bob", entity.Move{Row: 2, Col: 2})

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_View(t *testing.T) {
	t.Run("Empty seat renders as zero value", func(t *testing.T) {
		// Given: a game with one player
		game := NewGame()
		require.NoError(t, game.AddPlayer(entity.NewPlayer("alice", nil)))

		// When: the view is taken
		view := game.View()

		// Then: two seats are listed and the second is empty
		require.Len(t, view.Players, 2)
		assert.Equal(t, entity.PlayerView{Name: "alice", State: entity.PlayerWaiting}, view.Players[0])
		assert.Equal(t, entity.PlayerView{}, view.Players[1])
		assert.Equal(t, entity.Board{}, view.Board)
	})

	t.Run("View is a copy of the board", func(t *testing.T) {
		// Given: a started game and a view taken before any move
		game := newStartedGame(t)
		view := game.View()

		// When: a move is made
		play(t, game, turn{"alice", 0, 0})

		// Then: the earlier view is unchanged
		assert.Equal(t, "", view.Board[0][0])
		assert.Equal(t, "X", game.View().Board[0][0])
	})
}
