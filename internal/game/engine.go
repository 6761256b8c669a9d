package game

import "github.com/rocketscienceinc/gameroom-backend/internal/entity"

// Engine is a two-player turn-based board game.
// Implementations are not safe for concurrent use; the owning room serializes access.
type Engine interface {
	// AddPlayer seats the player in the first free slot and assigns its marker.
	AddPlayer(player *entity.Player) error
	// Move applies a move for playerName. A rejected move leaves the state unchanged.
	Move(playerName string, move entity.Move) error

	Players() [2]*entity.Player
	NextMove() string
	GameOver() bool

	View() entity.GameView
}

// Factory builds a fresh engine for a new room.
type Factory func() Engine
