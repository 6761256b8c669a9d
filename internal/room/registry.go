package room

import (
	"fmt"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
	"github.com/rocketscienceinc/gameroom-backend/internal/game"
)

// Registry maps player names to the seats of one room's engine.
// It is guarded by the owning room's lock.
type Registry struct {
	engine game.Engine
}

func NewRegistry(engine game.Engine) *Registry {
	return &Registry{engine: engine}
}

// Add seats a new player or, when the name is already seated, rebinds its connection.
// The returned flag reports a rebind.
func (that *Registry) Add(name string, conn entity.Conn) (*entity.Player, bool, error) {
	if name == "" {
		return nil, false, apperror.ErrInvalidPlayerName
	}

	if player, err := that.Get(name); err == nil {
		player.Bind(conn)
		return player, true, nil
	}

	player := entity.NewPlayer(name, conn)
	if err := that.engine.AddPlayer(player); err != nil {
		return nil, false, fmt.Errorf("failed to seat player %s: %w", name, err)
	}

	return player, false, nil
}

func (that *Registry) Players() [2]*entity.Player {
	return that.engine.Players()
}

func (that *Registry) Get(name string) (*entity.Player, error) {
	for _, player := range that.engine.Players() {
		if player != nil && player.Name == name {
			return player, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", apperror.ErrPlayerNotFound, name)
}

// Unbind clears the player's connection only if conn is still the bound one.
func (that *Registry) Unbind(name string, conn entity.Conn) bool {
	player, err := that.Get(name)
	if err != nil {
		return false
	}

	return player.Unbind(conn)
}

// Connections returns the bound connections in seat order.
func (that *Registry) Connections() []entity.Conn {
	var conns []entity.Conn

	for _, player := range that.engine.Players() {
		if player == nil || player.Conn() == nil {
			continue
		}

		conns = append(conns, player.Conn())
	}

	return conns
}

func (that *Registry) Count() int {
	count := 0

	for _, player := range that.engine.Players() {
		if player != nil {
			count++
		}
	}

	return count
}
