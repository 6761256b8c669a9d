package room

import (
	"sync"

	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
	"github.com/rocketscienceinc/gameroom-backend/internal/game"
)

// Room is a named game session. All state access goes through mu;
// fanout orders broadcasts so a newer snapshot never precedes an older one.
type Room struct {
	name string

	mu       sync.Mutex
	engine   game.Engine
	registry *Registry

	fanout sync.Mutex
}

func New(name string, engine game.Engine) *Room {
	return &Room{
		name:     name,
		engine:   engine,
		registry: NewRegistry(engine),
	}
}

func (that *Room) Name() string {
	return that.name
}

// Join adds the player or rebinds its connection. Reports whether it was a reconnect.
func (that *Room) Join(playerName string, conn entity.Conn) (bool, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	_, rebound, err := that.registry.Add(playerName, conn)

	return rebound, err
}

func (that *Room) Move(playerName string, move entity.Move) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.engine.Move(playerName, move)
}

// Leave unbinds conn from the player's seat. The seat itself is kept.
func (that *Room) Leave(playerName string, conn entity.Conn) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.registry.Unbind(playerName, conn)
}

func (that *Room) Player(playerName string) (entity.PlayerView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	player, err := that.registry.Get(playerName)
	if err != nil {
		return entity.PlayerView{}, err
	}

	return player.View(), nil
}

func (that *Room) Snapshot() entity.RoomSnapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot()
}

func (that *Room) State() entity.RoomState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return entity.NewRoomState(that.registry.Count(), that.engine.View())
}

// Fanout hands a consistent snapshot and the bound connections to send.
// Calls are serialized per room; the state lock is released before send runs.
func (that *Room) Fanout(send func(snapshot entity.RoomSnapshot, conns []entity.Conn)) {
	that.fanout.Lock()
	defer that.fanout.Unlock()

	that.mu.Lock()
	snapshot := that.snapshot()
	conns := that.registry.Connections()
	that.mu.Unlock()

	send(snapshot, conns)
}

func (that *Room) snapshot() entity.RoomSnapshot {
	view := that.engine.View()

	return entity.RoomSnapshot{
		Name:      that.name,
		GameState: entity.NewRoomState(that.registry.Count(), view),
		Game:      view,
	}
}
