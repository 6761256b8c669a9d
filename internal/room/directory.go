package room

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
	"github.com/rocketscienceinc/gameroom-backend/internal/game"
)

// Directory owns every room of the process.
type Directory struct {
	mu    sync.RWMutex
	rooms map[string]*Room

	newEngine game.Factory
}

func NewDirectory(newEngine game.Factory) *Directory {
	return &Directory{
		rooms:     make(map[string]*Room),
		newEngine: newEngine,
	}
}

// Create registers a room with a fresh engine. Existing rooms are never replaced.
func (that *Directory) Create(name string) (*Room, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperror.ErrInvalidRoomName
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.rooms[name]; ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrRoomAlreadyExists, name)
	}

	room := New(name, that.newEngine())
	that.rooms[name] = room

	return room, nil
}

func (that *Directory) Get(name string) (*Room, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	room, ok := that.rooms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrRoomNotFound, name)
	}

	return room, nil
}

// Names returns the room names in sorted order.
func (that *Directory) Names() []string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return slices.Sorted(maps.Keys(that.rooms))
}
