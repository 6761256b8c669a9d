package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
	"github.com/rocketscienceinc/gameroom-backend/internal/room"
)

type snapshotMirror interface {
	Save(ctx context.Context, snapshot entity.RoomSnapshot) error
}

// Broadcaster pushes the room snapshot to every bound connection.
type Broadcaster struct {
	logger *slog.Logger
	mirror snapshotMirror
}

// NewBroadcaster - mirror may be nil.
func NewBroadcaster(logger *slog.Logger, mirror snapshotMirror) *Broadcaster {
	return &Broadcaster{
		logger: logger.With("component", "broadcaster"),
		mirror: mirror,
	}
}

func (that *Broadcaster) Broadcast(ctx context.Context, gameRoom *room.Room) {
	log := that.logger.With("method", "Broadcast", "room", gameRoom.Name())

	gameRoom.Fanout(func(snapshot entity.RoomSnapshot, conns []entity.Conn) {
		payload, err := json.Marshal(snapshot)
		if err != nil {
			log.Error("failed to marshal snapshot", "error", err)
			return
		}

		for _, conn := range conns {
			if err = conn.Send(payload); err != nil {
				log.Warn("failed to send snapshot", "conn", conn.ID(), "error", err)
			}
		}

		if that.mirror == nil {
			return
		}

		if err = that.mirror.Save(ctx, snapshot); err != nil {
			log.Warn("failed to mirror snapshot", "error", err)
		}
	})
}
