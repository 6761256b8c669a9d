package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
	"github.com/rocketscienceinc/gameroom-backend/internal/room"
)

type roomDirectory interface {
	Get(name string) (*room.Room, error)
}

type roomBroadcaster interface {
	Broadcast(ctx context.Context, room *room.Room)
}

// seat is a player slot a connection has joined.
type seat struct {
	room   string
	player string
}

// Gateway dispatches decoded client messages to rooms.
type Gateway struct {
	logger      *slog.Logger
	rooms       roomDirectory
	broadcaster roomBroadcaster

	mu    sync.Mutex
	seats map[string]map[seat]struct{}
}

func NewGateway(logger *slog.Logger, rooms roomDirectory, broadcaster roomBroadcaster) *Gateway {
	return &Gateway{
		logger: logger.With("component", "gateway"),

		rooms:       rooms,
		broadcaster: broadcaster,

		seats: make(map[string]map[seat]struct{}),
	}
}

// Handle applies the message and broadcasts the room on success.
// A failure is answered to conn alone and returned.
func (that *Gateway) Handle(ctx context.Context, conn entity.Conn, message entity.Message) error {
	log := that.logger.With("method", "Handle", "conn", conn.ID(), "room", message.Room(), "player", message.Player())

	var err error

	switch msg := message.(type) {
	case entity.JoinGame:
		err = that.joinGame(ctx, conn, msg)
	case entity.GameMove:
		err = that.gameMove(ctx, msg)
	default:
		err = fmt.Errorf("%w: %T", apperror.ErrUnknownMessageType, message)
	}

	if err != nil {
		log.Warn("message rejected", "error", err)
		that.Reject(conn, err)

		return err
	}

	return nil
}

// Reject sends an error message to conn only.
func (that *Gateway) Reject(conn entity.Conn, cause error) {
	log := that.logger.With("method", "Reject", "conn", conn.ID())

	payload, err := json.Marshal(entity.NewErrorMessage(cause))
	if err != nil {
		log.Error("failed to marshal error message", "error", err)
		return
	}

	if err = conn.Send(payload); err != nil {
		log.Warn("failed to send error message", "error", err)
	}
}

// Disconnect clears every seat still bound to conn. Seats stay reserved for a reconnect.
func (that *Gateway) Disconnect(_ context.Context, conn entity.Conn) {
	log := that.logger.With("method", "Disconnect", "conn", conn.ID())

	that.mu.Lock()
	seats := that.seats[conn.ID()]
	delete(that.seats, conn.ID())
	that.mu.Unlock()

	for s := range seats {
		gameRoom, err := that.rooms.Get(s.room)
		if err != nil {
			log.Warn("failed to get room", "room", s.room, "error", err)
			continue
		}

		if gameRoom.Leave(s.player, conn) {
			log.Info("player disconnected", "room", s.room, "player", s.player)
		}
	}
}

func (that *Gateway) joinGame(ctx context.Context, conn entity.Conn, msg entity.JoinGame) error {
	log := that.logger.With("method", "joinGame", "room", msg.GameName, "player", msg.PlayerName)

	gameRoom, err := that.rooms.Get(msg.GameName)
	if err != nil {
		return fmt.Errorf("failed to get room: %w", err)
	}

	rebound, err := gameRoom.Join(msg.PlayerName, conn)
	if err != nil {
		return fmt.Errorf("failed to join room: %w", err)
	}

	that.remember(conn, seat{room: msg.GameName, player: msg.PlayerName})

	log.Info("player joined", "reconnect", rebound)

	that.broadcaster.Broadcast(ctx, gameRoom)

	return nil
}

func (that *Gateway) gameMove(ctx context.Context, msg entity.GameMove) error {
	gameRoom, err := that.rooms.Get(msg.GameName)
	if err != nil {
		return fmt.Errorf("failed to get room: %w", err)
	}

	if err = gameRoom.Move(msg.PlayerName, msg.Move); err != nil {
		return fmt.Errorf("failed to make move: %w", err)
	}

	that.broadcaster.Broadcast(ctx, gameRoom)

	return nil
}

func (that *Gateway) remember(conn entity.Conn, s seat) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.seats[conn.ID()] == nil {
		that.seats[conn.ID()] = make(map[seat]struct{})
	}

	that.seats[conn.ID()][s] = struct{}{}
}
