package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
)

var ErrSnapshotNotFound = errors.New("room snapshot not found")

const snapshotKeyPrefix = "room:"

// RoomSnapshotRepository keeps the latest broadcast snapshot of each room.
// It is a read model only; rooms are never restored from it.
type RoomSnapshotRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoomSnapshotRepository - ttl of zero keeps snapshots without expiry.
func NewRoomSnapshotRepository(client *redis.Client, ttl time.Duration) *RoomSnapshotRepository {
	return &RoomSnapshotRepository{
		client: client,
		ttl:    ttl,
	}
}

func (that *RoomSnapshotRepository) Save(ctx context.Context, snapshot entity.RoomSnapshot) error {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}

	if err = that.client.Set(ctx, snapshotKeyPrefix+snapshot.Name, snapshotJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}

	return nil
}

func (that *RoomSnapshotRepository) GetByName(ctx context.Context, name string) (entity.RoomSnapshot, error) {
	response, err := that.client.Get(ctx, snapshotKeyPrefix+name).Result()
	if errors.Is(err, redis.Nil) {
		return entity.RoomSnapshot{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, name)
	}

	if err != nil {
		return entity.RoomSnapshot{}, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var snapshot entity.RoomSnapshot
	if err = json.Unmarshal([]byte(response), &snapshot); err != nil {
		return entity.RoomSnapshot{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return snapshot, nil
}
