package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const roomKeyPrefix = "room:"

// RoomStore persists rooms to Redis as JSON snapshots with a sliding
// expiration. Every save resets the clock, so only abandoned rooms expire
type RoomStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRoomStore returns a store using the given client and room TTL
func NewRoomStore(client redis.UniversalClient, ttl time.Duration) *RoomStore {
	return &RoomStore{
		client: client,
		ttl:    ttl,
	}
}

// Save writes the room snapshot and resets its expiration
func (s *RoomStore) Save(ctx context.Context, data *RoomData) error {
	if data == nil || data.ID == "" {
		return errors.New("cannot save a room without an ID")
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("could not marshal room %s: %w", data.ID, err)
	}

	return s.client.Set(ctx, roomKeyPrefix+data.ID, payload, s.ttl).Err()
}

// Load returns the stored room, or nil with no error when the room is
// unknown or has expired
func (s *RoomStore) Load(ctx context.Context, id string) (*RoomData, error) {
	payload, err := s.client.Get(ctx, roomKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, err
	}

	var data RoomData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("could not unmarshal room %s: %w", id, err)
	}

	return &data, nil
}

// Delete removes the stored room. Deleting an unknown room is not an error
func (s *RoomStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, roomKeyPrefix+id).Err()
}

// Touch resets the room's expiration without rewriting it
func (s *RoomStore) Touch(ctx context.Context, id string) error {
	return s.client.Expire(ctx, roomKeyPrefix+id, s.ttl).Err()
}
