package domain

import "context"

// RoomRepository is the read side of the catalog. ListRooms returns the full
// catalog in insertion order; filtering happens above the repository.
type RoomRepository interface {
	GetRoom(ctx context.Context, id string) (Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
}

// Cache is a read-through cache for query results. Entries expire by TTL;
// nothing invalidates them explicitly, the catalog only changes on reseed.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
}

// SessionStorage is the durable single-slot mirror of the authenticated user.
// Load returns (nil, nil) when the slot is empty and ErrCorruptSession when
// the stored blob does not parse.
type SessionStorage interface {
	Load(ctx context.Context) (*User, error)
	Save(ctx context.Context, u User) error
	Clear(ctx context.Context) error
}
