// Package memory is the default catalog backend: the fixed room list and the
// static mess/about content, served from process memory.
package memory

import (
	"context"

	"vista_hostel/internal/domain"
)

type Repo struct{ rooms []domain.Room }

// New returns a repo over the seeded catalog. The slice is copied so callers
// of ListRooms can never reorder the seed.
func New() *Repo {
	rooms := make([]domain.Room, len(seedRooms))
	copy(rooms, seedRooms)
	return &Repo{rooms: rooms}
}

func (r *Repo) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	for _, room := range r.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return domain.Room{}, domain.ErrNotFound
}

func (r *Repo) ListRooms(ctx context.Context) ([]domain.Room, error) {
	out := make([]domain.Room, len(r.rooms))
	copy(out, r.rooms)
	return out, nil
}
