package app_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"vista_hostel/internal/app"
	"vista_hostel/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	rooms []domain.Room
	calls int
}

func (f *fakeRepo) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	f.calls++
	for _, r := range f.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Room{}, domain.ErrNotFound
}

func (f *fakeRepo) ListRooms(ctx context.Context) ([]domain.Room, error) {
	f.calls++
	return f.rooms, nil
}

type fakeCache struct {
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.Room:
		*d = v.(domain.Room)
	case *domain.RoomsPage:
		*d = v.(domain.RoomsPage)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func testRooms() []domain.Room {
	return []domain.Room{
		{ID: "a", Name: "Alpha Room", Description: "first", Price: 20, Capacity: 2, Amenities: []string{"Wi-Fi"}},
		{ID: "b", Name: "Beta Dorm", Description: "second", Price: 40, Capacity: 6, Amenities: []string{"Locker"}},
	}
}

// ---- tests ----

func TestGetRoom_CacheMissThenHit(t *testing.T) {
	repo := &fakeRepo{rooms: testRooms()}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)

	r, err := q.GetRoom(context.Background(), "a")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if r.Name != "Alpha Room" {
		t.Fatalf("unexpected room: %+v", r)
	}

	// Mutate repo to prove the second read comes from cache
	repo.rooms[0].Name = "SHOULD NOT SEE THIS"

	r2, err := q.GetRoom(context.Background(), "a")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if r2.Name != "Alpha Room" {
		t.Fatalf("expected cached name, got %s", r2.Name)
	}
}

func TestGetRoom_NotFoundPassesThrough(t *testing.T) {
	q := app.NewQueryService(&fakeRepo{rooms: testRooms()}, &fakeCache{}, time.Minute)
	_, err := q.GetRoom(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListRooms_FilterAndCacheKeying(t *testing.T) {
	repo := &fakeRepo{rooms: testRooms()}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)
	ctx := context.Background()

	open := domain.FilterCriteria{MaxPrice: math.MaxFloat64}
	page, err := q.ListRooms(ctx, open)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if page.Total != 2 || page.PriceMin != 20 || page.PriceMax != 40 {
		t.Fatalf("unexpected page: %+v", page)
	}

	// different criteria must not collide with the cached open query
	narrow := open
	narrow.Search = "dorm"
	page2, err := q.ListRooms(ctx, narrow)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if page2.Total != 1 || page2.Items[0].ID != "b" {
		t.Fatalf("unexpected filtered page: %+v", page2)
	}

	// repeat of the open query is served from cache
	before := repo.calls
	page3, _ := q.ListRooms(ctx, open)
	if repo.calls != before {
		t.Fatalf("expected cache hit, repo was called again")
	}
	if page3.Total != 2 {
		t.Fatalf("unexpected cached page: %+v", page3)
	}
}
