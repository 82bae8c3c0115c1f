package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"vista_hostel/internal/domain"
)

type QueryService struct {
	repo     domain.RoomRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.RoomRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	key := "room:" + id
	var room domain.Room
	if ok, _ := s.cache.Get(ctx, key, &room); ok {
		return room, nil
	}
	room, err := s.repo.GetRoom(ctx, id)
	if err != nil {
		return domain.Room{}, err
	}
	_ = s.cache.Set(ctx, key, room, int(s.cacheTTL.Seconds()))
	return room, nil
}

// ListRooms loads the catalog, applies the filter and caches the resulting
// page under a digest of the criteria.
func (s *QueryService) ListRooms(ctx context.Context, c domain.FilterCriteria) (domain.RoomsPage, error) {
	key := "rooms:" + criteriaKey(c)
	var page domain.RoomsPage
	if ok, _ := s.cache.Get(ctx, key, &page); ok {
		return page, nil
	}

	all, err := s.repo.ListRooms(ctx)
	if err != nil {
		return domain.RoomsPage{}, err
	}
	lo, hi := PriceBounds(all)
	items := FilterRooms(all, c)
	page = domain.RoomsPage{Items: items, Total: len(items), PriceMin: lo, PriceMax: hi}

	// copy before caching so callers can't mutate the cached value through
	// the returned slice
	_ = s.cache.Set(ctx, key, copyPage(page), int(s.cacheTTL.Seconds()))
	return page, nil
}

func copyPage(in domain.RoomsPage) domain.RoomsPage {
	out := in
	if n := len(in.Items); n > 0 {
		out.Items = make([]domain.Room, n)
		copy(out.Items, in.Items)
	}
	return out
}

// criteriaKey digests the criteria into a stable cache key segment.
func criteriaKey(c domain.FilterCriteria) string {
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Sprintf("cap%d", c.MinCapacity)
	}
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}
