package app

import (
	"strings"

	"vista_hostel/internal/domain"
)

// FilterRooms returns the rooms matching every clause of c, preserving the
// input order. It is a pure function: no side effects, and filtering an
// already-filtered result with the same criteria changes nothing.
func FilterRooms(rooms []domain.Room, c domain.FilterCriteria) []domain.Room {
	out := make([]domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if matches(r, c) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r domain.Room, c domain.FilterCriteria) bool {
	if q := strings.ToLower(strings.TrimSpace(c.Search)); q != "" {
		if !strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(r.Description), q) &&
			!strings.Contains(strings.ToLower(r.Location), q) {
			return false
		}
	}
	if r.Price < c.MinPrice || r.Price > c.MaxPrice {
		return false
	}
	if c.MinCapacity > 0 && r.Capacity < c.MinCapacity {
		return false
	}
	for _, want := range c.Amenities {
		if !hasAmenity(r, want) {
			return false
		}
	}
	return true
}

// hasAmenity is an exact, case-sensitive match against the catalog's stored
// amenity labels.
func hasAmenity(r domain.Room, label string) bool {
	for _, a := range r.Amenities {
		if a == label {
			return true
		}
	}
	return false
}

// PriceBounds returns the catalog's min and max nightly price. Zeroes for an
// empty catalog.
func PriceBounds(rooms []domain.Room) (min, max float64) {
	if len(rooms) == 0 {
		return 0, 0
	}
	min, max = rooms[0].Price, rooms[0].Price
	for _, r := range rooms[1:] {
		if r.Price < min {
			min = r.Price
		}
		if r.Price > max {
			max = r.Price
		}
	}
	return min, max
}
