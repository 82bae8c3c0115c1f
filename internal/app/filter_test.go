package app_test

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"vista_hostel/internal/app"
	"vista_hostel/internal/domain"
	"vista_hostel/internal/storage/memory"
)

func openCriteria() domain.FilterCriteria {
	return domain.FilterCriteria{MinPrice: 0, MaxPrice: math.MaxFloat64}
}

func ids(rooms []domain.Room) []string {
	out := make([]string, len(rooms))
	for i, r := range rooms {
		out[i] = r.ID
	}
	return out
}

func TestFilterRooms_OpenCriteriaReturnsAllInOrder(t *testing.T) {
	catalog := memory.Rooms()
	got := app.FilterRooms(catalog, openCriteria())
	if !reflect.DeepEqual(ids(got), ids(catalog)) {
		t.Fatalf("expected full catalog in order, got %v", ids(got))
	}
}

func TestFilterRooms_Search(t *testing.T) {
	catalog := memory.Rooms()

	c := openCriteria()
	c.Search = "budget"
	got := app.FilterRooms(catalog, c)
	// "Budget Single Room" by name, "Economy Triple Room" by description
	if !reflect.DeepEqual(ids(got), []string{"budget-single", "economy-triple"}) {
		t.Fatalf("unexpected search result: %v", ids(got))
	}

	// search is case-insensitive
	c.Search = "BUDGET"
	if got2 := app.FilterRooms(catalog, c); !reflect.DeepEqual(ids(got2), ids(got)) {
		t.Fatalf("search should be case-insensitive, got %v", ids(got2))
	}

	// location text is searchable too
	c.Search = "hostel street"
	if got3 := app.FilterRooms(catalog, c); len(got3) != len(catalog) {
		t.Fatalf("location search should match all seeded rooms, got %d", len(got3))
	}
}

func TestFilterRooms_PriceBoundsInclusive(t *testing.T) {
	catalog := memory.Rooms()
	c := openCriteria()
	c.MinPrice, c.MaxPrice = 25, 35
	got := app.FilterRooms(catalog, c)
	if !reflect.DeepEqual(ids(got), []string{"deluxe-twin", "budget-single"}) {
		t.Fatalf("bounds should be inclusive: %v", ids(got))
	}
}

func TestFilterRooms_MinCapacity(t *testing.T) {
	catalog := memory.Rooms()
	c := openCriteria()
	c.MinCapacity = 2
	for _, r := range app.FilterRooms(catalog, c) {
		if r.ID == "budget-single" {
			t.Fatalf("capacity 1 room must be excluded by min capacity 2")
		}
		if r.Capacity < 2 {
			t.Fatalf("room %s violates capacity clause: %d", r.ID, r.Capacity)
		}
	}
}

func TestFilterRooms_RequiredAmenities(t *testing.T) {
	catalog := memory.Rooms()

	c := openCriteria()
	c.Amenities = []string{"Breakfast"}
	got := app.FilterRooms(catalog, c)
	if !reflect.DeepEqual(ids(got), []string{"deluxe-twin"}) {
		t.Fatalf("only the deluxe twin offers breakfast: %v", ids(got))
	}

	// amenity labels match case-sensitively against the catalog strings
	c.Amenities = []string{"breakfast"}
	if got := app.FilterRooms(catalog, c); len(got) != 0 {
		t.Fatalf("lowercased label must not match: %v", ids(got))
	}

	// all required amenities must be present
	c.Amenities = []string{"Wi-Fi", "Balcony"}
	got = app.FilterRooms(catalog, c)
	if !reflect.DeepEqual(ids(got), []string{"luxury-suite"}) {
		t.Fatalf("unexpected amenity intersection: %v", ids(got))
	}
}

func TestFilterRooms_AllClausesHold(t *testing.T) {
	catalog := memory.Rooms()
	c := domain.FilterCriteria{
		Search:      "room",
		MinPrice:    20,
		MaxPrice:    60,
		MinCapacity: 2,
		Amenities:   []string{"Wi-Fi"},
	}
	for _, r := range app.FilterRooms(catalog, c) {
		text := strings.ToLower(r.Name + " " + r.Description + " " + r.Location)
		if !strings.Contains(text, "room") {
			t.Fatalf("room %s fails search clause", r.ID)
		}
		if r.Price < c.MinPrice || r.Price > c.MaxPrice {
			t.Fatalf("room %s fails price clause", r.ID)
		}
		if r.Capacity < c.MinCapacity {
			t.Fatalf("room %s fails capacity clause", r.ID)
		}
	}
}

func TestFilterRooms_Idempotent(t *testing.T) {
	catalog := memory.Rooms()
	c := openCriteria()
	c.Search = "room"
	c.MinCapacity = 2

	once := app.FilterRooms(catalog, c)
	twice := app.FilterRooms(once, c)
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Fatalf("filter is not idempotent: %v vs %v", ids(once), ids(twice))
	}
}

func TestFilterRooms_EmptyAndExcluding(t *testing.T) {
	if got := app.FilterRooms(nil, openCriteria()); len(got) != 0 {
		t.Fatalf("empty catalog must yield empty result")
	}

	c := openCriteria()
	c.MinPrice, c.MaxPrice = 1000, 2000
	if got := app.FilterRooms(memory.Rooms(), c); len(got) != 0 {
		t.Fatalf("criteria excluding everything must yield empty result, got %v", ids(got))
	}

	// min > max is not an error, just an empty result
	c.MinPrice, c.MaxPrice = 50, 20
	if got := app.FilterRooms(memory.Rooms(), c); len(got) != 0 {
		t.Fatalf("inverted range must yield empty result, got %v", ids(got))
	}
}

func TestPriceBounds(t *testing.T) {
	lo, hi := app.PriceBounds(memory.Rooms())
	if lo != 18 || hi != 85 {
		t.Fatalf("unexpected bounds: %v..%v", lo, hi)
	}
	if lo, hi := app.PriceBounds(nil); lo != 0 || hi != 0 {
		t.Fatalf("empty catalog bounds should be zero, got %v..%v", lo, hi)
	}
}
