package domain

// Room is a catalog record. The catalog is fixed at seed time; rooms are never
// created or destroyed at runtime. Catalog order is insertion order and is the
// default display order.
type Room struct {
	ID          string
	Name        string
	Description string
	Location    string
	Price       float64 // currency units per night, >= 0
	Capacity    int     // max occupants, >= 1
	Rating      float64 // 0..5
	Image       string
	Images      []string
	Amenities   []string
	Features    []string
	Details     RoomDetails
	Coords      *Coords
	Reviews     []GuestReview
}

type RoomDetails struct {
	Size         string
	BedType      string
	MaxOccupancy int
	CheckIn      string
	CheckOut     string
}

type Coords struct{ Lat, Lng float64 }

type GuestReview struct {
	User   string
	Rating float64
	Text   string
}

// FilterCriteria selects a subset of the catalog. A zero MinCapacity means
// unconstrained; an empty Amenities slice requires nothing.
type FilterCriteria struct {
	Search      string
	MinPrice    float64
	MaxPrice    float64
	MinCapacity int
	Amenities   []string
}

// RoomsPage is the read model for the listing endpoint: the filtered rooms
// plus the metadata the listing UI renders (result count, catalog price
// bounds for the price slider).
type RoomsPage struct {
	Items    []Room
	Total    int
	PriceMin float64
	PriceMax float64
}
