package memory

import "vista_hostel/internal/domain"

const hostelAddress = "123 Hostel Street, City Center"

// seedRooms is the full catalog in display order.
var seedRooms = []domain.Room{
	{
		ID:          "deluxe-twin",
		Name:        "Deluxe Twin Room",
		Description: "A spacious room with two comfortable single beds and a private bathroom. Ideal for friends traveling together or solo travelers who prefer extra space.",
		Location:    hostelAddress,
		Price:       35,
		Capacity:    2,
		Rating:      4.8,
		Image:       "https://images.unsplash.com/photo-1578683010236-d716f9a3f461?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1578683010236-d716f9a3f461?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			"https://images.unsplash.com/photo-1631049307264-da0ec9d70304?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			"https://images.unsplash.com/photo-1505692952047-1a78307da8f2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
		Amenities: []string{"Wi-Fi", "Private Bathroom", "Air Conditioning", "Breakfast", "Towels", "Linens"},
		Features:  []string{"Daily Housekeeping", "Workspace", "Reading Light", "24/7 Reception"},
		Details:   domain.RoomDetails{Size: "18 sqm", BedType: "Two Single Beds", MaxOccupancy: 2, CheckIn: "2:00 PM", CheckOut: "11:00 AM"},
		Coords:    &domain.Coords{Lat: 40.7128, Lng: -74.006},
		Reviews: []domain.GuestReview{
			{User: "Alex M.", Rating: 5, Text: "Exceptional room with great service. The beds were very comfortable and the location is perfect."},
			{User: "Sarah K.", Rating: 4, Text: "Clean and spacious room. The air conditioning worked perfectly during the hot summer days."},
		},
	},
	{
		ID:          "budget-single",
		Name:        "Budget Single Room",
		Description: "Cozy single room perfect for solo travelers on a budget. Includes access to shared bathroom facilities.",
		Location:    hostelAddress,
		Price:       25,
		Capacity:    1,
		Rating:      4.5,
		Image:       "https://images.unsplash.com/photo-1505692952047-1a78307da8f2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1505692952047-1a78307da8f2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			"https://images.unsplash.com/photo-1517512006864-7edc3b933137?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
		Amenities: []string{"Wi-Fi", "Shared Bathroom", "Locker", "Towels", "Linens"},
		Features:  []string{"Reading Light", "24/7 Reception", "Luggage Storage"},
		Details:   domain.RoomDetails{Size: "8 sqm", BedType: "Single Bed", MaxOccupancy: 1, CheckIn: "2:00 PM", CheckOut: "11:00 AM"},
		Coords:    &domain.Coords{Lat: 40.7128, Lng: -74.006},
		Reviews: []domain.GuestReview{
			{User: "Mike R.", Rating: 4, Text: "Great value for the price. The room was small but had everything I needed."},
			{User: "Lena T.", Rating: 5, Text: "Perfect for solo travelers! Clean room and friendly staff."},
		},
	},
	{
		ID:          "premium-quad",
		Name:        "Premium Quad Room",
		Description: "Large room with four beds, perfect for groups or families.",
		Location:    hostelAddress,
		Price:       65,
		Capacity:    4,
		Rating:      4.9,
		Image:       "https://images.unsplash.com/photo-1596394516093-501ba68a0ba6?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1596394516093-501ba68a0ba6?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
		Amenities: []string{"Wi-Fi", "Private Bathroom", "Air Conditioning", "TV", "Mini Fridge"},
		Features:  []string{"Daily Housekeeping", "24/7 Reception"},
		Details:   domain.RoomDetails{Size: "28 sqm", BedType: "Four Single Beds", MaxOccupancy: 4, CheckIn: "2:00 PM", CheckOut: "11:00 AM"},
		Coords:    &domain.Coords{Lat: 40.7128, Lng: -74.006},
	},
	{
		ID:          "social-dorm",
		Name:        "Social Dormitory",
		Description: "8-bed mixed dormitory with a vibrant social atmosphere.",
		Location:    hostelAddress,
		Price:       18,
		Capacity:    8,
		Rating:      4.6,
		Image:       "https://images.unsplash.com/photo-1555854877-bab0e564b8d5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1555854877-bab0e564b8d5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
		Amenities: []string{"Wi-Fi", "Shared Bathroom", "Locker", "Common Area"},
		Features:  []string{"Reading Light", "Luggage Storage", "24/7 Reception"},
		Details:   domain.RoomDetails{Size: "32 sqm", BedType: "Four Bunk Beds", MaxOccupancy: 8, CheckIn: "2:00 PM", CheckOut: "11:00 AM"},
		Coords:    &domain.Coords{Lat: 40.7128, Lng: -74.006},
	},
	{
		ID:          "female-dorm",
		Name:        "Female Dormitory",
		Description: "6-bed female-only dormitory with enhanced privacy.",
		Location:    hostelAddress,
		Price:       22,
		Capacity:    6,
		Rating:      4.7,
		Image:       "https://images.unsplash.com/photo-1513694203232-719a280e022f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1513694203232-719a280e022f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
		Amenities: []string{"Wi-Fi", "Shared Bathroom", "Locker", "Reading Light"},
		Features:  []string{"Privacy Curtains", "Luggage Storage", "24/7 Reception"},
		Details:   domain.RoomDetails{Size: "26 sqm", BedType: "Three Bunk Beds", MaxOccupancy: 6, CheckIn: "2:00 PM", CheckOut: "11:00 AM"},
		Coords:    &domain.Coords{Lat: 40.7128, Lng: -74.006},
	},
	{
		ID:          "private-double",
		Name:        "Private Double Room",
		Description: "Comfortable double room with a queen-sized bed and city view.",
		Location:    hostelAddress,
		Price:       45,
		Capacity:    2,
		Rating:      4.9,
		Image:       "https://images.unsplash.com/photo-1611892440504-42a792e24d32?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1611892440504-42a792e24d32?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
		Amenities: []string{"Wi-Fi", "Private Bathroom", "Air Conditioning", "TV", "City View"},
		Features:  []string{"Daily Housekeeping", "Workspace", "24/7 Reception"},
		Details:   domain.RoomDetails{Size: "16 sqm", BedType: "Queen Bed", MaxOccupancy: 2, CheckIn: "2:00 PM", CheckOut: "11:00 AM"},
		Coords:    &domain.Coords{Lat: 40.7128, Lng: -74.006},
	},
	{
		ID:          "economy-triple",
		Name:        "Economy Triple Room",
		Description: "Budget-friendly room with three single beds.",
		Location:    hostelAddress,
		Price:       50,
		Capacity:    3,
		Rating:      4.4,
		Image:       "https://images.unsplash.com/photo-1598928506311-c55ded91a20c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1598928506311-c55ded91a20c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
		Amenities: []string{"Wi-Fi", "Shared Bathroom", "Desk"},
		Features:  []string{"Reading Light", "Luggage Storage"},
		Details:   domain.RoomDetails{Size: "20 sqm", BedType: "Three Single Beds", MaxOccupancy: 3, CheckIn: "2:00 PM", CheckOut: "11:00 AM"},
		Coords:    &domain.Coords{Lat: 40.7128, Lng: -74.006},
	},
	{
		ID:          "luxury-suite",
		Name:        "Luxury Suite",
		Description: "Our most luxurious offering with a separate living area and premium amenities.",
		Location:    hostelAddress,
		Price:       85,
		Capacity:    2,
		Rating:      5.0,
		Image:       "https://images.unsplash.com/photo-1590490360182-c33d57733427?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1590490360182-c33d57733427?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
		Amenities: []string{"Wi-Fi", "Private Bathroom", "Air Conditioning", "TV", "Mini Fridge", "Workspace", "Balcony"},
		Features:  []string{"Daily Housekeeping", "Room Service", "24/7 Reception"},
		Details:   domain.RoomDetails{Size: "34 sqm", BedType: "King Bed", MaxOccupancy: 2, CheckIn: "2:00 PM", CheckOut: "11:00 AM"},
		Coords:    &domain.Coords{Lat: 40.7128, Lng: -74.006},
	},
}

// Rooms returns the seed catalog in display order. The seeder uses this to
// populate the SQL backend.
func Rooms() []domain.Room {
	out := make([]domain.Room, len(seedRooms))
	copy(out, seedRooms)
	return out
}
