package memory

import "vista_hostel/internal/domain"

// Mess returns the static dining content.
func Mess() domain.MessInfo {
	weekday := domain.MealDay{Breakfast: "7:30 AM - 9:30 AM", Lunch: "12:00 PM - 2:00 PM", Dinner: "7:00 PM - 9:00 PM"}
	weekend := domain.MealDay{Breakfast: "8:00 AM - 10:00 AM", Lunch: "12:30 PM - 2:30 PM", Dinner: "7:00 PM - 9:00 PM"}

	schedule := make([]domain.MealDay, 0, 7)
	for _, d := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"} {
		day := weekday
		day.Day = d
		schedule = append(schedule, day)
	}
	for _, d := range []string{"Saturday", "Sunday"} {
		day := weekend
		day.Day = d
		schedule = append(schedule, day)
	}

	return domain.MessInfo{
		Schedule: schedule,
		Rules: []string{
			"Food should be consumed within the designated mess area only",
			"Wastage of food is strictly prohibited",
			"Outside food is not allowed in the mess area",
			"Maintain silence and cleanliness in the mess area",
			"Follow the schedule strictly",
			"Carry your ID card while entering the mess",
		},
		Plans: []domain.MealPlan{
			{Name: "Basic", Price: "$150/month", Meals: []string{"Breakfast", "Dinner"},
				Features: []string{"Vegetarian options", "Self-service", "Weekend brunch"}},
			{Name: "Standard", Price: "$200/month", Meals: []string{"Breakfast", "Lunch", "Dinner"},
				Features: []string{"Vegetarian options", "Non-vegetarian (twice a week)", "Self-service", "Weekend brunch"}},
			{Name: "Premium", Price: "$250/month", Meals: []string{"Breakfast", "Lunch", "Dinner", "Snacks"},
				Features: []string{"Vegetarian options", "Non-vegetarian (daily)", "Self-service", "Special weekend meals", "Customized meal plans"}},
		},
		Menu: domain.MessMenu{
			Breakfast: []string{"Cereal with milk", "Eggs & toast", "Fruit platter", "Pancakes", "Smoothie bowls"},
			Lunch:     []string{"Pasta bar", "Salad station", "Soup of the day", "Sandwiches", "Rice & curry"},
			Dinner:    []string{"Grilled chicken/tofu", "Vegetable stir fry", "Pasta dishes", "Mexican bowl", "Pizza (weekends)"},
		},
	}
}

// Info returns the about/contact content.
func Info() domain.HostelInfo {
	return domain.HostelInfo{
		Name:     "Vista Hostel",
		Tagline:  "Comfortable and affordable accommodation for travelers from around the world since 2010.",
		Address:  "123 Hostel Street, City Center, 10001",
		Phone:    "+1 234 567 8901",
		Emails:   []string{"info@vistahostel.com", "bookings@vistahostel.com"},
		WhatsApp: "1234567890",
	}
}
