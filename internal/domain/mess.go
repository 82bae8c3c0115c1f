package domain

// MessInfo is the dining-hall content block: weekly timings, house rules,
// meal plans and the rotating menu. Static content, seeded alongside the
// room catalog.
type MessInfo struct {
	Schedule []MealDay
	Rules    []string
	Plans    []MealPlan
	Menu     MessMenu
}

type MealDay struct {
	Day       string
	Breakfast string
	Lunch     string
	Dinner    string
}

type MealPlan struct {
	Name     string
	Price    string
	Meals    []string
	Features []string
}

type MessMenu struct {
	Breakfast []string
	Lunch     []string
	Dinner    []string
}

// HostelInfo carries the about/contact page content.
type HostelInfo struct {
	Name     string
	Tagline  string
	Address  string
	Phone    string
	Emails   []string
	WhatsApp string
}
