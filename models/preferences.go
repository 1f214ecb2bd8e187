package models

// Budget is the user's declared spending ceiling with per-category limits.
type Budget struct {
	Total     float64            `json:"total"`
	Currency  string             `json:"currency"`
	Breakdown map[string]float64 `json:"breakdown"` // "flights", "hotels"
}

// Accommodation holds hotel-side preferences.
type Accommodation struct {
	MinRating float64 `json:"min_rating"`
	RoomType  string  `json:"room_type"`
}

// Preferences is the full user preference profile.
type Preferences struct {
	Budget                Budget        `json:"budget"`
	Interests             []string      `json:"interests"`
	PreferredDestinations []string      `json:"preferred_destinations"`
	TravelStyle           string        `json:"travel_style"`
	Accommodation         Accommodation `json:"accommodation"`
}
