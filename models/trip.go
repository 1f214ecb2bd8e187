package models

// Flight is a single flight offer from the fixture catalog.
type Flight struct {
	FlightID        string  `json:"flight_id"`
	Airline         string  `json:"airline"`
	Origin          string  `json:"origin"`      // airport code, e.g. "CGK"
	Destination     string  `json:"destination"` // airport code, e.g. "DPS"
	OriginCity      string  `json:"origin_city"`
	DestinationCity string  `json:"destination_city"`
	Date            string  `json:"date"` // YYYY-MM-DD
	Duration        string  `json:"duration"`
	Class           string  `json:"class"` // "economy" or "business"
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
}

// Hotel is a single hotel offer from the fixture catalog.
type Hotel struct {
	HotelID         string  `json:"hotel_id"`
	Name            string  `json:"name"`
	DestinationCity string  `json:"destination_city"`
	Location        string  `json:"location"`
	RoomType        string  `json:"room_type"`
	Rating          float64 `json:"rating"`
	PricePerNight   float64 `json:"price_per_night"`
	Currency        string  `json:"currency"`
}

// Activity is an attraction or experience at a destination. Activities have
// no booking path, so price fields are never exposed to callers even when a
// fixture carries them.
type Activity struct {
	ActivityID      string   `json:"activity_id"`
	Name            string   `json:"name"`
	DestinationCity string   `json:"destination_city"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	Rating          float64  `json:"rating"`
	Duration        string   `json:"duration"`
	Description     string   `json:"description"`
	Price           float64  `json:"price,omitempty"`
	Currency        string   `json:"currency,omitempty"`
}
