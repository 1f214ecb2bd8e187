package planner

import (
	"tripwise/models"
)

// fakeCatalog is an in-memory Catalog that counts record accesses so tests
// can assert that the authorization gate is consulted before any lookup.
type fakeCatalog struct {
	calendar    models.Calendar
	preferences models.Preferences
	flights     []models.Flight
	hotels      []models.Hotel
	activities  []models.Activity

	lookups int
}

func (f *fakeCatalog) Calendar() models.Calendar {
	f.lookups++
	return f.calendar
}

func (f *fakeCatalog) Preferences() models.Preferences {
	f.lookups++
	return f.preferences
}

func (f *fakeCatalog) Flights() []models.Flight {
	f.lookups++
	return f.flights
}

func (f *fakeCatalog) Hotels() []models.Hotel {
	f.lookups++
	return f.hotels
}

func (f *fakeCatalog) Activities() []models.Activity {
	f.lookups++
	return f.activities
}

func (f *fakeCatalog) FlightByID(id string) (models.Flight, bool) {
	f.lookups++
	for _, fl := range f.flights {
		if fl.FlightID == id {
			return fl, true
		}
	}
	return models.Flight{}, false
}

func (f *fakeCatalog) HotelByID(id string) (models.Hotel, bool) {
	f.lookups++
	for _, h := range f.hotels {
		if h.HotelID == id {
			return h, true
		}
	}
	return models.Hotel{}, false
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		calendar: models.Calendar{
			Availability: map[string]string{
				"2025-10-10": "available",
				"2025-10-11": "available",
				"2025-10-12": "blocked",
				"2025-10-20": "available",
			},
			BlockedEvents: []models.CalendarEvent{
				{Date: "2025-10-12", Title: "Team offsite"},
				{Date: "2025-12-01", Title: "Out of window"},
			},
			VacationPreferences: models.VacationWindow{
				PreferredMonths: []string{"October"},
				MinDays:         4,
				MaxDays:         10,
			},
		},
		preferences: models.Preferences{
			Budget: models.Budget{
				Total:     2500,
				Currency:  "USD",
				Breakdown: map[string]float64{"flights": 1200, "hotels": 1300},
			},
			Interests: []string{"beaches", "food"},
		},
		flights: []models.Flight{
			{FlightID: "FL001", Airline: "Garuda Indonesia", Origin: "CGK", Destination: "DPS",
				OriginCity: "Jakarta", DestinationCity: "Bali", Date: "2025-10-12",
				Class: "economy", Price: 95, Currency: "USD", Duration: "1h 55m"},
			{FlightID: "FL002", Airline: "Lion Air", Origin: "CGK", Destination: "DPS",
				OriginCity: "Jakarta", DestinationCity: "Bali", Date: "2025-10-12",
				Class: "economy", Price: 62, Currency: "USD", Duration: "2h 05m"},
			{FlightID: "FL003", Airline: "Garuda Indonesia", Origin: "CGK", Destination: "DPS",
				OriginCity: "Jakarta", DestinationCity: "Bali", Date: "2025-10-19",
				Class: "business", Price: 240, Currency: "USD", Duration: "1h 55m"},
			{FlightID: "FL004", Airline: "ANA", Origin: "CGK", Destination: "NRT",
				OriginCity: "Jakarta", DestinationCity: "Tokyo", Date: "2025-10-15",
				Class: "economy", Price: 520, Currency: "USD", Duration: "7h 30m"},
		},
		hotels: []models.Hotel{
			{HotelID: "HTL001", Name: "Ubud Jungle Resort", DestinationCity: "Bali",
				Location: "Ubud", RoomType: "Deluxe Villa", Rating: 4.7, PricePerNight: 140, Currency: "USD"},
			{HotelID: "HTL002", Name: "Kuta Beachfront Hotel", DestinationCity: "Bali",
				Location: "Kuta", RoomType: "Double", Rating: 4.3, PricePerNight: 85, Currency: "USD"},
			{HotelID: "HTL003", Name: "Shinjuku Garden Hotel", DestinationCity: "Tokyo",
				Location: "Shinjuku", RoomType: "Double", Rating: 4.4, PricePerNight: 175, Currency: "USD"},
		},
		activities: []models.Activity{
			// Prices present on purpose: the search must strip them.
			{ActivityID: "ACT001", Name: "Nusa Dua Beach Day", DestinationCity: "Bali",
				Category: "beaches", Tags: []string{"beaches", "relaxation"}, Rating: 4.6,
				Duration: "6h", Price: 45, Currency: "USD"},
			{ActivityID: "ACT002", Name: "Ubud Food Walk", DestinationCity: "Bali",
				Category: "food", Tags: []string{"food", "markets"}, Rating: 4.7,
				Duration: "3h", Price: 30, Currency: "USD"},
			{ActivityID: "ACT003", Name: "Mount Batur Sunrise Hike", DestinationCity: "Bali",
				Category: "adventure", Tags: []string{"adventure", "hiking"}, Rating: 4.5,
				Duration: "7h"},
		},
	}
}
