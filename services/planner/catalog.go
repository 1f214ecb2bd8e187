package planner

import "tripwise/models"

// Catalog is the read contract the tools need from the fixture store.
// Implementations must be immutable for the lifetime of a ToolSet.
type Catalog interface {
	Calendar() models.Calendar
	Preferences() models.Preferences
	Flights() []models.Flight
	Hotels() []models.Hotel
	Activities() []models.Activity
	FlightByID(id string) (models.Flight, bool)
	HotelByID(id string) (models.Hotel, bool)
}
