// Package fixtures loads the mock catalog data backing the planner tools.
// The store is loaded once at startup and treated as immutable afterward;
// callers must not mutate returned slices.
package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tripwise/models"
)

// Store holds the full fixture snapshot in memory.
type Store struct {
	calendar    models.Calendar
	preferences models.Preferences
	flights     []models.Flight
	hotels      []models.Hotel
	activities  []models.Activity

	flightIndex map[string]models.Flight
	hotelIndex  map[string]models.Hotel
}

// Load reads all fixture files from dir. A missing or corrupt file is fatal
// for the caller: the planner assumes the store is complete at startup.
func Load(dir string) (*Store, error) {
	s := &Store{
		flightIndex: make(map[string]models.Flight),
		hotelIndex:  make(map[string]models.Hotel),
	}

	if err := readJSON(dir, "user_calendar.json", &s.calendar); err != nil {
		return nil, err
	}
	if err := readJSON(dir, "user_preferences.json", &s.preferences); err != nil {
		return nil, err
	}

	var flightsFile struct {
		Flights []models.Flight `json:"flights"`
	}
	if err := readJSON(dir, "flights.json", &flightsFile); err != nil {
		return nil, err
	}
	s.flights = flightsFile.Flights

	var hotelsFile struct {
		Hotels []models.Hotel `json:"hotels"`
	}
	if err := readJSON(dir, "hotels.json", &hotelsFile); err != nil {
		return nil, err
	}
	s.hotels = hotelsFile.Hotels

	var activitiesFile struct {
		Activities []models.Activity `json:"activities"`
	}
	if err := readJSON(dir, "activities.json", &activitiesFile); err != nil {
		return nil, err
	}
	s.activities = activitiesFile.Activities

	for _, f := range s.flights {
		s.flightIndex[f.FlightID] = f
	}
	for _, h := range s.hotels {
		s.hotelIndex[h.HotelID] = h
	}

	return s, nil
}

func readJSON(dir, name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("fixtures: read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("fixtures: parse %s: %w", name, err)
	}
	return nil
}

// Calendar returns the user's calendar record.
func (s *Store) Calendar() models.Calendar { return s.calendar }

// Preferences returns the full user preference profile.
func (s *Store) Preferences() models.Preferences { return s.preferences }

// Flights returns every flight offer in the snapshot.
func (s *Store) Flights() []models.Flight { return s.flights }

// Hotels returns every hotel offer in the snapshot.
func (s *Store) Hotels() []models.Hotel { return s.hotels }

// Activities returns every activity listing in the snapshot.
func (s *Store) Activities() []models.Activity { return s.activities }

// FlightByID looks up a flight offer by its identifier.
func (s *Store) FlightByID(id string) (models.Flight, bool) {
	f, ok := s.flightIndex[id]
	return f, ok
}

// HotelByID looks up a hotel offer by its identifier.
func (s *Store) HotelByID(id string) (models.Hotel, bool) {
	h, ok := s.hotelIndex[id]
	return h, ok
}
