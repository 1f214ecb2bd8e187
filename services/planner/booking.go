package planner

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripwise/models"
)

// Human-readable reasons carried on blocked outcomes. The conversational
// layer relays them verbatim.
const (
	ReasonNotAuthorized = "payment not authorized"
	ReasonUnknownID     = "unknown id"
)

// bookFlight books a flight by id. The authorization gate is consulted
// before anything else: an unauthorized set returns blocked without touching
// the catalog. An unrecognized id is blocked too, never fabricated into a
// confirmation. Repeat calls for the same id each mint a fresh reference.
func (ts *ToolSet) bookFlight(args map[string]interface{}) (map[string]interface{}, error) {
	flightID, err := argString(args, "flight_id")
	if err != nil {
		return nil, err
	}

	if !ts.authorized {
		ts.observer.ToolInvoked(ToolBookFlight, map[string]interface{}{"flight_id": flightID}, "blocked: unauthorized")
		return blockedOutcome(flightID, ReasonNotAuthorized), nil
	}

	flight, ok := ts.catalog.FlightByID(flightID)
	if !ok {
		ts.observer.ToolInvoked(ToolBookFlight, map[string]interface{}{"flight_id": flightID}, "blocked: unknown id")
		return blockedOutcome(flightID, ReasonUnknownID), nil
	}

	outcome := models.BookingOutcome{
		Status:       models.BookingConfirmed,
		Reference:    newBookingReference(flightID),
		ItemID:       flight.FlightID,
		Description:  fmt.Sprintf("%s %s → %s (%s)", flight.Airline, flight.OriginCity, flight.DestinationCity, flight.Duration),
		TotalCharged: flight.Price,
		Currency:     flight.Currency,
	}
	ts.logger.Info("flight booked",
		zap.String("flight_id", flightID),
		zap.String("reference", outcome.Reference))
	ts.observer.ToolInvoked(ToolBookFlight, map[string]interface{}{"flight_id": flightID}, "confirmed")
	return asMap(outcome), nil
}

// bookHotel books a hotel by id, following the same gate-then-lookup order
// as bookFlight. When both stay dates are supplied the charge covers the
// whole stay; otherwise it is the nightly price.
func (ts *ToolSet) bookHotel(args map[string]interface{}) (map[string]interface{}, error) {
	hotelID, err := argString(args, "hotel_id")
	if err != nil {
		return nil, err
	}

	// The gate comes before everything else, including date validation: an
	// unauthorized set answers blocked, never a date-format complaint.
	if !ts.authorized {
		ts.observer.ToolInvoked(ToolBookHotel, map[string]interface{}{"hotel_id": hotelID}, "blocked: unauthorized")
		return blockedOutcome(hotelID, ReasonNotAuthorized), nil
	}

	checkIn, hasCheckIn, err := optString(args, "check_in")
	if err != nil {
		return nil, err
	}
	checkOut, hasCheckOut, err := optString(args, "check_out")
	if err != nil {
		return nil, err
	}
	nights := 1
	if hasCheckIn && hasCheckOut {
		in, err := Date("check_in", checkIn)
		if err != nil {
			return nil, err
		}
		out, err := Date("check_out", checkOut)
		if err != nil {
			return nil, err
		}
		nights = int(out.Sub(in).Hours() / 24)
		if nights < 1 {
			return nil, newValidationError("stay", "check_out must be after check_in")
		}
	}

	hotel, ok := ts.catalog.HotelByID(hotelID)
	if !ok {
		ts.observer.ToolInvoked(ToolBookHotel, map[string]interface{}{"hotel_id": hotelID}, "blocked: unknown id")
		return blockedOutcome(hotelID, ReasonUnknownID), nil
	}

	outcome := models.BookingOutcome{
		Status:       models.BookingConfirmed,
		Reference:    newBookingReference(hotelID),
		ItemID:       hotel.HotelID,
		Description:  fmt.Sprintf("%s, %s (%s)", hotel.Name, hotel.Location, hotel.RoomType),
		TotalCharged: hotel.PricePerNight * float64(nights),
		Currency:     hotel.Currency,
	}
	result := asMap(outcome)
	result["nights"] = float64(nights)
	if hasCheckIn && hasCheckOut {
		result["check_in"] = checkIn
		result["check_out"] = checkOut
	}
	ts.logger.Info("hotel booked",
		zap.String("hotel_id", hotelID),
		zap.String("reference", outcome.Reference),
		zap.Int("nights", nights))
	ts.observer.ToolInvoked(ToolBookHotel, map[string]interface{}{"hotel_id": hotelID, "nights": nights}, "confirmed")
	return result, nil
}

func blockedOutcome(itemID, reason string) map[string]interface{} {
	return asMap(models.BookingOutcome{
		Status: models.BookingBlocked,
		Reason: reason,
		ItemID: itemID,
	})
}

func newBookingReference(itemID string) string {
	fragment := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("BK-%s-%s", itemID, fragment)
}
