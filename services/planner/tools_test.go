package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCalendarWindow(t *testing.T) {
	ts := NewToolSet(newFakeCatalog(), false)

	res := ts.Invoke(context.Background(), ToolReadCalendar, map[string]interface{}{
		"start_date": "2025-10-10",
		"end_date":   "2025-10-12",
	})
	require.Equal(t, "ok", res["status"])

	// Boundary dates are inclusive.
	assert.Equal(t, []interface{}{"2025-10-10", "2025-10-11"}, res["available_dates"])
	assert.Equal(t, []interface{}{"2025-10-12"}, res["blocked_dates"])

	events := res["blocked_events"].([]interface{})
	require.Len(t, events, 1)
	assert.Equal(t, "Team offsite", events[0].(map[string]interface{})["title"])
}

func TestReadCalendarRejectsInvertedRange(t *testing.T) {
	ts := NewToolSet(newFakeCatalog(), false)

	res := ts.Invoke(context.Background(), ToolReadCalendar, map[string]interface{}{
		"start_date": "2025-11-01",
		"end_date":   "2025-10-01",
	})
	assert.Equal(t, "error", res["status"])
	assert.Contains(t, res["message"], "end_date is before start_date")
}

func TestReadPreferences(t *testing.T) {
	ts := NewToolSet(newFakeCatalog(), false)

	res := ts.Invoke(context.Background(), ToolReadPreferences, nil)
	require.Equal(t, "ok", res["status"])

	budget := res["budget"].(map[string]interface{})
	assert.Equal(t, float64(2500), budget["total"])
	assert.Equal(t, "USD", budget["currency"])
}

func TestSearchFlightsNormalizesAndOrders(t *testing.T) {
	ts := NewToolSet(newFakeCatalog(), false)

	res := ts.Invoke(context.Background(), ToolSearchFlights, map[string]interface{}{
		"origin":      "Jakarta",
		"destination": "Bali",
	})
	require.Equal(t, "ok", res["status"])

	flights := res["flights"].([]interface{})
	require.Len(t, flights, 2)

	// Cheapest first; free-text places resolved to codes.
	first := flights[0].(map[string]interface{})
	assert.Equal(t, "FL002", first["flight_id"])
	assert.Equal(t, "CGK", first["origin"])
	assert.Equal(t, "DPS", first["destination"])
	assert.Equal(t, float64(62), first["total_price"])

	second := flights[1].(map[string]interface{})
	assert.Equal(t, "FL001", second["flight_id"])
}

func TestSearchFlightsPassengersAndClass(t *testing.T) {
	ts := NewToolSet(newFakeCatalog(), false)

	res := ts.Invoke(context.Background(), ToolSearchFlights, map[string]interface{}{
		"origin":       "CGK",
		"destination":  "DPS",
		"passengers":   float64(2),
		"travel_class": "business",
	})
	require.Equal(t, "ok", res["status"])

	flights := res["flights"].([]interface{})
	require.Len(t, flights, 1)
	got := flights[0].(map[string]interface{})
	assert.Equal(t, "FL003", got["flight_id"])
	assert.Equal(t, float64(480), got["total_price"])
}

func TestSearchFlightsDateFilter(t *testing.T) {
	ts := NewToolSet(newFakeCatalog(), false)

	res := ts.Invoke(context.Background(), ToolSearchFlights, map[string]interface{}{
		"origin":      "Jakarta",
		"destination": "Bali",
		"date":        "2025-10-12",
	})
	require.Equal(t, "ok", res["status"])
	assert.Equal(t, float64(2), res["total_results"])

	// No hits is a valid result, not an error.
	res = ts.Invoke(context.Background(), ToolSearchFlights, map[string]interface{}{
		"origin":      "Jakarta",
		"destination": "Bali",
		"date":        "2025-12-25",
	})
	require.Equal(t, "ok", res["status"])
	assert.Empty(t, res["flights"])
	assert.NotEmpty(t, res["message"])
}

func TestSearchHotelsPriceCeilingAndOrdering(t *testing.T) {
	ts := NewToolSet(newFakeCatalog(), false)

	res := ts.Invoke(context.Background(), ToolSearchHotels, map[string]interface{}{
		"destination": "Bali",
	})
	require.Equal(t, "ok", res["status"])
	hotels := res["hotels"].([]interface{})
	require.Len(t, hotels, 2)
	assert.Equal(t, "HTL002", hotels[0].(map[string]interface{})["hotel_id"])

	res = ts.Invoke(context.Background(), ToolSearchHotels, map[string]interface{}{
		"destination": "Bali",
		"max_price":   float64(100),
	})
	hotels = res["hotels"].([]interface{})
	require.Len(t, hotels, 1)
	assert.Equal(t, "HTL002", hotels[0].(map[string]interface{})["hotel_id"])
}

func TestSearchHotelsStayTotals(t *testing.T) {
	ts := NewToolSet(newFakeCatalog(), false)

	res := ts.Invoke(context.Background(), ToolSearchHotels, map[string]interface{}{
		"destination": "Tokyo",
		"check_in":    "2025-10-10",
		"check_out":   "2025-10-13",
	})
	require.Equal(t, "ok", res["status"])
	hotels := res["hotels"].([]interface{})
	require.Len(t, hotels, 1)
	got := hotels[0].(map[string]interface{})
	assert.Equal(t, float64(3), got["nights"])
	assert.Equal(t, float64(525), got["total_price"])
}

func TestSearchHotelsRejectsInvertedStay(t *testing.T) {
	ts := NewToolSet(newFakeCatalog(), false)

	res := ts.Invoke(context.Background(), ToolSearchHotels, map[string]interface{}{
		"destination": "Tokyo",
		"check_in":    "2025-10-13",
		"check_out":   "2025-10-10",
	})
	assert.Equal(t, "error", res["status"])
}

func TestSearchActivitiesNeverExposesPrices(t *testing.T) {
	// The fake catalog deliberately carries prices on activities; results
	// must not.
	ts := NewToolSet(newFakeCatalog(), false)

	res := ts.Invoke(context.Background(), ToolSearchActivities, map[string]interface{}{
		"destination": "Bali",
	})
	require.Equal(t, "ok", res["status"])

	activities := res["activities"].([]interface{})
	require.Len(t, activities, 3)
	for _, a := range activities {
		m := a.(map[string]interface{})
		assert.NotContains(t, m, "price")
		assert.NotContains(t, m, "currency")
	}
}

func TestSearchActivitiesInterestOverlap(t *testing.T) {
	ts := NewToolSet(newFakeCatalog(), false)

	// JSON-string-encoded interests normalize like a real list.
	res := ts.Invoke(context.Background(), ToolSearchActivities, map[string]interface{}{
		"destination": "Bali",
		"interests":   `["beaches","food"]`,
	})
	require.Equal(t, "ok", res["status"])
	activities := res["activities"].([]interface{})
	require.Len(t, activities, 2)
	// Ordered by descending rating.
	assert.Equal(t, "ACT002", activities[0].(map[string]interface{})["activity_id"])

	res = ts.Invoke(context.Background(), ToolSearchActivities, map[string]interface{}{
		"destination": "Bali",
		"interests":   "[broken",
	})
	assert.Equal(t, "error", res["status"])
}

func TestCalculateBudget(t *testing.T) {
	ts := NewToolSet(newFakeCatalog(), false)

	res := ts.Invoke(context.Background(), ToolCalculateBudget, map[string]interface{}{
		"selected_flight_costs": []interface{}{float64(95), float64(62)},
		"selected_hotel_costs":  "[420]",
		// Activity costs must not count even when supplied.
		"selected_activity_costs": []interface{}{float64(500)},
		"budget_ceiling":          float64(2500),
	})
	require.Equal(t, "ok", res["status"])
	assert.Equal(t, float64(577), res["total"])
	assert.Equal(t, float64(1923), res["remaining"])
	assert.Equal(t, true, res["within_budget"])
}

func TestCalculateBudgetNegativeRemaining(t *testing.T) {
	ts := NewToolSet(newFakeCatalog(), false)

	// Overshooting the ceiling is a flag, not an error.
	res := ts.Invoke(context.Background(), ToolCalculateBudget, map[string]interface{}{
		"selected_flight_costs": []interface{}{float64(900)},
		"selected_hotel_costs":  []interface{}{float64(800)},
		"budget_ceiling":        float64(1000),
	})
	require.Equal(t, "ok", res["status"])
	assert.Equal(t, float64(-700), res["remaining"])
	assert.Equal(t, false, res["within_budget"])
	assert.NotEmpty(t, res["warnings"])
}

func TestInvokeUnknownTool(t *testing.T) {
	ts := NewToolSet(newFakeCatalog(), false)

	res := ts.Invoke(context.Background(), "transfer_funds", nil)
	assert.Equal(t, "error", res["status"])
	assert.Contains(t, res["message"], "unknown tool")
}

func TestInvokeMissingRequiredParameter(t *testing.T) {
	ts := NewToolSet(newFakeCatalog(), false)

	res := ts.Invoke(context.Background(), ToolSearchFlights, map[string]interface{}{
		"origin": "Jakarta",
	})
	assert.Equal(t, "error", res["status"])
	assert.Contains(t, res["message"], "destination")
}
