package planner

import (
	"fmt"
	"sort"
	"strings"
)

const (
	maxFlightResults   = 5
	maxHotelResults    = 5
	maxActivityResults = 10
)

// searchFlights filters the catalog by exact origin/destination code match
// after place normalization, optionally by departure date, and returns
// matches ordered by ascending total price. An empty match list is a valid
// result, not an error.
func (ts *ToolSet) searchFlights(args map[string]interface{}) (map[string]interface{}, error) {
	rawOrigin, err := argString(args, "origin")
	if err != nil {
		return nil, err
	}
	rawDestination, err := argString(args, "destination")
	if err != nil {
		return nil, err
	}
	origin := ResolvePlace(rawOrigin)
	destination := ResolvePlace(rawDestination)

	date, hasDate, err := optString(args, "date")
	if err != nil {
		return nil, err
	}
	if hasDate {
		if _, err := Date("date", date); err != nil {
			return nil, err
		}
	}

	passengers := 1
	if n, ok, err := optNumber(args, "passengers"); err != nil {
		return nil, err
	} else if ok {
		if n < 1 {
			return nil, newValidationError("passengers", "must be at least 1")
		}
		passengers = int(n)
	}

	travelClass := "economy"
	if tc, ok, err := optString(args, "travel_class"); err != nil {
		return nil, err
	} else if ok {
		travelClass = strings.ToLower(tc)
	}

	var matches []map[string]interface{}
	for _, f := range ts.catalog.Flights() {
		if f.Origin != origin || f.Destination != destination {
			continue
		}
		if f.Class != travelClass {
			continue
		}
		if hasDate && f.Date != date {
			continue
		}
		m := asMap(f)
		m["passengers"] = float64(passengers)
		m["total_price"] = f.Price * float64(passengers)
		matches = append(matches, m)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i]["total_price"].(float64) < matches[j]["total_price"].(float64)
	})

	params := map[string]interface{}{
		"origin":       origin,
		"destination":  destination,
		"travel_class": travelClass,
		"passengers":   passengers,
	}
	if hasDate {
		params["date"] = date
	}
	ts.observer.ToolInvoked(ToolSearchFlights, params, summaryCount(len(matches), "flights"))

	result := map[string]interface{}{
		"flights":       toList(capResults(matches, maxFlightResults)),
		"total_results": float64(len(matches)),
	}
	if len(matches) == 0 {
		result["message"] = fmt.Sprintf("No flights found from %s to %s", origin, destination)
	}
	return result, nil
}

// searchHotels filters by destination city, an optional nightly-price
// ceiling and an optional rating floor, ordered by ascending price per
// night. When both stay dates are supplied, each result carries the night
// count and total price.
func (ts *ToolSet) searchHotels(args map[string]interface{}) (map[string]interface{}, error) {
	destination, err := argString(args, "destination")
	if err != nil {
		return nil, err
	}

	checkIn, hasCheckIn, err := optString(args, "check_in")
	if err != nil {
		return nil, err
	}
	checkOut, hasCheckOut, err := optString(args, "check_out")
	if err != nil {
		return nil, err
	}

	nights := 0
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

	maxPrice, hasMaxPrice, err := optNumber(args, "max_price")
	if err != nil {
		return nil, err
	}
	minRating, hasMinRating, err := optNumber(args, "min_rating")
	if err != nil {
		return nil, err
	}

	wanted := strings.ToLower(destination)
	var matches []map[string]interface{}
	for _, h := range ts.catalog.Hotels() {
		if !strings.Contains(strings.ToLower(h.DestinationCity), wanted) {
			continue
		}
		if hasMaxPrice && h.PricePerNight > maxPrice {
			continue
		}
		if hasMinRating && h.Rating < minRating {
			continue
		}
		m := asMap(h)
		if nights > 0 {
			m["check_in"] = checkIn
			m["check_out"] = checkOut
			m["nights"] = float64(nights)
			m["total_price"] = h.PricePerNight * float64(nights)
		}
		matches = append(matches, m)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i]["price_per_night"].(float64) < matches[j]["price_per_night"].(float64)
	})

	params := map[string]interface{}{"destination": destination}
	if hasMaxPrice {
		params["max_price"] = maxPrice
	}
	if hasMinRating {
		params["min_rating"] = minRating
	}
	if nights > 0 {
		params["nights"] = nights
	}
	ts.observer.ToolInvoked(ToolSearchHotels, params, summaryCount(len(matches), "hotels"))

	result := map[string]interface{}{
		"hotels":        toList(capResults(matches, maxHotelResults)),
		"total_results": float64(len(matches)),
	}
	if len(matches) == 0 {
		result["message"] = fmt.Sprintf("No hotels found in %s meeting criteria", destination)
	}
	return result, nil
}

// searchActivities filters by destination and, when interests are given, by
// any overlap with the activity's tag set. Returned records never carry
// price or currency fields: activities have no booking path, so price data
// is stripped even if a fixture carries it.
func (ts *ToolSet) searchActivities(args map[string]interface{}) (map[string]interface{}, error) {
	destination, err := argString(args, "destination")
	if err != nil {
		return nil, err
	}
	interests, err := StringList("interests", args["interests"])
	if err != nil {
		return nil, err
	}

	wantedTags := make(map[string]bool, len(interests))
	for _, in := range interests {
		wantedTags[strings.ToLower(strings.TrimSpace(in))] = true
	}

	wanted := strings.ToLower(destination)
	var matches []map[string]interface{}
	for _, a := range ts.catalog.Activities() {
		if !strings.Contains(strings.ToLower(a.DestinationCity), wanted) {
			continue
		}
		if len(wantedTags) > 0 && !tagsOverlap(a.Tags, a.Category, wantedTags) {
			continue
		}
		m := asMap(a)
		delete(m, "price")
		delete(m, "currency")
		matches = append(matches, m)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i]["rating"].(float64) > matches[j]["rating"].(float64)
	})

	ts.observer.ToolInvoked(ToolSearchActivities,
		map[string]interface{}{"destination": destination, "interests": interests},
		summaryCount(len(matches), "activities"))

	result := map[string]interface{}{
		"activities":    toList(capResults(matches, maxActivityResults)),
		"total_results": float64(len(matches)),
	}
	if len(matches) == 0 {
		result["message"] = fmt.Sprintf("No activities found in %s", destination)
	}
	return result, nil
}

func tagsOverlap(tags []string, category string, wanted map[string]bool) bool {
	if wanted[strings.ToLower(category)] {
		return true
	}
	for _, t := range tags {
		if wanted[strings.ToLower(t)] {
			return true
		}
	}
	return false
}

func capResults(in []map[string]interface{}, limit int) []map[string]interface{} {
	if len(in) > limit {
		return in[:limit]
	}
	return in
}

func toList(in []map[string]interface{}) []interface{} {
	out := make([]interface{}, len(in))
	for i, m := range in {
		out[i] = m
	}
	return out
}

func summaryCount(n int, noun string) string {
	return fmt.Sprintf("%d %s", n, noun)
}
