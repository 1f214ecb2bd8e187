package planner

import "sort"

// readCalendar returns availability, blocked dates and blocked events
// intersecting the requested window. Boundary dates are inclusive.
func (ts *ToolSet) readCalendar(args map[string]interface{}) (map[string]interface{}, error) {
	start, err := argString(args, "start_date")
	if err != nil {
		return nil, err
	}
	end, err := argString(args, "end_date")
	if err != nil {
		return nil, err
	}

	startDate, err := Date("start_date", start)
	if err != nil {
		return nil, err
	}
	endDate, err := Date("end_date", end)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, newValidationError("date range", "end_date is before start_date")
	}

	cal := ts.catalog.Calendar()

	// ISO dates compare lexically, so string comparison is the window test.
	var available, blocked []string
	for date, status := range cal.Availability {
		if date < start || date > end {
			continue
		}
		if status == "available" {
			available = append(available, date)
		} else {
			blocked = append(blocked, date)
		}
	}
	sort.Strings(available)
	sort.Strings(blocked)

	// Result values stay within plain-JSON shapes (string-keyed maps and
	// []interface{} slices) so the agent layer can relay them as-is.
	events := make([]interface{}, 0)
	for _, ev := range cal.BlockedEvents {
		if ev.Date >= start && ev.Date <= end {
			events = append(events, asMap(ev))
		}
	}

	ts.observer.ToolInvoked(ToolReadCalendar,
		map[string]interface{}{"start_date": start, "end_date": end},
		summaryCount(len(available), "available dates"))

	return map[string]interface{}{
		"available_dates":      toIfaceSlice(available),
		"blocked_dates":        toIfaceSlice(blocked),
		"blocked_events":       events,
		"vacation_preferences": asMap(cal.VacationPreferences),
	}, nil
}

// readPreferences returns the full preference record.
func (ts *ToolSet) readPreferences(map[string]interface{}) (map[string]interface{}, error) {
	prefs := asMap(ts.catalog.Preferences())
	ts.observer.ToolInvoked(ToolReadPreferences, nil, "preference record")
	return prefs, nil
}

func toIfaceSlice(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
