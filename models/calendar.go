package models

// CalendarEvent is a blocked commitment on the user's calendar.
type CalendarEvent struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Title string `json:"title"`
}

// VacationWindow captures the user's standing vacation constraints.
type VacationWindow struct {
	PreferredMonths []string `json:"preferred_months"`
	MinDays         int      `json:"min_days"`
	MaxDays         int      `json:"max_days"`
}

// Calendar is the user's availability record as stored in the fixtures.
// Availability maps YYYY-MM-DD dates to "available" or "blocked".
type Calendar struct {
	Availability        map[string]string `json:"availability"`
	BlockedEvents       []CalendarEvent   `json:"blocked_events"`
	VacationPreferences VacationWindow    `json:"vacation_preferences"`
}
