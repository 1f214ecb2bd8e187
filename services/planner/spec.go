package planner

// Tool names. These are the stable identifiers the agent invokes by.
const (
	ToolReadCalendar     = "read_calendar"
	ToolReadPreferences  = "read_preferences"
	ToolSearchFlights    = "search_flights"
	ToolSearchHotels     = "search_hotels"
	ToolSearchActivities = "search_activities"
	ToolCalculateBudget  = "calculate_budget"
	ToolBookFlight       = "book_flight"
	ToolBookHotel        = "book_hotel"
)

// ParamSpec declares one named tool parameter.
type ParamSpec struct {
	Name        string
	Type        string // "string", "number", "integer" or "array"
	Items       string // element type when Type is "array"
	Description string
	Required    bool
}

// CapabilitySpec declares a tool: its stable name, parameter list, and
// whether invoking it can produce a side effect.
type CapabilitySpec struct {
	Name          string
	Description   string
	Params        []ParamSpec
	SideEffecting bool
}

// Specs returns the declaration of every capability in the tool set. The
// declarations are fixed: they do not depend on the catalog or the
// authorization gate.
func Specs() []CapabilitySpec {
	return []CapabilitySpec{
		{
			Name:        ToolReadCalendar,
			Description: "Retrieve the user's calendar availability and blocked dates for a date range.",
			Params: []ParamSpec{
				{Name: "start_date", Type: "string", Description: "Start date in YYYY-MM-DD format", Required: true},
				{Name: "end_date", Type: "string", Description: "End date in YYYY-MM-DD format", Required: true},
			},
		},
		{
			Name:        ToolReadPreferences,
			Description: "Fetch the user's travel preferences: budget, interests, destinations and accommodation.",
		},
		{
			Name:        ToolSearchFlights,
			Description: "Search available flights. Accepts airport codes (e.g. 'CGK') or city names (e.g. 'Jakarta').",
			Params: []ParamSpec{
				{Name: "origin", Type: "string", Description: "Departure airport code or city name", Required: true},
				{Name: "destination", Type: "string", Description: "Arrival airport code or city name", Required: true},
				{Name: "date", Type: "string", Description: "Optional departure date in YYYY-MM-DD format"},
				{Name: "passengers", Type: "integer", Description: "Number of passengers (default 1)"},
				{Name: "travel_class", Type: "string", Description: "'economy' or 'business' (default 'economy')"},
			},
		},
		{
			Name:        ToolSearchHotels,
			Description: "Search hotels at a destination city.",
			Params: []ParamSpec{
				{Name: "destination", Type: "string", Description: "Destination city name, e.g. 'Bali'", Required: true},
				{Name: "check_in", Type: "string", Description: "Optional check-in date in YYYY-MM-DD format"},
				{Name: "check_out", Type: "string", Description: "Optional check-out date in YYYY-MM-DD format"},
				{Name: "max_price", Type: "number", Description: "Optional maximum price per night"},
				{Name: "min_rating", Type: "number", Description: "Optional minimum hotel rating"},
			},
		},
		{
			Name:        ToolSearchActivities,
			Description: "Find activities and attractions at a destination. Activities are booked directly with providers, not through this assistant.",
			Params: []ParamSpec{
				{Name: "destination", Type: "string", Description: "Destination city name, e.g. 'Bali'", Required: true},
				{Name: "interests", Type: "array", Items: "string", Description: "Optional interest categories, e.g. ['beaches','food']"},
			},
		},
		{
			Name:        ToolCalculateBudget,
			Description: "Sum selected flight and hotel costs against a budget ceiling. Activity costs are never counted.",
			Params: []ParamSpec{
				{Name: "selected_flight_costs", Type: "array", Items: "number", Description: "Costs of the selected flights"},
				{Name: "selected_hotel_costs", Type: "array", Items: "number", Description: "Costs of the selected hotels"},
				{Name: "budget_ceiling", Type: "number", Description: "The declared budget ceiling", Required: true},
			},
		},
		{
			Name:          ToolBookFlight,
			Description:   "Book a flight by its id from search results (e.g. 'FL001'). Requires prior payment authorization.",
			SideEffecting: true,
			Params: []ParamSpec{
				{Name: "flight_id", Type: "string", Description: "Flight id from search results", Required: true},
			},
		},
		{
			Name:          ToolBookHotel,
			Description:   "Book a hotel by its id from search results (e.g. 'HTL001'). Requires prior payment authorization.",
			SideEffecting: true,
			Params: []ParamSpec{
				{Name: "hotel_id", Type: "string", Description: "Hotel id from search results", Required: true},
				{Name: "check_in", Type: "string", Description: "Optional check-in date in YYYY-MM-DD format"},
				{Name: "check_out", Type: "string", Description: "Optional check-out date in YYYY-MM-DD format"},
			},
		},
	}
}
