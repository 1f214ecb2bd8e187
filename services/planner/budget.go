package planner

import (
	"fmt"
	"math"
)

// calculateBudget sums the selected flight and hotel costs against the
// declared ceiling. Activity costs are never part of the total, even when a
// caller supplies them: activities are booked directly with providers.
// A negative remaining amount is a flag, not an error.
func (ts *ToolSet) calculateBudget(args map[string]interface{}) (map[string]interface{}, error) {
	flightCosts, err := NumberList("selected_flight_costs", args["selected_flight_costs"])
	if err != nil {
		return nil, err
	}
	hotelCosts, err := NumberList("selected_hotel_costs", args["selected_hotel_costs"])
	if err != nil {
		return nil, err
	}
	ceiling, err := reqNumber(args, "budget_ceiling")
	if err != nil {
		return nil, err
	}

	flightTotal := sum(flightCosts)
	hotelTotal := sum(hotelCosts)
	total := flightTotal + hotelTotal
	remaining := ceiling - total
	withinBudget := total <= ceiling

	warnings := make([]interface{}, 0)
	if !withinBudget {
		warnings = append(warnings, fmt.Sprintf("Total budget exceeded by $%.2f", math.Abs(remaining)))
	}

	ts.observer.ToolInvoked(ToolCalculateBudget,
		map[string]interface{}{"budget_ceiling": ceiling, "total": total},
		fmt.Sprintf("within_budget=%t", withinBudget))

	return map[string]interface{}{
		"total":         round2(total),
		"remaining":     round2(remaining),
		"within_budget": withinBudget,
		"breakdown": map[string]interface{}{
			"flights": round2(flightTotal),
			"hotels":  round2(hotelTotal),
		},
		"warnings": warnings,
		"note":     "Activities not included - book directly with providers",
	}, nil
}

func sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}
	return total
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
