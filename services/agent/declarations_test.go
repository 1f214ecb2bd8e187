package agent

import (
	"testing"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/services/planner"
)

func TestDeclarationsCoverEveryCapability(t *testing.T) {
	specs := planner.Specs()
	tools := Declarations(specs)

	require.Len(t, tools, 1)
	decls := tools[0].FunctionDeclarations
	require.Len(t, decls, len(specs))

	byName := make(map[string]*genai.FunctionDeclaration, len(decls))
	for _, d := range decls {
		byName[d.Name] = d
	}

	flights, ok := byName[planner.ToolSearchFlights]
	require.True(t, ok)
	require.NotNil(t, flights.Parameters)
	assert.Equal(t, genai.TypeString, flights.Parameters.Properties["origin"].Type)
	assert.ElementsMatch(t, []string{"origin", "destination"}, flights.Parameters.Required)

	budget, ok := byName[planner.ToolCalculateBudget]
	require.True(t, ok)
	costs := budget.Parameters.Properties["selected_flight_costs"]
	require.NotNil(t, costs)
	assert.Equal(t, genai.TypeArray, costs.Type)
	require.NotNil(t, costs.Items)
	assert.Equal(t, genai.TypeNumber, costs.Items.Type)

	// Parameterless tools declare no schema at all.
	prefs, ok := byName[planner.ToolReadPreferences]
	require.True(t, ok)
	assert.Nil(t, prefs.Parameters)
}
