package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToolCalls_SingleCall(t *testing.T) {
	text := `I'll look that up for you.

TOOL_CALL: analyze_route_performance(route="Route A")`

	invocations := ParseToolCalls(text)

	require.Len(t, invocations, 1)
	assert.Equal(t, "analyze_route_performance", invocations[0].Name)
	assert.Equal(t, map[string]any{"route": "Route A"}, invocations[0].Args)
}

func TestParseToolCalls_NoToolCall(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain conversation", "Hi! I'm Hermes, your logistics assistant."},
		{"mentions tools without the marker", "I could call analyze_delays() but no tools are needed here."},
		{"empty string", ""},
		{"marker without parentheses", "TOOL_CALL: analyze_delays"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ParseToolCalls(tt.text))
		})
	}
}

func TestParseToolCalls_EmptyArgs(t *testing.T) {
	invocations := ParseToolCalls("TOOL_CALL: get_dataset_summary()")

	require.Len(t, invocations, 1)
	assert.Equal(t, "get_dataset_summary", invocations[0].Name)
	assert.Empty(t, invocations[0].Args)
}

func TestParseToolCalls_ValueCoercion(t *testing.T) {
	invocations := ParseToolCalls(`TOOL_CALL: analyze_by_time_period(month="Oct", year=2024)`)

	require.Len(t, invocations, 1)
	args := invocations[0].Args
	assert.Equal(t, "Oct", args["month"])
	assert.Equal(t, 2024, args["year"])
}

func TestParseToolCalls_NoneBecomesNil(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"lowercase", `TOOL_CALL: analyze_route_performance(route=none)`},
		{"capitalized", `TOOL_CALL: analyze_route_performance(route=None)`},
		{"quoted", `TOOL_CALL: analyze_route_performance(route="None")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invocations := ParseToolCalls(tt.text)
			require.Len(t, invocations, 1)
			require.Contains(t, invocations[0].Args, "route")
			assert.Nil(t, invocations[0].Args["route"])
		})
	}
}

func TestParseToolCalls_SingleQuotedValues(t *testing.T) {
	invocations := ParseToolCalls(`TOOL_CALL: search_shipments(query='warehouse WH1 traffic issues')`)

	require.Len(t, invocations, 1)
	assert.Equal(t, "warehouse WH1 traffic issues", invocations[0].Args["query"])
}

func TestParseToolCalls_MultipleCallsInOrder(t *testing.T) {
	text := `Let me gather the data.

TOOL_CALL: get_dataset_summary()
TOOL_CALL: analyze_delays()
TOOL_CALL: analyze_warehouse_performance(warehouse="WH3")`

	invocations := ParseToolCalls(text)

	require.Len(t, invocations, 3)
	assert.Equal(t, "get_dataset_summary", invocations[0].Name)
	assert.Equal(t, "analyze_delays", invocations[1].Name)
	assert.Equal(t, "analyze_warehouse_performance", invocations[2].Name)
	assert.Equal(t, "WH3", invocations[2].Args["warehouse"])
}

func TestParseToolCalls_ArgsSpanningNewlines(t *testing.T) {
	text := "TOOL_CALL: analyze_by_time_period(start_date=\"2024-10-01\",\n  end_date=\"2024-10-31\")"

	invocations := ParseToolCalls(text)

	require.Len(t, invocations, 1)
	assert.Equal(t, "2024-10-01", invocations[0].Args["start_date"])
	assert.Equal(t, "2024-10-31", invocations[0].Args["end_date"])
}

func TestParseToolCalls_MalformedSpanSkipped(t *testing.T) {
	// The unclosed call's body runs to the next closing parenthesis, so the
	// second call is swallowed into it. One invocation, garbage body, no
	// args extracted, no panic.
	text := `TOOL_CALL: analyze_delays(
TOOL_CALL: get_recommendations()`

	invocations := ParseToolCalls(text)

	require.Len(t, invocations, 1)
	assert.Equal(t, "analyze_delays", invocations[0].Name)
	assert.Empty(t, invocations[0].Args)
}

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{"plain string", "Route A", "Route A"},
		{"quoted string", `"Route A"`, "Route A"},
		{"integer", "2024", 2024},
		{"none lowercase", "none", nil},
		{"none mixed case", "NONE", nil},
		{"negative stays string", "-5", "-5"},
		{"mixed digits and letters", "WH1", "WH1"},
		{"whitespace trimmed", "  Oct  ", "Oct"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coerceValue(tt.raw))
		})
	}
}
