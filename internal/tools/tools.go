// Package tools exposes the analysis operations as agent tools. Each tool
// is a constructor pairing registry metadata (name, description, parameter
// hints shown to the model) with a typed request decoded from the parsed
// argument map. Nullable parameters are pointer fields: an argument the
// model passes as none arrives as a nil pointer.
package tools

import (
	"context"

	"github.com/hermes-agent/hermes/internal/agent"
	"github.com/hermes-agent/hermes/internal/analysis"
)

// NewRegistry builds the full tool registry over the analyzer. Registration
// order is fixed; it determines the order tools appear in the system prompt.
func NewRegistry(analyzer *analysis.Analyzer) *agent.Registry {
	return agent.NewRegistry(
		newDatasetSummary(analyzer),
		newStatisticalSummary(analyzer),
		newAnalyzeDelays(analyzer),
		newRoutePerformance(analyzer),
		newWarehousePerformance(analyzer),
		newTimePeriod(analyzer),
		newRecommendations(analyzer),
		newSearchShipments(analyzer),
	)
}

type emptyRequest struct{}

func newDatasetSummary(a *analysis.Analyzer) agent.Tool {
	return agent.NewAdapter(
		"get_dataset_summary",
		"Get an overview summary of the shipments dataset including total shipments, date range, routes, warehouses, and basic statistics.",
		nil,
		func(ctx context.Context, req emptyRequest) (string, error) {
			return a.DatasetSummary(), nil
		},
	)
}

func newStatisticalSummary(a *analysis.Analyzer) agent.Tool {
	return agent.NewAdapter(
		"get_statistical_summary",
		"Get detailed statistical analysis including mean, median, min, max, and standard deviation for delivery times and delays. Use this for statistical questions about median, mean, standard deviation, etc.",
		nil,
		func(ctx context.Context, req emptyRequest) (string, error) {
			return a.StatisticalSummary(), nil
		},
	)
}

func newAnalyzeDelays(a *analysis.Analyzer) agent.Tool {
	return agent.NewAdapter(
		"analyze_delays",
		"Analyze delays in shipments. Shows delay reasons, affected routes, and warehouses.",
		nil,
		func(ctx context.Context, req emptyRequest) (string, error) {
			return a.AnalyzeDelays(), nil
		},
	)
}

type routeRequest struct {
	Route *string `mapstructure:"route"`
}

func newRoutePerformance(a *analysis.Analyzer) agent.Tool {
	return agent.NewAdapter(
		"analyze_route_performance",
		"Analyze performance of a specific route or compare all routes. Shows delivery times, delays, and warehouse usage.",
		[]agent.Param{
			{Name: "route", Hint: "Specific route to analyze (e.g., 'Route A') or None for all routes"},
		},
		func(ctx context.Context, req routeRequest) (string, error) {
			return a.AnalyzeRoutePerformance(req.Route)
		},
	)
}

type warehouseRequest struct {
	Warehouse *string `mapstructure:"warehouse"`
}

func newWarehousePerformance(a *analysis.Analyzer) agent.Tool {
	return agent.NewAdapter(
		"analyze_warehouse_performance",
		"Analyze performance of a specific warehouse or compare all warehouses. Shows delivery times, delays, and route usage.",
		[]agent.Param{
			{Name: "warehouse", Hint: "Specific warehouse to analyze (e.g., 'WH1') or None for all warehouses"},
		},
		func(ctx context.Context, req warehouseRequest) (string, error) {
			return a.AnalyzeWarehousePerformance(req.Warehouse)
		},
	)
}

type timePeriodRequest struct {
	Month     *string `mapstructure:"month"`
	Year      *int    `mapstructure:"year"`
	StartDate *string `mapstructure:"start_date"`
	EndDate   *string `mapstructure:"end_date"`
}

func newTimePeriod(a *analysis.Analyzer) agent.Tool {
	return agent.NewAdapter(
		"analyze_by_time_period",
		"Analyze shipments for a specific time period. Can filter by month (e.g., 'October', 'Oct'), year (e.g., 2024), or date range (start_date and end_date in YYYY-MM-DD format). Shows statistics, delays, and performance for that period.",
		[]agent.Param{
			{Name: "month", Hint: "Month name (full or 3-letter abbreviation, e.g., 'October' or 'Oct')"},
			{Name: "year", Hint: "Year as integer (e.g., 2024)"},
			{Name: "start_date", Hint: "Start date in YYYY-MM-DD format"},
			{Name: "end_date", Hint: "End date in YYYY-MM-DD format"},
		},
		func(ctx context.Context, req timePeriodRequest) (string, error) {
			return a.AnalyzeByTimePeriod(req.Month, req.Year, req.StartDate, req.EndDate)
		},
	)
}

func newRecommendations(a *analysis.Analyzer) agent.Tool {
	return agent.NewAdapter(
		"get_recommendations",
		"Generate actionable recommendations based on comprehensive data analysis. Identifies issues and suggests improvements.",
		nil,
		func(ctx context.Context, req emptyRequest) (string, error) {
			return a.Recommendations(), nil
		},
	)
}

type searchRequest struct {
	Query string `mapstructure:"query"`
}

func newSearchShipments(a *analysis.Analyzer) agent.Tool {
	return agent.NewAdapter(
		"search_shipments",
		"Search for specific shipments based on natural language query (e.g., 'route A with delays', 'warehouse WH1 traffic issues').",
		[]agent.Param{
			{Name: "query", Hint: "Natural language search query"},
		},
		func(ctx context.Context, req searchRequest) (string, error) {
			return a.SearchShipments(req.Query)
		},
	)
}
