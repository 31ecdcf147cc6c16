package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Analyzer produces the text reports the agent's tools return. Every method
// is a pure read over the dataset; malformed input (unknown route or
// warehouse, invalid month or date) is an error for the dispatcher to
// absorb, never a sentinel string.
type Analyzer struct {
	ds *Dataset
}

// NewAnalyzer creates an Analyzer over the dataset.
func NewAnalyzer(ds *Dataset) *Analyzer {
	return &Analyzer{ds: ds}
}

// DatasetSummary reports totals, date range, and headline averages.
func (a *Analyzer) DatasetSummary() string {
	total := a.ds.Len()
	first, last := a.ds.DateRange()
	delayed := a.ds.delayed()

	var b strings.Builder
	b.WriteString("Dataset Summary:\n")
	fmt.Fprintf(&b, "- Total Shipments: %d\n", total)
	fmt.Fprintf(&b, "- Date Range: %s to %s\n", first.Format(dateLayout), last.Format(dateLayout))
	fmt.Fprintf(&b, "- Number of Routes: %d (%s)\n", len(a.ds.Routes()), strings.Join(a.ds.Routes(), ", "))
	fmt.Fprintf(&b, "- Number of Warehouses: %d (%s)\n", len(a.ds.Warehouses()), strings.Join(a.ds.Warehouses(), ", "))
	fmt.Fprintf(&b, "- Average Delivery Time: %.2f days\n", mean(values(a.ds.shipments, deliveryDays)))
	fmt.Fprintf(&b, "- Median Delivery Time: %.2f days\n", median(values(a.ds.shipments, deliveryDays)))
	fmt.Fprintf(&b, "- Average Delay (delayed shipments only): %.2f minutes\n", mean(values(delayed, delayMins)))
	fmt.Fprintf(&b, "- Median Delay (delayed shipments only): %.2f minutes\n", median(values(delayed, delayMins)))
	fmt.Fprintf(&b, "- Shipments with Delays: %d (%.1f%%)", len(delayed), percent(len(delayed), total))
	return b.String()
}

// StatisticalSummary reports mean/median/min/max/stddev for delivery times
// and delays.
func (a *Analyzer) StatisticalSummary() string {
	delivery := values(a.ds.shipments, deliveryDays)
	delayed := a.ds.delayed()
	delays := values(delayed, delayMins)

	var b strings.Builder
	b.WriteString("Statistical Summary:\n\n")
	b.WriteString("Delivery Time Statistics:\n")
	writeStats(&b, delivery, "days", 2)

	b.WriteString("\nDelay Statistics (delayed shipments only):\n")
	writeStats(&b, delays, "minutes", 1)
	fmt.Fprintf(&b, "- Count: %d shipments (%.1f%%)\n", len(delayed), percent(len(delayed), a.ds.Len()))
	return b.String()
}

func writeStats(b *strings.Builder, xs []float64, unit string, prec int) {
	min, max := minMax(xs)
	fmt.Fprintf(b, "- Mean: %.*f %s\n", prec, mean(xs), unit)
	fmt.Fprintf(b, "- Median: %.*f %s\n", prec, median(xs), unit)
	fmt.Fprintf(b, "- Min: %.*f %s\n", prec, min, unit)
	fmt.Fprintf(b, "- Max: %.*f %s\n", prec, max, unit)
	fmt.Fprintf(b, "- Standard Deviation: %.*f %s\n", prec, stddev(xs), unit)
}

// AnalyzeDelays reports the delayed share, top delay reasons, and the
// routes and warehouses with the most delays.
func (a *Analyzer) AnalyzeDelays() string {
	delayed := a.ds.delayed()
	if len(delayed) == 0 {
		return "No delays found above 0 minutes."
	}

	delays := values(delayed, delayMins)
	_, maxDelay := minMax(delays)

	var b strings.Builder
	b.WriteString("Delay Analysis (> 0 minutes):\n\n")
	fmt.Fprintf(&b, "Total Delayed Shipments: %d (%.1f%%)\n", len(delayed), percent(len(delayed), a.ds.Len()))
	fmt.Fprintf(&b, "Average Delay: %.1f minutes\n", mean(delays))
	fmt.Fprintf(&b, "Maximum Delay: %.0f minutes\n", maxDelay)

	b.WriteString("\nTop Delay Reasons:\n")
	for _, c := range top(countBy(delayed, byReason), 5) {
		fmt.Fprintf(&b, "- %s: %d occurrences (%.1f%%)\n", c.key, c.count, percent(c.count, len(delayed)))
	}

	b.WriteString("\nRoutes with Most Delays:\n")
	for _, c := range top(countBy(delayed, byRoute), 3) {
		fmt.Fprintf(&b, "- %s: %d delays\n", c.key, c.count)
	}

	b.WriteString("\nWarehouses with Most Delays:\n")
	for _, c := range top(countBy(delayed, byWarehouse), 3) {
		fmt.Fprintf(&b, "- %s: %d delays\n", c.key, c.count)
	}
	return b.String()
}

// AnalyzeRoutePerformance reports on a single route, or compares all routes
// when route is nil. An unknown route is an error.
func (a *Analyzer) AnalyzeRoutePerformance(route *string) (string, error) {
	if route != nil {
		return a.groupDetail("route", *route, byRoute, byWarehouse, "Warehouses Used", a.ds.Routes())
	}
	return a.groupComparison("Route", byRoute), nil
}

// AnalyzeWarehousePerformance reports on a single warehouse, or compares
// all warehouses when warehouse is nil. An unknown warehouse is an error.
func (a *Analyzer) AnalyzeWarehousePerformance(warehouse *string) (string, error) {
	if warehouse != nil {
		report, err := a.groupDetail("warehouse", *warehouse, byWarehouse, byRoute, "Routes Used", a.ds.Warehouses())
		if err != nil {
			return "", err
		}

		// Warehouse detail additionally lists its top delay reasons.
		members := a.ds.filter(func(s Shipment) bool { return s.Warehouse == *warehouse && s.DelayReason != "None" })
		if len(members) > 0 {
			var b strings.Builder
			b.WriteString(report)
			b.WriteString("\nTop Delay Reasons:\n")
			for _, c := range top(countBy(members, byReason), 3) {
				fmt.Fprintf(&b, "- %s: %d times\n", c.key, c.count)
			}
			report = b.String()
		}
		return report, nil
	}
	return a.groupComparison("Warehouse", byWarehouse), nil
}

// groupDetail builds the single-group report shared by route and warehouse
// analysis: volume, delays, delivery time, and the usage breakdown of the
// counterpart dimension.
func (a *Analyzer) groupDetail(kind, name string, key, counterpart func(Shipment) string, breakdownTitle string, known []string) (string, error) {
	members := a.ds.filter(func(s Shipment) bool { return key(s) == name })
	if len(members) == 0 {
		return "", fmt.Errorf("no data found for %s %q; available: %s", kind, name, strings.Join(known, ", "))
	}

	delayed := make([]Shipment, 0, len(members))
	for _, s := range members {
		if s.DelayMinutes > 0 {
			delayed = append(delayed, s)
		}
	}
	avgDelay := 0.0
	if len(delayed) > 0 {
		avgDelay = mean(values(delayed, delayMins))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Performance Analysis for %s:\n\n", name)
	fmt.Fprintf(&b, "Total Shipments: %d\n", len(members))
	fmt.Fprintf(&b, "Delayed Shipments: %d (%.1f%%)\n", len(delayed), percent(len(delayed), len(members)))
	fmt.Fprintf(&b, "Average Delivery Time: %.2f days\n", mean(values(members, deliveryDays)))
	fmt.Fprintf(&b, "Average Delay (delayed only): %.1f minutes\n", avgDelay)

	fmt.Fprintf(&b, "\n%s:\n", breakdownTitle)
	for _, c := range countBy(members, counterpart) {
		fmt.Fprintf(&b, "- %s: %d shipments\n", c.key, c.count)
	}
	return b.String(), nil
}

// groupComparison builds the all-groups table shared by route and warehouse
// comparison, sorted by average delivery time.
func (a *Analyzer) groupComparison(kind string, key func(Shipment) string) string {
	avgDelivery := meanBy(a.ds.shipments, key, deliveryDays)
	totals := map[string]int{}
	for _, s := range a.ds.shipments {
		totals[key(s)]++
	}
	delayed := a.ds.delayed()
	avgDelays := meanBy(delayed, key, delayMins)
	delayedCounts := map[string]int{}
	for _, s := range delayed {
		delayedCounts[key(s)]++
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if avgDelivery[names[i]] != avgDelivery[names[j]] {
			return avgDelivery[names[i]] < avgDelivery[names[j]]
		}
		return names[i] < names[j]
	})

	var b strings.Builder
	fmt.Fprintf(&b, "%s Performance Comparison:\n\n", kind)
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %.2f days avg delivery | %d shipments | %d delayed | %.2f min avg delay (delayed only)\n",
			name, avgDelivery[name], totals[name], delayedCounts[name], avgDelays[name])
	}

	best, worst := names[0], names[len(names)-1]
	fmt.Fprintf(&b, "\nBest Performing %s: %s (%.2f days avg)\n", kind, best, avgDelivery[best])
	fmt.Fprintf(&b, "Worst Performing %s: %s (%.2f days avg)", kind, worst, avgDelivery[worst])
	return b.String()
}

// Recommendations derives actionable suggestions from delay hotspots.
func (a *Analyzer) Recommendations() string {
	var recs []string

	withReason := a.ds.filter(func(s Shipment) bool { return s.DelayReason != "None" })
	if reasons := countBy(withReason, byReason); len(reasons) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Priority Issue: '%s' is the leading cause of delays (%d occurrences). Consider implementing mitigation strategies.",
			reasons[0].key, reasons[0].count))
	}

	delayed := a.ds.delayed()
	if len(delayed) > 0 {
		overallAvg := mean(values(delayed, delayMins))

		if worst, avg := worstBy(delayed, byRoute); avg > overallAvg {
			recs = append(recs, fmt.Sprintf(
				"Route Optimization: %s has the highest average delay (%.1f min). Review route planning and consider alternatives.",
				worst, avg))
		}

		if worst, avg := worstBy(delayed, byWarehouse); avg > overallAvg {
			whReasons := countBy(a.ds.filter(func(s Shipment) bool {
				return s.Warehouse == worst && s.DelayReason != "None"
			}), byReason)
			topReason := "Unknown"
			if len(whReasons) > 0 {
				topReason = whReasons[0].key
			}
			recs = append(recs, fmt.Sprintf(
				"Warehouse Focus: %s has the highest average delay (%.1f min), mainly due to '%s'. Address capacity or operational issues.",
				worst, avg, topReason))
		}

		// Trend check over the trailing 30 days of data.
		_, last := a.ds.DateRange()
		cutoff := last.AddDate(0, 0, -30)
		recent := a.ds.filter(func(s Shipment) bool { return !s.Date.Before(cutoff) })
		if len(recent) > 0 {
			recentRate := rateDelayed(recent)
			overallRate := rateDelayed(a.ds.shipments)
			if overallRate > 0 && recentRate > overallRate*1.2 {
				recs = append(recs, fmt.Sprintf(
					"Trend Alert: Recent delays are %.0f%% higher than average. Investigate recent changes in operations.",
					(recentRate/overallRate-1)*100))
			}
		}

		bestRoute, _ := bestBy(delayed, byRoute)
		bestWh, _ := bestBy(delayed, byWarehouse)
		recs = append(recs, fmt.Sprintf(
			"Best Practices: Study %s and %s performance to identify success factors for replication.",
			bestRoute, bestWh))
	}

	if len(recs) == 0 {
		return "No delays in the dataset; no recommendations to make."
	}
	return strings.Join(recs, "\n\n")
}

// AnalyzeByTimePeriod filters shipments by month name, year, and/or a
// YYYY-MM-DD date range, then reports statistics for the period.
func (a *Analyzer) AnalyzeByTimePeriod(month *string, year *int, startDate, endDate *string) (string, error) {
	filtered := a.ds.shipments
	var periodDesc string

	if month != nil {
		monthNum, ok := monthNumber(*month)
		if !ok {
			return "", fmt.Errorf("invalid month %q: use full name or 3-letter abbreviation", *month)
		}
		filtered = keep(filtered, func(s Shipment) bool { return s.Date.Month() == monthNum })
		periodDesc = capitalize(*month)
	}

	if year != nil {
		filtered = keep(filtered, func(s Shipment) bool { return s.Date.Year() == *year })
		if periodDesc != "" {
			periodDesc = fmt.Sprintf("%s %d", periodDesc, *year)
		} else {
			periodDesc = fmt.Sprintf("%d", *year)
		}
	}

	if startDate != nil {
		start, err := time.Parse(dateLayout, *startDate)
		if err != nil {
			return "", fmt.Errorf("invalid start_date %q: expected YYYY-MM-DD", *startDate)
		}
		filtered = keep(filtered, func(s Shipment) bool { return !s.Date.Before(start) })
		periodDesc = fmt.Sprintf("from %s", *startDate)
	}

	if endDate != nil {
		end, err := time.Parse(dateLayout, *endDate)
		if err != nil {
			return "", fmt.Errorf("invalid end_date %q: expected YYYY-MM-DD", *endDate)
		}
		filtered = keep(filtered, func(s Shipment) bool { return !s.Date.After(end) })
		if periodDesc != "" {
			periodDesc = fmt.Sprintf("%s to %s", periodDesc, *endDate)
		} else {
			periodDesc = fmt.Sprintf("up to %s", *endDate)
		}
	}

	if len(filtered) == 0 {
		return fmt.Sprintf("No shipments found for period: %s", periodDesc), nil
	}

	delayed := keep(filtered, func(s Shipment) bool { return s.DelayMinutes > 0 })

	var b strings.Builder
	fmt.Fprintf(&b, "Time Period Analysis - %s:\n\n", periodDesc)
	fmt.Fprintf(&b, "Total Shipments: %d\n", len(filtered))
	fmt.Fprintf(&b, "Average Delivery Time: %.2f days\n", mean(values(filtered, deliveryDays)))
	fmt.Fprintf(&b, "Average Delay: %.1f minutes\n", mean(values(delayed, delayMins)))
	fmt.Fprintf(&b, "Shipments with Delays: %d (%.1f%%)\n", len(delayed), percent(len(delayed), len(filtered)))

	if len(delayed) > 0 {
		b.WriteString("\nTop Delay Reasons:\n")
		for _, c := range top(countBy(delayed, byReason), 5) {
			fmt.Fprintf(&b, "- %s: %d occurrences (%.1f%%)\n", c.key, c.count, percent(c.count, len(delayed)))
		}

		b.WriteString("\nRoute Performance (sorted by total delay):\n")
		for _, r := range routeDelayTotals(delayed, 5) {
			fmt.Fprintf(&b, "- %s: %d min total delay | %.1f min avg | %d delayed shipments\n",
				r.route, r.totalDelay, r.avgDelay, r.count)
		}
	}
	return b.String(), nil
}

// SearchShipments matches shipments against a free-text query: route and
// warehouse mentions, the word "delay", and known delay-reason keywords.
// At most ten shipments are listed.
func (a *Analyzer) SearchShipments(query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("empty search query")
	}
	q := strings.ToLower(query)
	matched := a.ds.shipments

	for _, route := range a.ds.Routes() {
		if strings.Contains(q, strings.ToLower(route)) {
			matched = keep(matched, func(s Shipment) bool { return s.Route == route })
			break
		}
	}
	for _, wh := range a.ds.Warehouses() {
		if strings.Contains(q, strings.ToLower(wh)) {
			matched = keep(matched, func(s Shipment) bool { return s.Warehouse == wh })
			break
		}
	}
	if strings.Contains(q, "delay") {
		matched = keep(matched, func(s Shipment) bool { return s.DelayMinutes > 0 })
	}
	for keyword, reason := range reasonKeywords {
		if strings.Contains(q, keyword) {
			matched = keep(matched, func(s Shipment) bool { return s.DelayReason == reason })
			break
		}
	}

	if len(matched) == 0 {
		return fmt.Sprintf("No shipments found matching: '%s'", query), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d shipments matching '%s':\n\n", len(matched), query)
	shown := matched
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, s := range shown {
		fmt.Fprintf(&b, "ID %d: %s from %s | Delivered in %.1f days | ", s.ID, s.Route, s.Warehouse, s.DeliveryTime)
		if s.DelayMinutes > 0 {
			fmt.Fprintf(&b, "Delayed %dmin (%s) | ", s.DelayMinutes, s.DelayReason)
		}
		b.WriteString(s.Date.Format(dateLayout))
		b.WriteString("\n")
	}
	if len(matched) > 10 {
		fmt.Fprintf(&b, "\n... and %d more shipments", len(matched)-10)
	}
	return b.String(), nil
}

// reasonKeywords maps query keywords to the delay reasons in the dataset.
var reasonKeywords = map[string]string{
	"traffic":  "Traffic",
	"weather":  "Weather",
	"customs":  "Customs Delay",
	"driver":   "Driver Issue",
	"vehicle":  "Vehicle Breakdown",
	"overload": "Warehouse Overload",
}

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

func monthNumber(name string) (time.Month, bool) {
	m, ok := monthNames[strings.ToLower(name)]
	return m, ok
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func keep(shipments []Shipment, f func(Shipment) bool) []Shipment {
	var out []Shipment
	for _, s := range shipments {
		if f(s) {
			out = append(out, s)
		}
	}
	return out
}

func top(cs []counted, n int) []counted {
	if len(cs) > n {
		return cs[:n]
	}
	return cs
}

// worstBy returns the group with the highest mean delay.
func worstBy(delayed []Shipment, key func(Shipment) string) (string, float64) {
	return extremeBy(delayed, key, func(a, b float64) bool { return a > b })
}

// bestBy returns the group with the lowest mean delay.
func bestBy(delayed []Shipment, key func(Shipment) string) (string, float64) {
	return extremeBy(delayed, key, func(a, b float64) bool { return a < b })
}

func extremeBy(delayed []Shipment, key func(Shipment) string, better func(a, b float64) bool) (string, float64) {
	avgs := meanBy(delayed, key, delayMins)
	names := make([]string, 0, len(avgs))
	for name := range avgs {
		names = append(names, name)
	}
	sort.Strings(names)

	var bestName string
	var bestVal float64
	for i, name := range names {
		if i == 0 || better(avgs[name], bestVal) {
			bestName, bestVal = name, avgs[name]
		}
	}
	return bestName, bestVal
}

func rateDelayed(shipments []Shipment) float64 {
	if len(shipments) == 0 {
		return 0
	}
	n := 0
	for _, s := range shipments {
		if s.DelayMinutes > 0 {
			n++
		}
	}
	return float64(n) / float64(len(shipments))
}

type routeDelayRow struct {
	route      string
	totalDelay int
	avgDelay   float64
	count      int
}

// routeDelayTotals aggregates delayed shipments per route, sorted by total
// delay descending.
func routeDelayTotals(delayed []Shipment, limit int) []routeDelayRow {
	totals := map[string]int{}
	counts := map[string]int{}
	for _, s := range delayed {
		totals[s.Route] += s.DelayMinutes
		counts[s.Route]++
	}

	rows := make([]routeDelayRow, 0, len(totals))
	for route, total := range totals {
		rows = append(rows, routeDelayRow{
			route:      route,
			totalDelay: total,
			avgDelay:   float64(total) / float64(counts[route]),
			count:      counts[route],
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].totalDelay != rows[j].totalDelay {
			return rows[i].totalDelay > rows[j].totalDelay
		}
		return rows[i].route < rows[j].route
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
