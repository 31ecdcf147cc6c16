package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary statistics over a sample. gonum's estimators expect sorted input
// for quantiles, so the helpers sort a copy.

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

func minMax(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	min, max := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max
}

// counted pairs a group key with its tally, for "top N" listings.
type counted struct {
	key   string
	count int
}

// countBy tallies shipments by key, returned in descending count order with
// ties broken by key so report output is deterministic.
func countBy(shipments []Shipment, key func(Shipment) string) []counted {
	tally := map[string]int{}
	for _, s := range shipments {
		tally[key(s)]++
	}
	out := make([]counted, 0, len(tally))
	for k, n := range tally {
		out = append(out, counted{key: k, count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}

// meanBy computes the mean of value over shipments grouped by key.
func meanBy(shipments []Shipment, key func(Shipment) string, value func(Shipment) float64) map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, s := range shipments {
		k := key(s)
		sums[k] += value(s)
		counts[k]++
	}
	out := make(map[string]float64, len(sums))
	for k := range sums {
		out[k] = sums[k] / float64(counts[k])
	}
	return out
}

func values(shipments []Shipment, value func(Shipment) float64) []float64 {
	out := make([]float64, len(shipments))
	for i, s := range shipments {
		out[i] = value(s)
	}
	return out
}

func deliveryDays(s Shipment) float64 { return s.DeliveryTime }
func delayMins(s Shipment) float64    { return float64(s.DelayMinutes) }
func byRoute(s Shipment) string       { return s.Route }
func byWarehouse(s Shipment) string   { return s.Warehouse }
func byReason(s Shipment) string      { return s.DelayReason }
