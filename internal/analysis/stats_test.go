package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanMedianEmpty(t *testing.T) {
	assert.Equal(t, 0.0, mean(nil))
	assert.Equal(t, 0.0, median(nil))
	assert.Equal(t, 0.0, stddev(nil))
	assert.Equal(t, 0.0, stddev([]float64{5}))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 60.0, median([]float64{90, 30, 60}))
	assert.Equal(t, 3.0, median([]float64{2, 3, 3, 4, 5, 6}))
}

func TestMinMax(t *testing.T) {
	min, max := minMax([]float64{4, 1, 9, 2})
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 9.0, max)

	min, max = minMax(nil)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 0.0, max)
}

func TestStddev(t *testing.T) {
	assert.InDelta(t, 30.0, stddev([]float64{30, 60, 90}), 1e-9)
}

func TestCountBy_DescendingWithTiesByKey(t *testing.T) {
	shipments := []Shipment{
		{Route: "Route B"},
		{Route: "Route A"},
		{Route: "Route B"},
		{Route: "Route C"},
		{Route: "Route A"},
	}

	got := countBy(shipments, byRoute)

	assert.Equal(t, []counted{
		{key: "Route A", count: 2},
		{key: "Route B", count: 2},
		{key: "Route C", count: 1},
	}, got)
}

func TestMeanBy(t *testing.T) {
	shipments := []Shipment{
		{Route: "Route A", DelayMinutes: 30},
		{Route: "Route A", DelayMinutes: 90},
		{Route: "Route B", DelayMinutes: 60},
	}

	got := meanBy(shipments, byRoute, delayMins)

	assert.InDelta(t, 60.0, got["Route A"], 1e-9)
	assert.InDelta(t, 60.0, got["Route B"], 1e-9)
}
