// Package analysis is the data backend the agent's tools query: a shipment
// dataset loaded once from CSV, and an Analyzer producing text reports over
// it. The dataset is read-only after loading and safe for concurrent reads.
package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"
)

// Shipment is one row of the dataset. DelayReason is "None" for on-time
// shipments, matching the source CSV.
type Shipment struct {
	ID           int
	Date         time.Time
	Route        string
	Warehouse    string
	DeliveryTime float64 // days
	DelayMinutes int
	DelayReason  string
}

// Dataset is the loaded shipment data.
type Dataset struct {
	shipments []Shipment
}

const dateLayout = "2006-01-02"

// LoadDataset reads shipments from a CSV file with a header row containing
// at least: id, date, route, warehouse, delivery_time, delay_minutes,
// delay_reason. Column order is taken from the header, so extra columns are
// ignored.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return ReadDataset(f)
}

// ReadDataset parses CSV shipment data from r.
func ReadDataset(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"id", "date", "route", "warehouse", "delivery_time", "delay_minutes", "delay_reason"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("dataset missing column %q", required)
		}
	}

	var shipments []Shipment
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		line++

		s, err := parseShipment(record, col)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		shipments = append(shipments, s)
	}

	if len(shipments) == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}
	return &Dataset{shipments: shipments}, nil
}

func parseShipment(record []string, col map[string]int) (Shipment, error) {
	id, err := strconv.Atoi(record[col["id"]])
	if err != nil {
		return Shipment{}, fmt.Errorf("bad id %q", record[col["id"]])
	}
	date, err := time.Parse(dateLayout, record[col["date"]])
	if err != nil {
		return Shipment{}, fmt.Errorf("bad date %q", record[col["date"]])
	}
	deliveryTime, err := strconv.ParseFloat(record[col["delivery_time"]], 64)
	if err != nil {
		return Shipment{}, fmt.Errorf("bad delivery_time %q", record[col["delivery_time"]])
	}
	delayMinutes, err := strconv.Atoi(record[col["delay_minutes"]])
	if err != nil {
		return Shipment{}, fmt.Errorf("bad delay_minutes %q", record[col["delay_minutes"]])
	}

	return Shipment{
		ID:           id,
		Date:         date,
		Route:        record[col["route"]],
		Warehouse:    record[col["warehouse"]],
		DeliveryTime: deliveryTime,
		DelayMinutes: delayMinutes,
		DelayReason:  record[col["delay_reason"]],
	}, nil
}

// Len returns the number of shipments.
func (d *Dataset) Len() int { return len(d.shipments) }

// Shipments returns the backing slice; callers treat it as read-only.
func (d *Dataset) Shipments() []Shipment { return d.shipments }

// Routes returns the distinct route names, sorted.
func (d *Dataset) Routes() []string {
	return d.distinct(func(s Shipment) string { return s.Route })
}

// Warehouses returns the distinct warehouse names, sorted.
func (d *Dataset) Warehouses() []string {
	return d.distinct(func(s Shipment) string { return s.Warehouse })
}

func (d *Dataset) distinct(key func(Shipment) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range d.shipments {
		if k := key(s); !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// DateRange returns the earliest and latest shipment dates.
func (d *Dataset) DateRange() (time.Time, time.Time) {
	min, max := d.shipments[0].Date, d.shipments[0].Date
	for _, s := range d.shipments[1:] {
		if s.Date.Before(min) {
			min = s.Date
		}
		if s.Date.After(max) {
			max = s.Date
		}
	}
	return min, max
}

// filter returns the shipments matching keep.
func (d *Dataset) filter(keep func(Shipment) bool) []Shipment {
	var out []Shipment
	for _, s := range d.shipments {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// delayed returns the shipments with a delay above zero minutes.
func (d *Dataset) delayed() []Shipment {
	return d.filter(func(s Shipment) bool { return s.DelayMinutes > 0 })
}
