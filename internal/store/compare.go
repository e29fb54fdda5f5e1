package store

import (
	"fmt"

	"github.com/motohub/moto-catalog/internal/models"
)

// MaxCompareItems bounds the comparison set.
const MaxCompareItems = 3

// Compare is an ordered, duplicate-free set of at most MaxCompareItems
// motorcycles.
type Compare struct {
	items []models.Motorcycle
}

func NewCompare() *Compare {
	return &Compare{items: []models.Motorcycle{}}
}

// Add appends the motorcycle and reports whether it was accepted. A full
// set or an id already present leaves the set unchanged and returns false.
func (c *Compare) Add(m models.Motorcycle) bool {
	if len(c.items) >= MaxCompareItems {
		return false
	}
	if c.Contains(m.ID) {
		return false
	}
	c.items = append(c.items, m)
	return true
}

// Remove drops the matching entry if present.
func (c *Compare) Remove(motorcycleID string) {
	for i, m := range c.items {
		if m.ID == motorcycleID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Compare) Clear() {
	c.items = []models.Motorcycle{}
}

func (c *Compare) Contains(motorcycleID string) bool {
	for _, m := range c.items {
		if m.ID == motorcycleID {
			return true
		}
	}
	return false
}

// CanAddMore reports whether the set has room for another entry.
func (c *Compare) CanAddMore() bool {
	return len(c.items) < MaxCompareItems
}

// Items returns the compared motorcycles in the order they were added.
func (c *Compare) Items() []models.Motorcycle {
	return c.items
}

// TableRow is one spec row of the side-by-side comparison; Values holds one
// cell per compared motorcycle, in add order.
type TableRow struct {
	Spec   string   `json:"spec"`
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// compareSpecs is the fixed ordered list of spec rows rendered for the
// comparison view.
var compareSpecs = []struct {
	key   string
	label string
	value func(models.Motorcycle) string
}{
	{"power_hp", "Power", func(m models.Motorcycle) string { return fmt.Sprintf("%d hp", m.PowerHP) }},
	{"torque_nm", "Torque", func(m models.Motorcycle) string { return fmt.Sprintf("%d Nm", m.TorqueNM) }},
	{"top_speed", "Top Speed", func(m models.Motorcycle) string { return fmt.Sprintf("%d km/h", m.TopSpeed) }},
	{"engine_cc", "Engine", func(m models.Motorcycle) string { return fmt.Sprintf("%d cc", m.EngineCC) }},
	{"price", "Price", func(m models.Motorcycle) string { return fmt.Sprintf("$%.0f", m.Price) }},
	{"fuel_type", "Fuel Type", func(m models.Motorcycle) string { return m.FuelType }},
	{"transmission", "Transmission", func(m models.Motorcycle) string { return m.Transmission }},
}

// Table renders one row per spec key with one value per compared
// motorcycle.
func (c *Compare) Table() []TableRow {
	rows := make([]TableRow, 0, len(compareSpecs))
	for _, spec := range compareSpecs {
		row := TableRow{Spec: spec.key, Label: spec.label, Values: make([]string, 0, len(c.items))}
		for _, m := range c.items {
			row.Values = append(row.Values, spec.value(m))
		}
		rows = append(rows, row)
	}
	return rows
}
