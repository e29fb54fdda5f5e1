// Package browse combines the browsing filters and sort order into one
// deterministic result list over the catalog.
package browse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/motohub/moto-catalog/internal/models"
)

// Sort keys accepted by a Query. SortFeatured keeps catalog order.
const (
	SortFeatured       = "featured"
	SortPriceAsc       = "price-asc"
	SortPriceDesc      = "price-desc"
	SortPowerDesc      = "power-desc"
	SortLaunchYearDesc = "launch-year-desc"
)

// Query is the full browsing state: free text, taxonomy filters, closed
// price and displacement intervals, and a sort key. Zero-value and nil
// fields are unconstrained.
type Query struct {
	Text     string
	Category string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	MinCC    *int
	MaxCC    *int
	FuelType string
	Sort     string
}

// Result is the ordered outcome of running a Query, with the counts shown
// as "showing N of M".
type Result struct {
	Motorcycles []models.Motorcycle
	Shown       int
	Total       int
}

// matches applies every active constraint conjunctively. The text query
// looks at brand, model and category only; the description is deliberately
// not part of the browsing match (unlike the catalog's standalone search).
func (q Query) matches(m models.Motorcycle) bool {
	if q.Text != "" {
		haystack := strings.ToLower(fmt.Sprintf("%s %s %s", m.Brand, m.Model, m.Category))
		if !strings.Contains(haystack, strings.ToLower(q.Text)) {
			return false
		}
	}
	if q.Category != "" && m.Category != q.Category {
		return false
	}
	if q.Brand != "" && m.Brand != q.Brand {
		return false
	}
	if q.MinPrice != nil && m.Price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && m.Price > *q.MaxPrice {
		return false
	}
	if q.MinCC != nil && m.EngineCC < *q.MinCC {
		return false
	}
	if q.MaxCC != nil && m.EngineCC > *q.MaxCC {
		return false
	}
	if q.FuelType != "" && m.FuelType != q.FuelType {
		return false
	}
	return true
}

// Run filters and sorts the catalog. Sorting is stable: entries that
// compare equal keep their catalog order. The input slice is never
// modified; calling Run twice with the same inputs yields the same output.
func (q Query) Run(catalog []models.Motorcycle) Result {
	filtered := []models.Motorcycle{}
	for _, m := range catalog {
		if q.matches(m) {
			filtered = append(filtered, m)
		}
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortPowerDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].PowerHP > filtered[j].PowerHP })
	case SortLaunchYearDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].LaunchYear > filtered[j].LaunchYear })
	default:
		// featured: catalog order
	}

	return Result{
		Motorcycles: filtered,
		Shown:       len(filtered),
		Total:       len(catalog),
	}
}
