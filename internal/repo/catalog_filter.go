package repo

// CatalogFilter is a conjunctive predicate over the catalog. Zero-value and
// nil fields are unconstrained; price and engine bounds are inclusive.
type CatalogFilter struct {
	Brand     string
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	MinEngine *int
	MaxEngine *int
	FuelType  string
	Offset    *int
	Limit     *int
}
