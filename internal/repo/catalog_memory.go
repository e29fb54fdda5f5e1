package repo

import (
	"strings"

	"github.com/motohub/moto-catalog/internal/models"
)

// InMemoryCatalogRepository is the in-memory implementation of
// CatalogRepository. It owns the canonical motorcycle records for the
// process lifetime; taxonomy lists are fixed at construction.
type InMemoryCatalogRepository struct {
	motorcycles []models.Motorcycle
	categories  []models.Category
	brands      []string
}

// NewInMemoryCatalogRepository creates an empty catalog with the given
// taxonomies.
func NewInMemoryCatalogRepository(categories []models.Category, brands []string) *InMemoryCatalogRepository {
	return &InMemoryCatalogRepository{
		motorcycles: []models.Motorcycle{},
		categories:  categories,
		brands:      brands,
	}
}

func matchesCatalogFilter(m models.Motorcycle, cf CatalogFilter) bool {
	if cf.Brand != "" && m.Brand != cf.Brand {
		return false
	}
	if cf.Category != "" && m.Category != cf.Category {
		return false
	}
	if cf.MinPrice != nil && m.Price < *cf.MinPrice {
		return false
	}
	if cf.MaxPrice != nil && m.Price > *cf.MaxPrice {
		return false
	}
	if cf.MinEngine != nil && m.EngineCC < *cf.MinEngine {
		return false
	}
	if cf.MaxEngine != nil && m.EngineCC > *cf.MaxEngine {
		return false
	}
	if cf.FuelType != "" && m.FuelType != cf.FuelType {
		return false
	}
	return true
}

func (r *InMemoryCatalogRepository) Filter(cf CatalogFilter) ([]models.Motorcycle, int, error) {
	filtered := []models.Motorcycle{}

	for _, m := range r.motorcycles {
		if matchesCatalogFilter(m, cf) {
			filtered = append(filtered, m)
		}
	}

	// If offset is greater than the number of filtered entries, return empty slice
	if cf.Offset != nil && *cf.Offset > len(filtered) {
		return []models.Motorcycle{}, 0, nil
	}

	start := 0
	if cf.Offset != nil {
		start = clamp(*cf.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if cf.Limit != nil && *cf.Limit > 0 {
		end = clamp(start+*cf.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}

// GetAll returns the catalog in catalog order.
func (r *InMemoryCatalogRepository) GetAll() ([]models.Motorcycle, error) {
	return r.motorcycles, nil
}

// GetByID retrieves a motorcycle by its id.
func (r *InMemoryCatalogRepository) GetByID(id string) (models.Motorcycle, error) {
	for _, m := range r.motorcycles {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Motorcycle{}, ErrMotorcycleNotFound
}

// ByCategory returns all motorcycles in the given category, catalog order
// preserved.
func (r *InMemoryCatalogRepository) ByCategory(categoryID string) ([]models.Motorcycle, error) {
	result := []models.Motorcycle{}
	for _, m := range r.motorcycles {
		if m.Category == categoryID {
			result = append(result, m)
		}
	}
	return result, nil
}

// ByBrand returns all motorcycles of the given brand, matched
// case-insensitively.
func (r *InMemoryCatalogRepository) ByBrand(brand string) ([]models.Motorcycle, error) {
	result := []models.Motorcycle{}
	for _, m := range r.motorcycles {
		if strings.EqualFold(m.Brand, brand) {
			result = append(result, m)
		}
	}
	return result, nil
}

// Search matches the query as a case-insensitive substring of brand, model,
// category id or description. An empty query matches everything.
func (r *InMemoryCatalogRepository) Search(query string) ([]models.Motorcycle, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.motorcycles, nil
	}

	result := []models.Motorcycle{}
	for _, m := range r.motorcycles {
		if strings.Contains(strings.ToLower(m.Brand), q) ||
			strings.Contains(strings.ToLower(m.Model), q) ||
			strings.Contains(strings.ToLower(m.Category), q) ||
			strings.Contains(strings.ToLower(m.Description), q) {
			result = append(result, m)
		}
	}
	return result, nil
}

// Create appends a new motorcycle, generating an id when none is supplied.
func (r *InMemoryCatalogRepository) Create(m models.Motorcycle) (models.Motorcycle, error) {
	if m.ID == "" {
		m.ID = NewMotorcycleID(m.Brand, m.Model)
	}
	for _, existing := range r.motorcycles {
		if existing.ID == m.ID {
			return models.Motorcycle{}, ErrDuplicatedValueUnique
		}
	}
	r.motorcycles = append(r.motorcycles, m)
	return m, nil
}

// Update merges the patch into the stored record, leaving unset fields
// untouched.
func (r *InMemoryCatalogRepository) Update(id string, patch MotorcyclePatch) (models.Motorcycle, error) {
	for i, m := range r.motorcycles {
		if m.ID == id {
			patch.applyTo(&m)
			r.motorcycles[i] = m
			return m, nil
		}
	}
	return models.Motorcycle{}, ErrMotorcycleNotFound
}

// Delete removes a motorcycle from the catalog by its id.
func (r *InMemoryCatalogRepository) Delete(id string) error {
	for i, m := range r.motorcycles {
		if m.ID == id {
			r.motorcycles = append(r.motorcycles[:i], r.motorcycles[i+1:]...)
			return nil
		}
	}
	return ErrMotorcycleNotFound
}

func (r *InMemoryCatalogRepository) Brands() []string {
	return r.brands
}

func (r *InMemoryCatalogRepository) Categories() []models.Category {
	return r.categories
}

func (r *InMemoryCatalogRepository) Clear() {
	r.motorcycles = []models.Motorcycle{}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
