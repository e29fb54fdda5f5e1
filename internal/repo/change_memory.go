package repo

import (
	"time"

	"github.com/motohub/moto-catalog/internal/models"
)

type InMemoryChangeRepository struct {
	changes []models.CatalogChange
}

func NewInMemoryChangeRepository() *InMemoryChangeRepository {
	return &InMemoryChangeRepository{
		changes: []models.CatalogChange{},
	}
}

// Log appends a new catalog change entry.
func (r *InMemoryChangeRepository) Log(motorcycleID, action, actor string) error {
	change := models.CatalogChange{
		ID:           len(r.changes) + 1,
		MotorcycleID: motorcycleID,
		Action:       action,
		Actor:        actor,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}
	r.changes = append(r.changes, change)
	return nil
}

// Get returns change entries matching the filter, optionally restricted by
// date range and paginated.
func (r *InMemoryChangeRepository) Get(cf ChangeFilter) ([]models.CatalogChange, int, error) {
	var filtered []models.CatalogChange
	for _, c := range r.changes {
		if cf.MotorcycleID != "" && c.MotorcycleID != cf.MotorcycleID {
			continue
		}
		if cf.Action != "" && c.Action != cf.Action {
			continue
		}
		if (cf.Since != nil && c.CreatedAt < cf.Since.Format(time.RFC3339)) ||
			(cf.Until != nil && c.CreatedAt > cf.Until.Format(time.RFC3339)) {
			continue
		}
		filtered = append(filtered, c)
	}

	if cf.Offset != nil && *cf.Offset > len(filtered) {
		return nil, 0, nil
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

func (r *InMemoryChangeRepository) Clear() {
	r.changes = []models.CatalogChange{}
}
