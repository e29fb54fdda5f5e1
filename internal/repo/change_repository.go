package repo

import "github.com/motohub/moto-catalog/internal/models"

// ChangeRepository records the audit trail of administrative catalog edits.
type ChangeRepository interface {
	Log(motorcycleID, action, actor string) error
	Get(cf ChangeFilter) ([]models.CatalogChange, int, error)
}
