package repo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/motohub/moto-catalog/internal/models"
)

// ErrMotorcycleNotFound is returned when a motorcycle is not found in the catalog.
var ErrMotorcycleNotFound = errors.New("motorcycle not found")

// ErrDuplicatedValueUnique is returned when an insert violates a uniqueness constraint.
var ErrDuplicatedValueUnique = errors.New("duplicated value violates unique constraint")

// CatalogRepository defines the interface for catalog data operations.
// Reads are pure; mutation is only reachable from the admin surface.
type CatalogRepository interface {
	GetAll() ([]models.Motorcycle, error)
	GetByID(id string) (models.Motorcycle, error)
	ByCategory(categoryID string) ([]models.Motorcycle, error)
	ByBrand(brand string) ([]models.Motorcycle, error)
	Search(query string) ([]models.Motorcycle, error)
	Filter(cf CatalogFilter) ([]models.Motorcycle, int, error)
	Create(m models.Motorcycle) (models.Motorcycle, error)
	Update(id string, patch MotorcyclePatch) (models.Motorcycle, error)
	Delete(id string) error
	Brands() []string
	Categories() []models.Category
}

// MotorcyclePatch carries a partial update. Nil fields are left untouched
// on the stored record; non-nil slices replace the stored slice wholesale.
type MotorcyclePatch struct {
	Brand         *string
	Model         *string
	Category      *string
	EngineCC      *int
	EngineType    *string
	PowerHP       *int
	TorqueNM      *int
	TopSpeed      *int
	Mileage       *string
	FuelType      *string
	Transmission  *string
	Price         *float64
	CountryOrigin *string
	LaunchYear    *int
	Images        []string
	Colors        []models.Color
	Variants      []models.Variant
	Description   *string
	Features      []string
}

func (p MotorcyclePatch) applyTo(m *models.Motorcycle) {
	if p.Brand != nil {
		m.Brand = *p.Brand
	}
	if p.Model != nil {
		m.Model = *p.Model
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.EngineCC != nil {
		m.EngineCC = *p.EngineCC
	}
	if p.EngineType != nil {
		m.EngineType = *p.EngineType
	}
	if p.PowerHP != nil {
		m.PowerHP = *p.PowerHP
	}
	if p.TorqueNM != nil {
		m.TorqueNM = *p.TorqueNM
	}
	if p.TopSpeed != nil {
		m.TopSpeed = *p.TopSpeed
	}
	if p.Mileage != nil {
		m.Mileage = *p.Mileage
	}
	if p.FuelType != nil {
		m.FuelType = *p.FuelType
	}
	if p.Transmission != nil {
		m.Transmission = *p.Transmission
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.CountryOrigin != nil {
		m.CountryOrigin = *p.CountryOrigin
	}
	if p.LaunchYear != nil {
		m.LaunchYear = *p.LaunchYear
	}
	if p.Images != nil {
		m.Images = p.Images
	}
	if p.Colors != nil {
		m.Colors = p.Colors
	}
	if p.Variants != nil {
		m.Variants = p.Variants
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Features != nil {
		m.Features = p.Features
	}
}

// NewMotorcycleID builds an id from the normalized brand and model plus a
// timestamp token so repeated submissions of the same bike stay unique.
func NewMotorcycleID(brand, model string) string {
	return fmt.Sprintf("%s-%s-%d", slugify(brand), slugify(model), time.Now().UnixMilli())
}

func slugify(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), "-")
}
