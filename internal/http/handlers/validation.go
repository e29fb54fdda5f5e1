package handlers

import (
	"strings"

	"github.com/motohub/moto-catalog/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateMotorcycle(m MotorcycleRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(m.Brand) == "" {
		errs = append(errs, ValidationError{Field: "Brand", Description: "Brand is required"})
	}
	if strings.TrimSpace(m.Model) == "" {
		errs = append(errs, ValidationError{Field: "Model", Description: "Model is required"})
	}
	if strings.TrimSpace(m.Category) == "" {
		errs = append(errs, ValidationError{Field: "Category", Description: "Category is required"})
	} else if !categoryExists(m.Category) {
		errs = append(errs, ValidationError{Field: "Category", Description: "Category is not part of the taxonomy"})
	}
	if m.Price <= 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if m.EngineCC < 0 {
		errs = append(errs, ValidationError{Field: "EngineCC", Description: "Engine displacement cannot be negative"})
	}
	errs = append(errs, validateColors(m.Colors)...)
	errs = append(errs, validateVariants(m.Variants)...)
	return errs
}

// validateColors enforces the catalog invariant: at least one color, with
// names unique within the motorcycle.
func validateColors(colors []models.Color) []ValidationError {
	errs := []ValidationError{}
	if len(colors) == 0 {
		errs = append(errs, ValidationError{Field: "Colors", Description: "At least one color is required"})
		return errs
	}
	seen := map[string]bool{}
	for _, c := range colors {
		if strings.TrimSpace(c.Name) == "" {
			errs = append(errs, ValidationError{Field: "Colors", Description: "Color name is required"})
			continue
		}
		if seen[c.Name] {
			errs = append(errs, ValidationError{Field: "Colors", Description: "Color names must be unique"})
		}
		seen[c.Name] = true
	}
	return errs
}

// validateVariants enforces the same invariant for variants, plus positive
// variant prices.
func validateVariants(variants []models.Variant) []ValidationError {
	errs := []ValidationError{}
	if len(variants) == 0 {
		errs = append(errs, ValidationError{Field: "Variants", Description: "At least one variant is required"})
		return errs
	}
	seen := map[string]bool{}
	for _, v := range variants {
		if strings.TrimSpace(v.Name) == "" {
			errs = append(errs, ValidationError{Field: "Variants", Description: "Variant name is required"})
			continue
		}
		if seen[v.Name] {
			errs = append(errs, ValidationError{Field: "Variants", Description: "Variant names must be unique"})
		}
		seen[v.Name] = true
		if v.Price <= 0 {
			errs = append(errs, ValidationError{Field: "Variants", Description: "Variant price must be greater than zero"})
		}
	}
	return errs
}

// validatePatch rejects a partial update before anything is applied, so a
// bad submit never half-merges.
func validatePatch(p MotorcyclePatchRequest) []ValidationError {
	errs := []ValidationError{}
	if p.Brand != nil && strings.TrimSpace(*p.Brand) == "" {
		errs = append(errs, ValidationError{Field: "Brand", Description: "Brand cannot be empty"})
	}
	if p.Model != nil && strings.TrimSpace(*p.Model) == "" {
		errs = append(errs, ValidationError{Field: "Model", Description: "Model cannot be empty"})
	}
	if p.Category != nil && !categoryExists(*p.Category) {
		errs = append(errs, ValidationError{Field: "Category", Description: "Category is not part of the taxonomy"})
	}
	if p.Price != nil && *p.Price <= 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if p.Colors != nil {
		errs = append(errs, validateColors(p.Colors)...)
	}
	if p.Variants != nil {
		errs = append(errs, validateVariants(p.Variants)...)
	}
	return errs
}

func categoryExists(id string) bool {
	for _, c := range catalogRepo.Categories() {
		if c.ID == id {
			return true
		}
	}
	return false
}
