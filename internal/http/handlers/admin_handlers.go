package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/motohub/moto-catalog/internal/models"
	"github.com/motohub/moto-catalog/internal/repo"
)

func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	role, err := GetRoleFromContext(r)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return false
	}
	if role != "admin" {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

// CreateMotorcycleHandler godoc
// @Summary Add a motorcycle to the catalog
// @Description The id is generated from the normalized brand and model plus a timestamp token.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param motorcycle body MotorcycleRequest true "Motorcycle to add"
// @Success 201 {object} models.Motorcycle
// @Failure 400 {array} ValidationError
// @Failure 403 {string} string "Forbidden"
// @Router /motorcycles [post]
func CreateMotorcycleHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req MotorcycleRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateMotorcycle(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	motorcycle := models.Motorcycle{
		ID:            req.ID,
		Brand:         req.Brand,
		Model:         req.Model,
		Category:      req.Category,
		EngineCC:      req.EngineCC,
		EngineType:    req.EngineType,
		PowerHP:       req.PowerHP,
		TorqueNM:      req.TorqueNM,
		TopSpeed:      req.TopSpeed,
		Mileage:       req.Mileage,
		FuelType:      req.FuelType,
		Transmission:  req.Transmission,
		Price:         req.Price,
		CountryOrigin: req.CountryOrigin,
		LaunchYear:    req.LaunchYear,
		Images:        req.Images,
		Colors:        req.Colors,
		Variants:      req.Variants,
		Description:   req.Description,
		Features:      req.Features,
	}

	created, err := catalogRepo.Create(motorcycle)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "could not create motorcycle: id duplicated", http.StatusConflict)
			return
		}
		http.Error(w, "could not create motorcycle", http.StatusInternalServerError)
		return
	}

	changeRepo.Log(created.ID, "create", GetUsernameFromContext(r))

	writeJSON(w, http.StatusCreated, created)
}

// UpdateMotorcycleHandler godoc
// @Summary Update a motorcycle
// @Description Partial update: absent fields keep their stored values. A malformed payload fails the whole submit; nothing is merged.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Motorcycle ID"
// @Param motorcycle body MotorcyclePatchRequest true "Fields to update"
// @Success 200 {object} models.Motorcycle
// @Failure 400 {array} ValidationError
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /motorcycles/{id} [put]
func UpdateMotorcycleHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	var req MotorcyclePatchRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validatePatch(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	patch := repo.MotorcyclePatch{
		Brand:         req.Brand,
		Model:         req.Model,
		Category:      req.Category,
		EngineCC:      req.EngineCC,
		EngineType:    req.EngineType,
		PowerHP:       req.PowerHP,
		TorqueNM:      req.TorqueNM,
		TopSpeed:      req.TopSpeed,
		Mileage:       req.Mileage,
		FuelType:      req.FuelType,
		Transmission:  req.Transmission,
		Price:         req.Price,
		CountryOrigin: req.CountryOrigin,
		LaunchYear:    req.LaunchYear,
		Images:        req.Images,
		Colors:        req.Colors,
		Variants:      req.Variants,
		Description:   req.Description,
		Features:      req.Features,
	}

	updated, err := catalogRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, repo.ErrMotorcycleNotFound) {
			http.Error(w, "motorcycle not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update motorcycle", http.StatusInternalServerError)
		return
	}

	changeRepo.Log(updated.ID, "update", GetUsernameFromContext(r))

	writeJSON(w, http.StatusOK, updated)
}

// DeleteMotorcycleHandler godoc
// @Summary Delete a motorcycle
// @Description Carts, wishlists and compare sets keep their snapshots; deletion does not evict them.
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Motorcycle ID"
// @Success 204 "Deleted successfully"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /motorcycles/{id} [delete]
func DeleteMotorcycleHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id := chi.URLParam(r, "id")
	if err := catalogRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrMotorcycleNotFound) {
			http.Error(w, "motorcycle not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete motorcycle", http.StatusInternalServerError)
		return
	}

	changeRepo.Log(id, "delete", GetUsernameFromContext(r))

	w.WriteHeader(http.StatusNoContent)
}

// GetCatalogChangesHandler godoc
// @Summary List the catalog change audit trail
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param motorcycle_id query string false "Filter by motorcycle id"
// @Param action query string false "Filter by action"
// @Param since query string false "RFC3339 lower bound"
// @Param until query string false "RFC3339 upper bound"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} CatalogChangesResult
// @Failure 400 {string} string "Invalid query"
// @Failure 403 {string} string "Forbidden"
// @Router /catalog/changes [get]
func GetCatalogChangesHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	q := r.URL.Query()
	filter := repo.ChangeFilter{
		MotorcycleID: q.Get("motorcycle_id"),
		Action:       q.Get("action"),
		Offset:       parseIntPtr(q.Get("offset")),
		Limit:        parseIntPtr(q.Get("limit")),
	}

	if s := q.Get("since"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			http.Error(w, "invalid since timestamp", http.StatusBadRequest)
			return
		}
		filter.Since = &t
	}
	if s := q.Get("until"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			http.Error(w, "invalid until timestamp", http.StatusBadRequest)
			return
		}
		filter.Until = &t
	}

	changes, total, err := changeRepo.Get(filter)
	if err != nil {
		http.Error(w, "could not fetch catalog changes", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, CatalogChangesResult{
		Data: changes,
		Meta: Meta{TotalCount: total},
	})
}
