package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/motohub/moto-catalog/internal/repo"
	"github.com/motohub/moto-catalog/internal/session"
	"github.com/motohub/moto-catalog/internal/store"
)

func compareResponse(s *session.Session) CompareResponse {
	return CompareResponse{
		Items:      s.Compare.Items(),
		CanAddMore: s.Compare.CanAddMore(),
	}
}

// GetCompareHandler godoc
// @Summary Current comparison set
// @Tags compare
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} CompareResponse
// @Router /compare [get]
func GetCompareHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)
	writeJSON(w, http.StatusOK, compareResponse(s))
}

// GetCompareTableHandler godoc
// @Summary Side-by-side spec table for the compared motorcycles
// @Tags compare
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {array} store.TableRow
// @Router /compare/table [get]
func GetCompareTableHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)
	writeJSON(w, http.StatusOK, s.Compare.Table())
}

// AddToCompareHandler godoc
// @Summary Add a motorcycle to the comparison set
// @Description The set holds at most three motorcycles; a full set or a duplicate is rejected without changing the set.
// @Tags compare
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param item body CompareAddRequest true "Motorcycle to compare"
// @Success 201 {object} CompareResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Motorcycle not found"
// @Failure 409 {object} CompareAddResult
// @Router /compare [post]
func AddToCompareHandler(w http.ResponseWriter, r *http.Request) {
	var req CompareAddRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.MotorcycleID == "" {
		http.Error(w, "motorcycle_id is required", http.StatusBadRequest)
		return
	}

	motorcycle, err := catalogRepo.GetByID(req.MotorcycleID)
	if err != nil {
		if errors.Is(err, repo.ErrMotorcycleNotFound) {
			http.Error(w, "motorcycle not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch motorcycle", http.StatusInternalServerError)
		return
	}

	s := currentSession(w, r)
	if !s.Compare.Add(motorcycle) {
		reason := "already in compare"
		if !s.Compare.Contains(motorcycle.ID) && len(s.Compare.Items()) >= store.MaxCompareItems {
			reason = "compare limit reached"
		}
		writeJSON(w, http.StatusConflict, CompareAddResult{Added: false, Reason: reason})
		return
	}

	writeJSON(w, http.StatusCreated, compareResponse(s))
}

// RemoveFromCompareHandler godoc
// @Summary Remove a motorcycle from the comparison set
// @Tags compare
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param id path string true "Motorcycle ID"
// @Success 200 {object} CompareResponse
// @Router /compare/{id} [delete]
func RemoveFromCompareHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)
	s.Compare.Remove(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, compareResponse(s))
}

// ClearCompareHandler godoc
// @Summary Empty the comparison set
// @Tags compare
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} CompareResponse
// @Router /compare [delete]
func ClearCompareHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)
	s.Compare.Clear()
	writeJSON(w, http.StatusOK, compareResponse(s))
}
