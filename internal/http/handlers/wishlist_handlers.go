package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/motohub/moto-catalog/internal/repo"
)

// GetWishlistHandler godoc
// @Summary Current wishlist in save order
// @Tags wishlist
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {array} models.Motorcycle
// @Router /wishlist [get]
func GetWishlistHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)
	writeJSON(w, http.StatusOK, s.Wishlist.Items())
}

// AddToWishlistHandler godoc
// @Summary Save a motorcycle to the wishlist
// @Description Saving an id already on the list is a no-op.
// @Tags wishlist
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param item body WishlistAddRequest true "Motorcycle to save"
// @Success 201 {array} models.Motorcycle
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Motorcycle not found"
// @Router /wishlist [post]
func AddToWishlistHandler(w http.ResponseWriter, r *http.Request) {
	var req WishlistAddRequest
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
	s.Wishlist.Add(motorcycle)
	writeJSON(w, http.StatusCreated, s.Wishlist.Items())
}

// RemoveFromWishlistHandler godoc
// @Summary Remove a motorcycle from the wishlist
// @Tags wishlist
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param id path string true "Motorcycle ID"
// @Success 200 {array} models.Motorcycle
// @Router /wishlist/{id} [delete]
func RemoveFromWishlistHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)
	s.Wishlist.Remove(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, s.Wishlist.Items())
}

// ClearWishlistHandler godoc
// @Summary Empty the wishlist
// @Tags wishlist
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {array} models.Motorcycle
// @Router /wishlist [delete]
func ClearWishlistHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)
	s.Wishlist.Clear()
	writeJSON(w, http.StatusOK, s.Wishlist.Items())
}

// MoveWishlistToCartHandler godoc
// @Summary Move a saved motorcycle into the cart
// @Description Uses the wishlist snapshot, not a fresh catalog read. Color and variant default to the snapshot's first entries when the body omits them.
// @Tags wishlist
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param id path string true "Motorcycle ID"
// @Param selection body MoveToCartRequest false "Color and variant selection"
// @Success 200 {object} CartResponse
// @Failure 404 {string} string "Not on the wishlist"
// @Router /wishlist/{id}/move-to-cart [post]
func MoveWishlistToCartHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)

	motorcycle, ok := s.Wishlist.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "motorcycle is not on the wishlist", http.StatusNotFound)
		return
	}

	var req MoveToCartRequest
	if r.ContentLength > 0 {
		if err := readJSON(w, r, &req); err != nil {
			http.Error(w, "invalid input", http.StatusBadRequest)
			return
		}
	}
	if req.Color == "" && len(motorcycle.Colors) > 0 {
		req.Color = motorcycle.Colors[0].Name
	}
	if req.Variant == "" && len(motorcycle.Variants) > 0 {
		req.Variant = motorcycle.Variants[0].Name
	}

	s.Cart.Add(motorcycle, req.Color, req.Variant)
	s.Wishlist.Remove(motorcycle.ID)

	writeJSON(w, http.StatusOK, cartResponse(s.Cart))
}
