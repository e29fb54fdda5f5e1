package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/motohub/moto-catalog/internal/repo"
	"github.com/motohub/moto-catalog/internal/store"
)

func cartResponse(cart *store.Cart) CartResponse {
	return CartResponse{
		Items:      cart.Lines(),
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
		Summary:    cart.Summary(),
	}
}

// GetCartHandler godoc
// @Summary Current cart contents and totals
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Session id; a new session is created when absent"
// @Success 200 {object} CartResponse
// @Router /cart [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)
	writeJSON(w, http.StatusOK, cartResponse(s.Cart))
}

// AddToCartHandler godoc
// @Summary Add one unit of a motorcycle to the cart
// @Description Repeats with the same (id, color, variant) increment the existing line.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param item body AddToCartRequest true "Motorcycle, color and variant"
// @Success 201 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Motorcycle not found"
// @Router /cart/items [post]
func AddToCartHandler(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
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
	s.Cart.Add(motorcycle, req.Color, req.Variant)
	writeJSON(w, http.StatusCreated, cartResponse(s.Cart))
}

// UpdateCartQuantityHandler godoc
// @Summary Set the quantity for a motorcycle in the cart
// @Description A quantity of zero or less removes the line(s) instead.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param id path string true "Motorcycle ID"
// @Param quantity body QuantityUpdateRequest true "New quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Router /cart/items/{id} [put]
func UpdateCartQuantityHandler(w http.ResponseWriter, r *http.Request) {
	var req QuantityUpdateRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	s := currentSession(w, r)
	s.Cart.UpdateQuantity(chi.URLParam(r, "id"), req.Quantity)
	writeJSON(w, http.StatusOK, cartResponse(s.Cart))
}

// RemoveFromCartHandler godoc
// @Summary Remove a motorcycle from the cart
// @Description Removes every line for the motorcycle id, across all color and variant combinations.
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param id path string true "Motorcycle ID"
// @Success 200 {object} CartResponse
// @Router /cart/items/{id} [delete]
func RemoveFromCartHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)
	s.Cart.Remove(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, cartResponse(s.Cart))
}

// ClearCartHandler godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} CartResponse
// @Router /cart [delete]
func ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)
	s.Cart.Clear()
	writeJSON(w, http.StatusOK, cartResponse(s.Cart))
}

// ApplyCouponHandler godoc
// @Summary Apply a coupon code to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param coupon body CouponRequest true "Coupon code"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 422 {string} string "Unknown coupon code"
// @Router /cart/coupon [post]
func ApplyCouponHandler(w http.ResponseWriter, r *http.Request) {
	var req CouponRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	s := currentSession(w, r)
	if !s.Cart.ApplyCoupon(req.Code) {
		http.Error(w, "unknown coupon code", http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse(s.Cart))
}

// CheckoutHandler godoc
// @Summary Place the order
// @Description Computes the order total and clears the cart. No payment is processed.
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} CheckoutResponse
// @Failure 400 {string} string "Cart is empty"
// @Router /checkout [post]
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	s := currentSession(w, r)
	if s.Cart.TotalItems() == 0 {
		http.Error(w, "cart is empty", http.StatusBadRequest)
		return
	}

	resp := CheckoutResponse{
		OrderRef: uuid.NewString(),
		Summary:  s.Cart.Summary(),
		PlacedAt: time.Now().Format(time.RFC3339),
	}
	s.Cart.Clear()

	writeJSON(w, http.StatusOK, resp)
}
