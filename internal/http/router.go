package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/motohub/moto-catalog/internal/http/handlers"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	// Catalog reads
	r.Get("/motorcycles", handlers.GetMotorcyclesHandler)
	r.Get("/motorcycles/browse", handlers.BrowseMotorcyclesHandler)
	r.Get("/motorcycles/search", handlers.SearchMotorcyclesHandler)
	r.Get("/motorcycles/filter", handlers.FilterMotorcyclesHandler)
	r.Get("/motorcycles/{id}", handlers.GetMotorcycleByIDHandler)
	r.Get("/categories", handlers.GetCategoriesHandler)
	r.Get("/brands", handlers.GetBrandsHandler)
	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

	// Session-scoped shopping state
	r.Get("/cart", handlers.GetCartHandler)
	r.Post("/cart/items", handlers.AddToCartHandler)
	r.Put("/cart/items/{id}", handlers.UpdateCartQuantityHandler)
	r.Delete("/cart/items/{id}", handlers.RemoveFromCartHandler)
	r.Delete("/cart", handlers.ClearCartHandler)
	r.Post("/cart/coupon", handlers.ApplyCouponHandler)
	r.Post("/checkout", handlers.CheckoutHandler)

	r.Get("/compare", handlers.GetCompareHandler)
	r.Get("/compare/table", handlers.GetCompareTableHandler)
	r.Post("/compare", handlers.AddToCompareHandler)
	r.Delete("/compare/{id}", handlers.RemoveFromCompareHandler)
	r.Delete("/compare", handlers.ClearCompareHandler)

	r.Get("/wishlist", handlers.GetWishlistHandler)
	r.Post("/wishlist", handlers.AddToWishlistHandler)
	r.Delete("/wishlist/{id}", handlers.RemoveFromWishlistHandler)
	r.Delete("/wishlist", handlers.ClearWishlistHandler)
	r.Post("/wishlist/{id}/move-to-cart", handlers.MoveWishlistToCartHandler)

	// Auth
	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/login", handlers.LoginHandler)
		r.Post("/refresh", handlers.RefreshHandler)
	})

	// Admin catalog mutation
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Post("/motorcycles", handlers.CreateMotorcycleHandler)
		r.Put("/motorcycles/{id}", handlers.UpdateMotorcycleHandler)
		r.Delete("/motorcycles/{id}", handlers.DeleteMotorcycleHandler)
		r.Post("/motorcycles/import", handlers.ImportMotorcyclesHandler)
		r.Get("/catalog/changes", handlers.GetCatalogChangesHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
