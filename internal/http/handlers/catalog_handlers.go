package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/motohub/moto-catalog/internal/browse"
	"github.com/motohub/moto-catalog/internal/repo"
)

// GetMotorcyclesHandler godoc
// @Summary List the full catalog in catalog order
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Motorcycle
// @Failure 500 {string} string "Internal error"
// @Router /motorcycles [get]
func GetMotorcyclesHandler(w http.ResponseWriter, r *http.Request) {
	motorcycles, err := catalogRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch motorcycles", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(motorcycles)
}

// GetMotorcycleByIDHandler godoc
// @Summary Get a motorcycle by id
// @Tags catalog
// @Produce json
// @Param id path string true "Motorcycle ID"
// @Success 200 {object} models.Motorcycle
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /motorcycles/{id} [get]
func GetMotorcycleByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	motorcycle, err := catalogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrMotorcycleNotFound) {
			http.Error(w, "motorcycle not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch motorcycle", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(motorcycle)
}

// SearchMotorcyclesHandler godoc
// @Summary Full-text catalog search
// @Description Case-insensitive substring match over brand, model, category and description. An empty query matches everything.
// @Tags catalog
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} models.Motorcycle
// @Failure 500 {string} string "Internal error"
// @Router /motorcycles/search [get]
func SearchMotorcyclesHandler(w http.ResponseWriter, r *http.Request) {
	motorcycles, err := catalogRepo.Search(r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, "could not search motorcycles", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(motorcycles)
}

// FilterMotorcyclesHandler godoc
// @Summary Filter and paginate the catalog
// @Tags catalog
// @Produce json
// @Param brand query string false "Exact brand"
// @Param category query string false "Category id"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param minEngine query int false "Minimum displacement (inclusive)"
// @Param maxEngine query int false "Maximum displacement (inclusive)"
// @Param fuelType query string false "Exact fuel type"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} MotorcyclesSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /motorcycles/filter [get]
func FilterMotorcyclesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repo.CatalogFilter{
		Brand:     q.Get("brand"),
		Category:  q.Get("category"),
		MinPrice:  parseFloatPtr(q.Get("minPrice")),
		MaxPrice:  parseFloatPtr(q.Get("maxPrice")),
		MinEngine: parseIntPtr(q.Get("minEngine")),
		MaxEngine: parseIntPtr(q.Get("maxEngine")),
		FuelType:  q.Get("fuelType"),
		Offset:    parseIntPtr(q.Get("offset")),
		Limit:     parseIntPtr(q.Get("limit")),
	}

	if filter.Limit != nil && *filter.Limit <= 0 {
		http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
		return
	}
	if filter.Offset != nil && *filter.Offset < 0 {
		http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
		return
	}

	motorcycles, total, err := catalogRepo.Filter(filter)
	if err != nil {
		http.Error(w, "could not filter motorcycles", http.StatusInternalServerError)
		return
	}

	resp := MotorcyclesSearchResult{
		Data: motorcycles,
		Meta: Meta{TotalCount: total},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to encode response: %v", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// BrowseMotorcyclesHandler godoc
// @Summary Browse the catalog with combined filters and sort
// @Description Text match covers brand, model and category only; use /motorcycles/search for description matches. Sort keys: featured, price-asc, price-desc, power-desc, launch-year-desc.
// @Tags catalog
// @Produce json
// @Param q query string false "Text query"
// @Param category query string false "Category id"
// @Param brand query string false "Exact brand"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param minCc query int false "Minimum displacement (inclusive)"
// @Param maxCc query int false "Maximum displacement (inclusive)"
// @Param fuelType query string false "Exact fuel type"
// @Param sort query string false "Sort key"
// @Success 200 {object} BrowseResult
// @Failure 500 {string} string "Internal error"
// @Router /motorcycles/browse [get]
func BrowseMotorcyclesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := browse.Query{
		Text:     q.Get("q"),
		Category: q.Get("category"),
		Brand:    q.Get("brand"),
		MinPrice: parseFloatPtr(q.Get("minPrice")),
		MaxPrice: parseFloatPtr(q.Get("maxPrice")),
		MinCC:    parseIntPtr(q.Get("minCc")),
		MaxCC:    parseIntPtr(q.Get("maxCc")),
		FuelType: q.Get("fuelType"),
		Sort:     q.Get("sort"),
	}

	catalog, err := catalogRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch motorcycles", http.StatusInternalServerError)
		return
	}

	result := query.Run(catalog)
	resp := BrowseResult{
		Data: result.Motorcycles,
		Meta: BrowseMeta{Shown: result.Shown, Total: result.Total},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// GetCategoriesHandler godoc
// @Summary List the category taxonomy
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalogRepo.Categories())
}

// GetBrandsHandler godoc
// @Summary List the brand taxonomy
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /brands [get]
func GetBrandsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalogRepo.Brands())
}
