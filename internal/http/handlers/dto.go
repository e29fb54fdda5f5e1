package handlers

import (
	"github.com/motohub/moto-catalog/internal/models"
	"github.com/motohub/moto-catalog/internal/store"
)

type MotorcycleRequest struct {
	ID            string           `json:"id,omitempty"`
	Brand         string           `json:"brand"`
	Model         string           `json:"model"`
	Category      string           `json:"category"`
	EngineCC      int              `json:"engine_cc"`
	EngineType    string           `json:"engine_type"`
	PowerHP       int              `json:"power_hp"`
	TorqueNM      int              `json:"torque_nm"`
	TopSpeed      int              `json:"top_speed"`
	Mileage       string           `json:"mileage"`
	FuelType      string           `json:"fuel_type"`
	Transmission  string           `json:"transmission"`
	Price         float64          `json:"price"`
	CountryOrigin string           `json:"country_origin"`
	LaunchYear    int              `json:"launch_year"`
	Images        []string         `json:"images"`
	Colors        []models.Color   `json:"colors"`
	Variants      []models.Variant `json:"variants"`
	Description   string           `json:"description"`
	Features      []string         `json:"features"`
}

// MotorcyclePatchRequest is the partial-update payload; absent fields leave
// the stored record untouched.
type MotorcyclePatchRequest struct {
	Brand         *string          `json:"brand"`
	Model         *string          `json:"model"`
	Category      *string          `json:"category"`
	EngineCC      *int             `json:"engine_cc"`
	EngineType    *string          `json:"engine_type"`
	PowerHP       *int             `json:"power_hp"`
	TorqueNM      *int             `json:"torque_nm"`
	TopSpeed      *int             `json:"top_speed"`
	Mileage       *string          `json:"mileage"`
	FuelType      *string          `json:"fuel_type"`
	Transmission  *string          `json:"transmission"`
	Price         *float64         `json:"price"`
	CountryOrigin *string          `json:"country_origin"`
	LaunchYear    *int             `json:"launch_year"`
	Images        []string         `json:"images"`
	Colors        []models.Color   `json:"colors"`
	Variants      []models.Variant `json:"variants"`
	Description   *string          `json:"description"`
	Features      []string         `json:"features"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type MotorcyclesSearchResult struct {
	Data []models.Motorcycle `json:"data"`
	Meta Meta                `json:"meta,omitempty"`
}

type BrowseMeta struct {
	Shown int `json:"shown"`
	Total int `json:"total"`
}

type BrowseResult struct {
	Data []models.Motorcycle `json:"data"`
	Meta BrowseMeta          `json:"meta"`
}

type AddToCartRequest struct {
	MotorcycleID string `json:"motorcycle_id"`
	Color        string `json:"color"`
	Variant      string `json:"variant"`
}

type QuantityUpdateRequest struct {
	Quantity int `json:"quantity"`
}

type CouponRequest struct {
	Code string `json:"code"`
}

type CartResponse struct {
	Items      []store.CartLine   `json:"items"`
	TotalItems int                `json:"total_items"`
	TotalPrice float64            `json:"total_price"`
	Summary    store.OrderSummary `json:"summary"`
}

type CheckoutResponse struct {
	OrderRef string             `json:"order_ref"`
	Summary  store.OrderSummary `json:"summary"`
	PlacedAt string             `json:"placed_at"`
}

type CompareAddRequest struct {
	MotorcycleID string `json:"motorcycle_id"`
}

type CompareResponse struct {
	Items      []models.Motorcycle `json:"items"`
	CanAddMore bool                `json:"can_add_more"`
}

type CompareAddResult struct {
	Added  bool   `json:"added"`
	Reason string `json:"reason,omitempty"`
}

type WishlistAddRequest struct {
	MotorcycleID string `json:"motorcycle_id"`
}

type MoveToCartRequest struct {
	Color   string `json:"color"`
	Variant string `json:"variant"`
}

type CatalogChangesResult struct {
	Data []models.CatalogChange `json:"data"`
	Meta Meta                   `json:"meta,omitempty"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type ImportMotorcyclesResult struct {
	ImportedCount int               `json:"imported"`
	Errors        []ValidationError `json:"errors"`
}
