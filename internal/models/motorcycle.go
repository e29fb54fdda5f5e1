package models

// Color is a paint option offered for a motorcycle. Names are unique
// within a single motorcycle.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Variant is a trim level with its own price. The variant price replaces
// the base price when a cart line selects it.
type Variant struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Motorcycle represents one catalog entry.
type Motorcycle struct {
	ID            string    `json:"id"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	Category      string    `json:"category"`
	EngineCC      int       `json:"engine_cc"`
	EngineType    string    `json:"engine_type"`
	PowerHP       int       `json:"power_hp"`
	TorqueNM      int       `json:"torque_nm"`
	TopSpeed      int       `json:"top_speed"`
	Mileage       string    `json:"mileage"`
	FuelType      string    `json:"fuel_type"`
	Transmission  string    `json:"transmission"`
	Price         float64   `json:"price"`
	CountryOrigin string    `json:"country_origin"`
	LaunchYear    int       `json:"launch_year"`
	Images        []string  `json:"images"`
	Colors        []Color   `json:"colors"`
	Variants      []Variant `json:"variants"`
	Description   string    `json:"description"`
	Features      []string  `json:"features"`
}

// VariantPrice returns the price of the named variant, falling back to the
// base price when no variant with that name exists.
func (m Motorcycle) VariantPrice(name string) float64 {
	for _, v := range m.Variants {
		if v.Name == name {
			return v.Price
		}
	}
	return m.Price
}

// HasColor reports whether the motorcycle offers the named color.
func (m Motorcycle) HasColor(name string) bool {
	for _, c := range m.Colors {
		if c.Name == name {
			return true
		}
	}
	return false
}

// HasVariant reports whether the motorcycle offers the named variant.
func (m Motorcycle) HasVariant(name string) bool {
	for _, v := range m.Variants {
		if v.Name == name {
			return true
		}
	}
	return false
}
