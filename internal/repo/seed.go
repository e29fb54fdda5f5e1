package repo

import "github.com/motohub/moto-catalog/internal/models"

// DefaultCategories is the fixed category taxonomy. The counts are the
// numbers shown on the category tiles; they are display data, not derived
// from catalog membership.
func DefaultCategories() []models.Category {
	return []models.Category{
		{ID: "sport", Name: "Sport Bikes", Description: "High-performance racing machines", Icon: "🏎️", Count: 45},
		{ID: "naked", Name: "Naked Bikes", Description: "Raw power, minimal fairing", Icon: "⚡", Count: 38},
		{ID: "cruiser", Name: "Cruisers", Description: "Relaxed riding position", Icon: "🛣️", Count: 32},
		{ID: "adventure", Name: "Adventure", Description: "Built for any terrain", Icon: "🏔️", Count: 28},
		{ID: "touring", Name: "Touring", Description: "Long-distance comfort", Icon: "🌍", Count: 22},
		{ID: "dirt", Name: "Dirt/Motocross", Description: "Off-road champions", Icon: "🏁", Count: 35},
		{ID: "electric", Name: "Electric", Description: "Zero emissions, full power", Icon: "⚡", Count: 18},
		{ID: "retro", Name: "Retro/Classic", Description: "Timeless design", Icon: "🎭", Count: 25},
		{ID: "scooter", Name: "Scooters", Description: "Urban mobility", Icon: "🛵", Count: 42},
		{ID: "hyperbike", Name: "Hyperbikes", Description: "Ultimate speed machines", Icon: "🚀", Count: 12},
	}
}

// DefaultBrands is the fixed brand taxonomy.
func DefaultBrands() []string {
	return []string{
		"Ducati", "BMW", "Kawasaki", "Honda", "Yamaha", "Suzuki",
		"Harley-Davidson", "KTM", "Triumph", "Aprilia", "MV Agusta",
		"Indian", "Royal Enfield", "Husqvarna", "Zero", "Energica",
	}
}

// DefaultMotorcycles is the built-in catalog used when no database is
// configured.
func DefaultMotorcycles() []models.Motorcycle {
	return []models.Motorcycle{
		{
			ID: "ducati-panigale-v4", Brand: "Ducati", Model: "Panigale V4", Category: "sport",
			EngineCC: 1103, EngineType: "V4 Desmosedici Stradale", PowerHP: 214, TorqueNM: 124,
			TopSpeed: 299, Mileage: "12-15 km/l", FuelType: "Petrol", Transmission: "6-speed",
			Price: 26999, CountryOrigin: "Italy", LaunchYear: 2024,
			Images: []string{
				"https://images.pexels.com/photos/2611686/pexels-photo-2611686.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/2519374/pexels-photo-2519374.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Colors: []models.Color{
				{Name: "Ducati Red", Hex: "#CC0000"},
				{Name: "Arctic White", Hex: "#F5F5F5"},
				{Name: "Dark Stealth", Hex: "#1A1A1A"},
			},
			Variants: []models.Variant{
				{Name: "Standard", Price: 26999},
				{Name: "S", Price: 32999},
				{Name: "SP2", Price: 42999},
			},
			Description: "The Panigale V4 is the essence of Ducati sport bikes. Powered by a MotoGP-derived V4 engine, it delivers unprecedented performance for road use.",
			Features:    []string{"Öhlins Smart EC 2.0", "Brembo Stylema", "Quick Shift", "Launch Control", "Cornering ABS"},
		},
		{
			ID: "bmw-s1000rr", Brand: "BMW", Model: "S 1000 RR", Category: "sport",
			EngineCC: 999, EngineType: "Inline-4", PowerHP: 205, TorqueNM: 113,
			TopSpeed: 303, Mileage: "14-18 km/l", FuelType: "Petrol", Transmission: "6-speed",
			Price: 21995, CountryOrigin: "Germany", LaunchYear: 2024,
			Images: []string{
				"https://images.pexels.com/photos/1715193/pexels-photo-1715193.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Colors: []models.Color{
				{Name: "Racing Red", Hex: "#DC143C"},
				{Name: "Light White", Hex: "#FFFFFF"},
				{Name: "M Motorsport", Hex: "#0066B1"},
			},
			Variants: []models.Variant{
				{Name: "Standard", Price: 21995},
				{Name: "M Sport", Price: 25995},
				{Name: "M RR", Price: 39995},
			},
			Description: "The S 1000 RR defines the supersport segment with German precision engineering and cutting-edge electronics.",
			Features:    []string{"Dynamic Traction Control", "ABS Pro", "Shift Cam", "M GPS Lap Trigger", "M Carbon Package"},
		},
		{
			ID: "kawasaki-ninja-zx10r", Brand: "Kawasaki", Model: "Ninja ZX-10R", Category: "sport",
			EngineCC: 998, EngineType: "Inline-4", PowerHP: 203, TorqueNM: 115,
			TopSpeed: 299, Mileage: "13-16 km/l", FuelType: "Petrol", Transmission: "6-speed",
			Price: 17999, CountryOrigin: "Japan", LaunchYear: 2024,
			Images: []string{
				"https://images.pexels.com/photos/2549942/pexels-photo-2549942.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Colors: []models.Color{
				{Name: "Lime Green", Hex: "#32CD32"},
				{Name: "Metallic Black", Hex: "#1C1C1C"},
				{Name: "Pearl White", Hex: "#FAFAFA"},
			},
			Variants: []models.Variant{
				{Name: "Standard", Price: 17999},
				{Name: "KRT Edition", Price: 19499},
			},
			Description: "Born from World Superbike Championship victories, the Ninja ZX-10R brings race-winning technology to the street.",
			Features:    []string{"KIBS", "KTRC", "KLCM", "Electronic Suspension", "Kawasaki Corner Management"},
		},
		{
			ID: "harley-sportster-s", Brand: "Harley-Davidson", Model: "Sportster S", Category: "cruiser",
			EngineCC: 1252, EngineType: "Revolution Max V-Twin", PowerHP: 121, TorqueNM: 127,
			TopSpeed: 225, Mileage: "18-22 km/l", FuelType: "Petrol", Transmission: "6-speed",
			Price: 14999, CountryOrigin: "USA", LaunchYear: 2024,
			Images: []string{
				"https://images.pexels.com/photos/2607554/pexels-photo-2607554.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Colors: []models.Color{
				{Name: "Vivid Black", Hex: "#0D0D0D"},
				{Name: "Stone Washed White", Hex: "#E8E8E8"},
				{Name: "Midnight Crimson", Hex: "#722F37"},
			},
			Variants: []models.Variant{
				{Name: "Standard", Price: 14999},
				{Name: "Custom", Price: 16999},
			},
			Description: "The Sportster S represents a new chapter for Harley-Davidson with the all-new Revolution Max engine.",
			Features:    []string{"Cornering ABS", "Traction Control", "Multiple Ride Modes", "TFT Display", "LED Lighting"},
		},
		{
			ID: "ktm-1290-super-adventure", Brand: "KTM", Model: "1290 Super Adventure R", Category: "adventure",
			EngineCC: 1301, EngineType: "V-Twin", PowerHP: 160, TorqueNM: 138,
			TopSpeed: 240, Mileage: "16-20 km/l", FuelType: "Petrol", Transmission: "6-speed",
			Price: 19999, CountryOrigin: "Austria", LaunchYear: 2024,
			Images: []string{
				"https://images.pexels.com/photos/1119796/pexels-photo-1119796.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Colors: []models.Color{
				{Name: "Orange", Hex: "#FF6600"},
				{Name: "Black", Hex: "#1A1A1A"},
			},
			Variants: []models.Variant{
				{Name: "R", Price: 19999},
				{Name: "S", Price: 21999},
			},
			Description: "The ultimate adventure motorcycle for those who demand the best both on and off-road.",
			Features:    []string{"WP XPLOR Suspension", "Cornering ABS", "Motor Slip Regulation", "Quick Shifter+", "Cruise Control"},
		},
		{
			ID: "yamaha-mt09", Brand: "Yamaha", Model: "MT-09", Category: "naked",
			EngineCC: 889, EngineType: "CP3 Triple", PowerHP: 119, TorqueNM: 93,
			TopSpeed: 240, Mileage: "18-22 km/l", FuelType: "Petrol", Transmission: "6-speed",
			Price: 9999, CountryOrigin: "Japan", LaunchYear: 2024,
			Images: []string{
				"https://images.pexels.com/photos/2116475/pexels-photo-2116475.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Colors: []models.Color{
				{Name: "Icon Blue", Hex: "#0033A0"},
				{Name: "Tech Black", Hex: "#1A1A1A"},
				{Name: "Cyan Storm", Hex: "#00CED1"},
			},
			Variants: []models.Variant{
				{Name: "Standard", Price: 9999},
				{Name: "SP", Price: 11999},
			},
			Description: "The Dark Side of Japan. Raw power meets aggressive styling in this torque monster.",
			Features:    []string{"IMU", "Ride Modes", "TFT Display", "Quick Shifter", "Cruise Control"},
		},
		{
			ID: "zero-sr-f", Brand: "Zero", Model: "SR/F", Category: "electric",
			EngineCC: 0, EngineType: "Z-Force 75-10", PowerHP: 110, TorqueNM: 190,
			TopSpeed: 200, Mileage: "160 km range", FuelType: "Electric", Transmission: "Direct Drive",
			Price: 19495, CountryOrigin: "USA", LaunchYear: 2024,
			Images: []string{
				"https://images.pexels.com/photos/3836761/pexels-photo-3836761.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Colors: []models.Color{
				{Name: "Cool Silver", Hex: "#A9A9A9"},
				{Name: "Jet Black", Hex: "#0A0A0A"},
			},
			Variants: []models.Variant{
				{Name: "Standard", Price: 19495},
				{Name: "Premium", Price: 21495},
			},
			Description: "The future of motorcycling. Instant torque, zero emissions, pure electric thrills.",
			Features:    []string{"Rapid Charging", "Bosch MSC", "TFT Display", "Bluetooth Connectivity", "Regenerative Braking"},
		},
		{
			ID: "royal-enfield-continental", Brand: "Royal Enfield", Model: "Continental GT 650", Category: "retro",
			EngineCC: 648, EngineType: "Parallel Twin", PowerHP: 47, TorqueNM: 52,
			TopSpeed: 160, Mileage: "25-30 km/l", FuelType: "Petrol", Transmission: "6-speed",
			Price: 6999, CountryOrigin: "India", LaunchYear: 2024,
			Images: []string{
				"https://images.pexels.com/photos/2549941/pexels-photo-2549941.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Colors: []models.Color{
				{Name: "British Racing Green", Hex: "#004225"},
				{Name: "Dr. Mayhem", Hex: "#FF4500"},
				{Name: "Ventura Blue", Hex: "#0066CC"},
			},
			Variants: []models.Variant{
				{Name: "Standard", Price: 6999},
				{Name: "Custom", Price: 7999},
			},
			Description: "Classic café racer styling meets modern engineering in this affordable twin.",
			Features:    []string{"ABS", "Slip-Assist Clutch", "Twin Exhaust", "LED Tail Light", "Retro Styling"},
		},
	}
}

// SeedCatalog loads the default motorcycles into an in-memory catalog.
func SeedCatalog(r *InMemoryCatalogRepository) error {
	for _, m := range DefaultMotorcycles() {
		if _, err := r.Create(m); err != nil {
			return err
		}
	}
	return nil
}
