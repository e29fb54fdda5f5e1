package repo

// CategoryCount pairs a category id with its live catalog membership and the
// static count displayed on the category tile.
type CategoryCount struct {
	CategoryID     string `json:"category_id"`
	LiveCount      int    `json:"live_count"`
	DisplayedCount int    `json:"displayed_count"`
}

type MostEditedModel struct {
	MotorcycleID string `json:"motorcycle_id"`
	ChangeCount  int    `json:"change_count"`
}

type Metrics struct {
	TotalModels     int             `json:"total_models"`
	TotalChanges    int             `json:"total_changes"`
	MinPrice        float64         `json:"min_price"`
	AvgPrice        float64         `json:"avg_price"`
	MaxPrice        float64         `json:"max_price"`
	ByCategory      []CategoryCount `json:"by_category"`
	MostEditedModel MostEditedModel `json:"most_edited_model"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
