package models

// CatalogChange is one audit entry for an administrative catalog edit.
type CatalogChange struct {
	ID           int    `json:"id"`
	MotorcycleID string `json:"motorcycle_id"`
	Action       string `json:"action"` // create, update, delete, import
	Actor        string `json:"actor"`
	CreatedAt    string `json:"created_at"`
}
