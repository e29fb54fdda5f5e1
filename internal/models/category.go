package models

// Category is a taxonomy entry. Count is static display data maintained by
// hand; it is not derived from catalog membership and may drift as entries
// are added or removed. Live counts come from the metrics endpoint.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Count       int    `json:"count"`
}
