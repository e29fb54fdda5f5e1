package store

import "github.com/motohub/moto-catalog/internal/models"

// Wishlist is an unbounded duplicate-free set of saved motorcycles.
// Listing order is insertion order so JSON output stays stable.
type Wishlist struct {
	items []models.Motorcycle
}

func NewWishlist() *Wishlist {
	return &Wishlist{items: []models.Motorcycle{}}
}

// Add saves the motorcycle; adding an id already present is a no-op.
func (w *Wishlist) Add(m models.Motorcycle) {
	if w.Contains(m.ID) {
		return
	}
	w.items = append(w.items, m)
}

func (w *Wishlist) Remove(motorcycleID string) {
	for i, m := range w.items {
		if m.ID == motorcycleID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return
		}
	}
}

func (w *Wishlist) Contains(motorcycleID string) bool {
	for _, m := range w.items {
		if m.ID == motorcycleID {
			return true
		}
	}
	return false
}

func (w *Wishlist) Clear() {
	w.items = []models.Motorcycle{}
}

func (w *Wishlist) Items() []models.Motorcycle {
	return w.items
}

// Get returns the saved snapshot for the id.
func (w *Wishlist) Get(motorcycleID string) (models.Motorcycle, bool) {
	for _, m := range w.items {
		if m.ID == motorcycleID {
			return m, true
		}
	}
	return models.Motorcycle{}, false
}
