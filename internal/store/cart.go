// Package store holds the session-scoped shopping state: cart, compare set
// and wishlist. Each manager is constructed once per session and mutated
// only through its methods. Items carry motorcycle snapshots taken at add
// time; later catalog edits do not propagate into them.
package store

import "github.com/motohub/moto-catalog/internal/models"

// CartLine is one cart entry. Identity is the (motorcycle id, color,
// variant) triple; adding the same triple again increments Quantity.
type CartLine struct {
	Motorcycle models.Motorcycle `json:"motorcycle"`
	Quantity   int               `json:"quantity"`
	Color      string            `json:"selected_color"`
	Variant    string            `json:"selected_variant"`
}

// UnitPrice is the variant price when the selected variant exists on the
// snapshot, otherwise the base price.
func (l CartLine) UnitPrice() float64 {
	return l.Motorcycle.VariantPrice(l.Variant)
}

// Cart tracks a quantity-bearing selection of motorcycles and derives
// totals. A discount rule resolves coupon codes to percentages.
type Cart struct {
	lines    []CartLine
	discount DiscountRule
	coupon   string
}

func NewCart(discount DiscountRule) *Cart {
	return &Cart{
		lines:    []CartLine{},
		discount: discount,
	}
}

// Add puts one unit of the motorcycle in the given color and variant into
// the cart. A line with the same (id, color, variant) key is incremented
// instead of duplicated.
func (c *Cart) Add(m models.Motorcycle, color, variant string) {
	for i, line := range c.lines {
		if line.Motorcycle.ID == m.ID && line.Color == color && line.Variant == variant {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Motorcycle: m, Quantity: 1, Color: color, Variant: variant})
}

// Remove drops every line for the motorcycle id, regardless of color or
// variant. The composite key only governs add identity.
func (c *Cart) Remove(motorcycleID string) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.Motorcycle.ID != motorcycleID {
			kept = append(kept, line)
		}
	}
	c.lines = kept
}

// UpdateQuantity sets the quantity on the line(s) for the motorcycle id.
// A quantity of zero or less removes the line(s) instead.
func (c *Cart) UpdateQuantity(motorcycleID string, quantity int) {
	if quantity <= 0 {
		c.Remove(motorcycleID)
		return
	}
	for i, line := range c.lines {
		if line.Motorcycle.ID == motorcycleID {
			c.lines[i].Quantity = quantity
		}
	}
}

// Clear empties the cart and forgets any applied coupon.
func (c *Cart) Clear() {
	c.lines = []CartLine{}
	c.coupon = ""
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	return c.lines
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the undiscounted sum of unit price times quantity.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, line := range c.lines {
		total += line.UnitPrice() * float64(line.Quantity)
	}
	return total
}

// ApplyCoupon records the coupon when the discount rule knows it and
// reports whether it was accepted. An unknown code leaves any previously
// applied coupon in place.
func (c *Cart) ApplyCoupon(code string) bool {
	if c.discount == nil {
		return false
	}
	if _, ok := c.discount.Percentage(code); !ok {
		return false
	}
	c.coupon = code
	return true
}

// Coupon returns the currently applied coupon code, if any.
func (c *Cart) Coupon() string {
	return c.coupon
}

// OrderSummary is the checkout view of the cart.
type OrderSummary struct {
	TotalItems      int     `json:"total_items"`
	Subtotal        float64 `json:"subtotal"`
	Coupon          string  `json:"coupon,omitempty"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
	Discount        float64 `json:"discount"`
	Total           float64 `json:"total"`
}

// Summary computes the order totals with the applied coupon, leaving the
// raw TotalPrice untouched.
func (c *Cart) Summary() OrderSummary {
	s := OrderSummary{
		TotalItems: c.TotalItems(),
		Subtotal:   c.TotalPrice(),
	}
	if c.coupon != "" && c.discount != nil {
		if pct, ok := c.discount.Percentage(c.coupon); ok {
			s.Coupon = c.coupon
			s.DiscountPercent = pct
			s.Discount = s.Subtotal * pct / 100
		}
	}
	s.Total = s.Subtotal - s.Discount
	return s
}
