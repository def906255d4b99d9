// Package entity contains the core business objects of the project.
package entity

const (
	// ConvenienceFee is the flat per-order surcharge in rupees, applied
	// whenever the cart is non-empty.
	ConvenienceFee = 19

	// TaxRatePercent is the tax rate applied to the cart subtotal.
	TaxRatePercent = 5
)

// Cart maps product IDs to positive quantities. A quantity that drops to
// zero removes the entry; the map never holds an entry with quantity <= 0.
// Cart is not safe for concurrent use; callers own synchronization.
type Cart struct {
	Items map[string]int `json:"items"`
}

// CartTotals is the derived price breakdown of a cart against a catalog.
type CartTotals struct {
	Subtotal       int `json:"subtotal"`
	ConvenienceFee int `json:"convenience_fee"`
	Tax            int `json:"tax"`
	Total          int `json:"total"`
	TotalItems     int `json:"total_items"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: make(map[string]int)}
}

// Add increments the stored quantity by qty, creating the entry if absent.
// Non-positive qty is ignored. Unknown product IDs are tolerated; they simply
// never resolve to a priced line.
func (c *Cart) Add(productID string, qty int) {
	if qty <= 0 {
		return
	}
	if c.Items == nil {
		c.Items = make(map[string]int)
	}
	c.Items[productID] += qty
}

// Increase bumps the quantity of a product by one.
func (c *Cart) Increase(productID string) {
	c.Add(productID, 1)
}

// Decrease lowers the quantity by one, removing the entry entirely when it
// reaches zero.
func (c *Cart) Decrease(productID string) {
	qty, ok := c.Items[productID]
	if !ok {
		return
	}
	if qty <= 1 {
		delete(c.Items, productID)

		return
	}
	c.Items[productID] = qty - 1
}

// Remove drops the entry unconditionally, regardless of its quantity.
func (c *Cart) Remove(productID string) {
	delete(c.Items, productID)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = make(map[string]int)
}

// Quantity returns the stored quantity for a product, or 0 when absent.
func (c *Cart) Quantity(productID string) int {
	return c.Items[productID]
}

// Contains reports whether the product has an entry in the cart.
func (c *Cart) Contains(productID string) bool {
	return c.Items[productID] > 0
}

// IsEmpty reports whether the cart holds no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Normalize drops entries with non-positive quantities. Carts restored from
// an external store pass through here so the quantity invariant holds even
// for hand-edited or corrupt documents.
func (c *Cart) Normalize() {
	if c.Items == nil {
		c.Items = make(map[string]int)

		return
	}
	for id, qty := range c.Items {
		if qty <= 0 {
			delete(c.Items, id)
		}
	}
}

// Totals derives the price breakdown against a catalog lookup. Entries whose
// product ID does not resolve contribute nothing; only priced lines count
// toward the totals. Tax is rounded half-up on whole rupees.
func (c *Cart) Totals(lookup func(productID string) (Product, bool)) CartTotals {
	var totals CartTotals
	for id, qty := range c.Items {
		product, ok := lookup(id)
		if !ok {
			continue
		}
		totals.Subtotal += product.Price * qty
		totals.TotalItems += qty
	}

	if totals.Subtotal > 0 {
		totals.ConvenienceFee = ConvenienceFee
	}
	// round(subtotal * 5%) half-up, in integer arithmetic
	totals.Tax = (totals.Subtotal*TaxRatePercent + 50) / 100
	totals.Total = totals.Subtotal + totals.ConvenienceFee + totals.Tax

	return totals
}
