// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Product is a purchasable catalog item. Prices are whole rupees; the
// catalog is static reference data, so products carry no lifecycle fields.
type Product struct {
	ID            string  `json:"id"`             // Stable catalog identifier, e.g. "almonds-500g".
	Name          string  `json:"name"`           // Display name shown in the storefront.
	Description   string  `json:"description"`    // Short marketing description.
	Category      string  `json:"category"`       // Category tag, e.g. "groceries", "pharmacy".
	Price         int     `json:"price"`          // Current unit price in whole rupees.
	OriginalPrice int     `json:"original_price"` // Pre-discount price. Invariant: Price <= OriginalPrice.
	Tag           string  `json:"tag"`            // Promotional badge, e.g. "Bestseller".
	InStock       bool    `json:"in_stock"`       // Availability flag, togglable by admins.
	Rating        float64 `json:"rating"`         // Average customer rating.
	DeliveryTime  string  `json:"delivery_time"`  // Estimated delivery window, e.g. "8-12 min".
}

// Savings returns the absolute discount against the original price.
func (p Product) Savings() int {
	return p.OriginalPrice - p.Price
}

// DiscountPercent returns the rounded discount percentage, or 0 when the
// original price is not set.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= 0 {
		return 0
	}

	return int(float64(p.OriginalPrice-p.Price)/float64(p.OriginalPrice)*100 + 0.5)
}
