package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() map[string]Product {
	return map[string]Product{
		"almonds-500g":      {ID: "almonds-500g", Name: "California Almonds", Price: 449, OriginalPrice: 549},
		"whole-wheat-bread": {ID: "whole-wheat-bread", Name: "Whole Wheat Bread", Price: 55, OriginalPrice: 65},
	}
}

func lookupFrom(catalog map[string]Product) func(string) (Product, bool) {
	return func(id string) (Product, bool) {
		p, ok := catalog[id]

		return p, ok
	}
}

func TestCart_QuantityNeverNonPositive(t *testing.T) {
	cart := NewCart()

	cart.Add("almonds-500g", 2)
	cart.Decrease("almonds-500g")
	cart.Decrease("almonds-500g")
	cart.Decrease("almonds-500g") // decreasing past zero stays removed
	cart.Add("whole-wheat-bread", 1)
	cart.Remove("whole-wheat-bread")
	cart.Add("bananas-6pc", 0)  // no-op
	cart.Add("bananas-6pc", -3) // no-op

	for id, qty := range cart.Items {
		assert.Positive(t, qty, "entry %s must have positive quantity", id)
	}
	assert.True(t, cart.IsEmpty())
}

func TestCart_DecreaseToZeroRemovesEntry(t *testing.T) {
	cart := NewCart()
	cart.Add("almonds-500g", 1)
	cart.Decrease("almonds-500g")

	assert.False(t, cart.Contains("almonds-500g"))
	_, exists := cart.Items["almonds-500g"]
	assert.False(t, exists, "entry must be removed, not stored as zero")
}

func TestCart_Totals_SampleCatalog(t *testing.T) {
	cart := NewCart()
	cart.Add("almonds-500g", 2)

	totals := cart.Totals(lookupFrom(testCatalog()))

	assert.Equal(t, 898, totals.Subtotal)
	assert.Equal(t, 19, totals.ConvenienceFee)
	assert.Equal(t, 45, totals.Tax)
	assert.Equal(t, 962, totals.Total)
	assert.Equal(t, 2, totals.TotalItems)
}

func TestCart_Totals_EmptyCartHasNoFee(t *testing.T) {
	totals := NewCart().Totals(lookupFrom(testCatalog()))

	assert.Equal(t, 0, totals.Subtotal)
	assert.Equal(t, 0, totals.ConvenienceFee)
	assert.Equal(t, 0, totals.Tax)
	assert.Equal(t, 0, totals.Total)
}

func TestCart_Totals_UnresolvableIDContributesNothing(t *testing.T) {
	cart := NewCart()
	cart.Add("discontinued-item", 5)
	cart.Add("whole-wheat-bread", 1)

	totals := cart.Totals(lookupFrom(testCatalog()))

	assert.Equal(t, 55, totals.Subtotal)
	assert.Equal(t, 1, totals.TotalItems)
}

func TestCart_Totals_SubtotalAdditiveOverDisjointCarts(t *testing.T) {
	lookup := lookupFrom(testCatalog())

	left := NewCart()
	left.Add("almonds-500g", 3)
	right := NewCart()
	right.Add("whole-wheat-bread", 2)

	merged := NewCart()
	merged.Add("almonds-500g", 3)
	merged.Add("whole-wheat-bread", 2)

	require.Equal(t,
		merged.Totals(lookup).Subtotal,
		left.Totals(lookup).Subtotal+right.Totals(lookup).Subtotal,
	)
}

func TestCart_TaxRoundsHalfUp(t *testing.T) {
	// subtotal 449 -> 5% = 22.45 -> 22; subtotal 55 -> 2.75 -> 3
	cases := []struct {
		subtotalItem string
		wantTax      int
	}{
		{"almonds-500g", 22},
		{"whole-wheat-bread", 3},
	}
	for _, tc := range cases {
		cart := NewCart()
		cart.Add(tc.subtotalItem, 1)
		assert.Equal(t, tc.wantTax, cart.Totals(lookupFrom(testCatalog())).Tax, "item %s", tc.subtotalItem)
	}
}

func TestCart_NormalizeDropsCorruptEntries(t *testing.T) {
	cart := &Cart{Items: map[string]int{
		"almonds-500g": 2,
		"bad-zero":     0,
		"bad-negative": -4,
	}}

	cart.Normalize()

	assert.Equal(t, map[string]int{"almonds-500g": 2}, cart.Items)
}
