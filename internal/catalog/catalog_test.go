package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogSeed(t *testing.T) {
	t.Parallel()

	c := New()

	products := c.List("")
	require.Len(t, products, 12)

	almonds, ok := c.ByID("almonds-500g")
	require.True(t, ok)
	assert.Equal(t, "Premium Almonds", almonds.Name)
	assert.Equal(t, 449, almonds.Price)
	assert.Equal(t, 549, almonds.OriginalPrice)
	assert.True(t, almonds.InStock)

	_, ok = c.ByID("no-such-product")
	assert.False(t, ok)
}

func TestListByCategory(t *testing.T) {
	t.Parallel()

	c := New()

	groceries := c.List("groceries")
	require.NotEmpty(t, groceries)
	for _, p := range groceries {
		assert.Equal(t, "groceries", p.Category)
	}

	assert.Empty(t, c.List("furniture"))
}

func TestListPreservesSeedOrder(t *testing.T) {
	t.Parallel()

	c := New()

	all := c.List("")
	require.Len(t, all, len(seedProducts))
	for i, p := range all {
		assert.Equal(t, seedProducts[i].ID, p.ID)
	}
}

func TestCategoriesSorted(t *testing.T) {
	t.Parallel()

	cats := New().Categories()
	require.NotEmpty(t, cats)
	for i := 1; i < len(cats); i++ {
		assert.Less(t, cats[i-1], cats[i])
	}
}

func TestSetStock(t *testing.T) {
	t.Parallel()

	c := New()

	require.True(t, c.SetStock("almonds-500g", false))
	p, ok := c.ByID("almonds-500g")
	require.True(t, ok)
	assert.False(t, p.InStock)

	assert.False(t, c.SetStock("no-such-product", false))
}

func TestDeliverySpots(t *testing.T) {
	t.Parallel()

	spots := DeliverySpots()
	require.Len(t, spots, 7)
	for _, s := range spots {
		assert.True(t, s.Available, "spot %s should be available", s.ID)
	}

	// Returned slice is a copy; mutating it must not touch the seed.
	spots[0].Available = false
	again, ok := SpotByID(spots[0].ID)
	require.True(t, ok)
	assert.True(t, again.Available)

	_, ok = SpotByID("spot_999")
	assert.False(t, ok)
}

func TestSampleAddresses(t *testing.T) {
	t.Parallel()

	addrs := SampleAddresses()
	require.Len(t, addrs, 7)
	assert.Contains(t, addrs[0], "Andheri")
}
