// Package catalog holds the static product catalog and delivery spot list.
// Both are reference data seeded at build time; the hosted backend may
// override stock flags but never the set of products.
package catalog

import (
	"sort"
	"sync"

	"drogo/internal/domain/entity"
)

// Catalog is an in-memory product index with stable iteration order.
// Stock flag updates are the only runtime mutation.
type Catalog struct {
	mu    sync.RWMutex
	byID  map[string]entity.Product
	order []string
}

// New builds a catalog from the embedded seed products.
func New() *Catalog {
	return FromProducts(seedProducts)
}

// FromProducts builds a catalog from an explicit product list. Used by tests
// and by the hosted backend once it serves its own product table.
func FromProducts(products []entity.Product) *Catalog {
	c := &Catalog{
		byID:  make(map[string]entity.Product, len(products)),
		order: make([]string, 0, len(products)),
	}
	for _, p := range products {
		if _, dup := c.byID[p.ID]; !dup {
			c.order = append(c.order, p.ID)
		}
		c.byID[p.ID] = p
	}

	return c
}

// ByID looks up a product by its identifier.
func (c *Catalog) ByID(id string) (entity.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.byID[id]

	return p, ok
}

// List returns all products in seed order. With a non-empty category only
// matching products are returned.
func (c *Catalog) List(category string) []entity.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entity.Product, 0, len(c.order))
	for _, id := range c.order {
		p := c.byID[id]
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}

	return out
}

// Categories returns the distinct category tags, sorted.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, p := range c.byID {
		seen[p.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)

	return out
}

// SetStock toggles the stock flag of a product. Returns false when the id is
// unknown.
func (c *Catalog) SetStock(id string, inStock bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.byID[id]
	if !ok {
		return false
	}
	p.InStock = inStock
	c.byID[id] = p

	return true
}
