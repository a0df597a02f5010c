package domain

import (
	"fmt"
)

// Catalog is the fixed, read-only set of products known to the shop
type Catalog struct {
	products []Product
	index    map[string]int
	featured []string
}

// NewCatalog validates the products and the featured id list and builds a catalog.
// Insertion order is kept as the display order.
func NewCatalog(products []Product, featured []string) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}

	for _, id := range featured {
		if _, ok := c.index[id]; !ok {
			return nil, fmt.Errorf("featured product %q is not in the catalog", id)
		}
		c.featured = append(c.featured, id)
	}

	return c, nil
}

// Products returns a copy of every product in insertion order
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Lookup returns the product with the given id
func (c *Catalog) Lookup(id string) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Featured returns the curated best sellers in curation order
func (c *Catalog) Featured() []Product {
	out := make([]Product, 0, len(c.featured))
	for _, id := range c.featured {
		out = append(out, c.products[c.index[id]])
	}
	return out
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.products)
}
